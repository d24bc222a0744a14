package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/LeonSteinbach/monkeylang/monkey"
)

const plainBanner = "Monkey REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands."

// lineREPL is the line-editor REPL used when stdin is not a terminal or
// -plain is given.
type lineREPL struct {
	session *monkey.Session
	out     io.Writer
	errOut  io.Writer
}

func newLineREPL(out, errOut io.Writer) *lineREPL {
	return &lineREPL{
		session: monkey.NewEngine(monkey.Config{}).NewSession(),
		out:     out,
		errOut:  errOut,
	}
}

func runPlainREPL(historyPath string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	repl := newLineREPL(os.Stdout, os.Stderr)
	ln.SetCompleter(repl.completeLine)
	fmt.Fprintln(repl.out, plainBanner)

	for {
		src, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(repl.out)
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if quit := repl.handle(src); quit {
			return nil
		}
	}
}

// readByParseProbe keeps prompting while the accumulated input is an
// unfinished program. It reports false once the input stream has ended.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		current := prompt
		if b.Len() > 0 {
			current = cont
		}
		line, err := ln.Prompt(current)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" || !incompleteInput(src) {
			return src, true
		}
	}
}

// handle runs one complete input and reports whether the REPL should exit.
func (r *lineREPL) handle(src string) bool {
	trimmed := strings.TrimSpace(src)
	if strings.HasPrefix(trimmed, ":") {
		return r.handleCommand(trimmed)
	}

	output, isErr := evaluateInput(r.session, src)
	if isErr {
		fmt.Fprintln(r.errOut, output)
		return false
	}
	fmt.Fprintln(r.out, output)
	return false
}

func (r *lineREPL) handleCommand(input string) bool {
	switch strings.Fields(input)[0] {
	case ":quit", ":q":
		return true
	case ":reset", ":r":
		r.session.Reset()
		fmt.Fprintln(r.out, "Environment reset")
	case ":vars", ":v":
		names := r.session.Env().Names()
		if len(names) == 0 {
			fmt.Fprintln(r.out, "No variables defined")
		}
		for _, name := range names {
			val, _ := r.session.Env().Get(name)
			fmt.Fprintf(r.out, "%s = %s\n", name, val.String())
		}
	case ":help", ":h":
		fmt.Fprintln(r.out, "Commands: :vars, :reset, :help, :quit")
	default:
		fmt.Fprintf(r.errOut, "Unknown command: %s\n", input)
	}
	return false
}

// completeLine adapts completions to liner, which replaces the whole line.
func (r *lineREPL) completeLine(line string) []string {
	word := trailingWord(line)
	if word == "" {
		return nil
	}
	prefix := strings.TrimSuffix(line, word)
	candidates := completions(r.session, word)
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = prefix + c
	}
	return out
}
