package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/LeonSteinbach/monkeylang/monkey"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "check":
		return checkCommand(args[2:])
	case "tokens":
		return tokensCommand(args[2:])
	case "ast":
		return astCommand(args[2:])
	case "fmt":
		return fmtCommand(args[2:])
	case "repl":
		return replCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run [-timings] [-v] [-steps n] [-recursion-limit n] <script>")
	fmt.Fprintln(os.Stderr, "    parse and evaluate a script, printing the final value")
	fmt.Fprintln(os.Stderr, "  check <script>...")
	fmt.Fprintln(os.Stderr, "    only parse the scripts and report syntax errors")
	fmt.Fprintln(os.Stderr, "  tokens <script>")
	fmt.Fprintln(os.Stderr, "    print the token stream")
	fmt.Fprintln(os.Stderr, "  ast [-format text|yaml] <script>")
	fmt.Fprintln(os.Stderr, "    print the syntax tree")
	fmt.Fprintln(os.Stderr, "  fmt [-w] [-check] <path>...")
	fmt.Fprintln(os.Stderr, "    reprint .monkey files in canonical form")
	fmt.Fprintln(os.Stderr, "  repl [-plain] [-history file]")
	fmt.Fprintln(os.Stderr, "    start an interactive session")
}

// reportError prints err to w. Parse failures get one code frame per
// diagnostic.
func reportError(w io.Writer, err error) {
	var errs monkey.ParseErrors
	if !errors.As(err, &errs) {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintln(w, "parse failed:")
	for _, e := range errs {
		var pe *monkey.ParseError
		if errors.As(e, &pe) {
			fmt.Fprintln(w, pe.Detail())
			continue
		}
		fmt.Fprintln(w, e)
	}
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}

func readScript(command string, args []string) (string, string, error) {
	if len(args) == 0 {
		return "", "", fmt.Errorf("monkey %s: script path required", command)
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return "", "", fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read script: %w", err)
	}
	return path, string(input), nil
}
