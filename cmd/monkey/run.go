package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/LeonSteinbach/monkeylang/monkey"
)

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	timings := fs.Bool("timings", false, "log parse and evaluation durations to stderr")
	verbose := fs.Bool("v", false, "enable debug logging")
	steps := fs.Int("steps", 0, "maximum evaluation steps (0 means unlimited)")
	recursion := fs.Int("recursion-limit", 0, "maximum call depth (0 means unlimited)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, input, err := readScript("run", fs.Args())
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, *verbose)
	timer := newPhaseTimer(logger, *timings)

	engine := monkey.NewEngine(monkey.Config{StepQuota: *steps, RecursionLimit: *recursion})
	logger.Debug("engine configured", "script", path, "limits", engine.ConfigSummary())

	start := time.Now()
	program, err := engine.Parse(input)
	timer.track("lex+parse", start, "statements", len(program.Statements))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	start = time.Now()
	result := engine.Eval(context.Background(), program, nil)
	timer.track("eval", start, "kind", result.Kind().String())

	if result.IsError() {
		return errors.New("execution failed: " + result.ErrorMessage())
	}
	if !result.IsNull() {
		fmt.Println(result.String())
	}
	return nil
}

func checkCommand(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("monkey check: script path required")
	}

	for _, arg := range fs.Args() {
		path, input, err := readScript("check", []string{arg})
		if err != nil {
			return err
		}
		if _, err := monkey.Parse(input); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}
