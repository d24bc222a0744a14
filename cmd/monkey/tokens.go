package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/LeonSteinbach/monkeylang/monkey"
)

// tokensCommand prints every token up to and including EOF. It never fails
// on bad input: rejected characters show up as ILLEGAL tokens.
func tokensCommand(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, input, err := readScript("tokens", fs.Args())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	l := monkey.NewLexer(input)
	for {
		tok := l.NextToken()
		fmt.Fprintf(w, "%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Literal)
		if tok.IsEOF() {
			break
		}
	}
	return w.Flush()
}
