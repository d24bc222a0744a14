package monkey

import (
	"fmt"
	"strings"
)

// ParseError is a single syntax diagnostic.
type ParseError struct {
	Pos Position
	Msg string

	source     string
	incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// Detail renders the error followed by a code frame pointing at the
// offending column.
func (e *ParseError) Detail() string {
	frame := formatCodeFrame(e.source, e.Pos)
	if frame == "" {
		return e.Error()
	}
	return e.Error() + "\n" + frame
}

// ParseErrors is every diagnostic produced by one parse, in source order.
type ParseErrors []error

func (errs ParseErrors) Error() string {
	return strings.Join(errs.Messages(), "\n")
}

// Messages returns the diagnostic strings.
func (errs ParseErrors) Messages() []string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return msgs
}

// Incomplete reports whether the input parsed cleanly up to an unexpected end
// of input, i.e. more text could complete it.
func (errs ParseErrors) Incomplete() bool {
	if len(errs) == 0 {
		return false
	}
	for _, err := range errs {
		pe, ok := err.(*ParseError)
		if !ok || !pe.incomplete {
			return false
		}
	}
	return true
}

func (p *parser) errorPeek(expected TokenType) {
	p.addParseError(p.peekToken, fmt.Sprintf("expected next token to be %s, got %s instead", expected, describeToken(p.peekToken)))
}

func (p *parser) errorExpected(tok Token, expected TokenType) {
	p.addParseError(tok, fmt.Sprintf("expected next token to be %s, got %s instead", expected, describeToken(tok)))
}

func (p *parser) errorNoPrefix(tok Token) {
	p.addParseError(tok, fmt.Sprintf("no prefix parse function for %s found", describeToken(tok)))
}

func (p *parser) errorInteger(tok Token) {
	p.addParseError(tok, fmt.Sprintf("could not parse %q as integer", tok.Literal))
}

func (p *parser) errorParameter(tok Token) {
	p.addParseError(tok, fmt.Sprintf("expected parameter name, got %s", describeToken(tok)))
}

func (p *parser) addParseError(tok Token, msg string) {
	p.errors = append(p.errors, &ParseError{
		Pos:        tok.Pos,
		Msg:        msg,
		source:     p.l.input,
		incomplete: tok.Type == tokenEOF,
	})
}

// describeToken names the token type, adding the literal for ILLEGAL tokens
// since the type alone does not say what was rejected.
func describeToken(tok Token) string {
	if tok.Type == tokenIllegal {
		return fmt.Sprintf("%s %q", tok.Type, tok.Literal)
	}
	return string(tok.Type)
}
