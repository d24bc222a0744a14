package monkey

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer turns source text into a stream of tokens. It never fails: input it
// cannot classify comes back as ILLEGAL tokens for the parser to report.
type Lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune
}

// NewLexer returns a lexer positioned on the first character of input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readRune()
	return l
}

func (l *Lexer) readRune() {
	if l.offset >= len(l.input) {
		if l.width > 0 {
			l.column++
		}
		l.width = 0
		l.ch = 0
		return
	}

	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w
	l.column++
	l.ch = r
}

func (l *Lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *Lexer) atEOF() bool {
	return l.width == 0
}

// NextToken returns the next token. Once the input is exhausted every call
// returns an EOF token with an empty literal.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.atEOF() {
		return Token{Type: tokenEOF, Literal: "", Pos: l.pos()}
	}

	var tok Token
	switch l.ch {
	case '=':
		tok = l.twoCharToken(tokenEQ, tokenAssign)
	case '!':
		tok = l.twoCharToken(tokenNotEQ, tokenBang)
	case '+':
		tok = l.makeToken(tokenPlus, "+")
	case '-':
		tok = l.makeToken(tokenMinus, "-")
	case '*':
		tok = l.makeToken(tokenAsterisk, "*")
	case '/':
		tok = l.makeToken(tokenSlash, "/")
	case '<':
		tok = l.makeToken(tokenLT, "<")
	case '>':
		tok = l.makeToken(tokenGT, ">")
	case ';':
		tok = l.makeToken(tokenSemicolon, ";")
	case ',':
		tok = l.makeToken(tokenComma, ",")
	case '(':
		tok = l.makeToken(tokenLParen, "(")
	case ')':
		tok = l.makeToken(tokenRParen, ")")
	case '{':
		tok = l.makeToken(tokenLBrace, "{")
	case '}':
		tok = l.makeToken(tokenRBrace, "}")
	case '[':
		tok = l.makeToken(tokenLBracket, "[")
	case ']':
		tok = l.makeToken(tokenRBracket, "]")
	case '"':
		pos := l.pos()
		literal, errMsg := l.readString()
		if errMsg != "" {
			return Token{Type: tokenIllegal, Literal: errMsg, Pos: pos}
		}
		return Token{Type: tokenString, Literal: literal, Pos: pos}
	default:
		switch {
		case isLetter(l.ch):
			pos := l.pos()
			literal := l.readWord()
			return Token{Type: lookupIdent(literal), Literal: literal, Pos: pos}
		case isDigit(l.ch):
			pos := l.pos()
			literal := l.readWord()
			return Token{Type: classifyNumber(literal), Literal: literal, Pos: pos}
		default:
			tok = l.makeToken(tokenIllegal, string(l.ch))
		}
	}

	l.readRune()
	return tok
}

func (l *Lexer) pos() Position {
	return Position{Line: l.line, Column: l.column}
}

func (l *Lexer) currentOffset() int {
	return l.offset - l.width
}

func (l *Lexer) makeToken(tt TokenType, literal string) Token {
	return Token{Type: tt, Literal: literal, Pos: l.pos()}
}

// twoCharToken produces double when the current character is followed by
// '=', single otherwise. The current character is left as the token's last.
func (l *Lexer) twoCharToken(double, single TokenType) Token {
	if l.peekRune() != '=' {
		return l.makeToken(single, string(l.ch))
	}
	tok := l.makeToken(double, "")
	first := l.ch
	l.readRune()
	tok.Literal = string(first) + string(l.ch)
	return tok
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF() {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readRune()
		default:
			return
		}
	}
}

// readWord consumes a maximal run of letters and digits starting at the
// current character and leaves the lexer on the first character after it.
func (l *Lexer) readWord() string {
	start := l.currentOffset()
	for !l.atEOF() && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readRune()
	}
	return l.input[start:l.currentOffset()]
}

func (l *Lexer) readString() (string, string) {
	var sb strings.Builder

	for {
		l.readRune()
		if l.atEOF() {
			return "", "unterminated string"
		}
		switch l.ch {
		case '"':
			l.readRune()
			return sb.String(), ""
		case '\\':
			next := l.peekRune()
			switch next {
			case '"', '\\':
				l.readRune()
				sb.WriteRune(next)
			case 'n':
				l.readRune()
				sb.WriteByte('\n')
			case 't':
				l.readRune()
				sb.WriteByte('\t')
			default:
				sb.WriteRune(l.ch)
			}
		default:
			sb.WriteRune(l.ch)
		}
	}
}

// classifyNumber rejects numeric-looking words such as 1abc or 0123.
func classifyNumber(literal string) TokenType {
	if len(literal) > 1 && literal[0] == '0' {
		return tokenIllegal
	}
	for _, r := range literal {
		if !isDigit(r) {
			return tokenIllegal
		}
	}
	return tokenInt
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
