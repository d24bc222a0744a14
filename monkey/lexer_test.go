package monkey

import "testing"

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let add = fn(x, y) {
  x + y;
};
let result = add(five, 10);
!-/*5;
5 < 10 > 5;
if (5 < 10) { return true; } else { return false; }
10 == 10;
10 != 9;
"foobar" "foo bar" "";
[1, 2];
`

	tests := []struct {
		typ     TokenType
		literal string
	}{
		{tokenLet, "let"}, {tokenIdent, "five"}, {tokenAssign, "="}, {tokenInt, "5"}, {tokenSemicolon, ";"},
		{tokenLet, "let"}, {tokenIdent, "add"}, {tokenAssign, "="}, {tokenFunction, "fn"},
		{tokenLParen, "("}, {tokenIdent, "x"}, {tokenComma, ","}, {tokenIdent, "y"}, {tokenRParen, ")"},
		{tokenLBrace, "{"}, {tokenIdent, "x"}, {tokenPlus, "+"}, {tokenIdent, "y"}, {tokenSemicolon, ";"},
		{tokenRBrace, "}"}, {tokenSemicolon, ";"},
		{tokenLet, "let"}, {tokenIdent, "result"}, {tokenAssign, "="}, {tokenIdent, "add"},
		{tokenLParen, "("}, {tokenIdent, "five"}, {tokenComma, ","}, {tokenInt, "10"}, {tokenRParen, ")"},
		{tokenSemicolon, ";"},
		{tokenBang, "!"}, {tokenMinus, "-"}, {tokenSlash, "/"}, {tokenAsterisk, "*"}, {tokenInt, "5"}, {tokenSemicolon, ";"},
		{tokenInt, "5"}, {tokenLT, "<"}, {tokenInt, "10"}, {tokenGT, ">"}, {tokenInt, "5"}, {tokenSemicolon, ";"},
		{tokenIf, "if"}, {tokenLParen, "("}, {tokenInt, "5"}, {tokenLT, "<"}, {tokenInt, "10"}, {tokenRParen, ")"},
		{tokenLBrace, "{"}, {tokenReturn, "return"}, {tokenTrue, "true"}, {tokenSemicolon, ";"}, {tokenRBrace, "}"},
		{tokenElse, "else"},
		{tokenLBrace, "{"}, {tokenReturn, "return"}, {tokenFalse, "false"}, {tokenSemicolon, ";"}, {tokenRBrace, "}"},
		{tokenInt, "10"}, {tokenEQ, "=="}, {tokenInt, "10"}, {tokenSemicolon, ";"},
		{tokenInt, "10"}, {tokenNotEQ, "!="}, {tokenInt, "9"}, {tokenSemicolon, ";"},
		{tokenString, "foobar"}, {tokenString, "foo bar"}, {tokenString, ""}, {tokenSemicolon, ";"},
		{tokenLBracket, "["}, {tokenInt, "1"}, {tokenComma, ","}, {tokenInt, "2"}, {tokenRBracket, "]"}, {tokenSemicolon, ";"},
		{tokenEOF, ""},
	}

	l := NewLexer(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.typ || tok.Literal != tt.literal {
			t.Fatalf("tests[%d]: expected %s %q, got %s %q", i, tt.typ, tt.literal, tok.Type, tok.Literal)
		}
	}
}

func TestLexerIllegalTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "unknown punctuation",
			input: "#$%&",
			want: []Token{
				{Type: tokenIllegal, Literal: "#"},
				{Type: tokenIllegal, Literal: "$"},
				{Type: tokenIllegal, Literal: "%"},
				{Type: tokenIllegal, Literal: "&"},
			},
		},
		{
			name:  "leading zero",
			input: "0123 00 0",
			want: []Token{
				{Type: tokenIllegal, Literal: "0123"},
				{Type: tokenIllegal, Literal: "00"},
				{Type: tokenInt, Literal: "0"},
			},
		},
		{
			name:  "digits followed by letters",
			input: "1abc abc1",
			want: []Token{
				{Type: tokenIllegal, Literal: "1abc"},
				{Type: tokenIdent, Literal: "abc1"},
			},
		},
		{
			name:  "unterminated string",
			input: `"abc`,
			want: []Token{
				{Type: tokenIllegal, Literal: "unterminated string"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLexer(tt.input)
			for i, want := range tt.want {
				got := l.NextToken()
				if !got.Equal(want) {
					t.Fatalf("token %d: expected %s, got %s", i, want, got)
				}
			}
			if tok := l.NextToken(); !tok.IsEOF() {
				t.Fatalf("expected EOF, got %s", tok)
			}
		})
	}
}

func TestLexerRepeatsEOF(t *testing.T) {
	l := NewLexer("x")
	if tok := l.NextToken(); tok.Type != tokenIdent {
		t.Fatalf("expected IDENT, got %s", tok)
	}
	for i := 0; i < 3; i++ {
		tok := l.NextToken()
		if !tok.IsEOF() || tok.Literal != "" {
			t.Fatalf("call %d: expected EOF, got %s", i, tok)
		}
	}
}

func TestLexerStringEscapes(t *testing.T) {
	l := NewLexer(`"a\"b\\c\nd\te"`)
	tok := l.NextToken()
	if tok.Type != tokenString {
		t.Fatalf("expected STRING, got %s", tok)
	}
	if tok.Literal != "a\"b\\c\nd\te" {
		t.Fatalf("unexpected literal %q", tok.Literal)
	}
}

func TestLexerUnicodeIdentifiers(t *testing.T) {
	l := NewLexer("let größe = 1;")
	l.NextToken()
	tok := l.NextToken()
	if tok.Type != tokenIdent || tok.Literal != "größe" {
		t.Fatalf("expected IDENT größe, got %s", tok)
	}
}

func TestLexerPositions(t *testing.T) {
	l := NewLexer("let x\n  = 5;")
	want := []Position{{1, 1}, {1, 5}, {2, 3}, {2, 5}, {2, 6}}
	for i, pos := range want {
		tok := l.NextToken()
		if tok.Pos != pos {
			t.Fatalf("token %d (%s): expected %d:%d, got %d:%d", i, tok, pos.Line, pos.Column, tok.Pos.Line, tok.Pos.Column)
		}
	}
}
