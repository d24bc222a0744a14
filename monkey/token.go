package monkey

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenIdent  TokenType = "IDENT"
	tokenInt    TokenType = "INT"
	tokenString TokenType = "STRING"

	tokenAssign   TokenType = "="
	tokenPlus     TokenType = "+"
	tokenMinus    TokenType = "-"
	tokenBang     TokenType = "!"
	tokenAsterisk TokenType = "*"
	tokenSlash    TokenType = "/"
	tokenLT       TokenType = "<"
	tokenGT       TokenType = ">"
	tokenEQ       TokenType = "=="
	tokenNotEQ    TokenType = "!="

	tokenComma     TokenType = ","
	tokenSemicolon TokenType = ";"
	tokenLParen    TokenType = "("
	tokenRParen    TokenType = ")"
	tokenLBrace    TokenType = "{"
	tokenRBrace    TokenType = "}"
	tokenLBracket  TokenType = "["
	tokenRBracket  TokenType = "]"

	tokenFunction TokenType = "FUNCTION"
	tokenLet      TokenType = "LET"
	tokenTrue     TokenType = "TRUE"
	tokenFalse    TokenType = "FALSE"
	tokenIf       TokenType = "IF"
	tokenElse     TokenType = "ELSE"
	tokenReturn   TokenType = "RETURN"
)

var keywords = map[string]TokenType{
	"fn":     tokenFunction,
	"let":    tokenLet,
	"true":   tokenTrue,
	"false":  tokenFalse,
	"if":     tokenIf,
	"else":   tokenElse,
	"return": tokenReturn,
}

// Keywords returns the reserved words of the language.
func Keywords() []string {
	return []string{"fn", "let", "true", "false", "if", "else", "return"}
}

func lookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return tokenIdent
}

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Equal reports whether two tokens have the same type and literal.
// Positions are ignored.
func (t Token) Equal(other Token) bool {
	return t.Type == other.Type && t.Literal == other.Literal
}

// IsEOF reports whether the token marks the end of input.
func (t Token) IsEOF() bool { return t.Type == tokenEOF }

// IsIllegal reports whether the lexer rejected the token.
func (t Token) IsIllegal() bool { return t.Type == tokenIllegal }

func (t Token) String() string {
	return "{Type: " + string(t.Type) + ", Literal: " + t.Literal + "}"
}

// Position identifies a 1-based line and column in the source.
type Position struct {
	Line   int
	Column int
}
