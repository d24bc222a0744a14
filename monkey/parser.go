package monkey

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

type parser struct {
	l *Lexer

	curToken  Token
	peekToken Token

	errors []error

	prefixFns map[TokenType]prefixParseFn
	infixFns  map[TokenType]infixParseFn
}

func newParser(input string) *parser {
	p := &parser{l: NewLexer(input)}

	p.prefixFns = make(map[TokenType]prefixParseFn)
	p.infixFns = make(map[TokenType]infixParseFn)

	p.registerPrefix(tokenIdent, p.parseIdentifier)
	p.registerPrefix(tokenInt, p.parseIntegerLiteral)
	p.registerPrefix(tokenString, p.parseStringLiteral)
	p.registerPrefix(tokenTrue, p.parseBooleanLiteral)
	p.registerPrefix(tokenFalse, p.parseBooleanLiteral)
	p.registerPrefix(tokenBang, p.parsePrefixExpression)
	p.registerPrefix(tokenMinus, p.parsePrefixExpression)
	p.registerPrefix(tokenLParen, p.parseGroupedExpression)
	p.registerPrefix(tokenIf, p.parseIfExpression)
	p.registerPrefix(tokenFunction, p.parseFunctionLiteral)
	p.registerPrefix(tokenLBracket, p.parseArrayLiteral)

	p.registerInfix(tokenPlus, p.parseInfixExpression)
	p.registerInfix(tokenMinus, p.parseInfixExpression)
	p.registerInfix(tokenAsterisk, p.parseInfixExpression)
	p.registerInfix(tokenSlash, p.parseInfixExpression)
	p.registerInfix(tokenEQ, p.parseInfixExpression)
	p.registerInfix(tokenNotEQ, p.parseInfixExpression)
	p.registerInfix(tokenLT, p.parseInfixExpression)
	p.registerInfix(tokenGT, p.parseInfixExpression)
	p.registerInfix(tokenLParen, p.parseCallExpression)
	p.registerInfix(tokenLBracket, p.parseIndexExpression)

	p.nextToken()
	p.nextToken()

	return p
}

// Parse parses input into a program. A non-nil error is always a
// ParseErrors holding every diagnostic found; the returned program then
// contains the statements that did parse.
func Parse(input string) (*Program, error) {
	program, errs := newParser(input).parseProgram()
	if len(errs) > 0 {
		return program, ParseErrors(errs)
	}
	return program, nil
}

func (p *parser) registerPrefix(tt TokenType, fn prefixParseFn) {
	p.prefixFns[tt] = fn
}

func (p *parser) registerInfix(tt TokenType, fn infixParseFn) {
	p.infixFns[tt] = fn
}

func (p *parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *parser) curTokenIs(tt TokenType) bool {
	return p.curToken.Type == tt
}

func (p *parser) peekTokenIs(tt TokenType) bool {
	return p.peekToken.Type == tt
}

func (p *parser) expectPeek(tt TokenType) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.errorPeek(tt)
	return false
}

// parseProgram parses statements until EOF. Statements that fail to parse
// are dropped and parsing resumes at the following token.
func (p *parser) parseProgram() (*Program, []error) {
	program := &Program{Statements: []Statement{}}

	for !p.curTokenIs(tokenEOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program, p.errors
}
