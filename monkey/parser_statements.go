package monkey

func (p *parser) parseStatement() Statement {
	switch p.curToken.Type {
	case tokenLet:
		return p.parseLetStatement()
	case tokenReturn:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *parser) parseLetStatement() Statement {
	stmt := &LetStatement{Token: p.curToken}

	if !p.expectPeek(tokenIdent) {
		return nil
	}
	stmt.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(tokenAssign) {
		return nil
	}

	p.nextToken()
	stmt.Value = p.parseExpression(lowestPrec)
	if stmt.Value == nil {
		return nil
	}

	if p.peekTokenIs(tokenSemicolon) {
		p.nextToken()
	}
	return stmt
}

func (p *parser) parseReturnStatement() Statement {
	stmt := &ReturnStatement{Token: p.curToken}

	switch p.peekToken.Type {
	case tokenSemicolon:
		p.nextToken()
		return stmt
	case tokenRBrace, tokenEOF:
		return stmt
	}

	p.nextToken()
	stmt.ReturnValue = p.parseExpression(lowestPrec)
	if stmt.ReturnValue == nil {
		return nil
	}

	if p.peekTokenIs(tokenSemicolon) {
		p.nextToken()
	}
	return stmt
}

func (p *parser) parseExpressionStatement() Statement {
	stmt := &ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(lowestPrec)
	if stmt.Expression == nil {
		return nil
	}

	if p.peekTokenIs(tokenSemicolon) {
		p.nextToken()
	}
	return stmt
}

// parseBlockStatement expects the current token to be '{' and leaves the
// parser on the matching '}'.
func (p *parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Token: p.curToken, Statements: []Statement{}}

	p.nextToken()
	for !p.curTokenIs(tokenRBrace) {
		if p.curTokenIs(tokenEOF) {
			p.errorExpected(p.curToken, tokenRBrace)
			return nil
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}
