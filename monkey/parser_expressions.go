package monkey

import "strconv"

// parseExpression is the Pratt loop. Operators of equal precedence bind to
// the left because the loop only continues on a strictly higher precedence.
func (p *parser) parseExpression(precedence int) Expression {
	prefix := p.prefixFns[p.curToken.Type]
	if prefix == nil {
		p.errorNoPrefix(p.curToken)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(tokenSemicolon) && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *parser) parseIdentifier() Expression {
	return &Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *parser) parseIntegerLiteral() Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorInteger(p.curToken)
		return nil
	}
	return &IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *parser) parseStringLiteral() Expression {
	return &StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *parser) parseBooleanLiteral() Expression {
	return &BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(tokenTrue)}
}

func (p *parser) parsePrefixExpression() Expression {
	expr := &PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(precPrefix)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *parser) parseInfixExpression(left Expression) Expression {
	expr := &InfixExpression{Token: p.curToken, Operator: p.curToken.Literal, Left: left}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *parser) parseGroupedExpression() Expression {
	p.nextToken()
	expr := p.parseExpression(lowestPrec)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}
	return expr
}

func (p *parser) parseIfExpression() Expression {
	expr := &IfExpression{Token: p.curToken}

	if !p.expectPeek(tokenLParen) {
		return nil
	}
	p.nextToken()
	expr.Condition = p.parseExpression(lowestPrec)
	if expr.Condition == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}

	if !p.expectPeek(tokenLBrace) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()
	if expr.Consequence == nil {
		return nil
	}

	if p.peekTokenIs(tokenElse) {
		p.nextToken()
		if !p.expectPeek(tokenLBrace) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
		if expr.Alternative == nil {
			return nil
		}
	}

	return expr
}

func (p *parser) parseFunctionLiteral() Expression {
	fn := &FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(tokenLParen) {
		return nil
	}
	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}
	fn.Parameters = params

	if !p.expectPeek(tokenLBrace) {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	if fn.Body == nil {
		return nil
	}
	return fn
}

func (p *parser) parseFunctionParameters() ([]*Identifier, bool) {
	params := []*Identifier{}

	if p.peekTokenIs(tokenRParen) {
		p.nextToken()
		return params, true
	}

	p.nextToken()
	param, ok := p.parseParameter()
	if !ok {
		return nil, false
	}
	params = append(params, param)

	for p.peekTokenIs(tokenComma) {
		p.nextToken()
		p.nextToken()
		param, ok := p.parseParameter()
		if !ok {
			return nil, false
		}
		params = append(params, param)
	}

	if !p.expectPeek(tokenRParen) {
		return nil, false
	}
	return params, true
}

func (p *parser) parseParameter() (*Identifier, bool) {
	if !p.curTokenIs(tokenIdent) {
		p.errorParameter(p.curToken)
		return nil, false
	}
	return &Identifier{Token: p.curToken, Value: p.curToken.Literal}, true
}

func (p *parser) parseCallExpression(function Expression) Expression {
	expr := &CallExpression{Token: p.curToken, Function: function}
	args, ok := p.parseExpressionList(tokenRParen)
	if !ok {
		return nil
	}
	expr.Arguments = args
	return expr
}

func (p *parser) parseArrayLiteral() Expression {
	array := &ArrayLiteral{Token: p.curToken}
	elements, ok := p.parseExpressionList(tokenRBracket)
	if !ok {
		return nil
	}
	array.Elements = elements
	return array
}

func (p *parser) parseIndexExpression(left Expression) Expression {
	expr := &IndexExpression{Token: p.curToken, Left: left}

	p.nextToken()
	expr.Index = p.parseExpression(lowestPrec)
	if expr.Index == nil {
		return nil
	}
	if !p.expectPeek(tokenRBracket) {
		return nil
	}
	return expr
}

// parseExpressionList parses a comma-separated list closed by end. The
// opening delimiter is the current token.
func (p *parser) parseExpressionList(end TokenType) ([]Expression, bool) {
	list := []Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list, true
	}

	p.nextToken()
	first := p.parseExpression(lowestPrec)
	if first == nil {
		return nil, false
	}
	list = append(list, first)

	for p.peekTokenIs(tokenComma) {
		p.nextToken()
		p.nextToken()
		next := p.parseExpression(lowestPrec)
		if next == nil {
			return nil, false
		}
		list = append(list, next)
	}

	if !p.expectPeek(end) {
		return nil, false
	}
	return list, true
}
