package monkey

import "strings"

// Node is implemented by every syntax tree node.
type Node interface {
	Pos() Position
	// TokenLiteral returns the literal of the token that introduced the node.
	TokenLiteral() string
	// String renders the node back as source text.
	String() string
}

type Statement interface {
	Node
	stmtNode()
}

type Expression interface {
	Node
	exprNode()
}

// Program is the root of every parsed source text.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() Position {
	if len(p.Statements) == 0 {
		return Position{}
	}
	return p.Statements[0].Pos()
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) == 0 {
		return ""
	}
	return p.Statements[0].TokenLiteral()
}

func (p *Program) String() string {
	lines := make([]string, len(p.Statements))
	for i, stmt := range p.Statements {
		lines[i] = terminated(stmt)
	}
	return strings.Join(lines, "\n")
}

type Identifier struct {
	Token Token
	Value string
}

func (e *Identifier) exprNode()            {}
func (e *Identifier) Pos() Position        { return e.Token.Pos }
func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) String() string       { return e.Value }

type IntegerLiteral struct {
	Token Token
	Value int64
}

func (e *IntegerLiteral) exprNode()            {}
func (e *IntegerLiteral) Pos() Position        { return e.Token.Pos }
func (e *IntegerLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *IntegerLiteral) String() string       { return e.Token.Literal }

type StringLiteral struct {
	Token Token
	Value string
}

func (e *StringLiteral) exprNode()            {}
func (e *StringLiteral) Pos() Position        { return e.Token.Pos }
func (e *StringLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *StringLiteral) String() string       { return quoteString(e.Value) }

type BooleanLiteral struct {
	Token Token
	Value bool
}

func (e *BooleanLiteral) exprNode()            {}
func (e *BooleanLiteral) Pos() Position        { return e.Token.Pos }
func (e *BooleanLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *BooleanLiteral) String() string       { return e.Token.Literal }

type PrefixExpression struct {
	Token    Token
	Operator string
	Right    Expression
}

func (e *PrefixExpression) exprNode()            {}
func (e *PrefixExpression) Pos() Position        { return e.Token.Pos }
func (e *PrefixExpression) TokenLiteral() string { return e.Token.Literal }
func (e *PrefixExpression) String() string {
	return "(" + e.Operator + e.Right.String() + ")"
}

type InfixExpression struct {
	Token    Token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *InfixExpression) exprNode()            {}
func (e *InfixExpression) Pos() Position        { return e.Token.Pos }
func (e *InfixExpression) TokenLiteral() string { return e.Token.Literal }
func (e *InfixExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// IfExpression evaluates to the value of the branch it takes. Alternative is
// nil when there is no else branch.
type IfExpression struct {
	Token       Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (e *IfExpression) exprNode()            {}
func (e *IfExpression) Pos() Position        { return e.Token.Pos }
func (e *IfExpression) TokenLiteral() string { return e.Token.Literal }
func (e *IfExpression) String() string {
	var b strings.Builder
	b.WriteString("if (")
	b.WriteString(e.Condition.String())
	b.WriteString(") ")
	b.WriteString(e.Consequence.String())
	if e.Alternative != nil {
		b.WriteString(" else ")
		b.WriteString(e.Alternative.String())
	}
	return b.String()
}

type FunctionLiteral struct {
	Token      Token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (e *FunctionLiteral) exprNode()            {}
func (e *FunctionLiteral) Pos() Position        { return e.Token.Pos }
func (e *FunctionLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *FunctionLiteral) String() string {
	return "fn(" + joinIdentifiers(e.Parameters) + ") " + e.Body.String()
}

type CallExpression struct {
	Token     Token
	Function  Expression
	Arguments []Expression
}

func (e *CallExpression) exprNode()            {}
func (e *CallExpression) Pos() Position        { return e.Token.Pos }
func (e *CallExpression) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpression) String() string {
	return e.Function.String() + "(" + joinExpressions(e.Arguments) + ")"
}

type ArrayLiteral struct {
	Token    Token
	Elements []Expression
}

func (e *ArrayLiteral) exprNode()            {}
func (e *ArrayLiteral) Pos() Position        { return e.Token.Pos }
func (e *ArrayLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *ArrayLiteral) String() string       { return "[" + joinExpressions(e.Elements) + "]" }

type IndexExpression struct {
	Token Token
	Left  Expression
	Index Expression
}

func (e *IndexExpression) exprNode()            {}
func (e *IndexExpression) Pos() Position        { return e.Token.Pos }
func (e *IndexExpression) TokenLiteral() string { return e.Token.Literal }
func (e *IndexExpression) String() string {
	return "(" + e.Left.String() + "[" + e.Index.String() + "])"
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, expr := range exprs {
		parts[i] = expr.String()
	}
	return strings.Join(parts, ", ")
}

func joinIdentifiers(idents []*Identifier) string {
	parts := make([]string, len(idents))
	for i, ident := range idents {
		parts[i] = ident.Value
	}
	return strings.Join(parts, ", ")
}

// quoteString renders s using only the escapes the lexer understands.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
