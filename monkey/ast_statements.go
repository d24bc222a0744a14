package monkey

import "strings"

// LetStatement binds Name in the current scope.
type LetStatement struct {
	Token Token
	Name  *Identifier
	Value Expression
}

func (s *LetStatement) stmtNode()            {}
func (s *LetStatement) Pos() Position        { return s.Token.Pos }
func (s *LetStatement) TokenLiteral() string { return s.Token.Literal }
func (s *LetStatement) String() string {
	return "let " + s.Name.String() + " = " + s.Value.String() + ";"
}

// ReturnStatement carries a nil ReturnValue for a bare `return;`.
type ReturnStatement struct {
	Token       Token
	ReturnValue Expression
}

func (s *ReturnStatement) stmtNode()            {}
func (s *ReturnStatement) Pos() Position        { return s.Token.Pos }
func (s *ReturnStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ReturnStatement) String() string {
	if s.ReturnValue == nil {
		return "return;"
	}
	return "return " + s.ReturnValue.String() + ";"
}

type ExpressionStatement struct {
	Token      Token
	Expression Expression
}

func (s *ExpressionStatement) stmtNode()            {}
func (s *ExpressionStatement) Pos() Position        { return s.Token.Pos }
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) String() string       { return s.Expression.String() }

// BlockStatement is the braced body of an if branch or a function literal.
type BlockStatement struct {
	Token      Token
	Statements []Statement
}

func (s *BlockStatement) stmtNode()            {}
func (s *BlockStatement) Pos() Position        { return s.Token.Pos }
func (s *BlockStatement) TokenLiteral() string { return s.Token.Literal }
func (s *BlockStatement) String() string {
	if len(s.Statements) == 0 {
		return "{ }"
	}
	parts := make([]string, len(s.Statements))
	for i, stmt := range s.Statements {
		parts[i] = terminated(stmt)
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// terminated renders stmt so that it re-parses as a separate statement.
func terminated(stmt Statement) string {
	if es, ok := stmt.(*ExpressionStatement); ok {
		return es.String() + ";"
	}
	return stmt.String()
}
