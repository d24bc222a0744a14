package monkey

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dump writes an indented, brace-nested description of node and its
// children to w. It is meant for debugging the parser.
func Dump(w io.Writer, node Node) error {
	d := &dumper{}
	d.node("", node)
	_, err := io.WriteString(w, d.b.String())
	return err
}

// DumpString is Dump into a string.
func DumpString(node Node) string {
	var b strings.Builder
	_ = Dump(&b, node)
	return b.String()
}

type dumper struct {
	b     strings.Builder
	level int
}

func (d *dumper) line(format string, args ...any) {
	d.b.WriteString(strings.Repeat("  ", d.level))
	fmt.Fprintf(&d.b, format, args...)
	d.b.WriteByte('\n')
}

func (d *dumper) open(label, kind string) {
	if label != "" {
		d.line("%s: %s {", label, kind)
	} else {
		d.line("%s {", kind)
	}
	d.level++
}

func (d *dumper) close() {
	d.level--
	d.line("}")
}

func (d *dumper) field(label, value string) {
	if label == "" {
		d.line("%s", value)
		return
	}
	d.line("%s: %s", label, value)
}

func (d *dumper) node(label string, node Node) {
	switch n := node.(type) {
	case nil:
		d.field(label, "<nil>")
	case *Program:
		d.open(label, "Program")
		d.statements(n.Statements)
		d.close()
	case *LetStatement:
		d.open(label, "LetStatement")
		d.node("Name", n.Name)
		d.expr("Value", n.Value)
		d.close()
	case *ReturnStatement:
		d.open(label, "ReturnStatement")
		d.expr("ReturnValue", n.ReturnValue)
		d.close()
	case *ExpressionStatement:
		d.open(label, "ExpressionStatement")
		d.expr("Expression", n.Expression)
		d.close()
	case *BlockStatement:
		d.block(label, n)
	case *Identifier:
		d.open(label, "Identifier")
		d.field("Value", n.Value)
		d.close()
	case *IntegerLiteral:
		d.open(label, "IntegerLiteral")
		d.field("Value", strconv.FormatInt(n.Value, 10))
		d.close()
	case *StringLiteral:
		d.open(label, "StringLiteral")
		d.field("Value", quoteString(n.Value))
		d.close()
	case *BooleanLiteral:
		d.open(label, "BooleanLiteral")
		d.field("Value", strconv.FormatBool(n.Value))
		d.close()
	case *PrefixExpression:
		d.open(label, "PrefixExpression")
		d.field("Operator", n.Operator)
		d.expr("Right", n.Right)
		d.close()
	case *InfixExpression:
		d.open(label, "InfixExpression")
		d.expr("Left", n.Left)
		d.field("Operator", n.Operator)
		d.expr("Right", n.Right)
		d.close()
	case *IfExpression:
		d.open(label, "IfExpression")
		d.expr("Condition", n.Condition)
		d.block("Consequence", n.Consequence)
		if n.Alternative != nil {
			d.block("Alternative", n.Alternative)
		}
		d.close()
	case *FunctionLiteral:
		d.open(label, "FunctionLiteral")
		names := make([]string, len(n.Parameters))
		for i, p := range n.Parameters {
			names[i] = p.Value
		}
		d.field("Parameters", "["+strings.Join(names, ", ")+"]")
		d.block("Body", n.Body)
		d.close()
	case *CallExpression:
		d.open(label, "CallExpression")
		d.expr("Function", n.Function)
		d.list("Arguments", n.Arguments)
		d.close()
	case *ArrayLiteral:
		d.open(label, "ArrayLiteral")
		d.list("Elements", n.Elements)
		d.close()
	case *IndexExpression:
		d.open(label, "IndexExpression")
		d.expr("Left", n.Left)
		d.expr("Index", n.Index)
		d.close()
	default:
		d.field(label, fmt.Sprintf("%T", node))
	}
}

// expr guards against typed nil interfaces left behind by failed parses.
func (d *dumper) expr(label string, expr Expression) {
	if expr == nil {
		d.field(label, "<nil>")
		return
	}
	d.node(label, expr)
}

func (d *dumper) block(label string, block *BlockStatement) {
	if block == nil {
		d.field(label, "<nil>")
		return
	}
	d.open(label, "BlockStatement")
	d.statements(block.Statements)
	d.close()
}

func (d *dumper) statements(stmts []Statement) {
	for _, stmt := range stmts {
		d.node("", stmt)
	}
}

func (d *dumper) list(label string, exprs []Expression) {
	if len(exprs) == 0 {
		d.field(label, "[]")
		return
	}
	d.line("%s: [", label)
	d.level++
	for _, expr := range exprs {
		d.expr("", expr)
	}
	d.level--
	d.line("]")
}
