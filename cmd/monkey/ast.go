package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/LeonSteinbach/monkeylang/monkey"
)

func astCommand(args []string) error {
	fs := flag.NewFlagSet("ast", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	format := fs.String("format", "text", "output format: text or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, input, err := readScript("ast", fs.Args())
	if err != nil {
		return err
	}
	program, err := monkey.Parse(input)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	switch *format {
	case "text":
		return monkey.Dump(os.Stdout, program)
	case "yaml":
		return writeASTYAML(os.Stdout, program)
	default:
		return fmt.Errorf("monkey ast: unknown format %q", *format)
	}
}

func writeASTYAML(w io.Writer, program *monkey.Program) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(astYAMLNode(program)); err != nil {
		_ = enc.Close()
		return fmt.Errorf("encode ast: %w", err)
	}
	return enc.Close()
}

// astYAMLNode mirrors the syntax tree as a YAML mapping. Each node carries a
// "node" key naming its type, followed by its fields in source order.
func astYAMLNode(node monkey.Node) *yaml.Node {
	switch n := node.(type) {
	case nil:
		return nullYAML()
	case *monkey.Program:
		return mappingYAML("Program", field("statements", statementsYAML(n.Statements)))
	case *monkey.LetStatement:
		return mappingYAML("LetStatement", field("name", scalarYAML(n.Name.Value)), field("value", exprYAML(n.Value)))
	case *monkey.ReturnStatement:
		return mappingYAML("ReturnStatement", field("value", exprYAML(n.ReturnValue)))
	case *monkey.ExpressionStatement:
		return mappingYAML("ExpressionStatement", field("expression", exprYAML(n.Expression)))
	case *monkey.BlockStatement:
		return blockYAML(n)
	case *monkey.Identifier:
		return mappingYAML("Identifier", field("value", scalarYAML(n.Value)))
	case *monkey.IntegerLiteral:
		return mappingYAML("IntegerLiteral", field("value", taggedYAML("!!int", strconv.FormatInt(n.Value, 10))))
	case *monkey.StringLiteral:
		return mappingYAML("StringLiteral", field("value", taggedYAML("!!str", n.Value)))
	case *monkey.BooleanLiteral:
		return mappingYAML("BooleanLiteral", field("value", taggedYAML("!!bool", strconv.FormatBool(n.Value))))
	case *monkey.PrefixExpression:
		return mappingYAML("PrefixExpression", field("operator", taggedYAML("!!str", n.Operator)), field("right", exprYAML(n.Right)))
	case *monkey.InfixExpression:
		return mappingYAML("InfixExpression",
			field("left", exprYAML(n.Left)),
			field("operator", taggedYAML("!!str", n.Operator)),
			field("right", exprYAML(n.Right)))
	case *monkey.IfExpression:
		return mappingYAML("IfExpression",
			field("condition", exprYAML(n.Condition)),
			field("consequence", blockYAML(n.Consequence)),
			field("alternative", blockYAML(n.Alternative)))
	case *monkey.FunctionLiteral:
		params := sequenceYAML()
		params.Style = yaml.FlowStyle
		for _, p := range n.Parameters {
			params.Content = append(params.Content, scalarYAML(p.Value))
		}
		return mappingYAML("FunctionLiteral", field("parameters", params), field("body", blockYAML(n.Body)))
	case *monkey.CallExpression:
		return mappingYAML("CallExpression", field("function", exprYAML(n.Function)), field("arguments", expressionsYAML(n.Arguments)))
	case *monkey.ArrayLiteral:
		return mappingYAML("ArrayLiteral", field("elements", expressionsYAML(n.Elements)))
	case *monkey.IndexExpression:
		return mappingYAML("IndexExpression", field("left", exprYAML(n.Left)), field("index", exprYAML(n.Index)))
	default:
		return scalarYAML(fmt.Sprintf("%T", node))
	}
}

func exprYAML(expr monkey.Expression) *yaml.Node {
	if expr == nil {
		return nullYAML()
	}
	return astYAMLNode(expr)
}

func blockYAML(block *monkey.BlockStatement) *yaml.Node {
	if block == nil {
		return nullYAML()
	}
	return mappingYAML("BlockStatement", field("statements", statementsYAML(block.Statements)))
}

func statementsYAML(stmts []monkey.Statement) *yaml.Node {
	seq := sequenceYAML()
	for _, stmt := range stmts {
		seq.Content = append(seq.Content, astYAMLNode(stmt))
	}
	return seq
}

func expressionsYAML(exprs []monkey.Expression) *yaml.Node {
	seq := sequenceYAML()
	for _, expr := range exprs {
		seq.Content = append(seq.Content, exprYAML(expr))
	}
	return seq
}

type yamlField struct {
	key   string
	value *yaml.Node
}

func field(key string, value *yaml.Node) yamlField {
	return yamlField{key: key, value: value}
}

func mappingYAML(kind string, fields ...yamlField) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	m.Content = append(m.Content, scalarYAML("node"), scalarYAML(kind))
	for _, f := range fields {
		m.Content = append(m.Content, scalarYAML(f.key), f.value)
	}
	return m
}

func sequenceYAML() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func scalarYAML(value string) *yaml.Node {
	return taggedYAML("!!str", value)
}

func taggedYAML(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func nullYAML() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
