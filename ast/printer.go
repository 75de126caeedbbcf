package ast

import (
	"strconv"
	"strings"
)

// Printer renders nodes as S-expressions, e.g. `1 + 2 * 3` prints as
// (+ 1 (* 2 3)). The form is stable and is what tests and the command line
// tool compare against.
type Printer struct{}

// Print renders a single node.
func (printer *Printer) Print(node Node) string {
	var sb strings.Builder
	printer.write(&sb, node)
	return sb.String()
}

// PrintAst renders each top-level statement on its own line.
func (printer *Printer) PrintAst(a *Ast) string {
	var sb strings.Builder
	for _, stmt := range a.Statements {
		printer.write(&sb, stmt)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (printer *Printer) write(sb *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		sb.WriteString("nil")
	case *ExpressionStatement:
		printer.write(sb, n.Expression)
	case *LetStatement:
		printer.list(sb, "let", n.Definition)
	case *ReturnStatement:
		if n.Value == nil {
			sb.WriteString("(return)")
		} else {
			printer.list(sb, "return", n.Value)
		}
	case *ImportStatement:
		printer.list(sb, "import", n.Target)
	case *BlockStatement:
		nodes := make([]Node, len(n.Statements))
		for i, stmt := range n.Statements {
			nodes[i] = stmt
		}
		printer.list(sb, "block", nodes...)

	case *Identifier:
		sb.WriteString(n.Value)
	case *StringLiteral:
		sb.WriteString(strconv.Quote(n.Value))
	case *NumberLiteral:
		sb.WriteString(n.Value)
	case *BooleanLiteral:
		sb.WriteString(strconv.FormatBool(n.Value))
	case *InternalCode:
		sb.WriteString("(internal " + strconv.Quote(n.Value) + ")")

	case *PrefixExpression:
		printer.list(sb, n.Operator.Lexeme, n.Right)
	case *InfixExpression:
		printer.list(sb, n.Operator.Lexeme, n.Left, n.Right)
	case *PathExpression:
		printer.list(sb, "path", expressionNodes(n.Path)...)
	case *CallExpression:
		printer.list(sb, "call", append([]Node{n.Function}, expressionNodes(n.Arguments)...)...)
	case *DefinitionExpression:
		if n.Value == nil {
			printer.list(sb, "def", n.Name, n.Type)
		} else {
			printer.list(sb, "def", n.Name, n.Type, n.Value)
		}
	case *AssignExpression:
		printer.list(sb, "=", n.Target, n.Value)
	case *SubscriptExpression:
		printer.list(sb, "index", n.Body, n.Index)
	case *FunctionLiteral:
		sb.WriteString("(fn ")
		if n.Anonymous || n.Name == nil {
			sb.WriteString("_")
		} else {
			sb.WriteString(n.Name.Value)
		}
		params := make([]Node, len(n.Parameters))
		for i, p := range n.Parameters {
			params[i] = p
		}
		sb.WriteByte(' ')
		printer.list(sb, "params", params...)
		sb.WriteByte(' ')
		printer.write(sb, n.ReturnType)
		sb.WriteByte(' ')
		printer.write(sb, n.Body)
		sb.WriteByte(')')
	case *IfExpression:
		if n.Alternative == nil {
			printer.list(sb, "if", n.Condition, n.Consequence)
		} else {
			printer.list(sb, "if", n.Condition, n.Consequence, n.Alternative)
		}
	case *WhileExpression:
		printer.list(sb, "while", n.Condition, n.Consequence)
	case *LoopExpression:
		printer.list(sb, "loop", n.Body)
	case *ClassLiteral:
		if n.Base == nil {
			printer.list(sb, "class", n.Name, n.Body)
		} else {
			printer.list(sb, "class", n.Name, n.Base, n.Body)
		}
	case *NewExpression:
		printer.list(sb, "new", n.Constructor)
	default:
		sb.WriteString("(?)")
	}
}

func (printer *Printer) list(sb *strings.Builder, head string, nodes ...Node) {
	sb.WriteByte('(')
	sb.WriteString(head)
	for _, node := range nodes {
		sb.WriteByte(' ')
		printer.write(sb, node)
	}
	sb.WriteByte(')')
}

func expressionNodes(exprs []Expression) []Node {
	nodes := make([]Node, len(exprs))
	for i, e := range exprs {
		nodes[i] = e
	}
	return nodes
}
