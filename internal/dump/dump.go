// Package dump encodes syntax trees as YAML or JSON documents for tooling
// that does not link against the ast package.
package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/grasslang/grass/ast"
)

// Tree is the serializable form of one node. Role names the slot the node
// fills in its parent, such as "left" or "condition".
type Tree struct {
	Kind      string  `yaml:"kind" json:"kind"`
	Role      string  `yaml:"role,omitempty" json:"role,omitempty"`
	Pos       string  `yaml:"pos,omitempty" json:"pos,omitempty"`
	Value     string  `yaml:"value,omitempty" json:"value,omitempty"`
	Anonymous bool    `yaml:"anonymous,omitempty" json:"anonymous,omitempty"`
	Children  []*Tree `yaml:"children,omitempty" json:"children,omitempty"`
}

// FromAst converts every top-level statement.
func FromAst(a *ast.Ast) []*Tree {
	trees := make([]*Tree, 0, len(a.Statements))
	for _, stmt := range a.Statements {
		trees = append(trees, FromNode(stmt, ""))
	}
	return trees
}

// FromNode converts node and its subtree. A nil node yields nil.
func FromNode(node ast.Node, role string) *Tree {
	if node == nil {
		return nil
	}
	tree := &Tree{Kind: node.Kind().String(), Role: role}
	if pos := node.Pos(); pos.IsValid() {
		tree.Pos = pos.String()
	}

	switch n := node.(type) {
	case *ast.ExpressionStatement:
		tree.add(n.Expression, "expression")
	case *ast.LetStatement:
		if n.Definition != nil {
			tree.add(n.Definition, "definition")
		}
	case *ast.ReturnStatement:
		tree.add(n.Value, "value")
	case *ast.ImportStatement:
		tree.add(n.Target, "target")
	case *ast.BlockStatement:
		for _, stmt := range n.Statements {
			tree.add(stmt, "")
		}

	case *ast.Identifier:
		tree.Value = n.Value
	case *ast.StringLiteral:
		tree.Value = strconv.Quote(n.Value)
	case *ast.NumberLiteral:
		tree.Value = n.Value
	case *ast.BooleanLiteral:
		tree.Value = strconv.FormatBool(n.Value)
	case *ast.InternalCode:
		tree.Value = n.Value

	case *ast.PrefixExpression:
		tree.Value = n.Operator.Lexeme
		tree.add(n.Right, "right")
	case *ast.InfixExpression:
		tree.Value = n.Operator.Lexeme
		tree.add(n.Left, "left")
		tree.add(n.Right, "right")
	case *ast.PathExpression:
		for _, seg := range n.Path {
			tree.add(seg, "segment")
		}
	case *ast.CallExpression:
		if n.Function != nil {
			tree.add(n.Function, "function")
		}
		for _, arg := range n.Arguments {
			tree.add(arg, "argument")
		}
	case *ast.DefinitionExpression:
		if n.Name != nil {
			tree.add(n.Name, "name")
		}
		tree.add(n.Type, "type")
		tree.add(n.Value, "value")
	case *ast.AssignExpression:
		tree.add(n.Target, "target")
		tree.add(n.Value, "value")
	case *ast.SubscriptExpression:
		tree.add(n.Body, "body")
		tree.add(n.Index, "index")
	case *ast.FunctionLiteral:
		tree.Anonymous = n.Anonymous
		if n.Name != nil {
			tree.add(n.Name, "name")
		}
		for _, param := range n.Parameters {
			tree.add(param, "parameter")
		}
		tree.add(n.ReturnType, "return_type")
		if n.Body != nil {
			tree.add(n.Body, "body")
		}
	case *ast.IfExpression:
		tree.add(n.Condition, "condition")
		if n.Consequence != nil {
			tree.add(n.Consequence, "consequence")
		}
		if n.Alternative != nil {
			tree.add(n.Alternative, "alternative")
		}
	case *ast.WhileExpression:
		tree.add(n.Condition, "condition")
		if n.Consequence != nil {
			tree.add(n.Consequence, "consequence")
		}
	case *ast.LoopExpression:
		if n.Body != nil {
			tree.add(n.Body, "body")
		}
	case *ast.ClassLiteral:
		if n.Name != nil {
			tree.add(n.Name, "name")
		}
		tree.add(n.Base, "base")
		if n.Body != nil {
			tree.add(n.Body, "body")
		}
	case *ast.NewExpression:
		tree.add(n.Constructor, "constructor")
	}
	return tree
}

func (tree *Tree) add(node ast.Node, role string) {
	if child := FromNode(node, role); child != nil {
		tree.Children = append(tree.Children, child)
	}
}

// YAML encodes the program as a YAML sequence of statements.
func YAML(a *ast.Ast) ([]byte, error) {
	return yaml.Marshal(FromAst(a))
}

// JSON encodes the program as an indented JSON array of statements.
func JSON(a *ast.Ast) ([]byte, error) {
	return json.MarshalIndent(FromAst(a), "", "  ")
}

// Write encodes a in the named format ("yaml" or "json") to w.
func Write(w io.Writer, a *ast.Ast, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml":
		data, err = YAML(a)
	case "json":
		data, err = JSON(a)
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported dump format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

// ReadYAML decodes a document written by YAML.
func ReadYAML(data []byte) ([]*Tree, error) {
	var trees []*Tree
	if err := yaml.Unmarshal(data, &trees); err != nil {
		return nil, err
	}
	return trees, nil
}

// Diff describes the first difference between two statement lists, naming
// the node by its path from the statement. It returns "" when they match.
func Diff(want, got []*Tree) string {
	if len(want) != len(got) {
		return fmt.Sprintf("want %d statements, got %d", len(want), len(got))
	}
	for i := range want {
		if d := diffTree(want[i], got[i], "statement "+strconv.Itoa(i+1)); d != "" {
			return d
		}
	}
	return ""
}

func diffTree(want, got *Tree, path string) string {
	if want == nil || got == nil {
		if want != got {
			return path + ": node missing"
		}
		return ""
	}
	field := func(name, w, g string) string {
		return fmt.Sprintf("%s: %s %q, got %q", path, name, w, g)
	}
	switch {
	case want.Kind != got.Kind:
		return field("kind", want.Kind, got.Kind)
	case want.Role != got.Role:
		return field("role", want.Role, got.Role)
	case want.Value != got.Value:
		return field("value", want.Value, got.Value)
	case want.Pos != got.Pos:
		return field("pos", want.Pos, got.Pos)
	case want.Anonymous != got.Anonymous:
		return field("anonymous", strconv.FormatBool(want.Anonymous), strconv.FormatBool(got.Anonymous))
	case len(want.Children) != len(got.Children):
		return fmt.Sprintf("%s: want %d children, got %d", path, len(want.Children), len(got.Children))
	}
	for i, w := range want.Children {
		g := got.Children[i]
		label := path + " > "
		if w != nil {
			label += w.Kind
		}
		if d := diffTree(w, g, label); d != "" {
			return d
		}
	}
	return ""
}
