// ast_codegen writes the NodeKind enumeration of the ast package together with
// the Kind method of every node type.
//
//	go run ./internal/cmd/ast_codegen ast/kind.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type nodeGroup struct {
	name  string
	nodes []string
}

// Order matters: the numeric values of NodeKind follow this list.
var nodeGroups = []nodeGroup{
	{
		name: "Statement",
		nodes: []string{
			"ExpressionStatement",
			"LetStatement",
			"ReturnStatement",
			"ImportStatement",
			"BlockStatement",
		},
	},
	{
		name: "Expression",
		nodes: []string{
			"Identifier",
			"StringLiteral",
			"NumberLiteral",
			"BooleanLiteral",
			"InternalCode",
			"PrefixExpression",
			"InfixExpression",
			"PathExpression",
			"CallExpression",
			"DefinitionExpression",
			"AssignExpression",
			"SubscriptExpression",
			"FunctionLiteral",
			"IfExpression",
			"WhileExpression",
			"LoopExpression",
			"ClassLiteral",
			"NewExpression",
		},
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast_codegen <output file>")
		os.Exit(64)
	}
	if err := generateFile(os.Args[1], nodeGroups); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generateFile(outputFile string, groups []nodeGroup) error {
	abs, err := filepath.Abs(outputFile)
	if err != nil {
		return err
	}
	packageName := filepath.Base(filepath.Dir(abs))

	var buf bytes.Buffer
	if err := generate(&buf, packageName, groups); err != nil {
		return err
	}
	return os.WriteFile(outputFile, buf.Bytes(), 0o644)
}

// generate writes gofmt-ed source for the given groups to w.
func generate(w io.Writer, packageName string, groups []nodeGroup) error {
	var src bytes.Buffer
	fmt.Fprintf(&src, "// Code generated by ast_codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&src, "package %s\n\n", packageName)

	defineKinds(&src, groups)
	defineNames(&src, groups)
	definePredicates(&src, groups)
	defineMethods(&src, groups)

	formatted, err := format.Source(src.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	_, err = w.Write(formatted)
	return err
}

func defineKinds(w io.Writer, groups []nodeGroup) {
	fmt.Fprintf(w, "// NodeKind identifies the concrete shape of a node.\n")
	fmt.Fprintf(w, "type NodeKind uint8\n\n")
	fmt.Fprintf(w, "const (\n")
	fmt.Fprintf(w, "\tInvalidNode NodeKind = iota\n\n")
	for _, g := range groups {
		for _, n := range g.nodes {
			fmt.Fprintf(w, "\t%sNode\n", n)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\tnodeKindCount\n")
	fmt.Fprintf(w, ")\n\n")
}

func defineNames(w io.Writer, groups []nodeGroup) {
	fmt.Fprintf(w, "var nodeKindNames = [nodeKindCount]string{\n")
	fmt.Fprintf(w, "\tInvalidNode: %q,\n", "Invalid")
	for _, g := range groups {
		for _, n := range g.nodes {
			fmt.Fprintf(w, "\t%sNode: %q,\n", n, n)
		}
	}
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "func (k NodeKind) String() string {\n")
	fmt.Fprintf(w, "\tif k < nodeKindCount {\n")
	fmt.Fprintf(w, "\t\treturn nodeKindNames[k]\n")
	fmt.Fprintf(w, "\t}\n")
	fmt.Fprintf(w, "\treturn nodeKindNames[InvalidNode]\n")
	fmt.Fprintf(w, "}\n\n")
}

// Each group occupies a contiguous range of kinds, so membership is a range check.
func definePredicates(w io.Writer, groups []nodeGroup) {
	for _, g := range groups {
		if len(g.nodes) == 0 {
			continue
		}
		first, last := g.nodes[0], g.nodes[len(g.nodes)-1]
		fmt.Fprintf(w, "// Is%s reports whether nodes of this kind are %ss.\n", g.name, strings.ToLower(g.name))
		fmt.Fprintf(w, "func (k NodeKind) Is%s() bool {\n", g.name)
		fmt.Fprintf(w, "\treturn k >= %sNode && k <= %sNode\n", first, last)
		fmt.Fprintf(w, "}\n\n")
	}
}

func defineMethods(w io.Writer, groups []nodeGroup) {
	for _, g := range groups {
		for _, n := range g.nodes {
			fmt.Fprintf(w, "func (*%s) Kind() NodeKind { return %sNode }\n", n, n)
		}
	}
}
