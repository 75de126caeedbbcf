package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedKindsUpToDate(t *testing.T) {
	var out strings.Builder
	require.NoError(t, generate(&out, "ast", nodeGroups))

	committed, err := os.ReadFile(filepath.Join("..", "..", "..", "ast", "kind.go"))
	require.NoError(t, err)

	// Compare token by token so the check does not depend on the gofmt version.
	assert.Equal(t, strings.Fields(string(committed)), strings.Fields(out.String()),
		"ast/kind.go is stale, run go generate ./ast")
}

func TestGenerate(t *testing.T) {
	assert := assert.New(t)
	groups := []nodeGroup{
		{name: "Statement", nodes: []string{"Block"}},
		{name: "Expression", nodes: []string{"Ident", "Call"}},
		{name: "Empty"},
	}

	var out strings.Builder
	require.NoError(t, generate(&out, "tree", groups))
	src := out.String()

	assert.True(strings.HasPrefix(src, "// Code generated by ast_codegen. DO NOT EDIT.\n\npackage tree\n"))
	assert.Contains(src, "\tBlockNode\n\n\tIdentNode\n\tCallNode\n")
	assert.Contains(src, `CallNode:    "Call",`)
	assert.Contains(src, "return k >= IdentNode && k <= CallNode")
	assert.Contains(src, "func (*Block) Kind() NodeKind { return BlockNode }")
	assert.NotContains(src, "IsEmpty")
}

func TestGenerateFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nodes")
	require.NoError(t, os.Mkdir(dir, 0o755))
	file := filepath.Join(dir, "kind.go")

	require.NoError(t, generateFile(file, nodeGroups[:1]))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package nodes\n")
	assert.Contains(t, string(data), "func (k NodeKind) IsStatement() bool")
}
