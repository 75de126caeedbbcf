package grass

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grasslang/grass/ast"
	"github.com/grasslang/grass/parser"
	"github.com/grasslang/grass/scanner"
	"github.com/grasslang/grass/token"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	program, err := Parse("let greeting: String = 'hi'; io.print(greeting)")
	require.NoError(t, err)
	printer := &ast.Printer{}
	assert.Equal("(let (def greeting String \"hi\"))\n(path io (call print greeting))\n", printer.PrintAst(program))
}

func TestParseFile(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.grass")
	require.NoError(t, os.WriteFile(good, []byte("fn main() {\n  return\n}\n"), 0o644))
	program, err := ParseFile(good)
	require.NoError(t, err)
	assert.Len(program.Statements, 1)

	withBOM := filepath.Join(dir, "bom.grass")
	require.NoError(t, os.WriteFile(withBOM, []byte("\ufefflet x: Int = 1"), 0o644))
	program, err = ParseFile(withBOM)
	require.NoError(t, err)
	assert.Len(program.Statements, 1)

	bad := filepath.Join(dir, "bad.grass")
	require.NoError(t, os.WriteFile(bad, []byte("fn main() {\n  return 1 2\n}\n"), 0o644))
	_, err = ParseFile(bad)
	var syntaxErr *parser.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(bad, syntaxErr.File)
	assert.Equal(2, syntaxErr.Pos.Line)

	_, err = ParseFile(filepath.Join(dir, "missing.grass"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestParseFileOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep.grass")
	require.NoError(t, os.WriteFile(path, []byte("((((1))))"), 0o644))

	_, err := ParseFile(path, parser.WithMaxDepth(3))
	assert.Error(t, err)
}

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	tokens, err := Tokenize("x != 1")
	require.NoError(t, err)
	var types []token.Type
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal([]token.Type{token.IDENTIFIER, token.BANG_EQUAL, token.NUMBER, token.EOF}, types)

	_, err = Tokenize("'open")
	var lexErr *scanner.LexError
	assert.True(errors.As(err, &lexErr))
}
