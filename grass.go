// Package grass is the front end of the grass language: it turns source text
// into the syntax tree consumed by the evaluator.
//
// The work is split across the token, scanner, parser and ast packages;
// this package wires them together for the common cases.
package grass

import (
	"fmt"
	"os"

	"github.com/grasslang/grass/ast"
	"github.com/grasslang/grass/parser"
	"github.com/grasslang/grass/scanner"
	"github.com/grasslang/grass/token"
)

// Parse tokenizes and parses source. The error, if any, is a
// *scanner.LexError or a *parser.SyntaxError.
func Parse(source string, options ...parser.Option) (*ast.Ast, error) {
	return parser.ParseString(source, options...)
}

// ParseFile reads and parses the file at path. Errors carry the path.
func ParseFile(path string, options ...parser.Option) (*ast.Ast, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	options = append([]parser.Option{parser.WithFilename(path)}, options...)
	return parser.ParseString(string(source), options...)
}

// Tokenize returns the tokens of source, ending with EOF.
func Tokenize(source string) ([]token.Token, error) {
	return scanner.New(source).Scan()
}
