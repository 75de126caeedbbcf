package parser

import (
	"fmt"
	"strings"

	"github.com/grasslang/grass/token"
)

// SyntaxError is returned when the token stream does not form a valid
// program. Token is the offending token; Expected lists the token types that
// would have been accepted in its place, when the parser knows them.
type SyntaxError struct {
	Pos      token.Position
	File     string
	Message  string
	Token    token.Token
	Expected []token.Type
}

// NewSyntaxError creates a syntax error located at tok
func NewSyntaxError(tok token.Token, message string, expected ...token.Type) *SyntaxError {
	return &SyntaxError{
		Pos:      tok.Pos,
		Message:  message,
		Token:    tok,
		Expected: expected,
	}
}

func (err *SyntaxError) Error() string {
	where := "line " + err.Pos.String()
	if err.File != "" {
		where = err.File + " " + where
	}
	if err.Token.Type == token.EOF {
		return fmt.Sprintf("[%s] Error at end: %s", where, err.Message)
	}
	return fmt.Sprintf("[%s] Error at '%s': %s", where, err.Token.Lexeme, err.Message)
}

// Found describes the offending token, e.g. "identifier" or "end of input".
func (err *SyntaxError) Found() string {
	return DescribeType(err.Token.Type)
}

// ExpectedString lists the expected token types, e.g. "';' or '}'". It is
// empty when the parser does not know them.
func (err *SyntaxError) ExpectedString() string {
	names := make([]string, len(err.Expected))
	for i, typ := range err.Expected {
		names[i] = DescribeType(typ)
	}
	return strings.Join(names, " or ")
}

// DescribeType names a token type for a diagnostic. Punctuation and keywords
// are quoted; literal classes are spelled as words.
func DescribeType(typ token.Type) string {
	if typ == token.EOF {
		return "end of input"
	}
	name := typ.String()
	if name != strings.ToLower(name) {
		return strings.ToLower(name)
	}
	return "'" + name + "'"
}

// WithFile returns a copy of the error naming the file it came from.
func (err *SyntaxError) WithFile(file string) *SyntaxError {
	copy := *err
	copy.File = file
	return &copy
}
