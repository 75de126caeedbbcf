package scanner

import (
	"fmt"

	"github.com/grasslang/grass/token"
)

// LexError is returned when the source contains a character sequence that is
// not a token, such as a stray '@' or a string without its closing quote.
type LexError struct {
	Pos     token.Position
	File    string
	Message string
}

// NewLexError creates a lexical error at the given position
func NewLexError(pos token.Position, message string) *LexError {
	return &LexError{Pos: pos, Message: message}
}

func (err *LexError) Error() string {
	if err.File != "" {
		return fmt.Sprintf("[%s line %s] Error: %s", err.File, err.Pos, err.Message)
	}
	return fmt.Sprintf("[line %s] Error: %s", err.Pos, err.Message)
}

// WithFile returns a copy of the error naming the file it came from.
func (err *LexError) WithFile(file string) *LexError {
	copy := *err
	copy.File = file
	return &copy
}
