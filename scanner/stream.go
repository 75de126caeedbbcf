package scanner

import "github.com/grasslang/grass/token"

// Stream is a cursor over an immutable token buffer. It gives a parser the
// current token and one token of lookahead. Reading past the end keeps
// returning the final EOF token.
type Stream struct {
	tokens []token.Token
	index  int
}

// NewStream creates a cursor positioned on the first token. An EOF token is
// appended when the buffer does not already end with one.
func NewStream(tokens []token.Token) *Stream {
	n := len(tokens)
	if n == 0 || tokens[n-1].Type != token.EOF {
		var pos token.Position
		if n > 0 {
			pos = tokens[n-1].Pos
		}
		tokens = append(tokens[:n:n], token.New(token.EOF, "", "", pos))
	}
	return &Stream{tokens: tokens}
}

// Tokenize scans source and returns a stream over its tokens.
func Tokenize(source string) (*Stream, error) {
	tokens, err := New(source).Scan()
	if err != nil {
		return nil, err
	}
	return NewStream(tokens), nil
}

// Current returns the token under the cursor.
func (s *Stream) Current() token.Token {
	return s.at(s.index)
}

// Peek returns the token after the current one without moving the cursor.
func (s *Stream) Peek() token.Token {
	return s.at(s.index + 1)
}

// Advance moves the cursor forward by one token and returns the new current
// token.
func (s *Stream) Advance() token.Token {
	if s.index < len(s.tokens)-1 {
		s.index++
	}
	return s.Current()
}

// Index returns the position of the cursor in the buffer.
func (s *Stream) Index() int {
	return s.index
}

// Seek moves the cursor to index, clamped to the buffer.
func (s *Stream) Seek(index int) {
	switch {
	case index < 0:
		s.index = 0
	case index >= len(s.tokens):
		s.index = len(s.tokens) - 1
	default:
		s.index = index
	}
}

// Tokens returns the underlying buffer. Callers must not modify it.
func (s *Stream) Tokens() []token.Token {
	return s.tokens
}

func (s *Stream) at(i int) token.Token {
	if i >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[i]
}
