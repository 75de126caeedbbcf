package scanner

import (
	"strings"
	"unicode"

	"github.com/grasslang/grass/token"
)

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	source   []rune
	start    int
	current  int
	line     int
	column   int
	startPos token.Position
	tokens   []token.Token
	done     bool
	err      error
}

// New creates a new token scanner for the given source. A leading byte order
// mark is dropped.
func New(source string) *Scanner {
	return &Scanner{
		source: []rune(strings.TrimPrefix(source, "\ufeff")),
		line:   1,
		column: 1,
		tokens: make([]token.Token, 0),
	}
}

// Scan reads the source and collect all the tokens that were found from the
// source. The returned slice always ends with an EOF token. Scanning stops at
// the first malformed lexeme, and later calls report the same error.
func (scanner *Scanner) Scan() ([]token.Token, error) {
	if scanner.err != nil {
		return nil, scanner.err
	}
	if scanner.done {
		return scanner.tokens, nil
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		scanner.startPos = scanner.pos()
		if err := scanner.scanToken(); err != nil {
			scanner.err = err
			return nil, err
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		token.New(token.EOF, "", "", scanner.pos()),
	)
	scanner.done = true
	return scanner.tokens, nil
}

func (scanner *Scanner) scanToken() error {
	switch r := scanner.advance(); r {
	// Whitespaces
	case ' ', '\r', '\t', '\n':
	// Single character tokens
	case '(':
		scanner.addToken(token.LEFT_PAREN)
	case ')':
		scanner.addToken(token.RIGHT_PAREN)
	case '[':
		scanner.addToken(token.LEFT_BRACKET)
	case ']':
		scanner.addToken(token.RIGHT_BRACKET)
	case '{':
		scanner.addToken(token.LEFT_BRACE)
	case '}':
		scanner.addToken(token.RIGHT_BRACE)
	case ',':
		scanner.addToken(token.COMMA)
	case '.':
		scanner.addToken(token.DOT)
	case ':':
		scanner.addToken(token.COLON)
	case ';':
		scanner.addToken(token.SEMICOLON)
	case '+':
		scanner.addToken(token.PLUS)
	case '-':
		scanner.addToken(token.MINUS)
	case '*':
		scanner.addToken(token.STAR)
	// Double character tokens
	case '=':
		if scanner.match('=') {
			scanner.addToken(token.EQUAL_EQUAL)
		} else {
			scanner.addToken(token.EQUAL)
		}
	case '!':
		if !scanner.match('=') {
			return NewLexError(scanner.startPos, "Unexpected character '!'.")
		}
		scanner.addToken(token.BANG_EQUAL)
	case '<':
		if scanner.match('=') {
			scanner.addToken(token.LESS_EQUAL)
		} else {
			scanner.addToken(token.LESS)
		}
	case '>':
		if scanner.match('=') {
			scanner.addToken(token.GREATER_EQUAL)
		} else {
			scanner.addToken(token.GREATER)
		}
	// Long lexemes
	case '/':
		if scanner.match('/') {
			for scanner.peek() != '\n' && scanner.hasNext() {
				scanner.advance()
			}
		} else if scanner.match('*') {
			return scanner.scanMultilineComment()
		} else {
			scanner.addToken(token.SLASH)
		}
	// Literals
	case '"', '\'':
		return scanner.scanString(r)
	case '`':
		return scanner.scanInternalCode()
	default:
		if unicode.IsSpace(r) {
			break
		}
		if isDigit(r) {
			scanner.scanNumber()
		} else if isBeginIdent(r) {
			scanner.scanIdentifier()
		} else {
			return NewLexError(scanner.startPos, "Unexpected character '"+string(r)+"'.")
		}
	}
	return nil
}

func (scanner *Scanner) scanString(quote rune) error {
	var sb strings.Builder
	for {
		if !scanner.hasNext() {
			return NewLexError(scanner.startPos, "Unterminated string.")
		}
		switch r := scanner.advance(); r {
		case quote:
			scanner.addTokenLiteral(token.STRING, sb.String())
			return nil
		case '\\':
			if !scanner.hasNext() {
				return NewLexError(scanner.startPos, "Unterminated string.")
			}
			sb.WriteString(unescape(scanner.advance()))
		default:
			sb.WriteRune(r)
		}
	}
}

// scanInternalCode reads a back-quoted block whose body is passed through to
// the evaluator untouched.
func (scanner *Scanner) scanInternalCode() error {
	for scanner.peek() != '`' && scanner.hasNext() {
		scanner.advance()
	}
	if !scanner.hasNext() {
		return NewLexError(scanner.startPos, "Unterminated internal code.")
	}
	// consume '`'
	scanner.advance()
	body := string(scanner.source[scanner.start+1 : scanner.current-1])
	scanner.addTokenLiteral(token.INTERNAL, body)
	return nil
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	// numeric interpretation is left to the evaluator
	scanner.addToken(token.NUMBER)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	scanner.addToken(token.Lookup(lexeme))
}

func (scanner *Scanner) scanMultilineComment() error {
	for {
		for scanner.peek() != '*' && scanner.hasNext() {
			scanner.advance()
		}
		if !scanner.hasNext() {
			return NewLexError(scanner.startPos, "Unterminated multiline comment.")
		}
		scanner.advance()
		if scanner.match('/') {
			return nil
		}
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type whose literal is the lexeme itself
func (scanner *Scanner) addToken(typ token.Type) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	scanner.addTokenLiteral(typ, lexeme)
}

func (scanner *Scanner) addTokenLiteral(typ token.Type, literal string) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	scanner.tokens = append(scanner.tokens, token.New(typ, lexeme, literal, scanner.startPos))
}

func (scanner *Scanner) pos() token.Position {
	return token.Position{Offset: scanner.current, Line: scanner.line, Column: scanner.column}
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position, keeping the
// line and column counters in step
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	if r == '\n' {
		scanner.line++
		scanner.column = 1
	} else {
		scanner.column++
	}
	return r
}

// match consumes the rune at the current position if it equals expected
func (scanner *Scanner) match(expected rune) bool {
	if scanner.peek() != expected || !scanner.hasNext() {
		return false
	}
	scanner.advance()
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

func unescape(r rune) string {
	switch r {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case '0':
		return "\x00"
	case '\\', '"', '\'':
		return string(r)
	}
	return "\\" + string(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
