package token

import "fmt"

// Position is a location in the source text. Line and Column are 1-based,
// Offset is the 0-based rune index.
type Position struct {
	Offset int
	Line   int
	Column int
}

// IsValid reports whether the position refers to real source text.
func (pos Position) IsValid() bool {
	return pos.Line > 0
}

func (pos Position) String() string {
	if !pos.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// Token represents group a characters with additional information that was
// obtained during the scanning phase. Lexeme is the exact source text, Literal
// is its value: the unescaped contents of a string, the verbatim body of an
// internal code block, and the lexeme for everything else.
type Token struct {
	Type    Type
	Lexeme  string
	Literal string
	Pos     Position
}

// New creates a new token
func New(typ Type, lexeme string, literal string, pos Position) Token {
	return Token{typ, lexeme, literal, pos}
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case STRING, INTERNAL:
		return fmt.Sprintf("%s %q", t.Type, t.Literal)
	}
	return fmt.Sprintf("%s %s", t.Type, t.Lexeme)
}

// Type is a dense enumeration of token kinds, usable as an array index.
type Type uint8

const (
	EOF Type = iota

	// Literals
	IDENTIFIER
	STRING
	NUMBER
	INTERNAL

	// Keywords
	TRUE
	FALSE
	LET
	RETURN
	IMPORT
	FN
	IF
	ELSE
	WHILE
	LOOP
	CLASS
	NEW

	// Punctuation
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE
	DOT
	COLON
	COMMA
	SEMICOLON

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	EQUAL
	EQUAL_EQUAL
	BANG_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL

	typeCount
)

// Count is the number of token types.
const Count = int(typeCount)

var typeNames = [typeCount]string{
	EOF:           "EOF",
	IDENTIFIER:    "IDENTIFIER",
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	INTERNAL:      "INTERNAL",
	TRUE:          "true",
	FALSE:         "false",
	LET:           "let",
	RETURN:        "return",
	IMPORT:        "import",
	FN:            "fn",
	IF:            "if",
	ELSE:          "else",
	WHILE:         "while",
	LOOP:          "loop",
	CLASS:         "class",
	NEW:           "new",
	LEFT_PAREN:    "(",
	RIGHT_PAREN:   ")",
	LEFT_BRACKET:  "[",
	RIGHT_BRACKET: "]",
	LEFT_BRACE:    "{",
	RIGHT_BRACE:   "}",
	DOT:           ".",
	COLON:         ":",
	COMMA:         ",",
	SEMICOLON:     ";",
	PLUS:          "+",
	MINUS:         "-",
	STAR:          "*",
	SLASH:         "/",
	EQUAL:         "=",
	EQUAL_EQUAL:   "==",
	BANG_EQUAL:    "!=",
	LESS:          "<",
	LESS_EQUAL:    "<=",
	GREATER:       ">",
	GREATER_EQUAL: ">=",
}

func (typ Type) String() string {
	if typ < typeCount {
		return typeNames[typ]
	}
	return fmt.Sprintf("Type(%d)", uint8(typ))
}

// IsKeyword reports whether typ is a reserved word.
func (typ Type) IsKeyword() bool {
	return typ >= TRUE && typ <= NEW
}

// IsOperator reports whether typ is an arithmetic, comparison or assignment
// operator.
func (typ Type) IsOperator() bool {
	return typ >= PLUS && typ <= GREATER_EQUAL
}

// Keywords maps every reserved word to its token type.
var Keywords = map[string]Type{
	"true":   TRUE,
	"false":  FALSE,
	"let":    LET,
	"return": RETURN,
	"import": IMPORT,
	"fn":     FN,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"loop":   LOOP,
	"class":  CLASS,
	"new":    NEW,
}

// Lookup returns the keyword type for ident, or IDENTIFIER.
func Lookup(ident string) Type {
	if typ, ok := Keywords[ident]; ok {
		return typ
	}
	return IDENTIFIER
}
