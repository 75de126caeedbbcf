package parser

import "github.com/grasslang/grass/token"

// Precedence is the binding power of an infix operator. An expression parsed
// at precedence p keeps absorbing infix operators whose rank is at least p.
type Precedence int

const (
	Lowest      Precedence = iota
	Assign                 // =
	Equals                 // == != .
	LessGreater            // < > <= >=
	Index                  // a[0], path segments
	Sum                    // + -
	Product                // * /
	Prefix                 // -x +x
	Call                   // f()
)

var precedences = [token.Count]Precedence{
	token.EQUAL:         Assign,
	token.EQUAL_EQUAL:   Equals,
	token.BANG_EQUAL:    Equals,
	token.DOT:           Equals,
	token.LESS:          LessGreater,
	token.LESS_EQUAL:    LessGreater,
	token.GREATER:       LessGreater,
	token.GREATER_EQUAL: LessGreater,
	token.LEFT_BRACKET:  Index,
	token.PLUS:          Sum,
	token.MINUS:         Sum,
	token.STAR:          Product,
	token.SLASH:         Product,
	token.LEFT_PAREN:    Call,
}

// PrecedenceOf returns the rank of typ, Lowest for tokens that are not infix
// operators.
func PrecedenceOf(typ token.Type) Precedence {
	if int(typ) < len(precedences) {
		return precedences[typ]
	}
	return Lowest
}

func (p Precedence) String() string {
	switch p {
	case Lowest:
		return "Lowest"
	case Assign:
		return "Assign"
	case Equals:
		return "Equals"
	case LessGreater:
		return "LessGreater"
	case Index:
		return "Index"
	case Sum:
		return "Sum"
	case Product:
		return "Product"
	case Prefix:
		return "Prefix"
	case Call:
		return "Call"
	}
	return "Precedence(?)"
}
