// Package ast declares the syntax tree produced by the parser.
//
// A tree is made of statements and expressions. Every node reports a NodeKind
// discriminant and the position of the token that started it. A parent owns its
// children exclusively; the only sharing is the segment list of a path derived
// with PathExpression.SubPath.
package ast

//go:generate go run ../internal/cmd/ast_codegen kind.go

import (
	"strings"

	"github.com/grasslang/grass/token"
)

// Node is implemented by every element of the tree.
type Node interface {
	Kind() NodeKind
	Pos() token.Position
	String() string
}

// Statement is a node that appears directly in a program or a block.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// TextExpression is an expression that also names something: an identifier, a
// string, or a dotted path. Types, import targets and assignment targets are
// text expressions.
type TextExpression interface {
	Expression
	Text() string
}

// Ast is an ordered list of top-level statements.
type Ast struct {
	Statements []Statement
}

func (a *Ast) String() string {
	var sb strings.Builder
	for _, stmt := range a.Statements {
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Void is the return type of a function that declares none.
func Void() *Identifier {
	return &Identifier{Value: "void"}
}

// Null is the identifier the evaluator uses for an absent value.
func Null() *Identifier {
	return &Identifier{Value: "null"}
}

// IsVoid reports whether expr is the Void sentinel. The parser stores both an
// omitted return type and an explicit `: void` as the sentinel.
func IsVoid(expr Expression) bool {
	ident, ok := expr.(*Identifier)
	return ok && ident.Value == "void" && !ident.Token.Pos.IsValid()
}

// Statements

type ExpressionStatement struct {
	Expression Expression
}

type LetStatement struct {
	Token      token.Token
	Definition *DefinitionExpression
}

// ReturnStatement has a nil Value for a bare `return`.
type ReturnStatement struct {
	Token token.Token
	Value Expression
}

type ImportStatement struct {
	Token  token.Token
	Target TextExpression
}

type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

// Leaf expressions

type Identifier struct {
	Token token.Token
	Value string
}

type StringLiteral struct {
	Token token.Token
	Value string
}

// NumberLiteral keeps the raw digits; the evaluator decides how to read them.
type NumberLiteral struct {
	Token token.Token
	Value string
}

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

// InternalCode carries a back-quoted block through to the evaluator.
type InternalCode struct {
	Token token.Token
	Value string
}

// Operators

type PrefixExpression struct {
	Operator token.Token
	Right    Expression
}

type InfixExpression struct {
	Operator token.Token
	Left     Expression
	Right    Expression
}

// Compound expressions

// CallExpression calls a function by name: f(a, b).
type CallExpression struct {
	Token     token.Token
	Function  *Identifier
	Arguments []Expression
}

// DefinitionExpression declares a typed name: name: Type = value.
// Value is nil when no initializer is given.
type DefinitionExpression struct {
	Token token.Token
	Name  *Identifier
	Type  TextExpression
	Value Expression
}

type AssignExpression struct {
	Token  token.Token
	Target TextExpression
	Value  Expression
}

type SubscriptExpression struct {
	Token token.Token
	Body  Expression
	Index Expression
}

// FunctionLiteral is `fn name(params): ReturnType { body }`. Name is nil and
// Anonymous is set when the name is omitted.
type FunctionLiteral struct {
	Token      token.Token
	Name       *Identifier
	Parameters []*DefinitionExpression
	ReturnType TextExpression
	Body       *BlockStatement
	Anonymous  bool
}

// IfExpression has a nil Alternative when there is no else branch.
type IfExpression struct {
	Token       token.Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

type WhileExpression struct {
	Token       token.Token
	Condition   Expression
	Consequence *BlockStatement
}

type LoopExpression struct {
	Token token.Token
	Body  *BlockStatement
}

// ClassLiteral is `class Name [: Base] { body }`.
type ClassLiteral struct {
	Token token.Token
	Name  *Identifier
	Base  TextExpression
	Body  *BlockStatement
}

// NewExpression holds a constructor call. Constructor is always a
// *CallExpression or a *PathExpression.
type NewExpression struct {
	Token       token.Token
	Constructor Expression
}

func (*ExpressionStatement) statementNode() {}
func (*LetStatement) statementNode()        {}
func (*ReturnStatement) statementNode()     {}
func (*ImportStatement) statementNode()     {}
func (*BlockStatement) statementNode()      {}

func (*Identifier) expressionNode()           {}
func (*StringLiteral) expressionNode()        {}
func (*NumberLiteral) expressionNode()        {}
func (*BooleanLiteral) expressionNode()       {}
func (*InternalCode) expressionNode()         {}
func (*PrefixExpression) expressionNode()     {}
func (*InfixExpression) expressionNode()      {}
func (*PathExpression) expressionNode()       {}
func (*CallExpression) expressionNode()       {}
func (*DefinitionExpression) expressionNode() {}
func (*AssignExpression) expressionNode()     {}
func (*SubscriptExpression) expressionNode()  {}
func (*FunctionLiteral) expressionNode()      {}
func (*IfExpression) expressionNode()         {}
func (*WhileExpression) expressionNode()      {}
func (*LoopExpression) expressionNode()       {}
func (*ClassLiteral) expressionNode()         {}
func (*NewExpression) expressionNode()        {}

func (ident *Identifier) Text() string  { return ident.Value }
func (str *StringLiteral) Text() string { return str.Value }

func (stmt *ExpressionStatement) Pos() token.Position {
	if stmt.Expression == nil {
		return token.Position{}
	}
	return stmt.Expression.Pos()
}
func (stmt *LetStatement) Pos() token.Position         { return stmt.Token.Pos }
func (stmt *ReturnStatement) Pos() token.Position      { return stmt.Token.Pos }
func (stmt *ImportStatement) Pos() token.Position      { return stmt.Token.Pos }
func (stmt *BlockStatement) Pos() token.Position       { return stmt.Token.Pos }
func (expr *Identifier) Pos() token.Position           { return expr.Token.Pos }
func (expr *StringLiteral) Pos() token.Position        { return expr.Token.Pos }
func (expr *NumberLiteral) Pos() token.Position        { return expr.Token.Pos }
func (expr *BooleanLiteral) Pos() token.Position       { return expr.Token.Pos }
func (expr *InternalCode) Pos() token.Position         { return expr.Token.Pos }
func (expr *PrefixExpression) Pos() token.Position     { return expr.Operator.Pos }
func (expr *InfixExpression) Pos() token.Position      { return expr.Left.Pos() }
func (expr *CallExpression) Pos() token.Position       { return expr.Function.Pos() }
func (expr *DefinitionExpression) Pos() token.Position { return expr.Name.Pos() }
func (expr *AssignExpression) Pos() token.Position     { return expr.Target.Pos() }
func (expr *SubscriptExpression) Pos() token.Position  { return expr.Body.Pos() }
func (expr *FunctionLiteral) Pos() token.Position      { return expr.Token.Pos }
func (expr *IfExpression) Pos() token.Position         { return expr.Token.Pos }
func (expr *WhileExpression) Pos() token.Position      { return expr.Token.Pos }
func (expr *LoopExpression) Pos() token.Position       { return expr.Token.Pos }
func (expr *ClassLiteral) Pos() token.Position         { return expr.Token.Pos }
func (expr *NewExpression) Pos() token.Position        { return expr.Token.Pos }

func (expr *PathExpression) Pos() token.Position {
	if len(expr.Path) == 0 {
		return token.Position{}
	}
	return expr.Path[0].Pos()
}
