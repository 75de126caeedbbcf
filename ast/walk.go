package ast

// Visitor's Visit method is invoked for each node encountered by Walk. If the
// result visitor w is not nil, Walk visits each of the children of node with
// w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a tree in depth-first, source order. Optional children that
// are absent (a nil initializer, a missing else block) are skipped.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *ExpressionStatement:
		walkExpr(v, n.Expression)
	case *LetStatement:
		if n.Definition != nil {
			Walk(v, n.Definition)
		}
	case *ReturnStatement:
		walkExpr(v, n.Value)
	case *ImportStatement:
		walkExpr(v, n.Target)
	case *BlockStatement:
		for _, stmt := range n.Statements {
			Walk(v, stmt)
		}

	case *Identifier, *StringLiteral, *NumberLiteral, *BooleanLiteral, *InternalCode:
		// leaves

	case *PrefixExpression:
		walkExpr(v, n.Right)
	case *InfixExpression:
		walkExpr(v, n.Left)
		walkExpr(v, n.Right)
	case *PathExpression:
		walkList(v, n.Path)
	case *CallExpression:
		if n.Function != nil {
			Walk(v, n.Function)
		}
		walkList(v, n.Arguments)
	case *DefinitionExpression:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		walkExpr(v, n.Type)
		walkExpr(v, n.Value)
	case *AssignExpression:
		walkExpr(v, n.Target)
		walkExpr(v, n.Value)
	case *SubscriptExpression:
		walkExpr(v, n.Body)
		walkExpr(v, n.Index)
	case *FunctionLiteral:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		for _, param := range n.Parameters {
			Walk(v, param)
		}
		walkExpr(v, n.ReturnType)
		walkBlock(v, n.Body)
	case *IfExpression:
		walkExpr(v, n.Condition)
		walkBlock(v, n.Consequence)
		walkBlock(v, n.Alternative)
	case *WhileExpression:
		walkExpr(v, n.Condition)
		walkBlock(v, n.Consequence)
	case *LoopExpression:
		walkBlock(v, n.Body)
	case *ClassLiteral:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		walkExpr(v, n.Base)
		walkBlock(v, n.Body)
	case *NewExpression:
		walkExpr(v, n.Constructor)
	}

	v.Visit(nil)
}

// WalkAst walks every top-level statement of a in order.
func WalkAst(v Visitor, a *Ast) {
	for _, stmt := range a.Statements {
		Walk(v, stmt)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses a tree in depth-first order: It starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node, followed by a call of
// f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

func walkExpr(v Visitor, expr Expression) {
	if expr != nil {
		Walk(v, expr)
	}
}

func walkBlock(v Visitor, block *BlockStatement) {
	if block != nil {
		Walk(v, block)
	}
}

func walkList(v Visitor, exprs []Expression) {
	for _, expr := range exprs {
		walkExpr(v, expr)
	}
}
