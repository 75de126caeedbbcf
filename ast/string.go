package ast

import (
	"strconv"
	"strings"
)

// String methods render nodes back into source-like text, with every infix
// and prefix expression parenthesized so that the tree shape stays visible.

func (stmt *ExpressionStatement) String() string {
	if stmt.Expression == nil {
		return ""
	}
	return stmt.Expression.String()
}

func (stmt *LetStatement) String() string {
	return "let " + stmt.Definition.String()
}

func (stmt *ReturnStatement) String() string {
	if stmt.Value == nil {
		return "return"
	}
	return "return " + stmt.Value.String()
}

func (stmt *ImportStatement) String() string {
	return "import " + stmt.Target.String()
}

func (stmt *BlockStatement) String() string {
	if len(stmt.Statements) == 0 {
		return "{ }"
	}
	parts := make([]string, len(stmt.Statements))
	for i, s := range stmt.Statements {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func (expr *Identifier) String() string     { return expr.Value }
func (expr *StringLiteral) String() string  { return strconv.Quote(expr.Value) }
func (expr *NumberLiteral) String() string  { return expr.Value }
func (expr *BooleanLiteral) String() string { return strconv.FormatBool(expr.Value) }
func (expr *InternalCode) String() string   { return "`" + expr.Value + "`" }

func (expr *PrefixExpression) String() string {
	return "(" + expr.Operator.Lexeme + expr.Right.String() + ")"
}

func (expr *InfixExpression) String() string {
	return "(" + expr.Left.String() + " " + expr.Operator.Lexeme + " " + expr.Right.String() + ")"
}

func (expr *PathExpression) String() string {
	return expr.Text()
}

func (expr *CallExpression) String() string {
	return expr.Function.String() + "(" + joinExpressions(expr.Arguments) + ")"
}

func (expr *DefinitionExpression) String() string {
	s := expr.Name.String() + ": " + expr.Type.String()
	if expr.Value != nil {
		s += " = " + expr.Value.String()
	}
	return s
}

func (expr *AssignExpression) String() string {
	return expr.Target.String() + " = " + expr.Value.String()
}

func (expr *SubscriptExpression) String() string {
	return expr.Body.String() + "[" + expr.Index.String() + "]"
}

func (expr *FunctionLiteral) String() string {
	var sb strings.Builder
	sb.WriteString("fn ")
	if expr.Name != nil {
		sb.WriteString(expr.Name.String())
	}
	params := make([]string, len(expr.Parameters))
	for i, p := range expr.Parameters {
		params[i] = p.String()
	}
	sb.WriteString("(" + strings.Join(params, ", ") + ")")
	if expr.ReturnType != nil && !IsVoid(expr.ReturnType) {
		sb.WriteString(": " + expr.ReturnType.String())
	}
	sb.WriteString(" " + expr.Body.String())
	return sb.String()
}

func (expr *IfExpression) String() string {
	s := "if " + expr.Condition.String() + " " + expr.Consequence.String()
	if expr.Alternative != nil {
		s += " else " + expr.Alternative.String()
	}
	return s
}

func (expr *WhileExpression) String() string {
	return "while " + expr.Condition.String() + " " + expr.Consequence.String()
}

func (expr *LoopExpression) String() string {
	return "loop " + expr.Body.String()
}

func (expr *ClassLiteral) String() string {
	s := "class " + expr.Name.String()
	if expr.Base != nil {
		s += ": " + expr.Base.String()
	}
	return s + " " + expr.Body.String()
}

func (expr *NewExpression) String() string {
	return "new " + expr.Constructor.String()
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
