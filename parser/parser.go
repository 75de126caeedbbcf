package parser

import (
	"errors"

	"github.com/grasslang/grass/ast"
	"github.com/grasslang/grass/scanner"
	"github.com/grasslang/grass/token"
)

// DefaultMaxDepth bounds expression nesting unless WithMaxDepth says
// otherwise.
const DefaultMaxDepth = 500

// Parser turns a token stream into a syntax tree. Routines leave the stream
// positioned on the last token of the construct they consumed; the caller
// advances past it.
type Parser struct {
	tokens   *scanner.Stream
	filename string
	maxDepth int
	depth    int
}

// Option configures a Parser.
type Option func(*Parser)

// WithFilename names the source in every error the parser returns.
func WithFilename(name string) Option {
	return func(parser *Parser) {
		parser.filename = name
	}
}

// WithMaxDepth limits how deeply expressions may nest. Values below 1 are
// ignored.
func WithMaxDepth(depth int) Option {
	return func(parser *Parser) {
		if depth > 0 {
			parser.maxDepth = depth
		}
	}
}

// New creates a parser reading from tokens
func New(tokens *scanner.Stream, options ...Option) *Parser {
	parser := &Parser{tokens: tokens, maxDepth: DefaultMaxDepth}
	for _, option := range options {
		option(parser)
	}
	return parser
}

// ParseString tokenizes and parses source in one step.
func ParseString(source string, options ...Option) (*ast.Ast, error) {
	parser := New(nil, options...)
	stream, err := scanner.Tokenize(source)
	if err != nil {
		return nil, parser.annotate(err)
	}
	parser.tokens = stream
	return parser.Parse()
}

// Parse consumes the whole stream and returns the program. The first error
// aborts the parse; no partial tree is returned.
func (parser *Parser) Parse() (*ast.Ast, error) {
	program := &ast.Ast{}
	for !parser.curIs(token.EOF) {
		if parser.curIs(token.SEMICOLON) {
			parser.advance()
			continue
		}
		stmt, err := parser.statement()
		if err != nil {
			return nil, parser.annotate(err)
		}
		if err := parser.terminate(token.EOF); err != nil {
			return nil, parser.annotate(err)
		}
		program.Statements = append(program.Statements, stmt)
		parser.advance()
	}
	return program, nil
}

func (parser *Parser) statement() (ast.Statement, error) {
	switch parser.cur().Type {
	case token.LET:
		return parser.letStatement()
	case token.RETURN:
		return parser.returnStatement()
	case token.IMPORT:
		return parser.importStatement()
	}
	expr, err := parser.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr}, nil
}

func (parser *Parser) letStatement() (ast.Statement, error) {
	stmt := &ast.LetStatement{Token: parser.cur()}
	parser.advance()

	start := parser.cur()
	expr, err := parser.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	def, ok := expr.(*ast.DefinitionExpression)
	if !ok {
		return nil, NewSyntaxError(start, "Expect definition 'name: Type' after 'let'.")
	}
	stmt.Definition = def
	return stmt, nil
}

func (parser *Parser) returnStatement() (ast.Statement, error) {
	stmt := &ast.ReturnStatement{Token: parser.cur()}
	switch parser.peek().Type {
	case token.SEMICOLON, token.RIGHT_BRACE, token.EOF:
		return stmt, nil
	}
	parser.advance()

	value, err := parser.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	stmt.Value = value
	return stmt, nil
}

func (parser *Parser) importStatement() (ast.Statement, error) {
	stmt := &ast.ImportStatement{Token: parser.cur()}
	parser.advance()

	start := parser.cur()
	expr, err := parser.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	target, ok := expr.(ast.TextExpression)
	if !ok {
		return nil, NewSyntaxError(start, "Expect module name after 'import'.")
	}
	stmt.Target = target
	return stmt, nil
}

// terminate checks that the statement just parsed is properly ended: by a
// semicolon, by closer, or by the closing brace of its own trailing block.
func (parser *Parser) terminate(closer token.Type) error {
	if parser.peekIs(token.SEMICOLON) || parser.peekIs(closer) || parser.curIs(token.RIGHT_BRACE) {
		return nil
	}
	return NewSyntaxError(parser.peek(), "Expect ';' after statement.", token.SEMICOLON, closer)
}

// block parses `{ stmt; ... }` starting on the opening brace and stops on the
// closing one.
func (parser *Parser) block() (*ast.BlockStatement, error) {
	if !parser.curIs(token.LEFT_BRACE) {
		return nil, NewSyntaxError(parser.cur(), "Expect '{' before block.", token.LEFT_BRACE)
	}
	block := &ast.BlockStatement{Token: parser.cur()}

	for !parser.peekIs(token.RIGHT_BRACE) {
		if parser.peekIs(token.EOF) {
			return nil, NewSyntaxError(parser.peek(), "Expect '}' after block.", token.RIGHT_BRACE)
		}
		parser.advance()
		if parser.curIs(token.SEMICOLON) {
			continue
		}

		stmt, err := parser.statement()
		if err != nil {
			return nil, err
		}
		if parser.peekIs(token.EOF) && !parser.curIs(token.RIGHT_BRACE) {
			return nil, NewSyntaxError(parser.peek(), "Expect '}' after block.", token.RIGHT_BRACE)
		}
		if err := parser.terminate(token.RIGHT_BRACE); err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		if parser.peekIs(token.SEMICOLON) {
			parser.advance()
		}
	}
	parser.advance()
	return block, nil
}

// parseExpression is the precedence climbing loop. It parses one prefix
// expression and then keeps folding infix operators into it for as long as
// the next token binds at least as tightly as prec.
func (parser *Parser) parseExpression(prec Precedence) (ast.Expression, error) {
	parser.depth++
	defer func() { parser.depth-- }()
	if parser.depth > parser.maxDepth {
		return nil, NewSyntaxError(parser.cur(), "Expression nested too deeply.")
	}

	left, err := parser.prefix()
	if err != nil {
		return nil, err
	}
	for !parser.peekIs(token.SEMICOLON) && prec <= PrecedenceOf(parser.peek().Type) {
		if !hasInfix(parser.peek().Type) {
			return left, nil
		}
		parser.advance()
		if left, err = parser.infix(left); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (parser *Parser) prefix() (ast.Expression, error) {
	tok := parser.cur()
	switch tok.Type {
	case token.IDENTIFIER:
		return &ast.Identifier{Token: tok, Value: tok.Lexeme}, nil
	case token.STRING:
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}, nil
	case token.NUMBER:
		return &ast.NumberLiteral{Token: tok, Value: tok.Lexeme}, nil
	case token.TRUE, token.FALSE:
		return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}, nil
	case token.INTERNAL:
		return &ast.InternalCode{Token: tok, Value: tok.Literal}, nil
	case token.PLUS, token.MINUS:
		return parser.prefixExpression()
	case token.LEFT_PAREN:
		return parser.groupedExpression()
	case token.NEW:
		return parser.newExpression()
	case token.FN:
		return parser.functionLiteral()
	case token.IF:
		return parser.ifExpression()
	case token.WHILE:
		return parser.whileExpression()
	case token.LOOP:
		return parser.loopExpression()
	case token.CLASS:
		return parser.classLiteral()
	}
	return nil, NewSyntaxError(tok, "Expect expression.")
}

func hasInfix(typ token.Type) bool {
	switch typ {
	case token.DOT, token.COLON, token.EQUAL, token.LEFT_PAREN, token.LEFT_BRACKET:
		return true
	}
	return typ.IsOperator()
}

func (parser *Parser) infix(left ast.Expression) (ast.Expression, error) {
	switch parser.cur().Type {
	case token.DOT:
		return parser.pathExpression(left)
	case token.COLON:
		return parser.definitionExpression(left)
	case token.EQUAL:
		return parser.assignExpression(left)
	case token.LEFT_PAREN:
		return parser.callExpression(left)
	case token.LEFT_BRACKET:
		return parser.subscriptExpression(left)
	}
	return parser.infixExpression(left)
}

func (parser *Parser) prefixExpression() (ast.Expression, error) {
	expr := &ast.PrefixExpression{Operator: parser.cur()}
	parser.advance()

	right, err := parser.parseExpression(Prefix)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

func (parser *Parser) infixExpression(left ast.Expression) (ast.Expression, error) {
	expr := &ast.InfixExpression{Operator: parser.cur(), Left: left}
	prec := PrecedenceOf(expr.Operator.Type)
	parser.advance()

	right, err := parser.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

func (parser *Parser) groupedExpression() (ast.Expression, error) {
	parser.advance()
	expr, err := parser.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	if err := parser.expectPeek(token.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
		return nil, err
	}
	return expr, nil
}

// pathExpression appends one segment to left, extending left in place when
// it is already a path so that a.b.c stays flat.
func (parser *Parser) pathExpression(left ast.Expression) (ast.Expression, error) {
	path, ok := left.(*ast.PathExpression)
	if !ok {
		path = &ast.PathExpression{Path: []ast.Expression{left}}
	}
	parser.advance()

	segment, err := parser.parseExpression(Index)
	if err != nil {
		return nil, err
	}
	path.Path = append(path.Path, segment)
	return path, nil
}

func (parser *Parser) definitionExpression(left ast.Expression) (ast.Expression, error) {
	colon := parser.cur()
	name, ok := left.(*ast.Identifier)
	if !ok {
		return nil, NewSyntaxError(colon, "Expect name before ':'.")
	}
	parser.advance()

	typ, err := parser.textExpression(Equals, "Expect type name after ':'.")
	if err != nil {
		return nil, err
	}
	def := &ast.DefinitionExpression{Token: colon, Name: name, Type: typ}
	if parser.peekIs(token.EQUAL) {
		parser.advance()
		parser.advance()
		value, err := parser.parseExpression(Lowest)
		if err != nil {
			return nil, err
		}
		def.Value = value
	}
	return def, nil
}

func (parser *Parser) assignExpression(left ast.Expression) (ast.Expression, error) {
	equal := parser.cur()
	target, ok := left.(ast.TextExpression)
	if !ok {
		return nil, NewSyntaxError(equal, "Invalid assignment target.")
	}
	parser.advance()

	value, err := parser.parseExpression(Assign)
	if err != nil {
		return nil, err
	}
	return &ast.AssignExpression{Token: equal, Target: target, Value: value}, nil
}

func (parser *Parser) callExpression(left ast.Expression) (ast.Expression, error) {
	paren := parser.cur()
	function, ok := left.(*ast.Identifier)
	if !ok {
		return nil, NewSyntaxError(paren, "Can only call functions by name.")
	}

	call := &ast.CallExpression{Token: paren, Function: function}
	if parser.peekIs(token.RIGHT_PAREN) {
		parser.advance()
		return call, nil
	}
	for {
		parser.advance()
		arg, err := parser.parseExpression(Lowest)
		if err != nil {
			return nil, err
		}
		call.Arguments = append(call.Arguments, arg)

		switch parser.peek().Type {
		case token.COMMA:
			parser.advance()
		case token.RIGHT_PAREN:
			parser.advance()
			return call, nil
		default:
			return nil, NewSyntaxError(parser.peek(), "Expect ')' after arguments.", token.COMMA, token.RIGHT_PAREN)
		}
	}
}

func (parser *Parser) subscriptExpression(left ast.Expression) (ast.Expression, error) {
	expr := &ast.SubscriptExpression{Token: parser.cur(), Body: left}
	parser.advance()

	index, err := parser.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	if err := parser.expectPeek(token.RIGHT_BRACKET, "Expect ']' after index."); err != nil {
		return nil, err
	}
	expr.Index = index
	return expr, nil
}

func (parser *Parser) newExpression() (ast.Expression, error) {
	expr := &ast.NewExpression{Token: parser.cur()}
	parser.advance()

	start := parser.cur()
	ctor, err := parser.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	switch ctor.(type) {
	case *ast.CallExpression, *ast.PathExpression:
		expr.Constructor = ctor
		return expr, nil
	}
	return nil, NewSyntaxError(start, "'new' must be followed by a constructor call.")
}

func (parser *Parser) functionLiteral() (ast.Expression, error) {
	fn := &ast.FunctionLiteral{Token: parser.cur()}
	if parser.peekIs(token.IDENTIFIER) {
		parser.advance()
		fn.Name = &ast.Identifier{Token: parser.cur(), Value: parser.cur().Lexeme}
	} else {
		fn.Anonymous = true
	}
	if err := parser.expectPeek(token.LEFT_PAREN, "Expect '(' before parameters."); err != nil {
		return nil, err
	}

	params, err := parser.functionParameters()
	if err != nil {
		return nil, err
	}
	fn.Parameters = params

	switch parser.peek().Type {
	case token.LEFT_BRACE:
		fn.ReturnType = ast.Void()
	case token.COLON:
		parser.advance()
		parser.advance()
		if fn.ReturnType, err = parser.textExpression(Lowest, "Expect return type after ':'."); err != nil {
			return nil, err
		}
		if ident, ok := fn.ReturnType.(*ast.Identifier); ok && ident.Value == ast.Void().Value {
			fn.ReturnType = ast.Void()
		}
	default:
		return nil, NewSyntaxError(parser.peek(), "Expect '{' before function body.", token.COLON, token.LEFT_BRACE)
	}

	if err := parser.expectPeek(token.LEFT_BRACE, "Expect '{' before function body."); err != nil {
		return nil, err
	}
	if fn.Body, err = parser.block(); err != nil {
		return nil, err
	}
	return fn, nil
}

// functionParameters starts on '(' and stops on ')'.
func (parser *Parser) functionParameters() ([]*ast.DefinitionExpression, error) {
	var params []*ast.DefinitionExpression
	if parser.peekIs(token.RIGHT_PAREN) {
		parser.advance()
		return params, nil
	}
	for {
		parser.advance()
		start := parser.cur()
		expr, err := parser.parseExpression(Lowest)
		if err != nil {
			return nil, err
		}
		param, ok := expr.(*ast.DefinitionExpression)
		if !ok {
			return nil, NewSyntaxError(start, "Expect parameter 'name: Type'.")
		}
		params = append(params, param)

		switch parser.peek().Type {
		case token.COMMA:
			parser.advance()
		case token.RIGHT_PAREN:
			parser.advance()
			return params, nil
		default:
			return nil, NewSyntaxError(parser.peek(), "Expect ')' after parameters.", token.COMMA, token.RIGHT_PAREN)
		}
	}
}

func (parser *Parser) ifExpression() (*ast.IfExpression, error) {
	expr := &ast.IfExpression{Token: parser.cur()}
	parser.advance()

	cond, err := parser.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	expr.Condition = cond
	if err := parser.expectPeek(token.LEFT_BRACE, "Expect '{' after if condition."); err != nil {
		return nil, err
	}
	if expr.Consequence, err = parser.block(); err != nil {
		return nil, err
	}
	if !parser.peekIs(token.ELSE) {
		return expr, nil
	}
	parser.advance()

	// else if: the nested if is the only statement of the alternative.
	if parser.peekIs(token.IF) {
		parser.advance()
		nested, err := parser.ifExpression()
		if err != nil {
			return nil, err
		}
		expr.Alternative = &ast.BlockStatement{
			Token:      nested.Token,
			Statements: []ast.Statement{&ast.ExpressionStatement{Expression: nested}},
		}
		return expr, nil
	}
	if err := parser.expectPeek(token.LEFT_BRACE, "Expect '{' after 'else'."); err != nil {
		return nil, err
	}
	if expr.Alternative, err = parser.block(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (parser *Parser) whileExpression() (ast.Expression, error) {
	expr := &ast.WhileExpression{Token: parser.cur()}
	parser.advance()

	cond, err := parser.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	expr.Condition = cond
	if err := parser.expectPeek(token.LEFT_BRACE, "Expect '{' after while condition."); err != nil {
		return nil, err
	}
	if expr.Consequence, err = parser.block(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (parser *Parser) loopExpression() (ast.Expression, error) {
	expr := &ast.LoopExpression{Token: parser.cur()}
	if err := parser.expectPeek(token.LEFT_BRACE, "Expect '{' after 'loop'."); err != nil {
		return nil, err
	}
	body, err := parser.block()
	if err != nil {
		return nil, err
	}
	expr.Body = body
	return expr, nil
}

func (parser *Parser) classLiteral() (ast.Expression, error) {
	class := &ast.ClassLiteral{Token: parser.cur()}
	parser.advance()

	start := parser.cur()
	nameExpr, err := parser.parseExpression(Equals)
	if err != nil {
		return nil, err
	}
	name, ok := nameExpr.(*ast.Identifier)
	if !ok {
		return nil, NewSyntaxError(start, "Expect class name.")
	}
	class.Name = name

	if parser.peekIs(token.COLON) {
		parser.advance()
		parser.advance()
		if class.Base, err = parser.textExpression(Equals, "Expect base class name after ':'."); err != nil {
			return nil, err
		}
	}
	if err := parser.expectPeek(token.LEFT_BRACE, "Expect '{' before class body."); err != nil {
		return nil, err
	}
	if class.Body, err = parser.block(); err != nil {
		return nil, err
	}
	return class, nil
}

// textExpression parses an expression at prec that must name something.
func (parser *Parser) textExpression(prec Precedence, message string) (ast.TextExpression, error) {
	start := parser.cur()
	expr, err := parser.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	text, ok := expr.(ast.TextExpression)
	if !ok {
		return nil, NewSyntaxError(start, message)
	}
	return text, nil
}

func (parser *Parser) expectPeek(typ token.Type, message string) error {
	if parser.peekIs(typ) {
		parser.advance()
		return nil
	}
	return NewSyntaxError(parser.peek(), message, typ)
}

// annotate stamps the parser's filename onto err.
func (parser *Parser) annotate(err error) error {
	if parser.filename == "" {
		return err
	}
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.WithFile(parser.filename)
	}
	var lexErr *scanner.LexError
	if errors.As(err, &lexErr) {
		return lexErr.WithFile(parser.filename)
	}
	return err
}

func (parser *Parser) cur() token.Token  { return parser.tokens.Current() }
func (parser *Parser) peek() token.Token { return parser.tokens.Peek() }
func (parser *Parser) advance()          { parser.tokens.Advance() }

func (parser *Parser) curIs(typ token.Type) bool  { return parser.cur().Type == typ }
func (parser *Parser) peekIs(typ token.Type) bool { return parser.peek().Type == typ }
