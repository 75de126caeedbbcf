/*
Package parser builds an ast.Ast from a token stream using top-down operator
precedence.

Grammar

	program    --> ( stmt ( ";" | EOF | <after "}"> ) | ";" )* EOF ;
	stmt       --> "let" definition
	             | "return" expr?
	             | "import" text
	             | expr ;
	block      --> "{" ( stmt ( ";" )? | ";" )* "}" ;
	expr       --> prefix ( infix )* ;
	prefix     --> IDENT | NUMBER | STRING | INTERNAL | "true" | "false"
	             | ( "+" | "-" ) expr
	             | "(" expr ")"
	             | "new" ( call | path )
	             | "fn" IDENT? "(" params? ")" ( ":" text )? block
	             | "if" expr block ( "else" ( block | if ) )?
	             | "while" expr block
	             | "loop" block
	             | "class" IDENT ( ":" text )? block ;
	infix      --> ( "+" | "-" | "*" | "/" ) expr
	             | ( "==" | "!=" | "<" | "<=" | ">" | ">=" ) expr
	             | "." expr
	             | ":" text ( "=" expr )?
	             | "=" expr
	             | "(" args? ")"
	             | "[" expr "]" ;
	params     --> definition ( "," definition )* ;
	args       --> expr ( "," expr )* ;
	definition --> IDENT ":" text ( "=" expr )? ;
	text       --> IDENT | STRING | path ;
	path       --> expr ( "." expr )+ ;

Binding powers, loosest first:

	Lowest       everything that is not an infix operator
	Assign       =
	Equals       == != .
	LessGreater  < > <= >=
	Index        [
	Sum          + -
	Product      * /
	Prefix       unary + and -
	Call         (

The right operand of a binary operator is parsed at the operator's own
binding power, so a chain of equal operators groups to the right:
1 - 2 - 3 is 1 - (2 - 3).
*/
package parser
