package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// --- Containers ------------------------------------------------------------

// Script is the root node of a program.
type Script struct {
	Statements *List
}

func (n *Script) isElement() {}
func (n *Script) Kind() Kind { return ScriptKind }

func (n *Script) Child(field string) Element {
	if field == "statements" {
		return listElem(n.Statements)
	}
	return nil
}

func (n *Script) SetChild(field string, e Element) {
	if field != "statements" {
		noSuchField(n.Kind(), field)
	}
	n.Statements = asList(n.Kind(), field, e)
}

// FunctionBody holds the statements of a function.
type FunctionBody struct {
	Statements *List
}

func (n *FunctionBody) isElement() {}
func (n *FunctionBody) Kind() Kind { return FunctionBodyKind }

func (n *FunctionBody) Child(field string) Element {
	if field == "statements" {
		return listElem(n.Statements)
	}
	return nil
}

func (n *FunctionBody) SetChild(field string, e Element) {
	if field != "statements" {
		noSuchField(n.Kind(), field)
	}
	n.Statements = asList(n.Kind(), field, e)
}

// Block holds the statements of a block statement.
type Block struct {
	Statements *List
}

func (n *Block) isElement() {}
func (n *Block) Kind() Kind { return BlockKind }

func (n *Block) Child(field string) Element {
	if field == "statements" {
		return listElem(n.Statements)
	}
	return nil
}

func (n *Block) SetChild(field string, e Element) {
	if field != "statements" {
		noSuchField(n.Kind(), field)
	}
	n.Statements = asList(n.Kind(), field, e)
}

// BindingIdentifier is a name in binding position, e.g. a parameter.
type BindingIdentifier struct {
	Name string
}

func (n *BindingIdentifier) isElement()                   {}
func (n *BindingIdentifier) Kind() Kind                   { return BindingIdentifierKind }
func (n *BindingIdentifier) Child(string) Element         { return nil }
func (n *BindingIdentifier) SetChild(f string, _ Element) { noSuchField(n.Kind(), f) }

// --- Statements ------------------------------------------------------------

// BlockStatement is a braced statement sequence: { … }.
type BlockStatement struct {
	Block *Block
}

func (n *BlockStatement) isElement()     {}
func (n *BlockStatement) statementNode() {}
func (n *BlockStatement) Kind() Kind     { return BlockStatementKind }

func (n *BlockStatement) Child(field string) Element {
	if field == "block" && n.Block != nil {
		return n.Block
	}
	return nil
}

func (n *BlockStatement) SetChild(field string, e Element) {
	if field != "block" {
		noSuchField(n.Kind(), field)
	}
	if e == nil {
		n.Block = nil
		return
	}
	b, ok := e.(*Block)
	if !ok {
		panic("BlockStatement.block must hold a Block")
	}
	n.Block = b
}

// ExpressionStatement is an expression evaluated for its effect.
type ExpressionStatement struct {
	Expression Expression
}

func (n *ExpressionStatement) isElement()     {}
func (n *ExpressionStatement) statementNode() {}
func (n *ExpressionStatement) Kind() Kind     { return ExpressionStatementKind }

func (n *ExpressionStatement) Child(field string) Element {
	if field == "expression" {
		return exprElem(n.Expression)
	}
	return nil
}

func (n *ExpressionStatement) SetChild(field string, e Element) {
	if field != "expression" {
		noSuchField(n.Kind(), field)
	}
	n.Expression = asExpression(n.Kind(), field, e)
}

// ReturnStatement is 'return' with an optional expression.
type ReturnStatement struct {
	Expression Expression // may be nil
}

func (n *ReturnStatement) isElement()     {}
func (n *ReturnStatement) statementNode() {}
func (n *ReturnStatement) Kind() Kind     { return ReturnStatementKind }

func (n *ReturnStatement) Child(field string) Element {
	if field == "expression" {
		return exprElem(n.Expression)
	}
	return nil
}

func (n *ReturnStatement) SetChild(field string, e Element) {
	if field != "expression" {
		noSuchField(n.Kind(), field)
	}
	n.Expression = asExpression(n.Kind(), field, e)
}

// ThrowStatement is 'throw' with an expression.
type ThrowStatement struct {
	Expression Expression
}

func (n *ThrowStatement) isElement()     {}
func (n *ThrowStatement) statementNode() {}
func (n *ThrowStatement) Kind() Kind     { return ThrowStatementKind }

func (n *ThrowStatement) Child(field string) Element {
	if field == "expression" {
		return exprElem(n.Expression)
	}
	return nil
}

func (n *ThrowStatement) SetChild(field string, e Element) {
	if field != "expression" {
		noSuchField(n.Kind(), field)
	}
	n.Expression = asExpression(n.Kind(), field, e)
}

// BreakStatement is 'break' with an optional label.
type BreakStatement struct {
	Label string
}

func (n *BreakStatement) isElement()                   {}
func (n *BreakStatement) statementNode()               {}
func (n *BreakStatement) Kind() Kind                   { return BreakStatementKind }
func (n *BreakStatement) Child(string) Element         { return nil }
func (n *BreakStatement) SetChild(f string, _ Element) { noSuchField(n.Kind(), f) }

// ContinueStatement is 'continue' with an optional label.
type ContinueStatement struct {
	Label string
}

func (n *ContinueStatement) isElement()                   {}
func (n *ContinueStatement) statementNode()               {}
func (n *ContinueStatement) Kind() Kind                   { return ContinueStatementKind }
func (n *ContinueStatement) Child(string) Element         { return nil }
func (n *ContinueStatement) SetChild(f string, _ Element) { noSuchField(n.Kind(), f) }

// EmptyStatement is a lone ';'.
type EmptyStatement struct{}

func (n *EmptyStatement) isElement()                   {}
func (n *EmptyStatement) statementNode()               {}
func (n *EmptyStatement) Kind() Kind                   { return EmptyStatementKind }
func (n *EmptyStatement) Child(string) Element         { return nil }
func (n *EmptyStatement) SetChild(f string, _ Element) { noSuchField(n.Kind(), f) }

// IfStatement is 'if' with an optional 'else' branch.
type IfStatement struct {
	Test       Expression
	Consequent Statement
	Alternate  Statement // may be nil
}

func (n *IfStatement) isElement()     {}
func (n *IfStatement) statementNode() {}
func (n *IfStatement) Kind() Kind     { return IfStatementKind }

func (n *IfStatement) Child(field string) Element {
	switch field {
	case "test":
		return exprElem(n.Test)
	case "consequent":
		return stmtElem(n.Consequent)
	case "alternate":
		return stmtElem(n.Alternate)
	}
	return nil
}

func (n *IfStatement) SetChild(field string, e Element) {
	switch field {
	case "test":
		n.Test = asExpression(n.Kind(), field, e)
	case "consequent":
		n.Consequent = asStatement(n.Kind(), field, e)
	case "alternate":
		n.Alternate = asStatement(n.Kind(), field, e)
	default:
		noSuchField(n.Kind(), field)
	}
}

// WhileStatement is a 'while' loop.
type WhileStatement struct {
	Test Expression
	Body Statement
}

func (n *WhileStatement) isElement()     {}
func (n *WhileStatement) statementNode() {}
func (n *WhileStatement) Kind() Kind     { return WhileStatementKind }

func (n *WhileStatement) Child(field string) Element {
	switch field {
	case "test":
		return exprElem(n.Test)
	case "body":
		return stmtElem(n.Body)
	}
	return nil
}

func (n *WhileStatement) SetChild(field string, e Element) {
	switch field {
	case "test":
		n.Test = asExpression(n.Kind(), field, e)
	case "body":
		n.Body = asStatement(n.Kind(), field, e)
	default:
		noSuchField(n.Kind(), field)
	}
}

// FunctionDeclaration declares a named function.
type FunctionDeclaration struct {
	Name   string
	Params *List // of *BindingIdentifier
	Body   *FunctionBody
}

func (n *FunctionDeclaration) isElement()     {}
func (n *FunctionDeclaration) statementNode() {}
func (n *FunctionDeclaration) Kind() Kind     { return FunctionDeclarationKind }

func (n *FunctionDeclaration) Child(field string) Element {
	switch field {
	case "params":
		return listElem(n.Params)
	case "body":
		if n.Body != nil {
			return n.Body
		}
	}
	return nil
}

func (n *FunctionDeclaration) SetChild(field string, e Element) {
	switch field {
	case "params":
		n.Params = asList(n.Kind(), field, e)
	case "body":
		if e == nil {
			n.Body = nil
			return
		}
		b, ok := e.(*FunctionBody)
		if !ok {
			panic("FunctionDeclaration.body must hold a FunctionBody")
		}
		n.Body = b
	default:
		noSuchField(n.Kind(), field)
	}
}

// --- Expressions -----------------------------------------------------------

// BinaryExpression is an infix operation, including the comma operator.
type BinaryExpression struct {
	Operator string
	Left     Expression
	Right    Expression
}

func (n *BinaryExpression) isElement()      {}
func (n *BinaryExpression) expressionNode() {}
func (n *BinaryExpression) Kind() Kind      { return BinaryExpressionKind }

func (n *BinaryExpression) Child(field string) Element {
	switch field {
	case "left":
		return exprElem(n.Left)
	case "right":
		return exprElem(n.Right)
	}
	return nil
}

func (n *BinaryExpression) SetChild(field string, e Element) {
	switch field {
	case "left":
		n.Left = asExpression(n.Kind(), field, e)
	case "right":
		n.Right = asExpression(n.Kind(), field, e)
	default:
		noSuchField(n.Kind(), field)
	}
}

// UnaryExpression is a prefix operation.
type UnaryExpression struct {
	Operator string
	Operand  Expression
}

func (n *UnaryExpression) isElement()      {}
func (n *UnaryExpression) expressionNode() {}
func (n *UnaryExpression) Kind() Kind      { return UnaryExpressionKind }

func (n *UnaryExpression) Child(field string) Element {
	if field == "operand" {
		return exprElem(n.Operand)
	}
	return nil
}

func (n *UnaryExpression) SetChild(field string, e Element) {
	if field != "operand" {
		noSuchField(n.Kind(), field)
	}
	n.Operand = asExpression(n.Kind(), field, e)
}

// ConditionalExpression is 'test ? consequent : alternate'.
type ConditionalExpression struct {
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (n *ConditionalExpression) isElement()      {}
func (n *ConditionalExpression) expressionNode() {}
func (n *ConditionalExpression) Kind() Kind      { return ConditionalExpressionKind }

func (n *ConditionalExpression) Child(field string) Element {
	switch field {
	case "test":
		return exprElem(n.Test)
	case "consequent":
		return exprElem(n.Consequent)
	case "alternate":
		return exprElem(n.Alternate)
	}
	return nil
}

func (n *ConditionalExpression) SetChild(field string, e Element) {
	switch field {
	case "test":
		n.Test = asExpression(n.Kind(), field, e)
	case "consequent":
		n.Consequent = asExpression(n.Kind(), field, e)
	case "alternate":
		n.Alternate = asExpression(n.Kind(), field, e)
	default:
		noSuchField(n.Kind(), field)
	}
}

// CallExpression is a function call.
type CallExpression struct {
	Callee    Expression
	Arguments *List // of Expression
}

func (n *CallExpression) isElement()      {}
func (n *CallExpression) expressionNode() {}
func (n *CallExpression) Kind() Kind      { return CallExpressionKind }

func (n *CallExpression) Child(field string) Element {
	switch field {
	case "callee":
		return exprElem(n.Callee)
	case "arguments":
		return listElem(n.Arguments)
	}
	return nil
}

func (n *CallExpression) SetChild(field string, e Element) {
	switch field {
	case "callee":
		n.Callee = asExpression(n.Kind(), field, e)
	case "arguments":
		n.Arguments = asList(n.Kind(), field, e)
	default:
		noSuchField(n.Kind(), field)
	}
}

// StaticMemberExpression is a property access 'object.property'.
type StaticMemberExpression struct {
	Object   Expression
	Property string
}

func (n *StaticMemberExpression) isElement()      {}
func (n *StaticMemberExpression) expressionNode() {}
func (n *StaticMemberExpression) Kind() Kind      { return StaticMemberExpressionKind }

func (n *StaticMemberExpression) Child(field string) Element {
	if field == "object" {
		return exprElem(n.Object)
	}
	return nil
}

func (n *StaticMemberExpression) SetChild(field string, e Element) {
	if field != "object" {
		noSuchField(n.Kind(), field)
	}
	n.Object = asExpression(n.Kind(), field, e)
}

// AssignmentExpression is 'binding = expression'.
type AssignmentExpression struct {
	Binding    Expression
	Expression Expression
}

func (n *AssignmentExpression) isElement()      {}
func (n *AssignmentExpression) expressionNode() {}
func (n *AssignmentExpression) Kind() Kind      { return AssignmentExpressionKind }

func (n *AssignmentExpression) Child(field string) Element {
	switch field {
	case "binding":
		return exprElem(n.Binding)
	case "expression":
		return exprElem(n.Expression)
	}
	return nil
}

func (n *AssignmentExpression) SetChild(field string, e Element) {
	switch field {
	case "binding":
		n.Binding = asExpression(n.Kind(), field, e)
	case "expression":
		n.Expression = asExpression(n.Kind(), field, e)
	default:
		noSuchField(n.Kind(), field)
	}
}

// IdentifierExpression is a reference to a name.
type IdentifierExpression struct {
	Name string
}

func (n *IdentifierExpression) isElement()                   {}
func (n *IdentifierExpression) expressionNode()              {}
func (n *IdentifierExpression) Kind() Kind                   { return IdentifierExpressionKind }
func (n *IdentifierExpression) Child(string) Element         { return nil }
func (n *IdentifierExpression) SetChild(f string, _ Element) { noSuchField(n.Kind(), f) }

// LiteralNumericExpression is a number literal.
type LiteralNumericExpression struct {
	Value float64
}

func (n *LiteralNumericExpression) isElement()                   {}
func (n *LiteralNumericExpression) expressionNode()              {}
func (n *LiteralNumericExpression) Kind() Kind                   { return LiteralNumericExpressionKind }
func (n *LiteralNumericExpression) Child(string) Element         { return nil }
func (n *LiteralNumericExpression) SetChild(f string, _ Element) { noSuchField(n.Kind(), f) }

// LiteralStringExpression is a string literal.
type LiteralStringExpression struct {
	Value string
}

func (n *LiteralStringExpression) isElement()                   {}
func (n *LiteralStringExpression) expressionNode()              {}
func (n *LiteralStringExpression) Kind() Kind                   { return LiteralStringExpressionKind }
func (n *LiteralStringExpression) Child(string) Element         { return nil }
func (n *LiteralStringExpression) SetChild(f string, _ Element) { noSuchField(n.Kind(), f) }

// LiteralBooleanExpression is 'true' or 'false'.
type LiteralBooleanExpression struct {
	Value bool
}

func (n *LiteralBooleanExpression) isElement()                   {}
func (n *LiteralBooleanExpression) expressionNode()              {}
func (n *LiteralBooleanExpression) Kind() Kind                   { return LiteralBooleanExpressionKind }
func (n *LiteralBooleanExpression) Child(string) Element         { return nil }
func (n *LiteralBooleanExpression) SetChild(f string, _ Element) { noSuchField(n.Kind(), f) }

// LiteralNullExpression is 'null'.
type LiteralNullExpression struct{}

func (n *LiteralNullExpression) isElement()                   {}
func (n *LiteralNullExpression) expressionNode()              {}
func (n *LiteralNullExpression) Kind() Kind                   { return LiteralNullExpressionKind }
func (n *LiteralNullExpression) Child(string) Element         { return nil }
func (n *LiteralNullExpression) SetChild(f string, _ Element) { noSuchField(n.Kind(), f) }

// Compile-time checks for statement and expression membership.
var (
	_ Statement  = (*BlockStatement)(nil)
	_ Statement  = (*ExpressionStatement)(nil)
	_ Statement  = (*ReturnStatement)(nil)
	_ Statement  = (*ThrowStatement)(nil)
	_ Statement  = (*BreakStatement)(nil)
	_ Statement  = (*ContinueStatement)(nil)
	_ Statement  = (*EmptyStatement)(nil)
	_ Statement  = (*IfStatement)(nil)
	_ Statement  = (*WhileStatement)(nil)
	_ Statement  = (*FunctionDeclaration)(nil)
	_ Expression = (*BinaryExpression)(nil)
	_ Expression = (*UnaryExpression)(nil)
	_ Expression = (*ConditionalExpression)(nil)
	_ Expression = (*CallExpression)(nil)
	_ Expression = (*StaticMemberExpression)(nil)
	_ Expression = (*AssignmentExpression)(nil)
	_ Expression = (*IdentifierExpression)(nil)
	_ Expression = (*LiteralNumericExpression)(nil)
	_ Expression = (*LiteralStringExpression)(nil)
	_ Expression = (*LiteralBooleanExpression)(nil)
	_ Expression = (*LiteralNullExpression)(nil)
	_ Node       = (*Script)(nil)
	_ Node       = (*FunctionBody)(nil)
	_ Node       = (*Block)(nil)
	_ Node       = (*BindingIdentifier)(nil)
)
