package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// Kind is the type tag of a node. It determines the node's field shape.
type Kind int8

// Node kinds. The set of kinds is closed.
const (
	NoKind Kind = iota
	ScriptKind
	FunctionBodyKind
	BlockKind
	BlockStatementKind
	ExpressionStatementKind
	ReturnStatementKind
	ThrowStatementKind
	BreakStatementKind
	ContinueStatementKind
	EmptyStatementKind
	IfStatementKind
	WhileStatementKind
	FunctionDeclarationKind
	BindingIdentifierKind
	BinaryExpressionKind
	UnaryExpressionKind
	ConditionalExpressionKind
	CallExpressionKind
	StaticMemberExpressionKind
	AssignmentExpressionKind
	IdentifierExpressionKind
	LiteralNumericExpressionKind
	LiteralStringExpressionKind
	LiteralBooleanExpressionKind
	LiteralNullExpressionKind
	maxKind
)

var kindNames = [...]string{
	NoKind:                       "<none>",
	ScriptKind:                   "Script",
	FunctionBodyKind:             "FunctionBody",
	BlockKind:                    "Block",
	BlockStatementKind:           "BlockStatement",
	ExpressionStatementKind:      "ExpressionStatement",
	ReturnStatementKind:          "ReturnStatement",
	ThrowStatementKind:           "ThrowStatement",
	BreakStatementKind:           "BreakStatement",
	ContinueStatementKind:        "ContinueStatement",
	EmptyStatementKind:           "EmptyStatement",
	IfStatementKind:              "IfStatement",
	WhileStatementKind:           "WhileStatement",
	FunctionDeclarationKind:      "FunctionDeclaration",
	BindingIdentifierKind:        "BindingIdentifier",
	BinaryExpressionKind:         "BinaryExpression",
	UnaryExpressionKind:          "UnaryExpression",
	ConditionalExpressionKind:    "ConditionalExpression",
	CallExpressionKind:           "CallExpression",
	StaticMemberExpressionKind:   "StaticMemberExpression",
	AssignmentExpressionKind:     "AssignmentExpression",
	IdentifierExpressionKind:     "IdentifierExpression",
	LiteralNumericExpressionKind: "LiteralNumericExpression",
	LiteralStringExpressionKind:  "LiteralStringExpression",
	LiteralBooleanExpressionKind: "LiteralBooleanExpression",
	LiteralNullExpressionKind:    "LiteralNullExpression",
}

func (k Kind) String() string {
	if k < 0 || k >= maxKind {
		return fmt.Sprintf("<kind %d>", int(k))
	}
	return kindNames[k]
}

// KindByName returns the kind for a node type name, e.g. "IfStatement".
func KindByName(name string) (Kind, bool) {
	for k := ScriptKind; k < maxKind; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return NoKind, false
}

// --- Elements --------------------------------------------------------------

// Element is anything which may occupy a position in a tree: either a Node
// or a *List of nodes.
type Element interface {
	isElement()
}

// Node is a typed tree node. Child(…) and SetChild(…) give generic access to
// the fields listed in the node kind's schema (see Fields).
//
// Child returns nil for an empty optional field as well as for a field name
// not in the schema. SetChild panics if field is not in the schema or if e
// is of a type the field cannot hold. Setting a single-child field to nil
// empties it; setting a list field to nil sets it to an empty list.
type Node interface {
	Element
	Kind() Kind
	Child(field string) Element
	SetChild(field string, e Element)
}

// Statement is a node which may appear in a statement list.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node denoting a value.
type Expression interface {
	Node
	expressionNode()
}

// --- Lists -----------------------------------------------------------------

// List is an ordered sequence of child nodes. Lists are always referenced by
// pointer, so their identity is stable while their content changes.
type List struct {
	items []Node
}

func (l *List) isElement() {}

// NewList creates a list from nodes.
func NewList(nodes ...Node) *List {
	l := &List{items: make([]Node, 0, len(nodes))}
	l.items = append(l.items, nodes...)
	return l
}

// StatementList creates a list from statements.
func StatementList(stmts ...Statement) *List {
	l := &List{items: make([]Node, len(stmts))}
	for i, s := range stmts {
		l.items[i] = s
	}
	return l
}

// ExpressionList creates a list from expressions.
func ExpressionList(exprs ...Expression) *List {
	l := &List{items: make([]Node, len(exprs))}
	for i, x := range exprs {
		l.items[i] = x
	}
	return l
}

// Len returns the number of nodes in l. A nil list has length 0.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// At returns the node at position i.
func (l *List) At(i int) Node {
	return l.items[i]
}

// Set replaces the node at position i.
func (l *List) Set(i int, n Node) {
	l.items[i] = n
}

// RemoveAt deletes the node at position i. Subsequent nodes shift down by one.
func (l *List) RemoveAt(i int) {
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = nil
	l.items = l.items[:len(l.items)-1]
}

// Append appends nodes to the end of l.
func (l *List) Append(nodes ...Node) {
	l.items = append(l.items, nodes...)
}

// IndexOf returns the position of node n in l (by identity), or -1.
func (l *List) IndexOf(n Node) int {
	for i, item := range l.items {
		if item == n {
			return i
		}
	}
	return -1
}

// Nodes returns the nodes of l. Clients must not modify the returned slice.
func (l *List) Nodes() []Node {
	if l == nil {
		return nil
	}
	return l.items
}

// --- Helpers for SetChild --------------------------------------------------

func asExpression(owner Kind, field string, e Element) Expression {
	if e == nil {
		return nil
	}
	if x, ok := e.(Expression); ok {
		return x
	}
	panic(fmt.Sprintf("%s.%s cannot hold %T", owner, field, e))
}

func asStatement(owner Kind, field string, e Element) Statement {
	if e == nil {
		return nil
	}
	if s, ok := e.(Statement); ok {
		return s
	}
	panic(fmt.Sprintf("%s.%s cannot hold %T", owner, field, e))
}

func asList(owner Kind, field string, e Element) *List {
	if e == nil {
		return NewList()
	}
	if l, ok := e.(*List); ok && l != nil {
		return l
	}
	panic(fmt.Sprintf("%s.%s cannot hold %T", owner, field, e))
}

func noSuchField(owner Kind, field string) {
	panic(fmt.Sprintf("%s has no field '%s'", owner, field))
}

func listElem(l *List) Element {
	if l == nil {
		return nil
	}
	return l
}

func exprElem(x Expression) Element {
	if x == nil {
		return nil
	}
	return x
}

func stmtElem(s Statement) Element {
	if s == nil {
		return nil
	}
	return s
}
