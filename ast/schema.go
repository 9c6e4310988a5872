package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Category tells which kind of element a field accepts.
type Category int8

// Field categories.
const (
	StatementCategory Category = iota
	ExpressionCategory
	BlockCategory
	FunctionBodyCategory
	BindingCategory
)

func (c Category) String() string {
	switch c {
	case StatementCategory:
		return "statement"
	case ExpressionCategory:
		return "expression"
	case BlockCategory:
		return "block"
	case FunctionBodyCategory:
		return "function body"
	case BindingCategory:
		return "binding"
	}
	return "?"
}

// Field describes one schema field of a node kind.
type Field struct {
	Name     string
	List     bool     // field holds a *List
	Optional bool     // field may be empty (single-child fields only)
	Accepts  Category // category of the child or, for lists, of the list's elements
}

func single(name string, c Category) Field   { return Field{Name: name, Accepts: c} }
func optional(name string, c Category) Field { return Field{Name: name, Optional: true, Accepts: c} }
func list(name string, c Category) Field     { return Field{Name: name, List: true, Accepts: c} }

// schema holds the ordered fields for every kind. Kinds without children
// have no entry.
var schema = [maxKind][]Field{
	ScriptKind:              {list("statements", StatementCategory)},
	FunctionBodyKind:        {list("statements", StatementCategory)},
	BlockKind:               {list("statements", StatementCategory)},
	BlockStatementKind:      {single("block", BlockCategory)},
	ExpressionStatementKind: {single("expression", ExpressionCategory)},
	ReturnStatementKind:     {optional("expression", ExpressionCategory)},
	ThrowStatementKind:      {single("expression", ExpressionCategory)},
	IfStatementKind: {
		single("test", ExpressionCategory),
		single("consequent", StatementCategory),
		optional("alternate", StatementCategory),
	},
	WhileStatementKind: {
		single("test", ExpressionCategory),
		single("body", StatementCategory),
	},
	FunctionDeclarationKind: {
		list("params", BindingCategory),
		single("body", FunctionBodyCategory),
	},
	BinaryExpressionKind: {
		single("left", ExpressionCategory),
		single("right", ExpressionCategory),
	},
	UnaryExpressionKind: {single("operand", ExpressionCategory)},
	ConditionalExpressionKind: {
		single("test", ExpressionCategory),
		single("consequent", ExpressionCategory),
		single("alternate", ExpressionCategory),
	},
	CallExpressionKind: {
		single("callee", ExpressionCategory),
		list("arguments", ExpressionCategory),
	},
	StaticMemberExpressionKind: {single("object", ExpressionCategory)},
	AssignmentExpressionKind: {
		single("binding", ExpressionCategory),
		single("expression", ExpressionCategory),
	},
}

// Fields returns the ordered schema fields of a node kind. Clients must not
// modify the returned slice.
func Fields(k Kind) []Field {
	if k < 0 || k >= maxKind {
		return nil
	}
	return schema[k]
}

// FieldNames returns the ordered field names of a node kind.
func FieldNames(k Kind) []string {
	fields := Fields(k)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// FieldOf looks up the schema field of kind k with a given name.
func FieldOf(k Kind, name string) (Field, bool) {
	for _, f := range Fields(k) {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// IsListField is true if field name of kind k holds a list of children.
func IsListField(k Kind, name string) bool {
	f, ok := FieldOf(k, name)
	return ok && f.List
}

// accepts checks if node n may be put into a field of category c.
func accepts(c Category, n Node) bool {
	switch c {
	case StatementCategory:
		_, ok := n.(Statement)
		return ok
	case ExpressionCategory:
		_, ok := n.(Expression)
		return ok
	case BlockCategory:
		return n.Kind() == BlockKind
	case FunctionBodyCategory:
		return n.Kind() == FunctionBodyKind
	case BindingCategory:
		return n.Kind() == BindingIdentifierKind
	}
	return false
}

// Accepts checks if node n may be put into a field of category c.
func (c Category) Accepts(n Node) bool {
	return n != nil && accepts(c, n)
}

// New creates an empty node of kind k, with all list fields set to empty
// lists. New returns nil for NoKind or an unknown kind.
func New(k Kind) Node {
	var n Node
	switch k {
	case ScriptKind:
		n = &Script{}
	case FunctionBodyKind:
		n = &FunctionBody{}
	case BlockKind:
		n = &Block{}
	case BlockStatementKind:
		n = &BlockStatement{}
	case ExpressionStatementKind:
		n = &ExpressionStatement{}
	case ReturnStatementKind:
		n = &ReturnStatement{}
	case ThrowStatementKind:
		n = &ThrowStatement{}
	case BreakStatementKind:
		n = &BreakStatement{}
	case ContinueStatementKind:
		n = &ContinueStatement{}
	case EmptyStatementKind:
		n = &EmptyStatement{}
	case IfStatementKind:
		n = &IfStatement{}
	case WhileStatementKind:
		n = &WhileStatement{}
	case FunctionDeclarationKind:
		n = &FunctionDeclaration{}
	case BindingIdentifierKind:
		n = &BindingIdentifier{}
	case BinaryExpressionKind:
		n = &BinaryExpression{}
	case UnaryExpressionKind:
		n = &UnaryExpression{}
	case ConditionalExpressionKind:
		n = &ConditionalExpression{}
	case CallExpressionKind:
		n = &CallExpression{}
	case StaticMemberExpressionKind:
		n = &StaticMemberExpression{}
	case AssignmentExpressionKind:
		n = &AssignmentExpression{}
	case IdentifierExpressionKind:
		n = &IdentifierExpression{}
	case LiteralNumericExpressionKind:
		n = &LiteralNumericExpression{}
	case LiteralStringExpressionKind:
		n = &LiteralStringExpression{}
	case LiteralBooleanExpressionKind:
		n = &LiteralBooleanExpression{}
	case LiteralNullExpressionKind:
		n = &LiteralNullExpression{}
	default:
		return nil
	}
	for _, f := range Fields(k) {
		if f.List {
			n.SetChild(f.Name, NewList())
		}
	}
	return n
}
