package constant

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"

	"github.com/npillmayer/astopt/ast"
)

type memoKey struct {
	t    Type
	bits uint64
	str  string
	b    bool
}

func keyFor(v Value) memoKey {
	k := memoKey{t: v.t, str: v.str, b: v.b}
	if v.t == NumberType {
		if math.IsNaN(v.num) {
			k.bits = math.Float64bits(math.NaN())
		} else {
			k.bits = math.Float64bits(v.num)
		}
	}
	return k
}

// Table holds the canonical fragments for one tree. Fragments must not be
// shared between trees: one table per tree and rewrite session.
//
// Tables are not safe for concurrent use.
type Table struct {
	memo map[memoKey]ast.Expression
	tags map[ast.Node]Value
	zero ast.Expression
	one  ast.Expression
}

// NewTable creates a table holding the pre-defined canonical fragments for
// 0, 1, -0, NaN, ±Infinity, undefined, true, false and null.
func NewTable() *Table {
	t := &Table{
		memo: make(map[memoKey]ast.Expression),
		tags: make(map[ast.Node]Value),
	}
	t.zero = t.canonical(Num(0), &ast.LiteralNumericExpression{Value: 0})
	t.one = t.canonical(Num(1), &ast.LiteralNumericExpression{Value: 1})
	negZero := t.canonical(Num(math.Copysign(0, -1)),
		&ast.UnaryExpression{Operator: "-", Operand: t.zero})
	t.canonical(Num(math.NaN()),
		&ast.BinaryExpression{Operator: "/", Left: t.zero, Right: t.zero})
	t.canonical(Num(math.Inf(1)),
		&ast.BinaryExpression{Operator: "/", Left: t.one, Right: t.zero})
	t.canonical(Num(math.Inf(-1)),
		&ast.BinaryExpression{Operator: "/", Left: t.one, Right: negZero})
	t.canonical(Undefined, &ast.UnaryExpression{Operator: "void", Operand: t.zero})
	t.canonical(Bool(true), &ast.LiteralBooleanExpression{Value: true})
	t.canonical(Bool(false), &ast.LiteralBooleanExpression{Value: false})
	t.canonical(Null, &ast.LiteralNullExpression{})
	return t
}

func (t *Table) canonical(v Value, x ast.Expression) ast.Expression {
	t.memo[keyFor(v)] = x
	t.tags[x] = v
	tracer().Debugf("canonical fragment for %s: %s", v, ast.Source(x))
	return x
}

// Node returns the canonical fragment for a value. Repeated calls with the
// same value (by SameValue) return the identical node.
//
// Node panics for an invalid Value. Rule implementations get their values from
// the operator tables, so an invalid value always is a programming error.
func (t *Table) Node(v Value) ast.Expression {
	if !v.IsValid() {
		panic(fmt.Errorf("cannot create canonical fragment: %w", ErrNotConstant))
	}
	if x, ok := t.memo[keyFor(v)]; ok {
		return x
	}
	var x ast.Expression
	switch v.t {
	case NumberType:
		if v.num < 0 { // -Infinity and -0 are pre-defined
			x = &ast.UnaryExpression{Operator: "-", Operand: t.Node(Num(-v.num))}
		} else {
			x = &ast.LiteralNumericExpression{Value: v.num}
		}
	case StringType:
		x = &ast.LiteralStringExpression{Value: v.str}
	default:
		panic(fmt.Sprintf("no canonical fragment for %s", v))
	}
	return t.canonical(v, x)
}

// FromNode returns the value a node denotes, if it is statically known.
// This is the case for canonical fragments, for literals, and for unary
// minus applied to a numeric literal. Everything else is absent.
func (t *Table) FromNode(n ast.Node) Option {
	if n == nil {
		return None()
	}
	if v, ok := t.tags[n]; ok {
		return Some(v)
	}
	switch x := n.(type) {
	case *ast.UnaryExpression:
		if lit, ok := x.Operand.(*ast.LiteralNumericExpression); ok && x.Operator == "-" {
			return Some(Num(-lit.Value))
		}
	case *ast.LiteralNumericExpression:
		return Some(Num(x.Value))
	case *ast.LiteralStringExpression:
		return Some(Str(x.Value))
	case *ast.LiteralBooleanExpression:
		return Some(Bool(x.Value))
	case *ast.LiteralNullExpression:
		return Some(Null)
	}
	return None()
}

// IsConstant is true if n is a canonical fragment of t.
func (t *Table) IsConstant(n ast.Node) bool {
	if n == nil {
		return false
	}
	_, ok := t.tags[n]
	return ok
}

// Len returns the number of canonical fragments created so far.
func (t *Table) Len() int {
	return len(t.memo)
}
