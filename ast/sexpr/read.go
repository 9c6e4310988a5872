package sexpr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/npillmayer/astopt/ast"
)

// ErrSyntax is wrapped by all errors reporting malformed input.
var ErrSyntax = errors.New("s-expr syntax error")

// Read reads a single tree from input.
func Read(input string) (ast.Node, error) {
	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	r := &reader{toks: toks}
	n, err := r.node()
	if err != nil {
		return nil, err
	}
	if t := r.peek(); t.typ != tokEOF {
		return nil, r.errorf("expected end of input, have %s", t)
	}
	return n, nil
}

// MustRead is like Read, but panics on error. It is intended for fixtures.
func MustRead(input string) ast.Node {
	n, err := Read(input)
	if err != nil {
		panic(err)
	}
	return n
}

type reader struct {
	toks []token
	pos  int
}

func (r *reader) peek() token {
	return r.toks[r.pos]
}

func (r *reader) next() token {
	t := r.toks[r.pos]
	if t.typ != tokEOF {
		r.pos++
	}
	return t
}

func (r *reader) expect(typ int) (token, error) {
	t := r.next()
	if t.typ != typ {
		return t, r.errorf("expected %s, have %s", tokenNames[typ], t)
	}
	return t, nil
}

func (r *reader) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

// node reads (Kind attr… field…).
func (r *reader) node() (ast.Node, error) {
	if _, err := r.expect(tokLParen); err != nil {
		return nil, err
	}
	t, err := r.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	kind, ok := ast.KindByName(t.lexeme)
	if !ok {
		return nil, r.errorf("unknown node type %s", t)
	}
	n := ast.New(kind)
	if err = r.attributes(n); err != nil {
		return nil, err
	}
	for _, f := range ast.Fields(kind) {
		if r.peek().typ == tokRParen {
			if !f.List && !f.Optional {
				return nil, r.errorf("%s: missing field '%s'", kind, f.Name)
			}
			continue
		}
		if f.List {
			l, err := r.list(f)
			if err != nil {
				return nil, err
			}
			n.SetChild(f.Name, l)
			continue
		}
		if t := r.peek(); t.typ == tokIdent && t.lexeme == "nil" {
			r.next()
			continue
		}
		child, err := r.child(f.Accepts)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", kind, f.Name, err)
		}
		n.SetChild(f.Name, child)
	}
	if _, err := r.expect(tokRParen); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *reader) list(f ast.Field) (*ast.List, error) {
	if _, err := r.expect(tokLBrack); err != nil {
		return nil, err
	}
	l := ast.NewList()
	for r.peek().typ != tokRBrack {
		if r.peek().typ == tokEOF {
			return nil, r.errorf("unterminated list '%s'", f.Name)
		}
		child, err := r.child(f.Accepts)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", f.Name, l.Len(), err)
		}
		l.Append(child)
	}
	r.next()
	return l, nil
}

// child reads a node or a shortcut for a node.
func (r *reader) child(c ast.Category) (ast.Node, error) {
	var n ast.Node
	t := r.peek()
	switch t.typ {
	case tokLParen:
		var err error
		if n, err = r.node(); err != nil {
			return nil, err
		}
	case tokNumber:
		r.next()
		f, err := strconv.ParseFloat(t.lexeme, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, r.errorf("malformed number %s", t)
		}
		n = &ast.LiteralNumericExpression{Value: f}
	case tokString:
		r.next()
		s, err := strconv.Unquote(t.lexeme)
		if err != nil {
			return nil, r.errorf("malformed string %s", t)
		}
		n = &ast.LiteralStringExpression{Value: s}
	case tokIdent:
		r.next()
		switch {
		case c == ast.BindingCategory:
			n = &ast.BindingIdentifier{Name: t.lexeme}
		case t.lexeme == "true" || t.lexeme == "false":
			n = &ast.LiteralBooleanExpression{Value: t.lexeme == "true"}
		case t.lexeme == "null":
			n = &ast.LiteralNullExpression{}
		default:
			n = &ast.IdentifierExpression{Name: t.lexeme}
		}
	default:
		return nil, r.errorf("unexpected %s", t)
	}
	if !c.Accepts(n) {
		return nil, r.errorf("%s is not a %s (at column %d)", n.Kind(), c, t.col)
	}
	return n, nil
}

// attributes reads the non-schema fields of a node.
func (r *reader) attributes(n ast.Node) error {
	var err error
	switch x := n.(type) {
	case *ast.IdentifierExpression:
		x.Name, err = r.name()
	case *ast.BindingIdentifier:
		x.Name, err = r.name()
	case *ast.FunctionDeclaration:
		x.Name, err = r.name()
	case *ast.StaticMemberExpression:
		x.Property, err = r.name()
	case *ast.BreakStatement:
		x.Label = r.label()
	case *ast.ContinueStatement:
		x.Label = r.label()
	case *ast.BinaryExpression:
		x.Operator, err = r.operator()
	case *ast.UnaryExpression:
		x.Operator, err = r.operator()
	case *ast.LiteralNumericExpression:
		x.Value, err = r.number()
	case *ast.LiteralStringExpression:
		var t token
		if t, err = r.expect(tokString); err == nil {
			if x.Value, err = strconv.Unquote(t.lexeme); err != nil {
				err = r.errorf("malformed string %s", t)
			}
		}
	case *ast.LiteralBooleanExpression:
		t := r.next()
		if t.typ != tokIdent || (t.lexeme != "true" && t.lexeme != "false") {
			return r.errorf("expected boolean, have %s", t)
		}
		x.Value = t.lexeme == "true"
	}
	return err
}

func (r *reader) name() (string, error) {
	t := r.next()
	switch t.typ {
	case tokIdent:
		return t.lexeme, nil
	case tokString:
		s, err := strconv.Unquote(t.lexeme)
		if err != nil {
			return "", r.errorf("malformed string %s", t)
		}
		return s, nil
	}
	return "", r.errorf("expected name, have %s", t)
}

func (r *reader) label() string {
	if t := r.peek(); t.typ == tokIdent {
		r.next()
		return t.lexeme
	}
	return ""
}

func (r *reader) operator() (string, error) {
	t := r.next()
	if t.typ != tokOperator && t.typ != tokIdent { // typeof, void, in, …
		return "", r.errorf("expected operator, have %s", t)
	}
	return t.lexeme, nil
}

// number reads a number attribute, including NaN, Infinity and - Infinity.
func (r *reader) number() (float64, error) {
	t := r.next()
	sign := 1
	if t.typ == tokOperator && t.lexeme == "-" {
		sign = -1
		t = r.next()
	}
	switch {
	case t.typ == tokIdent && t.lexeme == "Infinity":
		return math.Inf(sign), nil
	case t.typ == tokIdent && t.lexeme == "NaN" && sign > 0:
		return math.NaN(), nil
	case t.typ == tokNumber && sign > 0:
		f, err := strconv.ParseFloat(t.lexeme, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, r.errorf("malformed number %s", t)
		}
		return f, nil
	}
	return 0, r.errorf("expected number, have %s", t)
}
