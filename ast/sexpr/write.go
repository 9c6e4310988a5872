package sexpr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/astopt/ast"
)

var plainName = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// reserved names cannot be written as plain identifiers
var reserved = map[string]bool{"nil": true, "true": true, "false": true, "null": true}

// Write renders a tree on a single line. Read(Write(n)) yields a tree equal
// to n.
func Write(n ast.Node) string {
	w := &writer{}
	w.node(n, false)
	return w.String()
}

// WriteIndented renders a tree with one statement per line, indented by
// nesting depth.
func WriteIndented(n ast.Node) string {
	w := &writer{indent: true}
	w.node(n, false)
	return w.String()
}

type writer struct {
	strings.Builder
	indent bool
	depth  int
}

func (w *writer) newline() {
	if w.indent {
		w.WriteByte('\n')
		w.WriteString(strings.Repeat("  ", w.depth))
	} else {
		w.WriteByte(' ')
	}
}

func (w *writer) node(n ast.Node, short bool) {
	if n == nil {
		w.WriteString("nil")
		return
	}
	if short && w.shortcut(n) {
		return
	}
	w.WriteByte('(')
	w.WriteString(n.Kind().String())
	w.attributes(n)
	for _, f := range ast.Fields(n.Kind()) {
		child := n.Child(f.Name)
		w.WriteByte(' ')
		if f.List {
			w.list(child, f.Accepts == ast.StatementCategory)
			continue
		}
		if c, ok := child.(ast.Node); ok {
			w.node(c, true)
		} else {
			w.WriteString("nil")
		}
	}
	w.WriteByte(')')
}

func (w *writer) list(e ast.Element, statements bool) {
	l, _ := e.(*ast.List)
	if l.Len() == 0 {
		w.WriteString("[]")
		return
	}
	w.WriteByte('[')
	if statements && w.indent {
		w.depth++
		for _, n := range l.Nodes() {
			w.newline()
			w.node(n, true)
		}
		w.depth--
		w.newline()
	} else {
		for i, n := range l.Nodes() {
			if i > 0 {
				w.WriteByte(' ')
			}
			w.node(n, true)
		}
	}
	w.WriteByte(']')
}

// shortcut writes n without the enclosing node, if possible.
func (w *writer) shortcut(n ast.Node) bool {
	switch x := n.(type) {
	case *ast.IdentifierExpression:
		if plainName.MatchString(x.Name) && !reserved[x.Name] {
			w.WriteString(x.Name)
			return true
		}
	case *ast.BindingIdentifier:
		if plainName.MatchString(x.Name) {
			w.WriteString(x.Name)
			return true
		}
	case *ast.LiteralNumericExpression:
		if !math.IsNaN(x.Value) && !math.IsInf(x.Value, 0) {
			w.WriteString(numberText(x.Value))
			return true
		}
	case *ast.LiteralStringExpression:
		w.WriteString(strconv.Quote(x.Value))
		return true
	case *ast.LiteralBooleanExpression:
		w.WriteString(strconv.FormatBool(x.Value))
		return true
	case *ast.LiteralNullExpression:
		w.WriteString("null")
		return true
	}
	return false
}

func (w *writer) attributes(n ast.Node) {
	switch x := n.(type) {
	case *ast.IdentifierExpression:
		w.name(x.Name)
	case *ast.BindingIdentifier:
		w.name(x.Name)
	case *ast.FunctionDeclaration:
		w.name(x.Name)
	case *ast.StaticMemberExpression:
		w.name(x.Property)
	case *ast.BreakStatement:
		w.label(x.Label)
	case *ast.ContinueStatement:
		w.label(x.Label)
	case *ast.BinaryExpression:
		w.WriteByte(' ')
		w.WriteString(x.Operator)
	case *ast.UnaryExpression:
		w.WriteByte(' ')
		w.WriteString(x.Operator)
	case *ast.LiteralNumericExpression:
		w.WriteByte(' ')
		switch {
		case math.IsNaN(x.Value):
			w.WriteString("NaN")
		case math.IsInf(x.Value, 1):
			w.WriteString("Infinity")
		case math.IsInf(x.Value, -1):
			w.WriteString("- Infinity")
		default:
			w.WriteString(numberText(x.Value))
		}
	case *ast.LiteralStringExpression:
		w.WriteByte(' ')
		w.WriteString(strconv.Quote(x.Value))
	case *ast.LiteralBooleanExpression:
		w.WriteByte(' ')
		w.WriteString(strconv.FormatBool(x.Value))
	}
}

func numberText(f float64) string {
	if f == 0 && math.Signbit(f) {
		return "-0"
	}
	return ast.FormatNumber(f)
}

func (w *writer) name(s string) {
	w.WriteByte(' ')
	if plainName.MatchString(s) && !reserved[s] {
		w.WriteString(s)
		return
	}
	w.WriteString(strconv.Quote(s))
}

func (w *writer) label(s string) {
	if s != "" {
		w.WriteByte(' ')
		w.WriteString(s)
	}
}
