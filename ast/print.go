package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"
	"strconv"
	"strings"
)

// Operator precedence levels, loosest first.
const (
	precSequence int = iota
	precAssignment
	precConditional
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precUnary
	precCall
	precPrimary
)

var binaryPrecedence = map[string]int{
	",":          precSequence,
	"||":         precLogicalOr,
	"&&":         precLogicalAnd,
	"|":          precBitOr,
	"^":          precBitXor,
	"&":          precBitAnd,
	"==":         precEquality,
	"!=":         precEquality,
	"===":        precEquality,
	"!==":        precEquality,
	"<":          precRelational,
	"<=":         precRelational,
	">":          precRelational,
	">=":         precRelational,
	"in":         precRelational,
	"instanceof": precRelational,
	"<<":         precShift,
	">>":         precShift,
	">>>":        precShift,
	"+":          precAdditive,
	"-":          precAdditive,
	"*":          precMultiplicative,
	"/":          precMultiplicative,
	"%":          precMultiplicative,
}

func precedence(x Expression) int {
	switch e := x.(type) {
	case *BinaryExpression:
		if p, ok := binaryPrecedence[e.Operator]; ok {
			return p
		}
		return precSequence
	case *UnaryExpression:
		return precUnary
	case *ConditionalExpression:
		return precConditional
	case *AssignmentExpression:
		return precAssignment
	case *CallExpression, *StaticMemberExpression:
		return precCall
	case *LiteralNumericExpression:
		if e.Value < 0 || (e.Value == 0 && math.Signbit(e.Value)) {
			return precUnary
		}
	}
	return precPrimary
}

// Source renders a tree as ECMAScript-like source text on a single line.
// Statements are separated by a single blank. Parentheses are inserted where
// operator precedence requires them.
//
// Source is a debugging aid; it is neither a complete nor a
// round-trip-safe code generator.
func Source(n Node) string {
	if n == nil {
		return ""
	}
	p := &printer{}
	p.node(n)
	return p.String()
}

type printer struct {
	strings.Builder
}

func (p *printer) node(n Node) {
	switch x := n.(type) {
	case Statement:
		p.statement(x)
	case Expression:
		p.expression(x, precSequence)
	case *Script:
		p.statements(x.Statements)
	case *FunctionBody:
		p.braced(x.Statements)
	case *Block:
		p.braced(x.Statements)
	case *BindingIdentifier:
		p.WriteString(x.Name)
	}
}

func (p *printer) statements(l *List) {
	for i, s := range l.Nodes() {
		if i > 0 {
			p.WriteByte(' ')
		}
		p.node(s)
	}
}

func (p *printer) braced(l *List) {
	if l.Len() == 0 {
		p.WriteString("{}")
		return
	}
	p.WriteString("{ ")
	p.statements(l)
	p.WriteString(" }")
}

func (p *printer) statement(s Statement) {
	switch x := s.(type) {
	case *BlockStatement:
		if x.Block == nil {
			p.WriteString("{}")
			return
		}
		p.braced(x.Block.Statements)
	case *ExpressionStatement:
		p.expression(x.Expression, precSequence)
		p.WriteByte(';')
	case *ReturnStatement:
		if x.Expression == nil {
			p.WriteString("return;")
			return
		}
		p.WriteString("return ")
		p.expression(x.Expression, precSequence)
		p.WriteByte(';')
	case *ThrowStatement:
		p.WriteString("throw ")
		p.expression(x.Expression, precSequence)
		p.WriteByte(';')
	case *BreakStatement:
		p.jump("break", x.Label)
	case *ContinueStatement:
		p.jump("continue", x.Label)
	case *EmptyStatement:
		p.WriteByte(';')
	case *IfStatement:
		p.WriteString("if (")
		p.expression(x.Test, precSequence)
		p.WriteString(") ")
		if inner, ok := x.Consequent.(*IfStatement); ok && inner.Alternate == nil && x.Alternate != nil {
			p.WriteString("{ ") // dangling else
			p.statement(inner)
			p.WriteString(" }")
		} else {
			p.child(x.Consequent)
		}
		if x.Alternate != nil {
			p.WriteString(" else ")
			p.child(x.Alternate)
		}
	case *WhileStatement:
		p.WriteString("while (")
		p.expression(x.Test, precSequence)
		p.WriteString(") ")
		p.child(x.Body)
	case *FunctionDeclaration:
		p.WriteString("function ")
		p.WriteString(x.Name)
		p.WriteByte('(')
		for i, param := range x.Params.Nodes() {
			if i > 0 {
				p.WriteString(", ")
			}
			p.node(param)
		}
		p.WriteString(") ")
		if x.Body == nil {
			p.WriteString("{}")
		} else {
			p.braced(x.Body.Statements)
		}
	}
}

func (p *printer) child(s Statement) {
	if s == nil {
		p.WriteByte(';')
		return
	}
	p.statement(s)
}

func (p *printer) jump(keyword, label string) {
	p.WriteString(keyword)
	if label != "" {
		p.WriteByte(' ')
		p.WriteString(label)
	}
	p.WriteByte(';')
}

func (p *printer) expression(x Expression, min int) {
	if x == nil {
		p.WriteString("<nil>")
		return
	}
	if precedence(x) < min {
		p.WriteByte('(')
		defer p.WriteByte(')')
	}
	switch e := x.(type) {
	case *BinaryExpression:
		prec := precedence(e)
		p.expression(e.Left, prec)
		if e.Operator != "," {
			p.WriteByte(' ')
		}
		p.WriteString(e.Operator)
		p.WriteByte(' ')
		p.expression(e.Right, prec+1)
	case *UnaryExpression:
		p.WriteString(e.Operator)
		operand := Source(e.Operand)
		if precedence(e.Operand) < precUnary {
			operand = "(" + operand + ")"
		}
		last := e.Operator[len(e.Operator)-1]
		if isWordChar(last) || (len(operand) > 0 && (last == '-' || last == '+') && operand[0] == last) {
			p.WriteByte(' ')
		}
		p.WriteString(operand)
	case *ConditionalExpression:
		p.expression(e.Test, precLogicalOr)
		p.WriteString(" ? ")
		p.expression(e.Consequent, precAssignment)
		p.WriteString(" : ")
		p.expression(e.Alternate, precAssignment)
	case *AssignmentExpression:
		p.expression(e.Binding, precCall)
		p.WriteString(" = ")
		p.expression(e.Expression, precAssignment)
	case *CallExpression:
		p.expression(e.Callee, precCall)
		p.WriteByte('(')
		for i, arg := range e.Arguments.Nodes() {
			if i > 0 {
				p.WriteString(", ")
			}
			p.expression(arg.(Expression), precAssignment)
		}
		p.WriteByte(')')
	case *StaticMemberExpression:
		p.expression(e.Object, precCall)
		p.WriteByte('.')
		p.WriteString(e.Property)
	case *IdentifierExpression:
		p.WriteString(e.Name)
	case *LiteralNumericExpression:
		if e.Value == 0 && math.Signbit(e.Value) {
			p.WriteString("-0")
		} else {
			p.WriteString(FormatNumber(e.Value))
		}
	case *LiteralStringExpression:
		p.WriteString(strconv.Quote(e.Value))
	case *LiteralBooleanExpression:
		p.WriteString(strconv.FormatBool(e.Value))
	case *LiteralNullExpression:
		p.WriteString("null")
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
