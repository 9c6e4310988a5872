package rules

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/astopt/ast"
	"github.com/npillmayer/astopt/constant"
	"github.com/npillmayer/astopt/rewrite"
)

// Deblock replaces a block statement holding a single statement by that
// statement, and an empty block statement by an empty statement.
func Deblock() rewrite.Rule {
	return rewrite.Rule{Name: "deblock", Rewrite: deblock}
}

func deblock(loc rewrite.Location, env *rewrite.Environment) rewrite.Operation {
	b, ok := loc.Node().(*ast.BlockStatement)
	if !ok || b.Block == nil {
		return nil
	}
	switch b.Block.Statements.Len() {
	case 0:
		return rewrite.Replace(loc, &ast.EmptyStatement{})
	case 1:
		return rewrite.Replace(loc, b.Block.Statements.At(0))
	}
	return nil
}

// IfToConditional lowers an if/else statement to a conditional expression,
// if both branches are returns, both are throws or both are expression
// statements:
//
//     if (t) return a; else return b;   ⇒  return t ? a : b;
//     if (t) throw a; else throw b;     ⇒  throw t ? a : b;
//     if (t) a(); else b();             ⇒  t ? a() : b();
//
// A missing return value is taken as undefined. If-statements without an
// else branch are not changed.
func IfToConditional() rewrite.Rule {
	return rewrite.Rule{Name: "if-to-conditional", Rewrite: ifToConditional}
}

func ifToConditional(loc rewrite.Location, env *rewrite.Environment) rewrite.Operation {
	ifs, ok := loc.Node().(*ast.IfStatement)
	if !ok || ifs.Alternate == nil {
		// TODO lower an if without else to '&&' when not in completion position
		return nil
	}
	cond := func(c, a ast.Expression) *ast.ConditionalExpression {
		return &ast.ConditionalExpression{Test: ifs.Test, Consequent: c, Alternate: a}
	}
	switch c := ifs.Consequent.(type) {
	case *ast.ReturnStatement:
		a, ok := ifs.Alternate.(*ast.ReturnStatement)
		if !ok || (c.Expression == nil && a.Expression == nil) {
			return nil
		}
		return rewrite.Replace(loc, &ast.ReturnStatement{
			Expression: cond(orUndefined(c.Expression, env), orUndefined(a.Expression, env)),
		})
	case *ast.ThrowStatement:
		a, ok := ifs.Alternate.(*ast.ThrowStatement)
		if !ok {
			return nil
		}
		return rewrite.Replace(loc, &ast.ThrowStatement{Expression: cond(c.Expression, a.Expression)})
	case *ast.ExpressionStatement:
		a, ok := ifs.Alternate.(*ast.ExpressionStatement)
		if !ok {
			return nil
		}
		return rewrite.Replace(loc, &ast.ExpressionStatement{Expression: cond(c.Expression, a.Expression)})
	}
	return nil
}

func orUndefined(x ast.Expression, env *rewrite.Environment) ast.Expression {
	if x != nil {
		return x
	}
	return env.Constants.Node(constant.Undefined)
}
