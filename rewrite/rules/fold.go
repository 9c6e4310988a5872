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

// FoldConstant replaces binary and unary expressions whose operands have
// statically known values by the canonical fragment for the result.
// Canonical fragments themselves are never folded again.
func FoldConstant() rewrite.Rule {
	return rewrite.Rule{Name: "fold-constant", Rewrite: foldConstant}
}

func foldConstant(loc rewrite.Location, env *rewrite.Environment) rewrite.Operation {
	n := loc.Node()
	if n == nil || env.Constants.IsConstant(n) {
		return nil
	}
	switch x := n.(type) {
	case *ast.BinaryExpression:
		if !constant.IsBinaryOperator(x.Operator) {
			return nil
		}
		l, ok := env.Constants.FromNode(x.Left).Get()
		if !ok {
			return nil
		}
		r, ok := env.Constants.FromNode(x.Right).Get()
		if !ok {
			return nil
		}
		v, _ := constant.Binary(x.Operator, l, r)
		tracer().Debugf("folding %s %s %s = %s", l, x.Operator, r, v)
		return rewrite.Replace(loc, env.Constants.Node(v))
	case *ast.UnaryExpression:
		return foldUnary(loc, x, env)
	}
	return nil
}

func foldUnary(loc rewrite.Location, x *ast.UnaryExpression, env *rewrite.Environment) rewrite.Operation {
	if !constant.IsUnaryOperator(x.Operator) {
		return nil
	}
	arg, ok := env.Constants.FromNode(x.Operand).Get()
	if !ok {
		return nil
	}
	v, _ := constant.Unary(x.Operator, arg)
	tracer().Debugf("folding %s %s = %s", x.Operator, arg, v)
	return rewrite.Replace(loc, env.Constants.Node(v))
}

// FoldConditional replaces a conditional expression having a test with a
// statically known value by the branch the test selects. It folds unary
// expressions, too, the same way FoldConstant does.
func FoldConditional() rewrite.Rule {
	return rewrite.Rule{Name: "fold-conditional", Rewrite: foldConditional}
}

func foldConditional(loc rewrite.Location, env *rewrite.Environment) rewrite.Operation {
	switch x := loc.Node().(type) {
	case *ast.ConditionalExpression:
		test, ok := env.Constants.FromNode(x.Test).Get()
		if !ok {
			return nil
		}
		if constant.ToBoolean(test) {
			return rewrite.Replace(loc, x.Consequent)
		}
		return rewrite.Replace(loc, x.Alternate)
	case *ast.UnaryExpression:
		if env.Constants.IsConstant(x) {
			return nil // canonical fragments are final
		}
		return foldUnary(loc, x, env)
	}
	return nil
}
