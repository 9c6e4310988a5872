package rules

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/astopt/ast"
	"github.com/npillmayer/astopt/rewrite"
)

// listField returns the list at loc, if loc is a list-valued field of its
// parent node.
func listField(loc rewrite.Location) (*ast.List, bool) {
	l := loc.List()
	if l == nil {
		return nil, false
	}
	parent, ok := loc.Parent()
	if !ok || parent.Node() == nil {
		return nil, false
	}
	return l, ast.IsListField(parent.Node().Kind(), loc.Key().Field())
}

func isExpressionStatement(n ast.Node) bool {
	_, ok := n.(*ast.ExpressionStatement)
	return ok
}

// isTerminator is true for statements after which the rest of a statement
// list is unreachable.
func isTerminator(n ast.Node) bool {
	switch n.(type) {
	case *ast.ReturnStatement, *ast.ThrowStatement, *ast.BreakStatement, *ast.ContinueStatement:
		return true
	}
	return false
}

// sequence joins two expressions by the comma operator. Comma expressions
// on the right are re-associated to the left.
func sequence(left, right ast.Expression) ast.Expression {
	if r, ok := right.(*ast.BinaryExpression); ok && r.Operator == "," {
		return sequence(sequence(left, r.Left), r.Right)
	}
	return &ast.BinaryExpression{Operator: ",", Left: left, Right: right}
}

// --- Sequence fusion -------------------------------------------------------

// SequenceFusion fuses runs of consecutive expression statements into a
// single one, holding a (left-associated) comma expression.
func SequenceFusion() rewrite.Rule {
	return rewrite.Rule{Name: "sequence-fusion", Rewrite: fuseSequences}
}

func fuseSequences(loc rewrite.Location, env *rewrite.Environment) rewrite.Operation {
	l, ok := listField(loc)
	if !ok {
		return nil
	}
	var replacements []rewrite.Operation
	var absorbed []int
	for i := 0; i < l.Len(); i++ {
		first, ok := l.At(i).(*ast.ExpressionStatement)
		if !ok {
			continue
		}
		j := i + 1
		for j < l.Len() && isExpressionStatement(l.At(j)) {
			j++
		}
		if j == i+1 {
			continue
		}
		seq := first.Expression
		for k := i + 1; k < j; k++ {
			seq = sequence(seq, l.At(k).(*ast.ExpressionStatement).Expression)
			absorbed = append(absorbed, k)
		}
		replacements = append(replacements, rewrite.Replace(loc.Index(i), &ast.ExpressionStatement{
			Expression: seq,
		}))
		tracer().Debugf("fusing %d expression statements at %d", j-i, i)
		i = j // l.At(j) is no expression statement
	}
	if len(replacements) == 0 {
		return nil
	}
	return rewrite.Batch(append(replacements, rewrite.RemoveAll(loc, absorbed...))...)
}

// --- Dead code -------------------------------------------------------------

// DeadCode removes the statements following a return, throw, break or
// continue in a statement list.
func DeadCode() rewrite.Rule {
	return rewrite.Rule{Name: "drop-dead", Rewrite: dropDead}
}

func dropDead(loc rewrite.Location, env *rewrite.Environment) rewrite.Operation {
	l, ok := listField(loc)
	if !ok {
		return nil
	}
	for i := 0; i < l.Len(); i++ {
		if !isTerminator(l.At(i)) {
			continue
		}
		if i+1 == l.Len() {
			return nil
		}
		dead := make([]int, 0, l.Len()-i-1)
		for k := i + 1; k < l.Len(); k++ {
			dead = append(dead, k)
		}
		tracer().Debugf("dropping %d unreachable statements after %s", len(dead), l.At(i).Kind())
		return rewrite.RemoveAll(loc, dead...)
	}
	return nil
}

// --- Completion fusion -----------------------------------------------------

// CompletionFusion fuses an expression statement into an immediately
// following return or throw statement. A return without an expression is
// left alone.
func CompletionFusion() rewrite.Rule {
	return rewrite.Rule{Name: "completion-fusion", Rewrite: fuseCompletion}
}

func fuseCompletion(loc rewrite.Location, env *rewrite.Environment) rewrite.Operation {
	l, ok := listField(loc)
	if !ok {
		return nil
	}
	for i := 1; i < l.Len(); i++ {
		prev, ok := l.At(i - 1).(*ast.ExpressionStatement)
		if !ok {
			continue
		}
		var fused ast.Statement
		switch s := l.At(i).(type) {
		case *ast.ReturnStatement:
			if s.Expression == nil {
				continue
			}
			fused = &ast.ReturnStatement{Expression: sequence(prev.Expression, s.Expression)}
		case *ast.ThrowStatement:
			fused = &ast.ThrowStatement{Expression: sequence(prev.Expression, s.Expression)}
		default:
			continue
		}
		tracer().Debugf("fusing expression statement into %s", l.At(i).Kind())
		return rewrite.Batch(
			rewrite.Replace(loc.Index(i-1), fused),
			rewrite.Remove(loc.Index(i)),
		)
	}
	return nil
}
