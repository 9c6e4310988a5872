package astopt

import (
	"github.com/npillmayer/astopt/ast"
	"github.com/npillmayer/astopt/rewrite"
	"github.com/npillmayer/astopt/rewrite/rules"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'astopt.rewrite'
func tracer() tracing.Trace {
	return tracing.Select("astopt.rewrite")
}

// Optimize runs the standard phases of rules on a tree, see rules.Phases.
// The tree is modified in place. The statistics returned accumulate over
// all phases.
func Optimize(root ast.Node, opts ...rewrite.Option) (rewrite.Stats, error) {
	return OptimizeWith(root, rewrite.NewEnvironment("astopt"), opts...)
}

// OptimizeWith runs the standard phases of rules on a tree, sharing env
// between them. Clients should use an env for one tree only.
// If a phase fails, subsequent phases are not run.
func OptimizeWith(root ast.Node, env *rewrite.Environment, opts ...rewrite.Option) (rewrite.Stats, error) {
	var total rewrite.Stats
	if env == nil {
		env = rewrite.NewEnvironment("astopt")
	}
	for i, phase := range rules.Phases() {
		p := rewrite.NewPipeline(phaseName(i), phase, opts...)
		stats, err := p.Process(root, env)
		total.Add(stats)
		if err != nil {
			return total, err
		}
	}
	tracer().Infof("optimized tree: %s", total)
	return total, nil
}

func phaseName(i int) string {
	switch i {
	case 0:
		return "phase-1"
	case 1:
		return "phase-2"
	}
	return "phase"
}
