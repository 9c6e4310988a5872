/*
Package rewrite implements an engine for in-place rewriting of trees.

A Pipeline holds an ordered list of rules. It walks a tree depth-first and
offers every location (post-order) to its rules. The first rule which wants
to change something returns an Operation. The pipeline applies it and
schedules a re-walk of every location the operation invalidated, ahead of all
other pending work. A location is therefore driven to a local fixed point
before the pipeline resumes walking unrelated parts of the tree. When no
pending work is left, no rule wants to change anything anywhere in the tree.

Rules never modify a tree themselves; they describe changes as Operations:

    rule := rewrite.Rule{
        Name: "drop-empty",
        Rewrite: func(loc rewrite.Location, env *rewrite.Environment) rewrite.Operation {
            if n, ok := loc.Node().(*ast.EmptyStatement); ok && n != nil && loc.InList() {
                return rewrite.Remove(loc)
            }
            return nil
        },
    }
    p := rewrite.NewPipeline("cleanup", []rewrite.Rule{rule})
    stats, err := p.Process(tree, nil)

The pipeline does not guarantee termination. Rules which keep re-triggering
each other will loop forever; tests should use WithOperationLimit.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rewrite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'astopt.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("astopt.rewrite")
}
