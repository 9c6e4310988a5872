/*
Package rules is a catalog of rewrite rules for ECMAScript trees.

All rules are local: they look at a location and, maybe, at its children,
and never at the context of a location. They are meant to be run by a
rewrite.Pipeline, which re-offers every changed region of a tree to all
rules until nothing changes any more.

The catalog:

    Deblock            { s }            ⇒  s
                       {}               ⇒  ;
    DeadCode           return a; f();   ⇒  return a;
    SequenceFusion     a(); b(); c();   ⇒  a(), b(), c();
    CompletionFusion   a(); return b;   ⇒  return a(), b;
    IfToConditional    if (t) return 1; else return 2;  ⇒  return t ? 1 : 2;
    FoldConstant       1 + 2            ⇒  3
    FoldConditional    true ? a : b     ⇒  a

PhaseOne and PhaseTwo are the standard rule sets for optimizing a script;
PhaseOne prepares the tree for PhaseTwo.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rules

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'astopt.rules'.
func tracer() tracing.Trace {
	return tracing.Select("astopt.rules")
}
