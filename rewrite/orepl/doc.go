/*
Package orepl/main provides an interactive command line tool (O.REPL) for
experiments with tree optimization. Users enter trees in s-expression
notation (see package ast/sexpr) and run rule phases on them, watching
the tree change.

Lines starting with a colon are commands:

    :phase1   run phase 1 (block flattening, dead code)
    :phase2   run phase 2 (fusion, lowering, folding)
    :opt      run both phases
    :rule R   run the single rule R of the catalog
    :rules    list the rule catalog
    :tree     display the current tree
    :src      print the current tree as source text
    :sexpr    print the current tree as an s-expression
    :diff     show the source changes since the tree has been entered
    :stats    print statistics of the last run
    :load F   read a tree from file F
    :reset    restore the tree as entered
    :quit     leave O.REPL

Every other line is read as a tree and replaces the current one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'astopt.repl'
func tracer() tracing.Trace {
	return tracing.Select("astopt.repl")
}
