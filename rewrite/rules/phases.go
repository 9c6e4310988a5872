package rules

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/astopt/rewrite"
)

// PhaseOne is the rule set run first when optimizing a script: block
// flattening and dead-code removal.
func PhaseOne() []rewrite.Rule {
	return []rewrite.Rule{
		Deblock(),
		DeadCode(),
	}
}

// PhaseTwo is the rule set run after PhaseOne: statement fusion, lowering of
// if-statements and folding of constants.
func PhaseTwo() []rewrite.Rule {
	return []rewrite.Rule{
		SequenceFusion(),
		CompletionFusion(),
		IfToConditional(),
		FoldConstant(),
		FoldConditional(),
	}
}

// Phases returns the standard phases, in the order they should run.
func Phases() [][]rewrite.Rule {
	return [][]rewrite.Rule{PhaseOne(), PhaseTwo()}
}

// All returns every rule of the catalog, once.
func All() []rewrite.Rule {
	return append(PhaseOne(), PhaseTwo()...)
}

// ByName finds a rule of the catalog by its name.
func ByName(name string) (rewrite.Rule, bool) {
	for _, r := range All() {
		if r.Name == name {
			return r, true
		}
	}
	return rewrite.Rule{}, false
}
