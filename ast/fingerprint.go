package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/cnf/structhash"
)

// snapshot is what gets hashed for a fingerprint. Source alone does not
// distinguish all trees (e.g. a numeric literal -1 from '-' applied to 1),
// therefore the pre-order sequence of kinds is part of it.
type snapshot struct {
	Source string
	Kinds  []string
}

// Fingerprint returns a hash of a tree's structure and content. Equal trees
// have equal fingerprints; a tree which has been changed by a rewrite will
// (with overwhelming probability) have a different one.
func Fingerprint(root Node) string {
	snap := snapshot{Source: Source(root)}
	collectKinds(root, &snap.Kinds)
	hash, err := structhash.Hash(snap, 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint tree: %v", err)
		return ""
	}
	return hash
}

func collectKinds(n Node, kinds *[]string) {
	if n == nil {
		*kinds = append(*kinds, "-")
		return
	}
	*kinds = append(*kinds, n.Kind().String())
	for _, f := range Fields(n.Kind()) {
		switch c := n.Child(f.Name).(type) {
		case *List:
			*kinds = append(*kinds, "[")
			for _, item := range c.Nodes() {
				collectKinds(item, kinds)
			}
			*kinds = append(*kinds, "]")
		case Node:
			collectKinds(c, kinds)
		default:
			*kinds = append(*kinds, "-")
		}
	}
}
