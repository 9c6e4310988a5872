package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/astopt/constant"
)

// Rewriter is a function
//
//     location × env ↦ operation
//
// i.e., a tree rewriting function. A rewriter returns nil if it does not
// want to change anything at the location. It must not modify the tree
// itself.
type Rewriter func(loc Location, env *Environment) Operation

// Rule is a named rewriter. Rules are offered every location of a tree
// (lists included), after the location's children have been visited.
type Rule struct {
	Name    string
	Rewrite Rewriter
}

// Environment holds the state rules share during rewriting of one tree.
// An environment must not be used for more than one tree, but may be used
// for several pipeline runs on the same tree.
type Environment struct {
	Name      string
	Constants *constant.Table // canonical constant fragments of the tree
}

// NewEnvironment creates an environment with an empty constant table.
func NewEnvironment(name string) *Environment {
	return &Environment{
		Name:      name,
		Constants: constant.NewTable(),
	}
}
