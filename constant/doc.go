/*
Package constant maps primitive values to canonical tree fragments and back.

Rewrite rules which fold expressions need to know the value a sub-tree
denotes, and need a tree fragment for a value they have computed. A Table
provides both directions. Fragments handed out by a table are canonical:
asking twice for the same value returns the same (pointer-identical) node,
and canonical nodes are tagged with their value, so recognizing them is
cheap. Canonical fragments must not be modified.

Values follow ECMAScript primitive semantics: numbers are IEEE-754 doubles
(with distinct negative zero, NaN and infinities), and the operator tables
Binary and Unary implement the language's conversions (ToNumber,
ToString, ToBoolean, ToInt32, …).

Canonical forms are:

    0, 1, 42     numeric literal (non-negative numbers)
    -0           unary '-' applied to canonical 0
    -42          unary '-' applied to canonical 42
    NaN          0 / 0
    Infinity     1 / 0
    -Infinity    1 / -0
    undefined    void 0
    true, false  boolean literal
    null         null literal
    "…"          string literal

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package constant

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'astopt.constant'.
func tracer() tracing.Trace {
	return tracing.Select("astopt.constant")
}
