/*
Package sexpr reads and writes trees in a parenthesized notation.

A node is written as its kind, followed by its attributes (operator, name,
value, label) and then its schema fields in order. List fields are enclosed
in brackets, empty fields are written as 'nil':

    (Script [
        (IfStatement t
            (ReturnStatement 1)
            (ReturnStatement (BinaryExpression + a "x")))
    ])

Numbers, strings, true, false, null and plain identifiers may be written
without the enclosing node where a field accepts an expression; 'a' above is
short for (IdentifierExpression a), 1 for (LiteralNumericExpression 1).
A binding identifier may be written as a plain name. Trailing empty fields
may be left out. Semicolons start a comment, extending to the end of the line.

The notation is used for test fixtures and by the interactive optimizer
(package orepl). It is not a parser for ECMAScript source text.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sexpr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'astopt.ast'.
func tracer() tracing.Trace {
	return tracing.Select("astopt.ast")
}
