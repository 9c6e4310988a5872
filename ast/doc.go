/*
Package ast implements a tree representation for ECMAScript programs which
is suited for in-place rewriting.

Nodes are typed records. Every node type has a static schema, i.e. an ordered
list of named fields, each of which holds either a single child node or a
*List of children. Generic tree code (walkers, rewriters, validators) never
needs to know a concrete node type: it asks the schema for the field names of
a Kind and gets at the children with Node.Child(…) and Node.SetChild(…).

    x := &ast.BinaryExpression{
        Operator: "+",
        Left:     &ast.LiteralNumericExpression{Value: 1},
        Right:    &ast.IdentifierExpression{Name: "a"},
    }
    for _, f := range ast.Fields(x.Kind()) {
        fmt.Println(f.Name, ast.Source(x.Child(f.Name).(ast.Node)))
    }

    // Output:
    left 1
    right a

Attributes like operators, names and literal values are plain struct fields
and are not part of the schema. They are never visited by tree walkers.

Parsing program text into a tree and generating program text from a tree are
not part of this package. Source(…) renders a tree as ECMAScript-like source;
it is meant for debugging and testing.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'astopt.ast'.
func tracer() tracing.Trace {
	return tracing.Select("astopt.ast")
}
