/*
Package astopt is a toolbox for optimizing abstract syntax trees of an
ECMAScript-like language by term rewriting.

Trees are rewritten in place by ordered sets of rules, until no rule wants
to change anything. Package structure is as follows:

■ ast: Package ast defines the node types of the tree, its static schema, a
source printer and tree validation. Sub-package sexpr reads and writes trees
in an s-expression notation.

■ constant: Package constant implements primitive values, their conversions
and operators, and the canonical tree fragments used to denote them.

■ rewrite: Package rewrite implements tree locations, edit operations and a
scheduler (the pipeline) applying rules until a fixpoint is reached. The rule
catalog lives in sub-package rules.

The base package offers a convenience function to run the standard phases of
rules on a tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package astopt
