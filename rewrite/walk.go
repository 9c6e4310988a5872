package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/astopt/ast"
)

// Visitor holds optional hooks for a traversal. Enter is called before the
// children of a location are visited, Leave after all of them have been
// visited.
type Visitor struct {
	Enter func(Location)
	Leave func(Location)
}

type frame struct {
	loc      Location
	children []Location // snapshot, taken before any hook is called
	next     int
}

// Traversal is a lazy depth-first walk over a sub-tree. Every call to Next
// advances the walk to the next location in post-order, so a client may
// interleave several traversals or stop at any time.
//
// The children of a node are determined once, when the walk arrives at the
// node and before the Enter hook is called. Changing the tree during the walk
// therefore does not change which children will be visited. Empty children
// are skipped. Both nodes and lists are visited.
type Traversal struct {
	visitor Visitor
	stack   []frame
	count   int
}

// DepthFirst creates a traversal of the sub-tree at root.
func DepthFirst(root Location, visitor Visitor) *Traversal {
	t := &Traversal{visitor: visitor}
	t.push(root)
	return t
}

func (t *Traversal) push(loc Location) {
	if loc.IsEmpty() {
		return
	}
	t.stack = append(t.stack, frame{loc: loc, children: children(loc)})
	if t.visitor.Enter != nil {
		t.visitor.Enter(loc)
	}
}

func children(loc Location) []Location {
	var locs []Location
	switch x := loc.elem.(type) {
	case *ast.List:
		locs = make([]Location, x.Len())
		for i := range x.Nodes() {
			locs[i] = loc.Index(i)
		}
	case ast.Node:
		fields := ast.Fields(x.Kind())
		locs = make([]Location, len(fields))
		for i, f := range fields {
			locs[i] = loc.Field(f.Name)
		}
	}
	return locs
}

// Next returns the next location in post-order, after calling the Leave hook
// for it. The second result is false if the traversal is exhausted.
func (t *Traversal) Next() (Location, bool) {
	for len(t.stack) > 0 {
		top := &t.stack[len(t.stack)-1]
		if top.next < len(top.children) {
			child := top.children[top.next]
			top.next++
			t.push(child)
			continue
		}
		loc := top.loc
		t.stack = t.stack[:len(t.stack)-1]
		if t.visitor.Leave != nil {
			t.visitor.Leave(loc)
		}
		t.count++
		return loc, true
	}
	return Location{}, false
}

// Done is true if the traversal is exhausted.
func (t *Traversal) Done() bool {
	return len(t.stack) == 0
}

// Count returns the number of locations visited so far.
func (t *Traversal) Count() int {
	return t.count
}

// Walk visits every location of the sub-tree at root.
func Walk(root Location, visitor Visitor) int {
	t := DepthFirst(root, visitor)
	for !t.Done() {
		t.Next()
	}
	return t.Count()
}
