package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/astopt/ast"
)

type keyType int8

const (
	noKey keyType = iota
	fieldKey
	indexKey
)

// Key addresses a child within its parent: either a field name of a node
// or an index into a list.
type Key struct {
	t     keyType
	field string
	index int
}

// FieldKey creates a key for a schema field.
func FieldKey(name string) Key {
	return Key{t: fieldKey, field: name}
}

// IndexKey creates a key for a list position.
func IndexKey(i int) Key {
	return Key{t: indexKey, index: i}
}

// IsIndex is true for list keys.
func (k Key) IsIndex() bool {
	return k.t == indexKey
}

// IsField is true for field keys.
func (k Key) IsField() bool {
	return k.t == fieldKey
}

// Field returns the field name of a field key, "" otherwise.
func (k Key) Field() string {
	return k.field
}

// Index returns the position of an index key, -1 otherwise.
func (k Key) Index() int {
	if k.t != indexKey {
		return -1
	}
	return k.index
}

func (k Key) String() string {
	switch k.t {
	case fieldKey:
		return "." + k.field
	case indexKey:
		return fmt.Sprintf("[%d]", k.index)
	}
	return ""
}

// --- Locations -------------------------------------------------------------

// Location is an immutable coordinate into a tree: an element (a node or a
// list), the location of its parent and the key under which the parent holds
// the element. For a (non-stale) location loc it holds that
//
//     loc.Parent().Child(loc.Key()).Node() == loc.Node()
//
// Locations are values. They are never updated by edits; after an edit,
// locations computed before may be stale (see Refresh).
type Location struct {
	elem   ast.Element
	parent *Location
	key    Key
}

// Root creates a parentless location for the root of a tree.
func Root(n ast.Node) Location {
	return Location{elem: n}
}

// Child returns the location of a child element. Keys are not checked against
// the schema: an unknown field or an out-of-range index yields an empty
// location.
func (loc Location) Child(key Key) Location {
	parent := loc
	child := Location{parent: &parent, key: key}
	switch key.t {
	case fieldKey:
		if n, ok := loc.elem.(ast.Node); ok && n != nil {
			child.elem = n.Child(key.field)
		}
	case indexKey:
		if l, ok := loc.elem.(*ast.List); ok && key.index >= 0 && key.index < l.Len() {
			child.elem = l.At(key.index)
		}
	}
	return child
}

// Field is a shortcut for loc.Child(FieldKey(name)).
func (loc Location) Field(name string) Location {
	return loc.Child(FieldKey(name))
}

// Index is a shortcut for loc.Child(IndexKey(i)).
func (loc Location) Index(i int) Location {
	return loc.Child(IndexKey(i))
}

// Element returns the node or list at loc, or nil.
func (loc Location) Element() ast.Element {
	return loc.elem
}

// Node returns the node at loc, or nil if loc holds a list or is empty.
func (loc Location) Node() ast.Node {
	if n, ok := loc.elem.(ast.Node); ok {
		return n
	}
	return nil
}

// List returns the list at loc, or nil if loc holds a node or is empty.
func (loc Location) List() *ast.List {
	if l, ok := loc.elem.(*ast.List); ok {
		return l
	}
	return nil
}

// IsEmpty is true if loc holds neither a node nor a list.
func (loc Location) IsEmpty() bool {
	return loc.elem == nil
}

// Parent returns the location of the parent element. The second result is
// false for the root.
func (loc Location) Parent() (Location, bool) {
	if loc.parent == nil {
		return Location{}, false
	}
	return *loc.parent, true
}

// IsRoot is true if loc has no parent.
func (loc Location) IsRoot() bool {
	return loc.parent == nil
}

// Key returns the key of loc within its parent.
func (loc Location) Key() Key {
	return loc.key
}

// InList is true if loc is an element of a list.
func (loc Location) InList() bool {
	return loc.key.t == indexKey
}

// Owner returns the node holding loc: the parent node for a field, the
// node holding the list for a list element. The second result is false
// for the root.
func (loc Location) Owner() (Location, bool) {
	p := loc.parent
	for p != nil && p.List() != nil {
		p = p.parent
	}
	if p == nil {
		return Location{}, false
	}
	return *p, true
}

// Depth returns the number of ancestors of loc.
func (loc Location) Depth() int {
	d := 0
	for p := loc.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Refresh re-derives loc against the current state of the tree. List
// positions are re-found by identity of the element, fields are re-checked.
// The second result is false if the element at loc (or of an ancestor) is no
// longer attached at the place loc remembers.
func (loc Location) Refresh() (Location, bool) {
	if loc.parent == nil {
		return loc, true
	}
	parent, ok := loc.parent.Refresh()
	if !ok {
		return Location{}, false
	}
	fresh := Location{elem: loc.elem, parent: &parent, key: loc.key}
	switch p := parent.elem.(type) {
	case *ast.List:
		n, isnode := loc.elem.(ast.Node)
		if !isnode || loc.key.t != indexKey {
			return Location{}, false
		}
		if loc.key.index < p.Len() && p.At(loc.key.index) == n {
			return fresh, true
		}
		i := p.IndexOf(n)
		if i < 0 {
			return Location{}, false
		}
		fresh.key = IndexKey(i)
		return fresh, true
	case ast.Node:
		if p == nil || loc.key.t != fieldKey {
			return Location{}, false
		}
		if p.Child(loc.key.field) != loc.elem {
			return Location{}, false
		}
		return fresh, true
	}
	return Location{}, false
}

func (loc Location) String() string {
	var keys []string
	l := &loc
	for ; l.parent != nil; l = l.parent {
		keys = append(keys, l.key.String())
	}
	var sb strings.Builder
	sb.WriteString(describe(l.elem))
	for i := len(keys) - 1; i >= 0; i-- {
		sb.WriteString(keys[i])
	}
	if loc.parent != nil {
		sb.WriteString("=")
		sb.WriteString(describe(loc.elem))
	}
	return sb.String()
}

func describe(e ast.Element) string {
	switch x := e.(type) {
	case nil:
		return "<nil>"
	case *ast.List:
		return fmt.Sprintf("List(%d)", x.Len())
	case ast.Node:
		return x.Kind().String()
	}
	return "?"
}
