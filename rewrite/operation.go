package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/astopt/ast"
)

// Errors returned when applying operations.
var (
	ErrNoParent = errors.New("location has no parent")
	ErrFrozen   = errors.New("cannot edit a canonical constant")
	ErrIndex    = errors.New("list index out of range")
	ErrNilNode  = errors.New("cannot replace with nil")
	ErrLimit    = errors.New("operation limit exceeded")
)

// Operation is an edit of a tree. The set of operations is closed: Replace,
// Remove and Batch.
//
// Apply performs the edit. Invalidated returns the locations which have to
// be re-visited after the edit, in the order they have been invalidated.
type Operation interface {
	Apply(env *Environment) error
	Invalidated() []Location
	fmt.Stringer
	isOperation()
}

// ReplaceOp replaces the element at a location by a new node.
type ReplaceOp struct {
	loc Location // new node at the old place
}

// Replace creates an operation which puts fresh at the place of old.
func Replace(old Location, fresh ast.Node) *ReplaceOp {
	return &ReplaceOp{loc: Location{elem: fresh, parent: old.parent, key: old.key}}
}

func (op *ReplaceOp) isOperation() {}

// Location returns the location of the new node.
func (op *ReplaceOp) Location() Location {
	return op.loc
}

// Apply stores the new node into the parent.
func (op *ReplaceOp) Apply(env *Environment) error {
	fresh := op.loc.Node()
	if fresh == nil {
		return fmt.Errorf("%w at %s", ErrNilNode, op.loc)
	}
	parent, err := editableParent(op.loc, env)
	if err != nil {
		return err
	}
	if l := parent.List(); l != nil {
		i := op.loc.key.Index()
		if i < 0 || i >= l.Len() {
			return fmt.Errorf("%w: replace at %d of %d", ErrIndex, i, l.Len())
		}
		l.Set(i, fresh)
		return nil
	}
	parent.Node().SetChild(op.loc.key.Field(), fresh)
	return nil
}

// Invalidated returns the location of the new node and its parent.
func (op *ReplaceOp) Invalidated() []Location {
	if op.loc.parent == nil {
		return []Location{op.loc}
	}
	return []Location{op.loc, *op.loc.parent}
}

func (op *ReplaceOp) String() string {
	return fmt.Sprintf("Replace(%s)", op.loc)
}

// RemoveOp removes the element at a location.
type RemoveOp struct {
	loc Location
}

// Remove creates an operation which removes the element at loc. For a list
// element, subsequent elements shift down by one. A field is emptied.
func Remove(loc Location) *RemoveOp {
	return &RemoveOp{loc: loc}
}

func (op *RemoveOp) isOperation() {}

// Apply deletes the element from its parent.
func (op *RemoveOp) Apply(env *Environment) error {
	parent, err := editableParent(op.loc, env)
	if err != nil {
		return err
	}
	if l := parent.List(); l != nil {
		i := op.loc.key.Index()
		if i < 0 || i >= l.Len() {
			return fmt.Errorf("%w: remove at %d of %d", ErrIndex, i, l.Len())
		}
		l.RemoveAt(i)
		return nil
	}
	parent.Node().SetChild(op.loc.key.Field(), nil)
	return nil
}

// Invalidated returns the parent of the removed element.
func (op *RemoveOp) Invalidated() []Location {
	if op.loc.parent == nil {
		return nil
	}
	return []Location{*op.loc.parent}
}

func (op *RemoveOp) String() string {
	return fmt.Sprintf("Remove(%s)", op.loc)
}

func editableParent(loc Location, env *Environment) (Location, error) {
	parent, ok := loc.Parent()
	if !ok {
		return parent, fmt.Errorf("%w: %s", ErrNoParent, loc)
	}
	if parent.IsEmpty() {
		return parent, fmt.Errorf("%w: parent of %s is empty", ErrNoParent, loc)
	}
	if env != nil && env.Constants != nil {
		if owner, ok := loc.Owner(); ok && env.Constants.IsConstant(owner.Node()) {
			return parent, fmt.Errorf("%w: %s", ErrFrozen, ast.Source(owner.Node()))
		}
	}
	return parent, nil
}

// BatchOp is a sequence of operations, applied in order.
type BatchOp struct {
	ops []Operation
}

// Batch creates an operation applying ops in order. Multiple removals from
// the same list must be ordered highest index first (see RemoveAll).
func Batch(ops ...Operation) *BatchOp {
	b := &BatchOp{ops: make([]Operation, 0, len(ops))}
	for _, op := range ops {
		if op != nil {
			b.ops = append(b.ops, op)
		}
	}
	return b
}

func (b *BatchOp) isOperation() {}

// Operations returns the operations of b.
func (b *BatchOp) Operations() []Operation {
	return b.ops
}

// Len returns the number of operations in b.
func (b *BatchOp) Len() int {
	return len(b.ops)
}

// Apply applies all operations of b in order. It stops at the first error.
func (b *BatchOp) Apply(env *Environment) error {
	for i, op := range b.ops {
		if err := op.Apply(env); err != nil {
			return fmt.Errorf("batch operation #%d: %w", i, err)
		}
	}
	return nil
}

// Invalidated returns the union of the invalidated locations of all operations.
func (b *BatchOp) Invalidated() []Location {
	var locs []Location
	for _, op := range b.ops {
		locs = append(locs, op.Invalidated()...)
	}
	return locs
}

func (b *BatchOp) String() string {
	return fmt.Sprintf("Batch(%d operations)", len(b.ops))
}

// RemoveAll creates a batch, removing the elements at the given indices from
// the list at listLoc. Removals are ordered highest index first, duplicate
// indices are removed once.
func RemoveAll(listLoc Location, indices ...int) *BatchOp {
	desc := treeset.NewWith(func(a, b interface{}) int {
		return utils.IntComparator(b, a)
	})
	for _, i := range indices {
		desc.Add(i)
	}
	b := &BatchOp{ops: make([]Operation, 0, desc.Size())}
	for _, i := range desc.Values() {
		b.ops = append(b.ops, Remove(listLoc.Index(i.(int))))
	}
	return b
}
