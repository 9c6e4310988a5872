package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidTree is wrapped by every violation Validate reports.
var ErrInvalidTree = errors.New("invalid tree")

// Validate checks a tree against the schema: required fields are present,
// list fields hold a list, and every child (or list element) is of the
// category its field accepts. All violations found are returned as a single
// *multierror.Error; the result is nil for a valid tree.
func Validate(root Node) error {
	var result *multierror.Error
	if root == nil {
		return fmt.Errorf("%w: tree is empty", ErrInvalidTree)
	}
	validate(root, root.Kind().String(), &result)
	if err := result.ErrorOrNil(); err != nil {
		tracer().Debugf("tree is invalid: %v", err)
		return err
	}
	return nil
}

func validate(n Node, path string, result **multierror.Error) {
	for _, f := range Fields(n.Kind()) {
		fpath := path + "." + f.Name
		child := n.Child(f.Name)
		if f.List {
			l, ok := child.(*List)
			if !ok || l == nil {
				*result = multierror.Append(*result, fmt.Errorf("%w: %s is not a list", ErrInvalidTree, fpath))
				continue
			}
			for i, item := range l.Nodes() {
				ipath := fmt.Sprintf("%s[%d]", fpath, i)
				if item == nil {
					*result = multierror.Append(*result, fmt.Errorf("%w: %s is nil", ErrInvalidTree, ipath))
					continue
				}
				if !accepts(f.Accepts, item) {
					*result = multierror.Append(*result, fmt.Errorf("%w: %s is %s, expected %s",
						ErrInvalidTree, ipath, item.Kind(), f.Accepts))
					continue
				}
				validate(item, ipath, result)
			}
			continue
		}
		if child == nil {
			if !f.Optional {
				*result = multierror.Append(*result, fmt.Errorf("%w: %s is required", ErrInvalidTree, fpath))
			}
			continue
		}
		node, ok := child.(Node)
		if !ok || !accepts(f.Accepts, node) {
			*result = multierror.Append(*result, fmt.Errorf("%w: %s holds %T, expected %s",
				ErrInvalidTree, fpath, child, f.Accepts))
			continue
		}
		validate(node, fpath, result)
	}
}
