package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// SourceDiff compares the source renderings of two trees. It returns a
// pretty-printed character diff (with ANSI colors if color is set), and
// false if both trees render to the same source.
func SourceDiff(before, after Node, color bool) (string, bool) {
	a, b := Source(before), Source(after)
	if a == b {
		return a, false
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))
	if color {
		return dmp.DiffPrettyText(diffs), true
	}
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+")
			sb.WriteString(d.Text)
			sb.WriteString("+}")
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-")
			sb.WriteString(d.Text)
			sb.WriteString("-]")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String(), true
}
