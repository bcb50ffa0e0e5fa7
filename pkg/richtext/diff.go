package richtext

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff builds a plain (unattributed) Edit representing the character-level
// difference between oldText and newText: applying the result to oldText
// (via the reference algorithm's apply, not implemented in this package)
// reproduces newText. This is the quill-delta-style diff() convenience for
// callers that start from two document snapshots rather than an
// already-known edit; it is not part of the compose/transform algebra.
//
// Grounded on the teacher's PatchManager.ComputePatch, which reaches for
// the same diffmatchpatch.DiffMain call to turn two text snapshots into a
// compact diff.
func Diff(oldText, newText string) Edit {
	if oldText == newText {
		if n := utf16Len(oldText); n > 0 {
			return MustNewEdit([]Op{Retain(n, nil)})
		}
		return Empty
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)

	b := &builder{}
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.push(Retain(utf16Len(d.Text), nil))
		case diffmatchpatch.DiffDelete:
			b.push(Delete(utf16Len(d.Text)))
		case diffmatchpatch.DiffInsert:
			b.push(InsertText(d.Text, nil))
		}
	}
	return Normalise(b.build())
}
