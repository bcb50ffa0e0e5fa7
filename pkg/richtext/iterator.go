package richtext

import "math"

// SimpleKind collapses the four Op variants to the three shapes Compose and
// Transform actually branch on: InsertText and InsertCode both read as
// Insert at this level.
type SimpleKind int

const (
	// SimpleRetain is also the sentinel peekType returned once an
	// iterator is exhausted — callers MUST guard every peek with
	// HasNext, since an exhausted peek never fabricates a spurious
	// Insert or Delete.
	SimpleRetain SimpleKind = iota
	SimpleInsert
	SimpleDelete
)

// exhaustedPeekLength is returned by PeekLength once an iterator is
// exhausted: large enough to never be the minimum in a two-iterator min()
// comparison against a live iterator.
const exhaustedPeekLength = math.MaxInt32

// OpIterator is a single-pass, peekable cursor over an Edit's operation
// sequence. It owns no data — only a reference to the immutable sequence
// plus an (index, offset) pair — so taking a prefix slice of the current
// operation never rebuilds the operation sequence. Retain, Delete and
// InsertCode slices are O(1); an InsertText slice re-encodes that
// operation's text to UTF-16, so it costs time and allocation proportional
// to the text's length.
type OpIterator struct {
	ops    []Op
	index  int
	offset int
}

// NewOpIterator returns an iterator positioned at the start of e's ops.
func NewOpIterator(e Edit) *OpIterator {
	return &OpIterator{ops: e.ops}
}

// HasNext reports whether there is at least one more length-unit to
// consume.
func (it *OpIterator) HasNext() bool {
	return it.index < len(it.ops) && it.remaining() > 0
}

// remaining returns the length-units left in the current operation, or 0
// once the iterator has run past the end of the sequence.
func (it *OpIterator) remaining() int {
	if it.index >= len(it.ops) {
		return 0
	}
	return it.ops[it.index].Length() - it.offset
}

// PeekType reports the kind of the operation the next call to Next would
// return, collapsed to {Retain, Insert, Delete}. Returns SimpleRetain (the
// defined sentinel) once the iterator is exhausted.
func (it *OpIterator) PeekType() SimpleKind {
	if it.index >= len(it.ops) {
		return SimpleRetain
	}
	switch it.ops[it.index].Kind() {
	case OpInsertText, OpInsertCode:
		return SimpleInsert
	case OpDelete:
		return SimpleDelete
	default:
		return SimpleRetain
	}
}

// PeekLength reports the length-units remaining in the current operation.
// Once exhausted it returns a sentinel value large enough to never bind a
// min() comparison against a still-live iterator; pair every call with a
// HasNext guard.
func (it *OpIterator) PeekLength() int {
	if it.index >= len(it.ops) {
		return exhaustedPeekLength
	}
	return it.remaining()
}

// Next consumes and returns a fragment of the current operation of length
// at most n (at least 1, and capped to PeekLength()). Retain and Delete
// fragments keep the clamped length; InsertText fragments slice the
// underlying string at UTF-16 code-unit boundaries [offset, offset+n);
// InsertCode is atomic and always returns length 1 regardless of n.
// Panics via InvariantViolation if called on an exhausted iterator.
func (it *OpIterator) Next(n int) Op {
	if !it.HasNext() {
		panicInvariant("OpIterator.Next called on an exhausted iterator")
	}
	op := it.ops[it.index]
	take := n
	if rem := it.remaining(); take > rem {
		take = rem
	}
	if take < 1 {
		take = 1
	}

	var frag Op
	switch op.Kind() {
	case OpRetain:
		frag = Op{kind: OpRetain, n: take, attrs: op.attrs}
	case OpDelete:
		frag = Op{kind: OpDelete, n: take}
	case OpInsertText:
		frag = Op{kind: OpInsertText, text: sliceUTF16(op.text, it.offset, it.offset+take), attrs: op.attrs}
	case OpInsertCode:
		frag = Op{kind: OpInsertCode, code: op.code, attrs: op.attrs}
		take = 1
	}

	it.offset += take
	if it.offset >= op.Length() {
		it.index++
		it.offset = 0
	}
	return frag
}

// NextAll consumes and returns the entire remainder of the current
// operation.
func (it *OpIterator) NextAll() Op {
	return it.Next(it.PeekLength())
}
