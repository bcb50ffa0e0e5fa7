package richtext

// Edit (also called a Delta in the reference terminology) is an ordered,
// immutable sequence of operations describing a change from a base
// document to a target document. An Edit whose baseLength is zero is also
// a Document: the canonical representation of the document's content.
type Edit struct {
	ops []Op
}

// Empty is the zero-length Edit (base == target == the empty document).
var Empty = Edit{}

// NewEdit validates ops and builds an Edit from them. Construction rejects
// zero-length operations and malformed payloads (a negative InsertCode, for
// instance) rather than silently tolerating them, per the "no zero-length
// op is ever produced or accepted" invariant.
func NewEdit(ops []Op) (Edit, error) {
	for _, op := range ops {
		if op.Length() < 1 {
			return Edit{}, ErrInvalidOperation
		}
		if op.Kind() == OpInsertCode && op.code < 0 {
			return Edit{}, ErrInvalidOperation
		}
	}
	cp := make([]Op, len(ops))
	copy(cp, ops)
	return Edit{ops: cp}, nil
}

// MustNewEdit is NewEdit for callers (tests, literals) that already know
// the ops are well-formed; it panics via InvariantViolation otherwise.
func MustNewEdit(ops []Op) Edit {
	e, err := NewEdit(ops)
	if err != nil {
		panicInvariant(err.Error())
	}
	return e
}

// Ops returns the underlying operation sequence. The caller must not
// mutate the returned slice.
func (e Edit) Ops() []Op { return e.ops }

// BaseLength is the length of the document this Edit can be applied to:
// the sum of the lengths of its Retain and Delete operations.
func (e Edit) BaseLength() int {
	n := 0
	for _, op := range e.ops {
		if op.AffectsBase() {
			n += op.Length()
		}
	}
	return n
}

// TargetLength is the length of the document this Edit produces: the sum
// of the lengths of its Retain, InsertText and InsertCode operations.
func (e Edit) TargetLength() int {
	n := 0
	for _, op := range e.ops {
		if op.AffectsTarget() {
			n += op.Length()
		}
	}
	return n
}

// IsDocument reports whether e contains only inserts (BaseLength() == 0),
// making it the canonical representation of a concrete rich-text value.
func (e Edit) IsDocument() bool {
	return e.BaseLength() == 0
}

// IsNoop reports whether e has no effect on its target: either it has no
// operations, or its only operation is an unattributed Retain.
func (e Edit) IsNoop() bool {
	if len(e.ops) == 0 {
		return true
	}
	if len(e.ops) == 1 {
		op := e.ops[0]
		return op.Kind() == OpRetain && len(op.attrs) == 0
	}
	return false
}

// Equal reports structural equality over the operation sequence.
func (e Edit) Equal(other Edit) bool {
	if len(e.ops) != len(other.ops) {
		return false
	}
	for i := range e.ops {
		if !e.ops[i].Equal(other.ops[i]) {
			return false
		}
	}
	return true
}

// Append returns a new Edit with op appended to e's sequence. A
// zero-length op is a no-op (dropped), matching the invariant that no
// zero-length operation is ever produced by this package's output.
func Append(e Edit, op Op) Edit {
	if op.Length() < 1 {
		return e
	}
	ops := make([]Op, len(e.ops), len(e.ops)+1)
	copy(ops, e.ops)
	ops = append(ops, op)
	return Edit{ops: ops}
}

// Prepend returns a new Edit with op inserted at the front of e's
// sequence. A zero-length op is a no-op (dropped).
func Prepend(e Edit, op Op) Edit {
	if op.Length() < 1 {
		return e
	}
	ops := make([]Op, 0, len(e.ops)+1)
	ops = append(ops, op)
	ops = append(ops, e.ops...)
	return Edit{ops: ops}
}

// builder accumulates ops for the internal use of Compose, Transform and
// Diff: a raw, non-merging append (Normalise is always run as a separate
// pass afterwards, per the package's design).
type builder struct {
	ops []Op
}

func (b *builder) push(op Op) {
	if op.Length() < 1 {
		return
	}
	b.ops = append(b.ops, op)
}

func (b *builder) build() Edit {
	return Edit{ops: b.ops}
}
