package richtext

// Compose folds two sequentially-applicable edits into one equivalent
// edit: apply(apply(doc, a), b) == apply(doc, Compose(a, b)). a's
// TargetLength must equal b's BaseLength; otherwise ErrIncompatibleEdits is
// returned — the single recoverable error Compose reports.
func Compose(a, b Edit) (Edit, error) {
	if a.TargetLength() != b.BaseLength() {
		return Edit{}, ErrIncompatibleEdits
	}
	if len(a.ops) == 0 {
		return Normalise(b), nil
	}
	if len(b.ops) == 0 {
		return Normalise(a), nil
	}

	ai := NewOpIterator(a)
	bi := NewOpIterator(b)
	out := &builder{}

	for ai.HasNext() || bi.HasNext() {
		switch {
		case bi.HasNext() && bi.PeekType() == SimpleInsert:
			// Right-insert passes through verbatim.
			out.push(bi.NextAll())

		case ai.HasNext() && ai.PeekType() == SimpleDelete:
			// Left-delete passes through verbatim.
			out.push(ai.NextAll())

		case ai.HasNext() && bi.HasNext():
			length := min(ai.PeekLength(), bi.PeekLength())
			left := ai.Next(length)
			right := bi.Next(length)
			out.push(composeSlice(left, right))

		default:
			panicInvariant("Compose: reached an unreachable iterator state")
		}
	}

	composed := out.build()
	if composed.TargetLength() != b.TargetLength() {
		panicInvariant("Compose: result targetLength disagrees with b.targetLength")
	}
	return Normalise(composed), nil
}

// composeSlice handles the lock-step pairwise cases once both sides have
// been sliced to the same length. left is never a Delete and right is
// never an Insert here — those shapes are consumed by the pass-through
// rules in Compose's main loop before this is reached.
func composeSlice(left, right Op) Op {
	switch {
	case left.Kind() == OpRetain && right.Kind() == OpRetain:
		return Op{kind: OpRetain, n: left.n, attrs: ComposeAttrs(left.attrs, right.attrs, true)}

	case left.Kind() == OpRetain && right.Kind() == OpDelete:
		return Op{kind: OpDelete, n: right.n}

	case left.Kind() == OpInsertText && right.Kind() == OpRetain:
		return Op{kind: OpInsertText, text: left.text, attrs: ComposeAttrs(left.attrs, right.attrs, false)}

	case left.Kind() == OpInsertCode && right.Kind() == OpRetain:
		return Op{kind: OpInsertCode, code: left.code, attrs: ComposeAttrs(left.attrs, right.attrs, false)}

	case (left.Kind() == OpInsertText || left.Kind() == OpInsertCode) && right.Kind() == OpDelete:
		// Insert and delete cancel character-for-character; emit nothing.
		return Op{}

	default:
		panicInvariant("Compose: unreachable operation pairing (delete-on-left or insert-on-right)")
		return Op{}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
