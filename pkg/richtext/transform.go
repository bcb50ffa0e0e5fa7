package richtext

// Transform rewrites o so it can be applied after t, where t and o were
// both produced against the same base document. priority=true means t
// wins conflicts (t is treated as already applied / earlier from the
// caller's point of view). Transform(t, o, false) and Transform(o, t, true)
// are the two halves of a convergent pair: composing t with the first and
// o with the second reaches the same merged document.
func Transform(t, o Edit, priority bool) Edit {
	ti := NewOpIterator(t)
	oi := NewOpIterator(o)
	out := &builder{}

	for ti.HasNext() || oi.HasNext() {
		switch {
		case ti.HasNext() && ti.PeekType() == SimpleInsert && (priority || oi.PeekType() != SimpleInsert):
			// t's insert is prioritized ahead of o's view of this
			// position: it shifts o's remaining ops right by its
			// length, contributing no attributes of its own.
			frag := ti.NextAll()
			out.push(Retain(frag.Length(), nil))

		case oi.HasNext() && oi.PeekType() == SimpleInsert:
			out.push(oi.NextAll())

		case ti.HasNext() && oi.HasNext():
			length := min(ti.PeekLength(), oi.PeekLength())
			left := ti.Next(length)
			right := oi.Next(length)
			if frag, ok := transformSlice(left, right, priority); ok {
				out.push(frag)
			}

		default:
			panicInvariant("Transform: reached an unreachable iterator state")
		}
	}

	return Normalise(out.build())
}

// transformSlice handles the lock-step pairwise cases once both sides have
// been sliced to the same length. Neither side is ever an Insert here —
// inserts are consumed by the priority rules in Transform's main loop
// before this is reached. The bool result is false when nothing should be
// emitted (t already deleted these characters).
func transformSlice(left, right Op, priority bool) (Op, bool) {
	switch {
	case left.Kind() == OpDelete:
		// t already removed these characters; o's retain/delete of
		// them is void.
		return Op{}, false

	case right.Kind() == OpDelete:
		return Op{kind: OpDelete, n: right.n}, true

	case left.Kind() == OpRetain && right.Kind() == OpRetain:
		return Op{kind: OpRetain, n: left.n, attrs: TransformAttrs(left.attrs, right.attrs, priority)}, true

	default:
		panicInvariant("Transform: unreachable operation pairing")
		return Op{}, false
	}
}
