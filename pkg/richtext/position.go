package richtext

// TransformPosition moves a caret index p, given against e's base
// document, across e to the corresponding index in e's target document.
// priority resolves the tie when an insertion happens exactly at the
// caret: true means the caret yields to the insertion (stays put), false
// means the caret is pushed past it (the common "this is my own pending
// edit" case for the other collaborator's cursor).
func TransformPosition(e Edit, p int, priority bool) int {
	offset := 0
	index := p

	for _, op := range e.ops {
		if offset > p {
			break
		}
		switch op.Kind() {
		case OpDelete:
			k := op.Length()
			if d := index - offset; d < k {
				k = d
			}
			if k > 0 {
				index -= k
			}
			// offset deliberately does not advance here: Delete consumes
			// no characters of the target document, so it has no target
			// position to place the caret past. Matches the reference
			// transformPosition, whose delete branch continues before
			// the trailing offset bump.

		case OpInsertText, OpInsertCode:
			k := op.Length()
			if offset < p || !priority {
				index += k
				offset += k
			}

		case OpRetain:
			offset += op.Length()
		}
	}

	return index
}
