package richtext

import (
	"fmt"
	"sort"
	"strings"

	"github.com/clipperhouse/uax29/graphemes"
)

// Describe renders e as a human-readable, grapheme-aware line for logging
// and test failure messages (InvariantViolation messages do not include
// it): InsertText runs are joined
// with "·" at grapheme-cluster boundaries rather than raw UTF-16 code
// units, so a combining-mark sequence or emoji family shows as one visual
// unit instead of a run of unpaired surrogates.
//
// Grounded on the teacher's Rope.Graphemes(), which segments with the same
// uax29/graphemes.SegmentAllString.
func Describe(e Edit) string {
	parts := make([]string, 0, len(e.ops))
	for _, op := range e.ops {
		switch op.Kind() {
		case OpRetain:
			parts = append(parts, fmt.Sprintf("retain(%d%s)", op.n, describeAttrs(op.attrs)))
		case OpInsertText:
			parts = append(parts, fmt.Sprintf("insert(%q%s)", describeGraphemes(op.text), describeAttrs(op.attrs)))
		case OpInsertCode:
			parts = append(parts, fmt.Sprintf("insertCode(%d%s)", op.code, describeAttrs(op.attrs)))
		case OpDelete:
			parts = append(parts, fmt.Sprintf("delete(%d)", op.n))
		}
	}
	return strings.Join(parts, " ")
}

func describeGraphemes(s string) string {
	segments := graphemes.SegmentAllString(s)
	return strings.Join(segments, "·")
}

func describeAttrs(m Map) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(", {")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", k, describeValue(m[k]))
	}
	b.WriteString("}")
	return b.String()
}

func describeValue(v Value) string {
	switch v.Kind() {
	case KindString:
		return fmt.Sprintf("%q", v.String())
	case KindNumber:
		return fmt.Sprintf("%g", v.Number())
	case KindBoolean:
		return fmt.Sprintf("%t", v.Boolean())
	default:
		return "null"
	}
}
