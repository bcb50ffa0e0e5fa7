package richtext

import (
	"fmt"
	"unicode/utf16"
)

// OpKind tags the four operation variants.
type OpKind int

const (
	// OpRetain moves the cursor forward n positions, optionally restamping
	// attributes on the retained range.
	OpRetain OpKind = iota
	// OpInsertText inserts a run of text, optionally carrying attributes.
	OpInsertText
	// OpInsertCode inserts a single atomic embed identified by a
	// non-negative integer code, optionally carrying attributes.
	OpInsertCode
	// OpDelete removes n characters from the base document.
	OpDelete
)

// Op is a single operation: one of Retain, InsertText, InsertCode, Delete.
// Op is a plain immutable value — copying it is always safe.
type Op struct {
	kind   OpKind
	n      int // Retain/Delete length
	text   string
	code   int
	attrs  Map
}

// Retain builds a Retain operation of length n, optionally carrying attrs.
// Panics via InvariantViolation if n is not positive — callers construct
// operations from validated lengths only; this is a programming error, not
// a recoverable one.
func Retain(n int, attrs Map) Op {
	if n <= 0 {
		panicInvariant(fmt.Sprintf("Retain requires a positive length, got %d", n))
	}
	return Op{kind: OpRetain, n: n, attrs: mapOrNil(attrs)}
}

// InsertText builds an InsertText operation. s must be non-empty.
func InsertText(s string, attrs Map) Op {
	if s == "" {
		panicInvariant("InsertText requires a non-empty string")
	}
	return Op{kind: OpInsertText, text: s, attrs: mapOrNil(attrs)}
}

// InsertCode builds an InsertCode operation for a non-negative embed code.
func InsertCode(code int, attrs Map) Op {
	if code < 0 {
		panicInvariant(fmt.Sprintf("InsertCode requires a non-negative code, got %d", code))
	}
	return Op{kind: OpInsertCode, code: code, attrs: mapOrNil(attrs)}
}

// Delete builds a Delete operation of length n.
func Delete(n int) Op {
	if n <= 0 {
		panicInvariant(fmt.Sprintf("Delete requires a positive length, got %d", n))
	}
	return Op{kind: OpDelete, n: n}
}

// Kind returns the operation's variant tag.
func (o Op) Kind() OpKind { return o.kind }

// Attrs returns the operation's attribute map, or nil if it carries none.
func (o Op) Attrs() Map { return o.attrs }

// Text returns the inserted text; only meaningful when Kind() == OpInsertText.
func (o Op) Text() string { return o.text }

// Code returns the inserted embed code; only meaningful when
// Kind() == OpInsertCode.
func (o Op) Code() int { return o.code }

// Length is the length of this operation in the units defined by its kind:
// Retain/Delete count characters, InsertText counts UTF-16 code units (to
// match the reference wire format), InsertCode is always 1.
func (o Op) Length() int {
	switch o.kind {
	case OpRetain, OpDelete:
		return o.n
	case OpInsertText:
		return utf16Len(o.text)
	case OpInsertCode:
		return 1
	default:
		return 0
	}
}

// AffectsBase reports whether this op consumes characters of the base
// document (Retain, Delete).
func (o Op) AffectsBase() bool {
	return o.kind == OpRetain || o.kind == OpDelete
}

// AffectsTarget reports whether this op produces characters of the target
// document (Retain, InsertText, InsertCode).
func (o Op) AffectsTarget() bool {
	return o.kind == OpRetain || o.kind == OpInsertText || o.kind == OpInsertCode
}

// Equal reports structural equality between two operations.
func (o Op) Equal(other Op) bool {
	if o.kind != other.kind {
		return false
	}
	if !MapsEqual(o.attrs, other.attrs) {
		return false
	}
	switch o.kind {
	case OpRetain, OpDelete:
		return o.n == other.n
	case OpInsertText:
		return o.text == other.text
	case OpInsertCode:
		return o.code == other.code
	default:
		return false
	}
}

func (o Op) String() string {
	switch o.kind {
	case OpRetain:
		return fmt.Sprintf("Retain(%d, %v)", o.n, o.attrs)
	case OpInsertText:
		return fmt.Sprintf("InsertText(%q, %v)", o.text, o.attrs)
	case OpInsertCode:
		return fmt.Sprintf("InsertCode(%d, %v)", o.code, o.attrs)
	case OpDelete:
		return fmt.Sprintf("Delete(%d)", o.n)
	default:
		return "Unknown()"
	}
}

// utf16Len counts the UTF-16 code units a string would occupy on the wire.
// This matches the reference implementation, where string length is
// measured in UTF-16 code units; surrogate pairs are therefore 2 units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// sliceUTF16 returns the substring of s covering UTF-16 code units
// [start, end). A slice boundary that falls inside a surrogate pair splits
// it; the reference implementation accepts this.
func sliceUTF16(s string, start, end int) string {
	units := utf16.Encode([]rune(s))
	if start < 0 {
		start = 0
	}
	if end > len(units) {
		end = len(units)
	}
	if start >= end {
		return ""
	}
	return string(utf16.Decode(units[start:end]))
}
