package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOp_Constructors_Length(t *testing.T) {
	assert.Equal(t, 5, Retain(5, nil).Length())
	assert.Equal(t, 3, InsertText("abc", nil).Length())
	assert.Equal(t, 1, InsertCode(7, nil).Length())
	assert.Equal(t, 2, Delete(2).Length())
}

func TestOp_Constructors_PanicOnInvalidLength(t *testing.T) {
	assert.Panics(t, func() { Retain(0, nil) })
	assert.Panics(t, func() { Retain(-1, nil) })
	assert.Panics(t, func() { Delete(0) })
	assert.Panics(t, func() { InsertText("", nil) })
	assert.Panics(t, func() { InsertCode(-1, nil) })
}

func TestOp_AffectsBaseAndTarget(t *testing.T) {
	r := Retain(3, nil)
	assert.True(t, r.AffectsBase())
	assert.True(t, r.AffectsTarget())

	ins := InsertText("hi", nil)
	assert.False(t, ins.AffectsBase())
	assert.True(t, ins.AffectsTarget())

	del := Delete(3)
	assert.True(t, del.AffectsBase())
	assert.False(t, del.AffectsTarget())
}

func TestOp_Equal(t *testing.T) {
	a := InsertText("hi", Map{"bold": BooleanValue(true)})
	b := InsertText("hi", Map{"bold": BooleanValue(true)})
	c := InsertText("hi", nil)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, Retain(5, nil).Equal(Delete(5)))
}

func TestOp_String_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = Retain(1, nil).String()
		_ = InsertText("x", nil).String()
		_ = InsertCode(1, nil).String()
		_ = Delete(1).String()
	})
}

// utf16Len matches the reference's code-unit length: a character outside
// the BMP (here, an emoji) counts as 2 units, not 1 rune.
func TestUtf16Len_SurrogatePair(t *testing.T) {
	assert.Equal(t, 1, utf16Len("a"))
	assert.Equal(t, 2, utf16Len("\U0001F600"))
	assert.Equal(t, 3, utf16Len("a\U0001F600"))
}

func TestSliceUTF16_BasicAndSurrogateSplit(t *testing.T) {
	assert.Equal(t, "bc", sliceUTF16("abcd", 1, 3))
	assert.Equal(t, "", sliceUTF16("abcd", 3, 1))

	emoji := "\U0001F600"
	// Splitting inside the surrogate pair is accepted (the lone half
	// decodes to U+FFFD); this only checks it doesn't panic.
	assert.NotPanics(t, func() { sliceUTF16(emoji, 0, 1) })
}
