package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Equal(t *testing.T) {
	assert.True(t, StringValue("a").Equal(StringValue("a")))
	assert.False(t, StringValue("a").Equal(StringValue("b")))
	assert.True(t, NumberValue(1).Equal(NumberValue(1)))
	assert.False(t, NumberValue(1).Equal(NumberValue(2)))
	assert.True(t, BooleanValue(true).Equal(BooleanValue(true)))
	assert.True(t, NullValue.Equal(NullValue))
	assert.False(t, NullValue.Equal(StringValue("")))
	assert.True(t, NullValue.IsNull())
	assert.False(t, StringValue("x").IsNull())
}

func TestMapsEqual_NilAndEmptyAreEqual(t *testing.T) {
	assert.True(t, MapsEqual(nil, Map{}))
	assert.True(t, MapsEqual(Map{}, nil))
	assert.True(t, MapsEqual(Map{"a": StringValue("x")}, Map{"a": StringValue("x")}))
	assert.False(t, MapsEqual(Map{"a": StringValue("x")}, Map{"a": StringValue("y")}))
	assert.False(t, MapsEqual(Map{"a": StringValue("x")}, Map{"b": StringValue("x")}))
}

// ComposeAttrs with keepNull=true retains a Null tombstone so a later
// compose can still observe the clearing instruction (S4's bold-clear case).
func TestComposeAttrs_KeepNull(t *testing.T) {
	left := Map{"bold": BooleanValue(true)}
	right := Map{"bold": NullValue}
	got := ComposeAttrs(left, right, true)
	assert.True(t, got["bold"].IsNull())
}

// Without keepNull (the Insert path), Null entries are
// stripped: a tombstone has no meaning on an attribute that was never set.
func TestComposeAttrs_DropNull(t *testing.T) {
	left := Map{"bold": BooleanValue(true)}
	right := Map{"bold": NullValue, "italic": BooleanValue(true)}
	got := ComposeAttrs(left, right, false)
	_, hasBold := got["bold"]
	assert.False(t, hasBold)
	assert.True(t, got["italic"].Boolean())
}

func TestComposeAttrs_RightOverwritesLeft(t *testing.T) {
	left := Map{"color": StringValue("red"), "bold": BooleanValue(true)}
	right := Map{"color": StringValue("blue")}
	got := ComposeAttrs(left, right, true)
	assert.Equal(t, "blue", got["color"].String())
	assert.True(t, got["bold"].Boolean())
}

func TestComposeAttrs_BothEmptyIsNil(t *testing.T) {
	assert.Nil(t, ComposeAttrs(nil, nil, true))
}

// TransformAttrs resolves the conflict by priority but always keeps the
// union of keys — a key present on only one side must never be dropped.
// This is the fix for spec.md's noted Open Question: the reference
// implementation's transform() drops left-only keys; this package keeps
// them.
func TestTransformAttrs_UnionNotDrop(t *testing.T) {
	left := Map{"bold": BooleanValue(true)}
	right := Map{"italic": BooleanValue(true)}

	gotPriority := TransformAttrs(left, right, true)
	assert.True(t, gotPriority["bold"].Boolean())
	assert.True(t, gotPriority["italic"].Boolean())

	gotNoPriority := TransformAttrs(left, right, false)
	assert.True(t, gotNoPriority["bold"].Boolean())
	assert.True(t, gotNoPriority["italic"].Boolean())
}

func TestTransformAttrs_PriorityBreaksTie(t *testing.T) {
	left := Map{"color": StringValue("red")}
	right := Map{"color": StringValue("blue")}

	assert.Equal(t, "red", TransformAttrs(left, right, true)["color"].String())
	assert.Equal(t, "blue", TransformAttrs(left, right, false)["color"].String())
}

func TestDiffAttrs(t *testing.T) {
	left := Map{"bold": BooleanValue(true), "color": StringValue("red")}
	right := Map{"color": StringValue("blue"), "italic": BooleanValue(true)}

	got := DiffAttrs(left, right)
	assert.True(t, got["bold"].IsNull())
	assert.Equal(t, "blue", got["color"].String())
	assert.True(t, got["italic"].Boolean())
}

func TestDiffAttrs_Unchanged(t *testing.T) {
	m := Map{"bold": BooleanValue(true)}
	assert.Nil(t, DiffAttrs(m, m))
}
