package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_IdenticalText_IsNoop(t *testing.T) {
	got := Diff("hello", "hello")
	assert.True(t, got.IsNoop())
}

func TestDiff_BothEmpty(t *testing.T) {
	got := Diff("", "")
	assert.True(t, got.Equal(Empty))
}

func TestDiff_PureAppend(t *testing.T) {
	got := Diff("hello", "hello world")
	require.Equal(t, 2, len(got.Ops()))
	assert.Equal(t, OpRetain, got.Ops()[0].Kind())
	assert.Equal(t, " world", got.Ops()[1].Text())
}

func TestDiff_PureDelete(t *testing.T) {
	got := Diff("hello world", "hello")
	require.Equal(t, 2, len(got.Ops()))
	assert.Equal(t, OpRetain, got.Ops()[0].Kind())
	assert.Equal(t, OpDelete, got.Ops()[1].Kind())
}

// Diff's result is applicable to oldText: its baseLength must equal
// oldText's length and its targetLength must equal newText's length.
func TestDiff_LengthsMatchInputs(t *testing.T) {
	oldText := "The cute little bunny."
	newText := "The brave little bunny jumps."
	got := Diff(oldText, newText)
	assert.Equal(t, utf16Len(oldText), got.BaseLength())
	assert.Equal(t, utf16Len(newText), got.TargetLength())
}
