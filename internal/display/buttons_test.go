package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleSelectedButtonStyles(t *testing.T) {
	b1 := NewButton("b1", "All", "px-3")
	b2 := NewButton("b2", "Active", "px-3", "sel")
	b3 := NewButton("b3", "Done", "px-3")
	buttons := []*Button{b1, b2, b3}

	ToggleSelectedButtonStyles(buttons, b2, []string{"sel"}, []string{"unsel"})

	for _, b := range []*Button{b1, b3} {
		assert.True(t, b.HasClass("unsel"), "%s should be unselected", b.ID)
		assert.False(t, b.HasClass("sel"), "%s should not be selected", b.ID)
		assert.True(t, b.HasClass("px-3"), "unrelated classes survive")
	}
	assert.True(t, b2.HasClass("sel"))
	assert.False(t, b2.HasClass("unsel"))

	// moving the selection
	ToggleSelectedButtonStyles(buttons, b3, []string{"sel"}, []string{"unsel"})
	assert.True(t, b2.HasClass("unsel"))
	assert.False(t, b2.HasClass("sel"))
	assert.True(t, b3.HasClass("sel"))
	assert.False(t, b3.HasClass("unsel"))
}

func TestToggleSelectedButtonStyles_MultipleTokens(t *testing.T) {
	selected := []string{"bg-gray-800", "text-white"}
	unselected := []string{"bg-white", "text-gray-700"}

	a := NewButton("a", "A")
	b := NewButton("b", "B")

	ToggleSelectedButtonStyles([]*Button{a, b}, a, selected, unselected)

	assert.Equal(t, "bg-gray-800 text-white", a.Classes.String())
	assert.Equal(t, "bg-white text-gray-700", b.Classes.String())

	// idempotent
	ToggleSelectedButtonStyles([]*Button{a, b}, a, selected, unselected)
	assert.Equal(t, "bg-gray-800 text-white", a.Classes.String())
	assert.Equal(t, "bg-white text-gray-700", b.Classes.String())
}

func TestToggleSelectedButtonStyles_TargetOutsideGroup(t *testing.T) {
	a := NewButton("a", "A")
	outsider := NewButton("x", "X", "unsel")

	ToggleSelectedButtonStyles([]*Button{a}, outsider, []string{"sel"}, []string{"unsel"})

	assert.True(t, a.HasClass("unsel"))
	assert.True(t, outsider.HasClass("sel"))
	assert.False(t, outsider.HasClass("unsel"))
}

func TestToggleSelectedButtonStyles_EmptyGroup(t *testing.T) {
	target := NewButton("t", "T")

	ToggleSelectedButtonStyles(nil, target, []string{"sel"}, []string{"unsel"})

	assert.Equal(t, []string{"sel"}, target.Classes.Tokens())
}
