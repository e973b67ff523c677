package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/domain"
)

func TestGetPriorityIcon(t *testing.T) {
	assert.Equal(t, "⬆", GetPriorityIcon(domain.PriorityHigh))
	assert.Equal(t, "➡", GetPriorityIcon(domain.PriorityMedium))
	assert.Equal(t, "⬇", GetPriorityIcon(domain.PriorityLow))
	assert.Equal(t, "?", GetPriorityIcon(domain.Priority("Urgent")))
}

func TestFormatCategory(t *testing.T) {
	c := domain.DefaultCategories()[0]
	assert.Equal(t, "Work (bg-gray-600, #4b5563)", FormatCategory(c))
}

func TestColorName(t *testing.T) {
	assert.Equal(t, "Blue", ColorName("#3b82f6"))
	assert.Equal(t, "#123456", ColorName("#123456"))
}
