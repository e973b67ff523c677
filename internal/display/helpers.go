package display

import (
	"fmt"

	"taskboard/internal/domain"
)

func GetPriorityIcon(priority domain.Priority) string {
	switch priority {
	case domain.PriorityHigh:
		return "⬆"
	case domain.PriorityMedium:
		return "➡"
	case domain.PriorityLow:
		return "⬇"
	default:
		return "?"
	}
}

// renders "Work (bg-gray-600, #4b5563)"
func FormatCategory(c domain.Category) string {
	return fmt.Sprintf("%s (%s, %s)", c.Name, c.Color, c.CustomColor)
}

// returns the palette name for a hex value, or the value itself
func ColorName(value string) string {
	if opt, ok := domain.FindColorOption(value); ok {
		return opt.Name
	}
	return value
}
