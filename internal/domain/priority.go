package domain

import (
	"errors"
	"strings"
)

// task priority as shown on badges
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

const (
	badgeHigh   = "bg-gray-200 text-gray-800"
	badgeMedium = "bg-gray-100 text-gray-700"
	badgeLow    = "bg-gray-50 text-gray-600"
)

// PriorityBadgeClasses maps a priority label to its badge class tokens.
// Matching is exact; unrecognized labels get the Medium badge.
func PriorityBadgeClasses(priority string) string {
	switch Priority(priority) {
	case PriorityHigh:
		return badgeHigh
	case PriorityMedium:
		return badgeMedium
	case PriorityLow:
		return badgeLow
	default:
		return badgeMedium
	}
}

// ParsePriority accepts any casing ("high", "HIGH") and returns the canonical label.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return "", errors.New("invalid priority: must be high, medium, or low")
	}
}

func (p Priority) BadgeClasses() string {
	return PriorityBadgeClasses(string(p))
}
