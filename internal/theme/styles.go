package theme

import (
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/domain"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Separator lipgloss.Style
	Muted     lipgloss.Style

	// priority badges
	HighBadge   lipgloss.Style
	MediumBadge lipgloss.Style
	LowBadge    lipgloss.Style

	// tui
	TUITitle      lipgloss.Style
	TUISubtitle   lipgloss.Style
	TUIHelp       lipgloss.Style
	SelectedRow   lipgloss.Style
	UnselectedRow lipgloss.Style
	Container     lipgloss.Style
}

// creates all styles based on the given theme
func NewStyles(t *Theme) *Styles {
	badge := lipgloss.NewStyle().Padding(0, 1)

	return &Styles{
		// cli
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Secondary)).
			PaddingTop(1).
			PaddingBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SubtitleText)).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			PaddingLeft(1).
			PaddingRight(1),

		Cell: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Separator)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)),

		// priority badges
		HighBadge: badge.
			Background(lipgloss.Color(t.BadgeHighBg)).
			Foreground(lipgloss.Color(t.BadgeHighFg)),

		MediumBadge: badge.
			Background(lipgloss.Color(t.BadgeMediumBg)).
			Foreground(lipgloss.Color(t.BadgeMediumFg)),

		LowBadge: badge.
			Background(lipgloss.Color(t.BadgeLowBg)).
			Foreground(lipgloss.Color(t.BadgeLowFg)),

		// tui
		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			Padding(0, 1),

		TUISubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpText)),

		SelectedRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)).
			Bold(true),

		UnselectedRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		Container: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(1, 2),
	}
}

// GetBadgeStyle mirrors domain.PriorityBadgeClasses: unknown labels get Medium.
func (s *Styles) GetBadgeStyle(priority string) lipgloss.Style {
	switch domain.Priority(priority) {
	case domain.PriorityHigh:
		return s.HighBadge
	case domain.PriorityLow:
		return s.LowBadge
	default:
		return s.MediumBadge
	}
}

func (s *Styles) Badge(priority string) string {
	return s.GetBadgeStyle(priority).Render(priority)
}

// Swatch renders a block filled with the given hex color.
func (s *Styles) Swatch(hex string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(hex)).
		Render("  ████  ")
}
