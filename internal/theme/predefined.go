package theme

// grays follow the same scale the badge and palette classes use
func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		// semantic
		Primary:   "#4b5563",
		Secondary: "#9ca3af",
		Success:   "#10b981",
		Error:     "#ef4444",
		Warning:   "#f97316",
		Info:      "#3b82f6",

		// text
		TextPrimary:   "#f9fafb",
		TextSecondary: "#9ca3af",
		TextMuted:     "#6b7280",

		// priority badges
		BadgeHighBg:   "#e5e7eb",
		BadgeHighFg:   "#1f2937",
		BadgeMediumBg: "#f3f4f6",
		BadgeMediumFg: "#374151",
		BadgeLowBg:    "#f9fafb",
		BadgeLowFg:    "#4b5563",

		// UI element
		BorderColor:  "#4b5563",
		SelectedBg:   "#1f2937",
		SelectedFg:   "#f9fafb",
		HeaderBg:     "#374151",
		HeaderFg:     "#f9fafb",
		Separator:    "#374151",
		HelpText:     "#6b7280",
		SubtitleText: "#9ca3af",
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name: "dark",

		// semantic
		Primary:   "#8b5cf6",
		Secondary: "#6b7280",
		Success:   "#10b981",
		Error:     "#ef4444",
		Warning:   "#f97316",
		Info:      "#3b82f6",

		// text
		TextPrimary:   "#e5e7eb",
		TextSecondary: "#9ca3af",
		TextMuted:     "#4b5563",

		// priority badges
		BadgeHighBg:   "#4b5563",
		BadgeHighFg:   "#f9fafb",
		BadgeMediumBg: "#374151",
		BadgeMediumFg: "#e5e7eb",
		BadgeLowBg:    "#1f2937",
		BadgeLowFg:    "#9ca3af",

		// UI element
		BorderColor:  "#374151",
		SelectedBg:   "#8b5cf6",
		SelectedFg:   "#f9fafb",
		HeaderBg:     "#1f2937",
		HeaderFg:     "#e5e7eb",
		Separator:    "#1f2937",
		HelpText:     "#4b5563",
		SubtitleText: "#6b7280",
	}
}

func LightTheme() *Theme {
	return &Theme{
		Name: "light",

		// semantic
		Primary:   "#1f2937",
		Secondary: "#4b5563",
		Success:   "#047857",
		Error:     "#b91c1c",
		Warning:   "#c2410c",
		Info:      "#1d4ed8",

		// text
		TextPrimary:   "#111827",
		TextSecondary: "#4b5563",
		TextMuted:     "#9ca3af",

		// priority badges
		BadgeHighBg:   "#e5e7eb",
		BadgeHighFg:   "#1f2937",
		BadgeMediumBg: "#f3f4f6",
		BadgeMediumFg: "#374151",
		BadgeLowBg:    "#f9fafb",
		BadgeLowFg:    "#4b5563",

		// UI element
		BorderColor:  "#d1d5db",
		SelectedBg:   "#e5e7eb",
		SelectedFg:   "#111827",
		HeaderBg:     "#f3f4f6",
		HeaderFg:     "#111827",
		Separator:    "#e5e7eb",
		HelpText:     "#9ca3af",
		SubtitleText: "#6b7280",
	}
}
