package theme

type Theme struct {
	Name string

	// semantic
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string
	Info      string

	// text
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	// priority badges: background / foreground
	BadgeHighBg   string
	BadgeHighFg   string
	BadgeMediumBg string
	BadgeMediumFg string
	BadgeLowBg    string
	BadgeLowFg    string

	// UI element
	BorderColor  string
	SelectedBg   string
	SelectedFg   string
	HeaderBg     string
	HeaderFg     string
	Separator    string
	HelpText     string
	SubtitleText string
}
