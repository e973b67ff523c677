package domain

import "strings"

// ColorOption is one entry of the fixed category palette.
type ColorOption struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	BgClass string `json:"bgClass"`
}

var colorOptions = [...]ColorOption{
	{Name: "Dark Gray", Value: "#1f2937", BgClass: "bg-gray-800"},
	{Name: "Gray", Value: "#374151", BgClass: "bg-gray-700"},
	{Name: "Medium Gray", Value: "#4b5563", BgClass: "bg-gray-600"},
	{Name: "Light Gray", Value: "#6b7280", BgClass: "bg-gray-500"},
	{Name: "Lighter Gray", Value: "#9ca3af", BgClass: "bg-gray-400"},
	{Name: "Blue", Value: "#3b82f6", BgClass: "bg-blue-500"},
	{Name: "Green", Value: "#10b981", BgClass: "bg-green-500"},
	{Name: "Red", Value: "#ef4444", BgClass: "bg-red-500"},
	{Name: "Purple", Value: "#8b5cf6", BgClass: "bg-purple-500"},
	{Name: "Orange", Value: "#f97316", BgClass: "bg-orange-500"},
}

// ColorOptions returns the palette in display order. The result is a copy.
func ColorOptions() []ColorOption {
	out := make([]ColorOption, len(colorOptions))
	copy(out, colorOptions[:])
	return out
}

// FindColorOption looks up a palette entry by exact hex value.
func FindColorOption(value string) (ColorOption, bool) {
	for _, opt := range colorOptions {
		if opt.Value == value {
			return opt, true
		}
	}
	return ColorOption{}, false
}

// finds a palette entry by display name, ignoring case
func FindColorOptionByName(name string) (ColorOption, bool) {
	for _, opt := range colorOptions {
		if strings.EqualFold(opt.Name, strings.TrimSpace(name)) {
			return opt, true
		}
	}
	return ColorOption{}, false
}
