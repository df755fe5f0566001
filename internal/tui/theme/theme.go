// Package theme defines color themes for the mrrgen TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps UI roles to colors. Projected and Actual color the two chart
// lines and must differ.
type Theme struct {
	Name string

	Background    lipgloss.Color
	Surface       lipgloss.Color // cards
	SurfaceBright lipgloss.Color // selected row
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color

	TextDim     lipgloss.Color // hints, axis
	TextMuted   lipgloss.Color // labels
	TextPrimary lipgloss.Color

	Accent       lipgloss.Color
	AccentBright lipgloss.Color

	Projected lipgloss.Color
	Actual    lipgloss.Color
	Green     lipgloss.Color
	Red       lipgloss.Color
}

// Indigo is the default: slate surfaces with the grey/indigo line pair
// also used by image export.
var Indigo = Theme{
	Name:          "indigo",
	Background:    "#0F172A",
	Surface:       "#1E293B",
	SurfaceBright: "#334155",
	Border:        "#334155",
	BorderAccent:  "#6366F1",
	TextDim:       "#475569",
	TextMuted:     "#94A3B8",
	TextPrimary:   "#F1F5F9",
	Accent:        "#818CF8",
	AccentBright:  "#A5B4FC",
	Projected:     "#9CA3AF",
	Actual:        "#6366F1",
	Green:         "#22C55E",
	Red:           "#EF4444",
}

// Paper is the light variant for bright terminals.
var Paper = Theme{
	Name:          "paper",
	Background:    "#FFFFFF",
	Surface:       "#F8FAFC",
	SurfaceBright: "#E2E8F0",
	Border:        "#CBD5E1",
	BorderAccent:  "#4F46E5",
	TextDim:       "#94A3B8",
	TextMuted:     "#64748B",
	TextPrimary:   "#0F172A",
	Accent:        "#4F46E5",
	AccentBright:  "#6366F1",
	Projected:     "#9CA3AF",
	Actual:        "#4F46E5",
	Green:         "#16A34A",
	Red:           "#DC2626",
}

// ANSI sticks to the 16 base colors.
var ANSI = Theme{
	Name:          "ansi",
	Background:    "0",
	Surface:       "0",
	SurfaceBright: "8",
	Border:        "8",
	BorderAccent:  "4",
	TextDim:       "8",
	TextMuted:     "7",
	TextPrimary:   "15",
	Accent:        "12",
	AccentBright:  "14",
	Projected:     "7",
	Actual:        "12",
	Green:         "2",
	Red:           "1",
}

// All lists the selectable themes in display order.
var All = []Theme{Indigo, Paper, ANSI}

// Default is used when a name does not match any theme.
var Default = Indigo

// Active is the theme used for rendering.
var Active = Default

// ByName looks a theme up by name, falling back to Default.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Default
}

// SetActive switches the rendering theme.
func SetActive(name string) {
	Active = ByName(name)
}

// Names returns the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}
