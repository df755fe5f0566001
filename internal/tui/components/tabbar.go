package components

import (
	"strings"

	"github.com/theirongolddev/mrrgen/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is one entry in the tab bar. KeyPos is the index of the shortcut
// letter inside Name, or -1 when the key is not part of the name.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int
}

// Tabs lists the dashboard tabs in display order.
var Tabs = []Tab{
	{Name: "Projection", Key: 'p', KeyPos: 0},
	{Name: "Tiers", Key: 't', KeyPos: 0},
	{Name: "Settings", Key: 's', KeyPos: 0},
}

const tabGap = "  "

func renderTab(tab Tab, active bool) string {
	t := theme.Active

	if active {
		return lipgloss.NewStyle().
			Foreground(t.AccentBright).
			Background(t.SurfaceBright).
			Bold(true).
			Render(" " + tab.Name + " ")
	}

	inactive := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Background)
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Background).Bold(true)
	bracket := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Background)

	if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
		return inactive.Render(tab.Name[:tab.KeyPos]) +
			bracket.Render("[") + key.Render(string(tab.Name[tab.KeyPos])) + bracket.Render("]") +
			inactive.Render(tab.Name[tab.KeyPos+1:])
	}
	return inactive.Render(tab.Name) +
		bracket.Render("[") + key.Render(string(tab.Key)) + bracket.Render("]")
}

// TabVisualWidth is the rendered width of a tab in the given state.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders the tab bar with the given active index on one row.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}

	gap := lipgloss.NewStyle().Background(t.Background).Render(tabGap)
	row := " " + strings.Join(parts, gap)

	return lipgloss.NewStyle().Background(t.Background).Width(width).Render(row)
}

// TabAtX returns the index of the tab drawn at column x, or -1.
func TabAtX(activeIdx, x int) int {
	pos := 1
	for i, tab := range Tabs {
		w := TabVisualWidth(tab, i == activeIdx)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + len(tabGap)
	}
	return -1
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
