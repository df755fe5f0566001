package components

import (
	"strings"

	"github.com/theirongolddev/mrrgen/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. message replaces the key
// hints when set; isErr draws it in the error color.
func RenderStatusBar(width int, message string, isErr bool, right string) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.SurfaceBright)

	left := " [?]help  [r]e-roll  [q]uit"
	leftStyle := base
	if message != "" {
		left = " " + message
		if isErr {
			leftStyle = leftStyle.Foreground(t.Red)
		} else {
			leftStyle = leftStyle.Foreground(t.Green)
		}
	}
	if right != "" {
		right += " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return leftStyle.Render(left) + base.Render(strings.Repeat(" ", padding)) + base.Render(right)
}
