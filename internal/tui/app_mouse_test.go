package tui

import (
	"testing"

	"github.com/theirongolddev/mrrgen/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 1 // leading space

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w + 2 // gap
		}
	}
}

func TestMouseClickSelectsTab(t *testing.T) {
	a := testApp(t)
	x := 1 + components.TabVisualWidth(components.Tabs[0], true) + 2 + 1

	a = press(t, a, tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.activeTab != tabTiers {
		t.Errorf("activeTab = %d, want tiers", a.activeTab)
	}

	a = press(t, a, tea.MouseMsg{X: 2, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.activeTab != tabTiers {
		t.Error("click outside the tab bar changed tabs")
	}
}
