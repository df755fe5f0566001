// Package tui provides the interactive Bubble Tea dashboard for mrrgen.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/mrrgen/internal/config"
	"github.com/theirongolddev/mrrgen/internal/model"
	"github.com/theirongolddev/mrrgen/internal/pipeline"
	"github.com/theirongolddev/mrrgen/internal/tui/components"
	"github.com/theirongolddev/mrrgen/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabProjection = iota
	tabTiers
	tabSettings
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
)

// Options seeds a new App.
type Options struct {
	Tiers  []model.PricingTier
	Params model.ProjectionParams
	Config config.Config

	// Seed makes jitter reproducible; 0 draws from the global generator.
	Seed uint64

	// NeedSetup shows the first-run form before the dashboard.
	NeedSetup bool

	// SaveConfig persists settings edits. nil keeps them in memory only.
	SaveConfig func(config.Config) error
}

// App is the root Bubble Tea model.
type App struct {
	tiers  []model.PricingTier
	params model.ProjectionParams
	cfg    config.Config

	seed  uint64
	rolls uint64

	result pipeline.Result
	runErr error

	saveConfig func(config.Config) error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Status line message; cleared on the next key press.
	status    string
	statusErr bool

	tierState tiersState
	settings  settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp creates a new TUI app model and runs the first projection.
func NewApp(opts Options) App {
	tiers := make([]model.PricingTier, len(opts.Tiers))
	copy(tiers, opts.Tiers)

	a := App{
		tiers:      tiers,
		params:     opts.Params,
		cfg:        opts.Config,
		seed:       opts.Seed,
		saveConfig: opts.SaveConfig,
		needSetup:  opts.NeedSetup,
	}
	if a.needSetup {
		a.setupForm = newSetupForm(a.cfg, &a.setupVals)
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// source returns the jitter source for the next run. A seeded app derives
// a fresh seed per re-roll so the same inputs redraw the same chart.
func (a App) source() pipeline.RandSource {
	if a.seed == 0 {
		return nil
	}
	return pipeline.NewSeededSource(a.seed + a.rolls)
}

// recompute runs the whole pipeline and swaps the result in one assignment.
func (a *App) recompute() {
	res, err := pipeline.Run(a.tiers, a.params, a.source(), pipeline.MapOptions{})
	if err != nil {
		a.runErr = err
		return
	}
	a.result = res
	a.runErr = nil
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil || a.editing() {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.activeTab == tabTiers && a.tierState.editing {
			return a.updateTierInput(msg)
		}
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		a.status = ""

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch a.activeTab {
		case tabTiers:
			if m, cmd, ok := a.updateTiersKeys(key); ok {
				return m, cmd
			}
		case tabSettings:
			if m, cmd, ok := a.updateSettingsKeys(key); ok {
				return m, cmd
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "r":
			a.rolls++
			a.recompute()
			a.setStatus("Re-rolled actual series", false)
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(msg.Runes) == 1 {
				if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) editing() bool {
	return a.tierState.editing || a.settings.editing
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  mrrgen needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings [][2]string
	}{
		{"Navigation", [][2]string{
			{"p t s", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"j k", "Move selection"},
			{"h l", "Select tier field"},
		}},
		{"Editing", [][2]string{
			{"Enter", "Edit selected field"},
			{"a", "Add tier"},
			{"d", "Delete tier"},
			{"Esc", "Cancel edit"},
		}},
		{"Actions", [][2]string{
			{"r", "Re-roll actual series"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind[0])),
				descStyle.Render(bind[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	msg, isErr := a.status, a.statusErr
	if a.runErr != nil {
		msg, isErr = a.runErr.Error(), true
	}
	span := ""
	if a.result.Projection.Len() > 0 {
		span = a.result.StartLabel + " - " + a.result.EndLabel
	}
	statusBar := components.RenderStatusBar(w, msg, isErr, span)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabProjection:
		content = a.renderProjectionTab(cw, contentH)
	case tabTiers:
		content = a.renderTiersTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	return components.TabAtX(a.activeTab, x)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
