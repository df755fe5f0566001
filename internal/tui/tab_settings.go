package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/mrrgen/internal/cli"
	"github.com/theirongolddev/mrrgen/internal/config"
	"github.com/theirongolddev/mrrgen/internal/model"
	"github.com/theirongolddev/mrrgen/internal/tui/components"
	"github.com/theirongolddev/mrrgen/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldMonths = iota
	settingsFieldGrowth
	settingsFieldStart
	settingsFieldTheme
	settingsFieldLocale
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return a, nil, true
	case "enter":
		m, cmd := a.settingsStartEdit()
		return m, cmd, true
	}
	return a, nil, false
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40

	switch a.settings.cursor {
	case settingsFieldMonths:
		ti.Placeholder = "12"
		ti.SetValue(strconv.Itoa(a.params.MonthsAhead))
	case settingsFieldGrowth:
		ti.Placeholder = "10 (percent per month)"
		ti.SetValue(strconv.FormatFloat(a.params.GrowthRatePercent, 'f', -1, 64))
	case settingsFieldStart:
		ti.Placeholder = "2023-01"
		ti.SetValue(a.params.Start.Format(config.StartLayout))
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(theme.Active.Name)
	case settingsFieldLocale:
		ti.Placeholder = "en-US"
		ti.SetValue(a.cfg.Display.Locale)
	}

	ti.Focus()
	a.settings.input = ti
	a.settings.editing = true
	a.status = ""
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := a.applySetting(a.settings.input.Value()); err != nil {
			a.setStatus(err.Error(), true)
			return a, nil
		}
		a.settings.editing = false
		if a.saveConfig != nil {
			if err := a.saveConfig(a.cfg); err != nil {
				a.setStatus(fmt.Sprintf("Save failed: %s", err), true)
				return a, nil
			}
			a.setStatus("Saved", false)
		} else {
			a.setStatus("Applied", false)
		}
		return a, nil
	case "esc":
		a.settings.editing = false
		a.status = ""
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// applySetting validates raw for the selected field, updates the live
// parameters and the config copy, and recomputes the projection.
func (a *App) applySetting(raw string) error {
	val := strings.TrimSpace(raw)

	switch a.settings.cursor {
	case settingsFieldMonths:
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("months must be a whole number from 0 to %d", config.MaxMonths)
		}
		if err := config.ValidateMonths(n); err != nil {
			return err
		}
		a.params.MonthsAhead = n
		a.cfg.Projection.Months = n
	case settingsFieldGrowth:
		g, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("growth %q must be a number of at least %d", val, config.MinGrowthPercent)
		}
		if err := config.ValidateGrowth(g); err != nil {
			return err
		}
		a.params.GrowthRatePercent = g
		a.cfg.Projection.GrowthPercent = g
	case settingsFieldStart:
		start, err := config.ParseStart(val)
		if err != nil {
			return err
		}
		a.params.Start = model.MonthStart(start)
		a.cfg.Projection.Start = val
	case settingsFieldTheme:
		if !knownTheme(val) {
			return fmt.Errorf("unknown theme %q", val)
		}
		theme.SetActive(val)
		a.cfg.Appearance.Theme = val
	case settingsFieldLocale:
		if err := cli.SetLocale(val); err != nil {
			_ = cli.SetLocale(a.cfg.Display.Locale)
			return err
		}
		a.cfg.Display.Locale = val
	}

	a.recompute()
	return nil
}

func knownTheme(name string) bool {
	for _, n := range theme.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	fields := [settingsFieldCount]struct{ label, value string }{
		{"Projection Months", strconv.Itoa(a.params.MonthsAhead)},
		{"Monthly Growth", fmt.Sprintf("%g%%", a.params.GrowthRatePercent)},
		{"Start Month", a.params.Start.Format(config.StartLayout)},
		{"Theme", theme.Active.Name},
		{"Locale", a.cfg.Display.Locale},
	}

	innerW := components.CardInnerWidth(cw)

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker + label + value)
			used := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if pad := innerW - used; pad > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}
	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	seed := "random"
	if a.seed != 0 {
		seed = fmt.Sprintf("%d (+%d re-rolls)", a.seed, a.rolls)
	}

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Currency:     ") + valueStyle.Render(cli.CurrencySymbol()+" "+cli.DisplayCurrency.String()) + "\n")
	infoBody.WriteString(labelStyle.Render("Jitter seed:  ") + valueStyle.Render(seed) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))
	return b.String()
}
