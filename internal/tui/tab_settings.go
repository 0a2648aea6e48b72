package tui

import (
	"fmt"
	"strconv"
	"strings"

	"ponto/internal/config"
	"ponto/internal/timesheet"
	"ponto/internal/tui/components"
	"ponto/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTarget = iota
	settingsFieldReminders
	settingsFieldReminderTimes
	settingsFieldTheme
	settingsFieldDataPath
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTarget:
		ti.Placeholder = "44"
		ti.SetValue(strconv.FormatFloat(cfg.General.WeeklyTargetHours, 'f', -1, 64))
	case settingsFieldReminders:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(cfg.Reminders.Enabled))
	case settingsFieldReminderTimes:
		ti.Placeholder = "08:00, 12:00, 13:00, 17:00"
		ti.SetValue(strings.Join(cfg.Reminders.Times, ", "))
	case settingsFieldTheme:
		names := make([]string, len(theme.All))
		for i, th := range theme.All {
			names[i] = th.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldDataPath:
		ti.Placeholder = "leave empty for the default location"
		ti.SetValue(cfg.General.DataPath)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		a.recompute()
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	value := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTarget:
		target, err := strconv.ParseFloat(value, 64)
		if err != nil || target <= 0 || target > 168 {
			a.settings.saveErr = fmt.Errorf("weekly target must be between 0 and 168")
			return
		}
		cfg.General.WeeklyTargetHours = target
		a.target = target
	case settingsFieldReminders:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			a.settings.saveErr = fmt.Errorf("use true or false")
			return
		}
		cfg.Reminders.Enabled = enabled
	case settingsFieldReminderTimes:
		var times []string
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if len(part) != 5 || part[2] != ':' {
				a.settings.saveErr = fmt.Errorf("invalid time %q: use HH:MM", part)
				return
			}
			times = append(times, part)
		}
		cfg.Reminders.Times = times
	case settingsFieldTheme:
		cfg.Appearance.Theme = theme.ByName(value).Name
		theme.SetActive(cfg.Appearance.Theme)
	case settingsFieldDataPath:
		cfg.General.DataPath = value
	}

	a.settings.saveErr = config.Save(cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	okStyle := lipgloss.NewStyle().Foreground(t.Green)

	target := cfg.General.WeeklyTargetHours
	if target <= 0 {
		target = timesheet.DefaultWeeklyTarget
	}

	dataPath := cfg.General.DataPath
	if dataPath == "" {
		dataPath = "(default)"
	}

	fields := []struct{ label, value string }{
		{"Weekly target", timesheet.FormatHours(target)},
		{"Reminders", strconv.FormatBool(cfg.Reminders.Enabled)},
		{"Reminder times", strings.Join(cfg.Reminders.Times, ", ")},
		{"Theme", theme.Active.Name},
		{"Data path", dataPath},
	}

	var body strings.Builder
	for i, f := range fields {
		line := fmt.Sprintf(" %-16s %s", f.label, f.value)
		if i == a.settings.cursor && !a.settings.editing {
			body.WriteString(selStyle.Render(line))
		} else if i == a.settings.cursor && a.settings.editing {
			body.WriteString(labelStyle.Render(fmt.Sprintf(" %-16s ", f.label)))
			body.WriteString(a.settings.input.View())
		} else {
			body.WriteString(labelStyle.Render(fmt.Sprintf(" %-16s ", f.label)))
			body.WriteString(valueStyle.Render(f.value))
		}
		body.WriteString("\n")
	}

	body.WriteString("\n")
	switch {
	case a.settings.editing:
		body.WriteString(dimStyle.Render(" Enter to save, Esc to cancel"))
	case a.settings.saveErr != nil:
		body.WriteString(errStyle.Render(" " + a.settings.saveErr.Error()))
	case a.settings.saved:
		body.WriteString(okStyle.Render(" Saved to " + config.Path()))
	default:
		body.WriteString(dimStyle.Render(" j/k to move, Enter to edit"))
	}

	b.WriteString(components.ContentCard("Settings", body.String(), cw))
	return b.String()
}
