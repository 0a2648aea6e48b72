package tui

import (
	"fmt"
	"strings"

	"ponto/internal/cli"
	"ponto/internal/history"
	"ponto/internal/model"
	"ponto/internal/timesheet"
	"ponto/internal/tui/components"
	"ponto/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// punchState tracks the punch tab state. selecting picks which recorded
// punch to edit; editing holds the HH:MM input for the picked one.
type punchState struct {
	selecting bool
	editing   bool
	cursor    int // index into today's recorded punches, in kind order
	editKind  model.PunchKind
	input     textinput.Model
	editErr   error
}

func kindLabel(kind model.PunchKind) string {
	return cli.KindLabel(kind)
}

// recordedKinds returns today's punched kinds in canonical order.
func (a App) recordedKinds() []model.PunchKind {
	var kinds []model.PunchKind
	for _, k := range model.KindSequence {
		if _, ok := a.today.Get(k); ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (a App) punchStartSelect() (tea.Model, tea.Cmd) {
	if len(a.recordedKinds()) == 0 {
		a.flash = "nothing to edit yet"
		return a, nil
	}
	a.punch.selecting = true
	a.punch.cursor = 0
	a.punch.editErr = nil
	a.flash = ""
	return a, nil
}

func (a App) updatePunchSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kinds := a.recordedKinds()

	switch msg.String() {
	case "esc", "e":
		a.punch.selecting = false
		return a, nil
	case "j", "down":
		if a.punch.cursor < len(kinds)-1 {
			a.punch.cursor++
		}
		return a, nil
	case "k", "up":
		if a.punch.cursor > 0 {
			a.punch.cursor--
		}
		return a, nil
	case "enter":
		if a.punch.cursor >= len(kinds) {
			return a, nil
		}
		kind := kinds[a.punch.cursor]
		punch, _ := a.today.Get(kind)

		ti := textinput.New()
		ti.Placeholder = "HH:MM"
		ti.CharLimit = 5
		ti.Width = 8
		ti.SetValue(punch.Clock())
		ti.Focus()

		a.punch.selecting = false
		a.punch.editing = true
		a.punch.editKind = kind
		a.punch.input = ti
		return a, ti.Cursor.BlinkCmd()
	}
	return a, nil
}

func (a App) updatePunchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		clock := strings.TrimSpace(a.punch.input.Value())
		_, err := a.rec.EditKind(a.today.Date, a.punch.editKind, clock)
		if err != nil {
			a.punch.editErr = err
			return a, nil
		}
		a.punch.editing = false
		a.punch.editErr = nil
		a.flash = fmt.Sprintf("%s set to %s", kindLabel(a.punch.editKind), clock)
		a.recompute()
		return a, nil
	case "esc":
		a.punch.editing = false
		a.punch.editErr = nil
		return a, nil
	}

	var cmd tea.Cmd
	a.punch.input, cmd = a.punch.input.Update(msg)
	return a, cmd
}

func (a App) renderPunchTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	// Today card: the four punch slots
	var rows strings.Builder
	kinds := a.recordedKinds()
	recordedIdx := 0
	for _, k := range model.KindSequence {
		glyph := cli.KindGlyph(k)
		label := fmt.Sprintf("%-10s", kindLabel(k))

		punch, ok := a.today.Get(k)
		clock := "--:--"
		if ok {
			clock = punch.Clock()
		}

		line := fmt.Sprintf(" %s %s %s", glyph, label, clock)
		switch {
		case a.punch.selecting && ok && recordedIdx == a.punch.cursor:
			rows.WriteString(selStyle.Render(line))
		case ok:
			rows.WriteString(labelStyle.Render(fmt.Sprintf(" %s %s ", glyph, label)) + valueStyle.Render(clock))
		default:
			rows.WriteString(dimStyle.Render(line))
		}
		rows.WriteString("\n")
		if ok {
			recordedIdx++
		}
	}

	rows.WriteString("\n")
	switch {
	case a.punch.editing:
		rows.WriteString(labelStyle.Render(fmt.Sprintf(" %s: ", kindLabel(a.punch.editKind))))
		rows.WriteString(a.punch.input.View())
		if a.punch.editErr != nil {
			rows.WriteString("\n ")
			rows.WriteString(errStyle.Render(a.punch.editErr.Error()))
		}
		rows.WriteString("\n")
		rows.WriteString(dimStyle.Render(" Enter to save, Esc to cancel"))
	case a.punch.selecting:
		rows.WriteString(dimStyle.Render(" j/k to pick a punch, Enter to edit, Esc to cancel"))
	default:
		if next, ok := a.today.NextKind(); ok {
			rows.WriteString(accentStyle.Render(fmt.Sprintf(" Space: punch %s", kindLabel(next))))
		} else {
			rows.WriteString(labelStyle.Render(" Day complete"))
		}
		if len(kinds) > 0 {
			rows.WriteString(dimStyle.Render("  ·  e: edit"))
		}
	}

	date := a.now.Format("Monday, 02 January 2006")
	b.WriteString(components.ContentCard(date, rows.String(), cw))
	b.WriteString("\n")

	// Metric cards: today, week balance, month balance
	todayVal := timesheet.FormatHours(a.todayHours)
	todayNote := ""
	switch a.todayOutcome {
	case timesheet.OutcomeIncomplete:
		todayNote = "in progress"
	case timesheet.OutcomeInconsistent:
		todayNote = "inconsistent punches"
	}

	month := history.CurrentMonth(a.now)
	monthBalance := timesheet.MonthlyBalance(a.rec.Ledger(), month, a.target)

	cards := []struct{ Label, Value, Note string }{
		{"Today", todayVal, todayNote},
		{"Week balance", timesheet.FormatHours(a.weekBalance), cli.BalanceTag(a.weekBalance)},
		{"Month balance", timesheet.FormatHours(monthBalance), cli.BalanceTag(monthBalance)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Weekly target progress
	barW := cw - 30
	if barW < 10 {
		barW = 10
	}
	bar := components.TargetBar("Week", a.weekHours, a.target,
		timesheet.FormatHours(a.weekHours), timesheet.FormatHours(a.target), 5, barW)
	b.WriteString(components.ContentCard("", bar, cw))

	return b.String()
}
