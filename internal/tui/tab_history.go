package tui

import (
	"fmt"
	"strings"
	"time"

	"ponto/internal/cli"
	"ponto/internal/history"
	"ponto/internal/model"
	"ponto/internal/timesheet"
	"ponto/internal/tui/components"
	"ponto/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// historyState tracks the history tab state.
type historyState struct {
	monthIdx int // index into a.months, 0 = most recent
}

func (a App) renderHistoryTab(cw, contentH int) string {
	t := theme.Active
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	redStyle := lipgloss.NewStyle().Foreground(t.Red)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)

	// Month selector pills
	var pills []string
	for i, m := range a.months {
		label := " " + cli.FormatMonth(m) + " "
		if i == a.hist.monthIdx {
			pills = append(pills, selStyle.Render(label))
		} else {
			pills = append(pills, labelStyle.Render(label))
		}
	}
	b.WriteString(" " + strings.Join(pills, " "))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(" j/k to switch months"))
	b.WriteString("\n")

	month := a.months[a.hist.monthIdx]
	ledger := a.rec.Ledger()
	days := history.DaysInMonth(ledger, month)
	summary := history.Summarize(ledger, month, a.target)

	// Summary cards
	cards := []struct{ Label, Value, Note string }{
		{"Worked days", fmt.Sprintf("%d", summary.WorkedDays), ""},
		{"Total", timesheet.FormatHours(summary.TotalHours), ""},
		{"Balance", timesheet.FormatHours(summary.Balance), cli.BalanceTag(summary.Balance)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if len(days) == 0 {
		b.WriteString(dimStyle.Render(" No punches recorded this month."))
		return b.String()
	}

	// Day table, newest first
	var table strings.Builder
	table.WriteString(headStyle.Render(fmt.Sprintf("%-12s %-4s %-7s %-7s %-7s %-7s %9s", "Date", "Day", "In", "Lunch", "Back", "Out", "Hours")))
	table.WriteString("\n")

	rowBudget := contentH - 14 // pills, cards, chart
	if rowBudget < 3 {
		rowBudget = 3
	}
	for i, d := range days {
		if i >= rowBudget {
			table.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(days)-i)))
			table.WriteString("\n")
			break
		}

		weekday := ""
		if dt, err := time.Parse(model.DateLayout, d.Date); err == nil {
			weekday = cli.FormatDayOfWeek(int(dt.Weekday()))
		}

		clocks := make([]string, len(model.KindSequence))
		for j, k := range model.KindSequence {
			clocks[j] = "--:--"
			if p, ok := d.Get(k); ok {
				clocks[j] = p.Clock()
			}
		}

		outcome, hours := timesheet.DayOutcome(d)
		hoursStr := timesheet.FormatHours(hours)
		if outcome != timesheet.OutcomeComplete {
			hoursStr = outcome.String()
		}

		row := fmt.Sprintf("%-12s %-4s %-7s %-7s %-7s %-7s ", d.Date, weekday, clocks[0], clocks[1], clocks[2], clocks[3])
		table.WriteString(valueStyle.Render(row))
		switch {
		case outcome != timesheet.OutcomeComplete:
			table.WriteString(dimStyle.Render(fmt.Sprintf("%9s", hoursStr)))
		case hours*timesheet.WorkDaysPerWeek >= a.target:
			table.WriteString(greenStyle.Render(fmt.Sprintf("%9s", hoursStr)))
		default:
			table.WriteString(redStyle.Render(fmt.Sprintf("%9s", hoursStr)))
		}
		table.WriteString("\n")
	}

	b.WriteString(components.ContentCard(cli.FormatMonth(month), table.String(), cw))
	b.WriteString("\n")

	// Hours per day, oldest left
	values := make([]float64, len(days))
	labels := make([]string, len(days))
	for i, d := range days {
		values[len(days)-1-i] = timesheet.WorkedHours(d)
		labels[len(days)-1-i] = strings.TrimPrefix(d.Date[8:], "0")
	}
	dailyTarget := a.target / timesheet.WorkDaysPerWeek
	chart := components.BarChart(values, labels, dailyTarget, components.CardInnerWidth(cw), 6)
	b.WriteString(components.ContentCard("Hours per day", chart, cw))

	return b.String()
}
