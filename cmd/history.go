package cmd

import (
	"fmt"
	"time"

	"ponto/internal/cli"
	"ponto/internal/history"
	"ponto/internal/model"
	"ponto/internal/timesheet"

	"github.com/spf13/cobra"
)

var flagHistoryMonth string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show punch history by month",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryMonth, "month", "", "Month to show as YYYY-MM (default: list all months)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	rec, st, err := openRecorder()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ledger := rec.Ledger()
	target := weeklyTarget()

	if flagHistoryMonth != "" {
		if _, err := time.Parse("2006-01", flagHistoryMonth); err != nil {
			return fmt.Errorf("invalid month %q: use YYYY-MM", flagHistoryMonth)
		}
		return renderMonth(ledger, flagHistoryMonth, target)
	}

	months := history.Months(ledger)
	if len(months) == 0 {
		fmt.Println("\n  No punches recorded yet. Run `ponto punch` to start.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("HISTORY"))
	fmt.Println()

	rows := make([][]string, 0, len(months))
	for _, m := range months {
		s := history.Summarize(ledger, m, target)
		rows = append(rows, []string{
			cli.FormatMonth(m),
			fmt.Sprintf("%d", s.WorkedDays),
			timesheet.FormatHours(s.TotalHours),
			timesheet.FormatHours(s.Balance) + " " + cli.BalanceTag(s.Balance),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Months",
		Headers: []string{"Month", "Days", "Worked", "Balance"},
		Rows:    rows,
	}))

	fmt.Println("  Use `ponto history --month YYYY-MM` for the day-by-day view.")
	fmt.Println()
	return nil
}

func renderMonth(ledger model.Ledger, month string, target float64) error {
	days := history.DaysInMonth(ledger, month)
	if len(days) == 0 {
		fmt.Printf("\n  No punches recorded in %s.\n", cli.FormatMonth(month))
		return nil
	}

	summary := history.Summarize(ledger, month, target)

	fmt.Println()
	fmt.Println(cli.RenderTitle(cli.FormatMonth(month)))
	fmt.Println()

	rows := make([][]string, 0, len(days)+2)
	for _, d := range days {
		weekday := ""
		if dt, err := time.Parse(model.DateLayout, d.Date); err == nil {
			weekday = cli.FormatDayOfWeek(int(dt.Weekday()))
		}

		clocks := make([]string, len(model.KindSequence))
		for i, k := range model.KindSequence {
			clocks[i] = "--:--"
			if p, ok := d.Get(k); ok {
				clocks[i] = p.Clock()
			}
		}

		outcome, hours := timesheet.DayOutcome(d)
		hoursStr := timesheet.FormatHours(hours)
		if outcome != timesheet.OutcomeComplete {
			hoursStr = outcome.String()
		}

		rows = append(rows, []string{
			d.Date + " " + weekday,
			clocks[0], clocks[1], clocks[2], clocks[3],
			hoursStr,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		fmt.Sprintf("%d days", summary.WorkedDays),
		"", "", "",
		timesheet.FormatHours(summary.TotalHours),
		timesheet.FormatHours(summary.Balance) + " " + cli.BalanceTag(summary.Balance),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Days",
		Headers: []string{"Date", "In", "Lunch", "Back", "Out", "Hours"},
		Rows:    rows,
	}))

	// Hours per day, oldest left
	values := make([]float64, len(days))
	for i, d := range days {
		values[len(days)-1-i] = timesheet.WorkedHours(d)
	}
	fmt.Printf("  %s\n\n", cli.RenderSparkline(values))

	return nil
}
