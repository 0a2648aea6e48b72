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

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's punches and balances",
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(_ *cobra.Command, _ []string) error {
	rec, st, err := openRecorder()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	now := time.Now()
	day := rec.Day(now)
	target := weeklyTarget()

	fmt.Println()
	fmt.Println(cli.RenderTitle(now.Format("Monday, 02 January 2006")))
	fmt.Println()
	fmt.Print(cli.RenderTable(dayTable(day)))

	outcome, hours := timesheet.DayOutcome(day)
	switch outcome {
	case timesheet.OutcomeComplete:
		fmt.Printf("  Worked today: %s\n", timesheet.FormatHours(hours))
	case timesheet.OutcomeInconsistent:
		fmt.Println("  Punches are out of order; the day counts as zero until fixed.")
	default:
		if next, ok := day.NextKind(); ok {
			fmt.Printf("  Next punch: %s\n", cli.KindLabel(next))
		}
	}

	ledger := rec.Ledger()
	weekBalance := timesheet.WeeklyBalance(ledger, now, target)
	monthBalance := timesheet.MonthlyBalance(ledger, history.CurrentMonth(now), target)
	fmt.Printf("  Week balance: %s %s\n", timesheet.FormatHours(weekBalance), cli.BalanceTag(weekBalance))
	fmt.Printf("  Month balance: %s %s\n", timesheet.FormatHours(monthBalance), cli.BalanceTag(monthBalance))
	fmt.Println()

	return nil
}

// dayTable lists the four punch slots with recorded clocks.
func dayTable(day model.DayRecord) cli.Table {
	rows := make([][]string, 0, len(model.KindSequence))
	for _, k := range model.KindSequence {
		clock := "--:--"
		if p, ok := day.Get(k); ok {
			clock = p.Clock()
		}
		rows = append(rows, []string{cli.KindGlyph(k) + " " + cli.KindLabel(k), clock})
	}
	return cli.Table{
		Title:   "Punches",
		Headers: []string{"Punch", "Time"},
		Rows:    rows,
	}
}
