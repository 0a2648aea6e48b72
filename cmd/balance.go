package cmd

import (
	"fmt"
	"time"

	"ponto/internal/cli"
	"ponto/internal/history"
	"ponto/internal/timesheet"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show weekly and monthly balances",
	RunE:  runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(_ *cobra.Command, _ []string) error {
	rec, st, err := openRecorder()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	now := time.Now()
	target := weeklyTarget()
	ledger := rec.Ledger()

	week := timesheet.DaysInWeek(ledger, now)
	weekHours := timesheet.SumHours(week)
	weekBalance := timesheet.WeeklyBalance(ledger, now, target)

	month := history.CurrentMonth(now)
	summary := history.Summarize(ledger, month, target)

	fmt.Println()
	fmt.Println(cli.RenderTitle("BALANCE"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Week of %s", timesheet.WeekStart(now).Format("02 Jan")),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Worked", timesheet.FormatHours(weekHours)},
			{"Target", timesheet.FormatHours(target)},
			{"Balance", timesheet.FormatHours(weekBalance) + " " + cli.BalanceTag(weekBalance)},
		},
	}))

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   cli.FormatMonth(month),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Worked days", fmt.Sprintf("%d", summary.WorkedDays)},
			{"Worked", timesheet.FormatHours(summary.TotalHours)},
			{"Balance", timesheet.FormatHours(summary.Balance) + " " + cli.BalanceTag(summary.Balance)},
		},
	}))

	fmt.Println("  The monthly target scales with the days punched so far.")
	fmt.Println()
	return nil
}
