package cmd

import (
	"fmt"
	"time"

	"ponto/internal/cli"
	"ponto/internal/recorder"
	"ponto/internal/timesheet"

	"github.com/spf13/cobra"
)

var punchCmd = &cobra.Command{
	Use:   "punch",
	Short: "Record the next punch for today",
	Long:  "Records whichever punch comes next: clock-in, lunch-out, lunch-in, then clock-out.",
	RunE:  runPunch,
}

func init() {
	rootCmd.AddCommand(punchCmd)
}

func runPunch(_ *cobra.Command, _ []string) error {
	rec, st, err := openRecorder()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	now := time.Now()
	punch, err := rec.PunchNow(now)
	if err != nil {
		if err == recorder.ErrDayComplete {
			fmt.Println("  All four punches are already recorded today.")
			fmt.Println("  Use `ponto edit` to correct one.")
			return nil
		}
		return err
	}

	fmt.Printf("  %s %s at %s\n", cli.KindGlyph(punch.Kind), cli.KindLabel(punch.Kind), punch.Clock())

	day := rec.Day(now)
	if outcome, hours := timesheet.DayOutcome(day); outcome == timesheet.OutcomeComplete {
		fmt.Printf("  Day complete: %s worked\n", timesheet.FormatHours(hours))
	} else if next, ok := day.NextKind(); ok {
		fmt.Printf("  Next: %s\n", cli.KindLabel(next))
	}

	return nil
}
