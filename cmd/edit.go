package cmd

import (
	"fmt"
	"time"

	"ponto/internal/cli"
	"ponto/internal/model"

	"github.com/spf13/cobra"
)

var flagEditDate string

var editCmd = &cobra.Command{
	Use:   "edit <kind> <HH:MM>",
	Short: "Edit a recorded punch",
	Long: `Replaces the time of a recorded punch. Kind is one of:
clock_in, lunch_out, lunch_in, clock_out.

Only the format is checked; the new time may put the day out of order,
in which case the day counts as zero hours until fixed.`,
	Args: cobra.ExactArgs(2),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditDate, "date", "", "Day to edit as YYYY-MM-DD (default: today)")
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, args []string) error {
	kind := model.PunchKind(args[0])
	if !kind.Valid() {
		return fmt.Errorf("unknown punch kind %q: use clock_in, lunch_out, lunch_in or clock_out", args[0])
	}

	date := flagEditDate
	if date == "" {
		date = model.DateKey(time.Now())
	} else if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: use YYYY-MM-DD", date)
	}

	rec, st, err := openRecorder()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	punch, err := rec.EditKind(date, kind, args[1])
	if err != nil {
		return err
	}

	fmt.Printf("  %s on %s set to %s\n", cli.KindLabel(punch.Kind), date, punch.Clock())
	return nil
}
