// Package cmd implements the ponto CLI commands.
package cmd

import (
	"os"

	"ponto/internal/config"
	"ponto/internal/recorder"
	"ponto/internal/store"
	"ponto/internal/timesheet"

	"github.com/spf13/cobra"
)

var flagDBPath string

var rootCmd = &cobra.Command{
	Use:   "ponto",
	Short: "Personal time clock",
	Long:  "Record your daily punches and track worked hours against a weekly target.",
	RunE:  runToday,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the ledger database (default: XDG data dir)")
}

// openRecorder opens the store and loads the ledger.
// The caller owns the returned store and must close it.
func openRecorder() (*recorder.Recorder, *store.Store, error) {
	cfg, _ := config.Load()

	path := flagDBPath
	if path == "" {
		path = config.DataPath(cfg)
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}

	rec, err := recorder.New(st)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return rec, st, nil
}

// weeklyTarget returns the configured weekly target in hours.
func weeklyTarget() float64 {
	cfg, _ := config.Load()
	if cfg.General.WeeklyTargetHours > 0 {
		return cfg.General.WeeklyTargetHours
	}
	return timesheet.DefaultWeeklyTarget
}
