package cmd

import (
	"fmt"
	"strings"

	"ponto/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Weekly target: %g hours\n", cfg.General.WeeklyTargetHours)
	fmt.Printf("    Ledger path:   %s\n", config.DataPath(cfg))
	fmt.Println()

	fmt.Println("  [Reminders]")
	fmt.Printf("    Enabled: %v\n", cfg.Reminders.Enabled)
	if len(cfg.Reminders.Times) > 0 {
		fmt.Printf("    Times:   %s\n", strings.Join(cfg.Reminders.Times, ", "))
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `ponto setup` to reconfigure.")
	return nil
}
