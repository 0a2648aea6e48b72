package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ponto/internal/config"
	"ponto/internal/tui/theme"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to ponto!")
	fmt.Println()

	// 1. Weekly target
	fmt.Println("  1. Weekly target hours")
	fmt.Printf("     Current: %g\n", cfg.General.WeeklyTargetHours)
	fmt.Print("     > ")
	targetIn, _ := reader.ReadString('\n')
	targetIn = strings.TrimSpace(targetIn)
	if targetIn != "" {
		target, err := strconv.ParseFloat(targetIn, 64)
		if err != nil || target <= 0 || target > 168 {
			return fmt.Errorf("invalid weekly target %q", targetIn)
		}
		cfg.General.WeeklyTargetHours = target
	}
	fmt.Println()

	// 2. Reminders
	fmt.Println("  2. Punch reminders (needs the daemon running)")
	fmt.Printf("     Enable? [y/N] ")
	remindersIn, _ := reader.ReadString('\n')
	cfg.Reminders.Enabled = strings.HasPrefix(strings.ToLower(strings.TrimSpace(remindersIn)), "y")
	if cfg.Reminders.Enabled {
		fmt.Printf("     Times (comma-separated HH:MM, Enter for %s)\n", strings.Join(cfg.Reminders.Times, ", "))
		fmt.Print("     > ")
		timesIn, _ := reader.ReadString('\n')
		timesIn = strings.TrimSpace(timesIn)
		if timesIn != "" {
			var times []string
			for _, part := range strings.Split(timesIn, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				if len(part) != 5 || part[2] != ':' {
					return fmt.Errorf("invalid time %q: use HH:MM", part)
				}
				times = append(times, part)
			}
			cfg.Reminders.Times = times
		}
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	for i, th := range theme.All {
		marker := " "
		if th.Name == cfg.Appearance.Theme {
			marker = "*"
		}
		fmt.Printf("     (%d)%s %s\n", i+1, marker, th.Name)
	}
	fmt.Print("     > ")
	themeIn, _ := reader.ReadString('\n')
	themeIn = strings.TrimSpace(themeIn)
	if themeIn != "" {
		idx, err := strconv.Atoi(themeIn)
		if err != nil || idx < 1 || idx > len(theme.All) {
			return fmt.Errorf("invalid choice %q", themeIn)
		}
		cfg.Appearance.Theme = theme.All[idx-1].Name
	}
	fmt.Println()

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `ponto tui` to open the dashboard.")
	fmt.Println()
	return nil
}
