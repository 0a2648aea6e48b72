package tui

import (
	"fmt"
	"strconv"
	"strings"

	"ponto/internal/config"
	"ponto/internal/timesheet"
	"ponto/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues collects first-run wizard answers.
type setupValues struct {
	Target    string
	Theme     string
	Reminders bool
}

func newSetupForm(vals *setupValues) *huh.Form {
	vals.Target = strconv.FormatFloat(timesheet.DefaultWeeklyTarget, 'f', -1, 64)
	vals.Theme = theme.FlexokiDark.Name

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, th := range theme.All {
		themeOpts[i] = huh.NewOption(th.Name, th.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to ponto").
				Description("A personal time clock. Let's set up a few things."),

			huh.NewInput().
				Title("Weekly target hours").
				Description("How many hours you aim to work per week.").
				Value(&vals.Target).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 || v > 168 {
						return fmt.Errorf("enter a number between 0 and 168")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),

			huh.NewConfirm().
				Title("Enable punch reminders?").
				Description("The background daemon can remind you when a punch is due.").
				Value(&vals.Reminders),
		),
	)
}

func (a *App) saveSetupConfig() {
	cfg := config.DefaultConfig()

	if target, err := strconv.ParseFloat(strings.TrimSpace(a.setupVals.Target), 64); err == nil && target > 0 {
		cfg.General.WeeklyTargetHours = target
		a.target = target
	}

	cfg.Appearance.Theme = a.setupVals.Theme
	theme.SetActive(cfg.Appearance.Theme)

	cfg.Reminders.Enabled = a.setupVals.Reminders

	// Best-effort save. The wizard's answers still apply in-session.
	_ = config.Save(cfg)
}
