// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"time"

	"ponto/internal/model"
)

// KindLabel returns the human-readable name for a punch kind.
func KindLabel(kind model.PunchKind) string {
	switch kind {
	case model.ClockIn:
		return "Clock In"
	case model.LunchOut:
		return "Lunch Out"
	case model.LunchIn:
		return "Lunch In"
	case model.ClockOut:
		return "Clock Out"
	}
	return string(kind)
}

// KindGlyph returns a one-character marker for a punch kind.
func KindGlyph(kind model.PunchKind) string {
	switch kind {
	case model.ClockIn:
		return "▶"
	case model.LunchOut:
		return "◫"
	case model.LunchIn:
		return "◁"
	case model.ClockOut:
		return "■"
	}
	return "·"
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatMonth renders a "YYYY-MM" key as "January 2026".
func FormatMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("January 2006")
}

// BalanceTag labels a balance value for display: "(extra)" when at or
// above target, "(short)" when below.
func BalanceTag(balance float64) string {
	if balance < 0 {
		return "(short)"
	}
	return "(extra)"
}
