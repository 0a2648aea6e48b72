// Package timesheet computes worked durations and balances from day records.
package timesheet

import (
	"fmt"
	"math"
	"time"

	"ponto/internal/model"
)

// DefaultWeeklyTarget is the contractual weekly hours used when the user
// has not configured their own.
const DefaultWeeklyTarget = 44.0

// WorkDaysPerWeek is assumed when prorating the weekly target over a month.
const WorkDaysPerWeek = 5.0

// Outcome classifies a day's computed duration.
type Outcome int

const (
	// OutcomeIncomplete means one or more of the four punch kinds is missing.
	OutcomeIncomplete Outcome = iota
	// OutcomeInconsistent means all four punches exist but their timestamps
	// violate the clock-in ≤ lunch-out ≤ lunch-in ≤ clock-out order.
	OutcomeInconsistent
	// OutcomeComplete means the day has a well-defined worked duration.
	OutcomeComplete
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIncomplete:
		return "incomplete"
	case OutcomeInconsistent:
		return "inconsistent"
	case OutcomeComplete:
		return "complete"
	}
	return "unknown"
}

// DayOutcome computes the worked hours for a day along with how that value
// should be read. Hours is 0 unless the outcome is Complete.
func DayOutcome(day model.DayRecord) (Outcome, float64) {
	times := make([]time.Time, len(model.KindSequence))
	for i, kind := range model.KindSequence {
		p, ok := day.Get(kind)
		if !ok {
			return OutcomeIncomplete, 0
		}
		t, err := p.Time()
		if err != nil {
			// Unparsable timestamps (e.g. a hand-edited "25:99") read
			// the same as out-of-order ones.
			return OutcomeInconsistent, 0
		}
		times[i] = t
	}

	for i := 1; i < len(times); i++ {
		if times[i].Before(times[i-1]) {
			return OutcomeInconsistent, 0
		}
	}

	worked := times[3].Sub(times[0]) - times[2].Sub(times[1])
	return OutcomeComplete, worked.Hours()
}

// WorkedHours returns the day's worked duration in fractional hours,
// collapsing Incomplete and Inconsistent days to 0.
func WorkedHours(day model.DayRecord) float64 {
	_, hours := DayOutcome(day)
	return hours
}

// SumHours totals WorkedHours over days. Order-independent.
func SumHours(days []model.DayRecord) float64 {
	total := 0.0
	for _, d := range days {
		total += WorkedHours(d)
	}
	return total
}

// FormatHours renders fractional hours as "8h 0min". Negative values keep
// a leading sign. Minutes are rounded to the nearest whole minute and a
// 60-minute result carries into the hour component.
func FormatHours(hours float64) string {
	sign := ""
	if hours < 0 {
		sign = "-"
		hours = -hours
	}
	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%s%dh %dmin", sign, h, m)
}

// WeekStart returns Monday 00:00 local time of the week containing t.
// Sunday counts as the 7th day of the preceding Monday-start week.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// DaysInWeek filters days to the current week: Monday 00:00 through now,
// inclusive of today.
func DaysInWeek(days []model.DayRecord, now time.Time) []model.DayRecord {
	start := WeekStart(now)
	var result []model.DayRecord
	for _, d := range days {
		date, err := time.ParseInLocation(model.DateLayout, d.Date, now.Location())
		if err != nil {
			continue
		}
		if date.Before(start) || date.After(now) {
			continue
		}
		result = append(result, d)
	}
	return result
}

// WeeklyBalance is the current week's worked hours minus the weekly target.
func WeeklyBalance(days []model.DayRecord, now time.Time, target float64) float64 {
	return SumHours(DaysInWeek(days, now)) - target
}

// MonthKey derives the "YYYY-MM" grouping key from a day's date key.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// DaysInMonth filters days to the given "YYYY-MM" month.
func DaysInMonth(days []model.DayRecord, month string) []model.DayRecord {
	var result []model.DayRecord
	for _, d := range days {
		if MonthKey(d.Date) == month {
			result = append(result, d)
		}
	}
	return result
}

// MonthlyBalance is the month's worked hours minus the weekly target
// prorated over its recorded days, assuming a 5-day work week. This is an
// approximation, kept deliberately: no per-day target schedule exists.
func MonthlyBalance(days []model.DayRecord, month string, target float64) float64 {
	inMonth := DaysInMonth(days, month)
	return SumHours(inMonth) - target*(float64(len(inMonth))/WorkDaysPerWeek)
}
