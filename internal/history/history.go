// Package history groups the ledger by calendar month for reporting.
package history

import (
	"sort"
	"time"

	"ponto/internal/model"
	"ponto/internal/timesheet"
)

// MonthSummary holds on-demand aggregates for one month of records.
type MonthSummary struct {
	Month      string
	TotalHours float64
	WorkedDays int
	Balance    float64
}

// Months returns the distinct "YYYY-MM" keys with at least one record,
// most recent first.
func Months(ledger model.Ledger) []string {
	seen := make(map[string]struct{})
	var months []string
	for _, d := range ledger {
		key := timesheet.MonthKey(d.Date)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		months = append(months, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// DaysInMonth returns the month's records sorted newest first.
func DaysInMonth(ledger model.Ledger, month string) []model.DayRecord {
	days := timesheet.DaysInMonth(ledger, month)
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
	return days
}

// Summarize recomputes the month's aggregates from its filtered subset.
func Summarize(ledger model.Ledger, month string, target float64) MonthSummary {
	days := timesheet.DaysInMonth(ledger, month)
	return MonthSummary{
		Month:      month,
		TotalHours: timesheet.SumHours(days),
		WorkedDays: len(days),
		Balance:    timesheet.MonthlyBalance(ledger, month, target),
	}
}

// CurrentMonth returns now's "YYYY-MM" key.
func CurrentMonth(now time.Time) string {
	return now.Format("2006-01")
}
