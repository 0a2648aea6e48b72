package history

import (
	"testing"
	"time"

	"ponto/internal/model"

	"github.com/stretchr/testify/assert"
)

func completeDay(date string) model.DayRecord {
	clocks := []string{"08:00", "12:00", "13:00", "17:00"}
	d := model.DayRecord{Date: date}
	for i, kind := range model.KindSequence {
		d.Punches = append(d.Punches, model.Punch{
			ID:   date + clocks[i],
			Kind: kind,
			At:   date + "T" + clocks[i] + ":00",
		})
	}
	return d
}

func TestMonths(t *testing.T) {
	ledger := model.Ledger{
		completeDay("2026-08-11"),
		completeDay("2026-08-10"),
		completeDay("2026-07-30"),
		completeDay("2026-06-01"),
	}

	assert.Equal(t, []string{"2026-08", "2026-07", "2026-06"}, Months(ledger))
}

func TestMonthsEmpty(t *testing.T) {
	assert.Empty(t, Months(nil))
}

func TestDaysInMonthSorted(t *testing.T) {
	ledger := model.Ledger{
		completeDay("2026-08-03"),
		completeDay("2026-08-11"),
		completeDay("2026-07-30"),
	}

	days := DaysInMonth(ledger, "2026-08")
	assert.Len(t, days, 2)
	assert.Equal(t, "2026-08-11", days[0].Date)
	assert.Equal(t, "2026-08-03", days[1].Date)
}

func TestSummarize(t *testing.T) {
	ledger := model.Ledger{
		completeDay("2026-08-10"), // 8h
		completeDay("2026-08-11"), // 8h
		{Date: "2026-08-12"},      // incomplete, still a worked day
		completeDay("2026-07-30"),
	}

	s := Summarize(ledger, "2026-08", 44)
	assert.Equal(t, "2026-08", s.Month)
	assert.Equal(t, 3, s.WorkedDays)
	assert.InDelta(t, 16.0, s.TotalHours, 1e-9)
	assert.InDelta(t, 16.0-44*3.0/5.0, s.Balance, 1e-9)
}

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-08", CurrentMonth(now))
}
