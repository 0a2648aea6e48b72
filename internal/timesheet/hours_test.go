package timesheet

import (
	"math"
	"testing"
	"time"

	"ponto/internal/model"
)

// day builds a DayRecord with punches assigned to kinds in sequence order.
func day(date string, clocks ...string) model.DayRecord {
	d := model.DayRecord{Date: date}
	for i, clock := range clocks {
		if i >= len(model.KindSequence) {
			break
		}
		d.Punches = append(d.Punches, model.Punch{
			ID:   clock,
			Kind: model.KindSequence[i],
			At:   date + "T" + clock + ":00",
		})
	}
	return d
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDayOutcomeComplete(t *testing.T) {
	d := day("2026-08-10", "08:00", "12:00", "13:00", "17:00")

	outcome, hours := DayOutcome(d)
	if outcome != OutcomeComplete {
		t.Fatalf("DayOutcome = %v, want complete", outcome)
	}
	if !almostEqual(hours, 8.0) {
		t.Errorf("hours = %v, want 8.0", hours)
	}
}

func TestDayOutcomeHalfHours(t *testing.T) {
	d := day("2026-08-10", "08:30", "12:00", "12:45", "17:00")

	_, hours := DayOutcome(d)
	if !almostEqual(hours, 7.75) {
		t.Errorf("hours = %v, want 7.75", hours)
	}
}

func TestDayOutcomeMissingPunch(t *testing.T) {
	cases := [][]string{
		{},
		{"08:00"},
		{"08:00", "12:00"},
		{"08:00", "12:00", "13:00"},
	}
	for _, clocks := range cases {
		d := day("2026-08-10", clocks...)
		outcome, hours := DayOutcome(d)
		if outcome != OutcomeIncomplete {
			t.Errorf("DayOutcome(%d punches) = %v, want incomplete", len(clocks), outcome)
		}
		if hours != 0 {
			t.Errorf("hours with %d punches = %v, want 0", len(clocks), hours)
		}
	}
}

func TestDayOutcomeOutOfOrder(t *testing.T) {
	// Lunch return before lunch out
	d := day("2026-08-10", "08:00", "12:00", "11:00", "17:00")

	outcome, hours := DayOutcome(d)
	if outcome != OutcomeInconsistent {
		t.Fatalf("DayOutcome = %v, want inconsistent", outcome)
	}
	if hours != 0 {
		t.Errorf("hours = %v, want 0", hours)
	}
}

func TestDayOutcomeUnparsableTimestamp(t *testing.T) {
	d := day("2026-08-10", "08:00", "12:00", "13:00", "17:00")
	d.Punches[2].At = "2026-08-10Tgarbage"

	outcome, _ := DayOutcome(d)
	if outcome != OutcomeInconsistent {
		t.Errorf("DayOutcome = %v, want inconsistent", outcome)
	}
}

func TestWorkedHoursCollapsesToZero(t *testing.T) {
	incomplete := day("2026-08-10", "08:00")
	if got := WorkedHours(incomplete); got != 0 {
		t.Errorf("WorkedHours(incomplete) = %v, want 0", got)
	}

	inconsistent := day("2026-08-10", "09:00", "08:00", "13:00", "17:00")
	if got := WorkedHours(inconsistent); got != 0 {
		t.Errorf("WorkedHours(inconsistent) = %v, want 0", got)
	}
}

func TestSumHours(t *testing.T) {
	if got := SumHours(nil); got != 0 {
		t.Errorf("SumHours(nil) = %v, want 0", got)
	}

	days := []model.DayRecord{
		day("2026-08-10", "08:00", "12:00", "13:00", "17:00"), // 8h
		day("2026-08-11", "09:00", "12:00", "13:00", "17:30"), // 7.5h
		day("2026-08-12", "08:00"),                            // incomplete, 0
	}
	if got := SumHours(days); !almostEqual(got, 15.5) {
		t.Errorf("SumHours = %v, want 15.5", got)
	}

	// Order-independent
	reversed := []model.DayRecord{days[2], days[1], days[0]}
	if got := SumHours(reversed); !almostEqual(got, 15.5) {
		t.Errorf("SumHours(reversed) = %v, want 15.5", got)
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, "0h 0min"},
		{8, "8h 0min"},
		{8.25, "8h 15min"},
		{-2.5, "-2h 30min"},
		{0.5, "0h 30min"},
		{-0.25, "-0h 15min"},
		{7 + 59.6/60, "8h 0min"}, // minute rounding carries into the hour
	}
	for _, tc := range cases {
		if got := FormatHours(tc.hours); got != tc.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tc.hours, got, tc.want)
		}
	}
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2026-08-24", "2026-08-24"}, // Monday maps to itself
		{"2026-08-26", "2026-08-24"}, // Wednesday
		{"2026-08-30", "2026-08-24"}, // Sunday belongs to the preceding Monday week
		{"2026-08-31", "2026-08-31"}, // next Monday
	}
	for _, tc := range cases {
		now, err := time.ParseInLocation(model.DateLayout, tc.date, time.Local)
		if err != nil {
			t.Fatal(err)
		}
		got := WeekStart(now)
		if got.Format(model.DateLayout) != tc.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tc.date, got.Format(model.DateLayout), tc.want)
		}
		if got.Hour() != 0 || got.Minute() != 0 {
			t.Errorf("WeekStart(%s) not at midnight: %v", tc.date, got)
		}
	}
}

func TestDaysInWeek(t *testing.T) {
	days := []model.DayRecord{
		day("2026-08-26", "08:00", "12:00", "13:00", "17:00"), // Wed, this week
		day("2026-08-24", "08:00", "12:00", "13:00", "17:00"), // Mon, this week
		day("2026-08-23", "08:00", "12:00", "13:00", "17:00"), // Sun, previous week
		day("2026-08-28", "08:00", "12:00", "13:00", "17:00"), // Fri, future
	}
	now, _ := time.ParseInLocation(model.TimeLayout, "2026-08-26T18:00:00", time.Local)

	got := DaysInWeek(days, now)
	if len(got) != 2 {
		t.Fatalf("DaysInWeek returned %d days, want 2", len(got))
	}
	for _, d := range got {
		if d.Date != "2026-08-26" && d.Date != "2026-08-24" {
			t.Errorf("unexpected day in week: %s", d.Date)
		}
	}
}

func TestWeeklyBalance(t *testing.T) {
	days := []model.DayRecord{
		day("2026-08-24", "08:00", "12:00", "13:00", "18:00"), // 9h
		day("2026-08-25", "08:00", "12:00", "13:00", "17:00"), // 8h
	}
	now, _ := time.ParseInLocation(model.TimeLayout, "2026-08-25T19:00:00", time.Local)

	got := WeeklyBalance(days, now, 44)
	if !almostEqual(got, 17-44) {
		t.Errorf("WeeklyBalance = %v, want %v", got, 17-44)
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey("2026-08-10"); got != "2026-08" {
		t.Errorf("MonthKey = %q, want %q", got, "2026-08")
	}
	if got := MonthKey("bad"); got != "bad" {
		t.Errorf("MonthKey(short) = %q, want passthrough", got)
	}
}

func TestMonthlyBalance(t *testing.T) {
	var days []model.DayRecord
	dates := []string{"2026-08-03", "2026-08-04", "2026-08-05", "2026-08-06", "2026-08-07"}
	for _, date := range dates {
		days = append(days, day(date, "08:00", "12:00", "13:00", "17:00")) // 8h each
	}
	days = append(days, day("2026-07-31", "08:00", "12:00", "13:00", "17:00"))

	// 40h worked over 5 days against 44 * (5/5)
	got := MonthlyBalance(days, "2026-08", 44)
	if !almostEqual(got, -4) {
		t.Errorf("MonthlyBalance = %v, want -4", got)
	}

	// Two recorded days prorate the target to 44 * 2/5
	partial := days[:2]
	got = MonthlyBalance(partial, "2026-08", 44)
	if !almostEqual(got, 16-44*2.0/5.0) {
		t.Errorf("MonthlyBalance(partial) = %v, want %v", got, 16-44*2.0/5.0)
	}
}
