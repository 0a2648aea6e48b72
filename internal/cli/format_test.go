package cli

import (
	"testing"

	"ponto/internal/model"
)

func TestKindLabel(t *testing.T) {
	cases := []struct {
		kind model.PunchKind
		want string
	}{
		{model.ClockIn, "Clock In"},
		{model.LunchOut, "Lunch Out"},
		{model.LunchIn, "Lunch In"},
		{model.ClockOut, "Clock Out"},
		{model.PunchKind("weird"), "weird"},
	}
	for _, tc := range cases {
		if got := KindLabel(tc.kind); got != tc.want {
			t.Errorf("KindLabel(%s) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	if got := FormatDayOfWeek(1); got != "Mon" {
		t.Errorf("FormatDayOfWeek(1) = %q, want Mon", got)
	}
	if got := FormatDayOfWeek(0); got != "Sun" {
		t.Errorf("FormatDayOfWeek(0) = %q, want Sun", got)
	}
	if got := FormatDayOfWeek(9); got != "???" {
		t.Errorf("FormatDayOfWeek(9) = %q, want ???", got)
	}
}

func TestFormatMonth(t *testing.T) {
	if got := FormatMonth("2026-08"); got != "August 2026" {
		t.Errorf("FormatMonth = %q, want August 2026", got)
	}
	if got := FormatMonth("junk"); got != "junk" {
		t.Errorf("FormatMonth(junk) = %q, want passthrough", got)
	}
}

func TestBalanceTag(t *testing.T) {
	if got := BalanceTag(1.5); got != "(extra)" {
		t.Errorf("BalanceTag(1.5) = %q", got)
	}
	if got := BalanceTag(0); got != "(extra)" {
		t.Errorf("BalanceTag(0) = %q", got)
	}
	if got := BalanceTag(-0.1); got != "(short)" {
		t.Errorf("BalanceTag(-0.1) = %q", got)
	}
}
