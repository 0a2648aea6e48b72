package daemon

import (
	"testing"
	"time"

	"ponto/internal/model"
)

func completeDay(date string) model.DayRecord {
	clocks := []string{"08:00", "12:00", "13:00", "17:00"}
	day := model.DayRecord{Date: date}
	for i, kind := range model.KindSequence {
		day.Punches = append(day.Punches, model.Punch{
			Kind: kind,
			At:   date + "T" + clocks[i] + ":00",
		})
	}
	return day
}

func TestNextReminderDelay(t *testing.T) {
	times := []string{"08:00", "12:00", "13:00", "17:00"}

	tests := []struct {
		name  string
		now   time.Time
		want  time.Duration
		ok    bool
		times []string
	}{
		{
			name:  "midday picks next slot",
			now:   time.Date(2026, 8, 10, 12, 30, 0, 0, time.Local),
			want:  30 * time.Minute,
			ok:    true,
			times: times,
		},
		{
			name:  "early morning picks first slot",
			now:   time.Date(2026, 8, 10, 6, 0, 0, 0, time.Local),
			want:  2 * time.Hour,
			ok:    true,
			times: times,
		},
		{
			name:  "evening has nothing left",
			now:   time.Date(2026, 8, 10, 18, 0, 0, 0, time.Local),
			ok:    false,
			times: times,
		},
		{
			name:  "unsorted input still picks earliest",
			now:   time.Date(2026, 8, 10, 9, 0, 0, 0, time.Local),
			want:  3 * time.Hour,
			ok:    true,
			times: []string{"17:00", "13:00", "12:00"},
		},
		{
			name:  "malformed entries are skipped",
			now:   time.Date(2026, 8, 10, 9, 0, 0, 0, time.Local),
			want:  3 * time.Hour,
			ok:    true,
			times: []string{"nope", "12:00"},
		},
		{
			name:  "no parsable entries",
			now:   time.Date(2026, 8, 10, 9, 0, 0, 0, time.Local),
			ok:    false,
			times: []string{"later", ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nextReminderDelay(tt.times, tt.now)
			if ok != tt.ok {
				t.Fatalf("nextReminderDelay() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("nextReminderDelay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiffSnapshotsSameDay(t *testing.T) {
	prev := Snapshot{Date: "2026-08-10", Punches: 1, TodayHours: 0, WeeklyBalance: -44}
	curr := Snapshot{Date: "2026-08-10", Punches: 2, TodayHours: 0, WeeklyBalance: -44}

	delta := diffSnapshots(prev, curr)
	if delta.Punches != 1 {
		t.Errorf("delta.Punches = %d, want 1", delta.Punches)
	}
	if delta.TodayHours != 0 || delta.WeeklyBalance != 0 {
		t.Errorf("unexpected hour deltas: %+v", delta)
	}
}

func TestDiffSnapshotsDayRollover(t *testing.T) {
	prev := Snapshot{Date: "2026-08-10", Punches: 4, TodayHours: 8, WeeklyBalance: -36}
	curr := Snapshot{Date: "2026-08-11", Punches: 1, TodayHours: 0, WeeklyBalance: -36}

	delta := diffSnapshots(prev, curr)
	if delta.Punches != 1 {
		t.Errorf("delta.Punches = %d, want new day count 1", delta.Punches)
	}
	if delta.TodayHours != 0 {
		t.Errorf("delta.TodayHours = %v, want new day hours 0", delta.TodayHours)
	}
}

func TestDeltaIsZero(t *testing.T) {
	if !(Delta{}).isZero() {
		t.Error("empty delta should be zero")
	}
	if (Delta{Punches: 1}).isZero() {
		t.Error("punch delta should not be zero")
	}
	if (Delta{WeeklyBalance: 0.5}).isZero() {
		t.Error("balance delta should not be zero")
	}
}

func TestSnapshotLedgerCompleteDay(t *testing.T) {
	now := time.Date(2026, 8, 10, 18, 0, 0, 0, time.Local)
	ledger := model.Ledger{completeDay("2026-08-10")}

	snap := snapshotLedger(ledger, now, 44)
	if snap.Date != "2026-08-10" {
		t.Errorf("Date = %q, want 2026-08-10", snap.Date)
	}
	if snap.Punches != 4 {
		t.Errorf("Punches = %d, want 4", snap.Punches)
	}
	if !snap.Complete {
		t.Error("Complete = false, want true")
	}
	if snap.NextKind != "" {
		t.Errorf("NextKind = %q, want empty", snap.NextKind)
	}
	if snap.TodayHours != 8 {
		t.Errorf("TodayHours = %v, want 8", snap.TodayHours)
	}
}

func TestSnapshotLedgerEmptyDay(t *testing.T) {
	now := time.Date(2026, 8, 10, 7, 0, 0, 0, time.Local)

	snap := snapshotLedger(model.Ledger{}, now, 44)
	if snap.Punches != 0 {
		t.Errorf("Punches = %d, want 0", snap.Punches)
	}
	if snap.Complete {
		t.Error("Complete = true, want false")
	}
	if snap.NextKind != string(model.ClockIn) {
		t.Errorf("NextKind = %q, want %q", snap.NextKind, model.ClockIn)
	}
	if snap.TodayHours != 0 {
		t.Errorf("TodayHours = %v, want 0", snap.TodayHours)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New(Config{})
	if s.cfg.Interval != 30*time.Second {
		t.Errorf("Interval = %v, want 30s", s.cfg.Interval)
	}
	if s.cfg.EventsBuffer != 200 {
		t.Errorf("EventsBuffer = %d, want 200", s.cfg.EventsBuffer)
	}
	if s.cfg.Addr != "127.0.0.1:8799" {
		t.Errorf("Addr = %q, want 127.0.0.1:8799", s.cfg.Addr)
	}
	if s.cfg.WeeklyTarget != 44 {
		t.Errorf("WeeklyTarget = %v, want 44", s.cfg.WeeklyTarget)
	}
}

func TestPublishEventTrimsBuffer(t *testing.T) {
	s := New(Config{EventsBuffer: 3})
	for i := int64(1); i <= 5; i++ {
		s.publishEvent(Event{ID: i, Type: "punch_delta"})
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(s.events))
	}
	if s.events[0].ID != 3 || s.events[2].ID != 5 {
		t.Errorf("events kept IDs %d..%d, want 3..5", s.events[0].ID, s.events[2].ID)
	}
}

func TestPublishEventNotifiesSubscribers(t *testing.T) {
	s := New(Config{})
	ch := make(chan Event, 1)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	s.publishEvent(Event{ID: 7, Type: "reminder"})

	select {
	case ev := <-ch:
		if ev.ID != 7 {
			t.Errorf("received event ID %d, want 7", ev.ID)
		}
	default:
		t.Fatal("subscriber did not receive event")
	}

	// A full subscriber channel must not block the publisher.
	s.publishEvent(Event{ID: 8})
	s.publishEvent(Event{ID: 9})
}
