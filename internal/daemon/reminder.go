package daemon

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ponto/internal/model"
)

// nextReminderDelay returns the delay until the next configured reminder
// time at or after now. ok is false when no reminder remains today; the
// caller then waits for the next midnight and starts over.
func nextReminderDelay(times []string, now time.Time) (time.Duration, bool) {
	var candidates []time.Time
	for _, clock := range times {
		t, err := time.ParseInLocation("15:04", clock, now.Location())
		if err != nil {
			continue
		}
		at := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
		if at.After(now) {
			candidates = append(candidates, at)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Before(candidates[j]) })
	return candidates[0].Sub(now), true
}

// scheduleNextReminder arms a one-shot timer for the next reminder time.
// The timer is fire-and-forget: it fires, emits a reminder event if a
// punch is still due, and arms the following one.
func (s *Service) scheduleNextReminder(ctx context.Context, now time.Time) {
	delay, ok := nextReminderDelay(s.cfg.ReminderTimes, now)
	if !ok {
		// Nothing left today: re-evaluate shortly after midnight.
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		delay = midnight.Sub(now) + time.Minute
	}

	timer := time.AfterFunc(delay, func() {
		if ctx.Err() != nil {
			return
		}
		s.fireReminder(time.Now())
		s.scheduleNextReminder(ctx, time.Now())
	})

	go func() {
		<-ctx.Done()
		timer.Stop()
	}()
}

// fireReminder emits a reminder event when today's record is still
// waiting on its next punch. Completed days stay silent.
func (s *Service) fireReminder(now time.Time) {
	ledger, err := s.loadLedger()
	if err != nil {
		return
	}

	date := model.DateKey(now)
	day, _ := ledger.Day(date)
	day.Date = date

	kind, pending := day.NextKind()
	if !pending {
		return
	}

	snap := snapshotLedger(ledger, now, s.cfg.WeeklyTarget)

	s.mu.Lock()
	s.nextEventID++
	ev := Event{
		ID:        s.nextEventID,
		Type:      "reminder",
		Timestamp: now,
		Snapshot:  snap,
		Message:   fmt.Sprintf("punch due: %s", kind),
	}
	s.mu.Unlock()

	s.publishEvent(ev)
}
