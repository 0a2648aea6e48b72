// Package recorder appends and corrects punches on today's day record.
package recorder

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"ponto/internal/model"
	"ponto/internal/store"
)

// ErrDayComplete is returned when all four punches are already recorded
// for the day.
var ErrDayComplete = errors.New("all punches for the day are already recorded")

// clockRe matches the HH:MM edit form. Syntactic check only; consistency
// with sibling punches is enforced at read time by the timesheet.
var clockRe = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Recorder owns the in-memory ledger copy. It is the sole source of truth
// for the next write: every mutation rewrites the whole ledger from this
// copy, so sequential callers cannot lose updates.
type Recorder struct {
	store  *store.Store
	ledger model.Ledger
}

// New loads the ledger and returns a recorder bound to st.
func New(st *store.Store) (*Recorder, error) {
	ledger, err := st.LoadLedger()
	if err != nil {
		return nil, err
	}
	return &Recorder{store: st, ledger: ledger}, nil
}

// Ledger returns the current in-memory ledger.
func (r *Recorder) Ledger() model.Ledger {
	return r.ledger
}

// Day returns the record for the calendar day containing now, which may
// be empty if nothing was punched yet.
func (r *Recorder) Day(now time.Time) model.DayRecord {
	date := model.DateKey(now)
	if day, ok := r.ledger.Day(date); ok {
		return day
	}
	return model.DayRecord{Date: date}
}

// PunchNow records the next expected punch kind for today, creating the
// day record if absent, and persists the updated ledger.
func (r *Recorder) PunchNow(now time.Time) (model.Punch, error) {
	day := r.Day(now)
	kind, ok := day.NextKind()
	if !ok {
		return model.Punch{}, ErrDayComplete
	}

	punch := model.NewPunch(kind, now)
	day.Set(punch)
	r.ledger = r.ledger.Put(day)

	if err := r.store.SaveLedger(r.ledger); err != nil {
		return model.Punch{}, err
	}
	return punch, nil
}

// EditPunch replaces the timestamp of the punch with the given ID on the
// given date. clock must be "HH:MM"; the time-of-day replaces the punch's
// clock while its date stays fixed.
func (r *Recorder) EditPunch(date, id, clock string) (model.Punch, error) {
	if !clockRe.MatchString(clock) {
		return model.Punch{}, fmt.Errorf("invalid time %q: use HH:MM", clock)
	}

	day, ok := r.ledger.Day(date)
	if !ok {
		return model.Punch{}, fmt.Errorf("no punches recorded on %s", date)
	}

	punch, ok := day.Retime(id, date+"T"+clock+":00")
	if !ok {
		return model.Punch{}, fmt.Errorf("punch %s not found on %s", id, date)
	}
	r.ledger = r.ledger.Put(day)

	if err := r.store.SaveLedger(r.ledger); err != nil {
		return model.Punch{}, err
	}
	return punch, nil
}

// EditKind is EditPunch addressed by punch kind instead of ID.
func (r *Recorder) EditKind(date string, kind model.PunchKind, clock string) (model.Punch, error) {
	day, ok := r.ledger.Day(date)
	if !ok {
		return model.Punch{}, fmt.Errorf("no punches recorded on %s", date)
	}
	punch, ok := day.Get(kind)
	if !ok {
		return model.Punch{}, fmt.Errorf("no %s punch recorded on %s", kind, date)
	}
	return r.EditPunch(date, punch.ID, clock)
}
