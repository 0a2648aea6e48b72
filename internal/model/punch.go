// Package model defines domain types for ponto punches and day records.
package model

import (
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the persisted timestamp form: local wall clock, second
// precision, lexicographically sortable.
const TimeLayout = "2006-01-02T15:04:05"

// DateLayout is the calendar-day key form.
const DateLayout = "2006-01-02"

// PunchKind identifies one of the four daily clock events.
type PunchKind string

const (
	ClockIn  PunchKind = "clock_in"
	LunchOut PunchKind = "lunch_out"
	LunchIn  PunchKind = "lunch_in"
	ClockOut PunchKind = "clock_out"
)

// KindSequence is the fixed order punches are expected in during a day.
var KindSequence = []PunchKind{ClockIn, LunchOut, LunchIn, ClockOut}

// Valid reports whether k is one of the four known kinds.
func (k PunchKind) Valid() bool {
	switch k {
	case ClockIn, LunchOut, LunchIn, ClockOut:
		return true
	}
	return false
}

// Punch is a single recorded clock event.
type Punch struct {
	ID   string    `json:"id"`
	Kind PunchKind `json:"kind"`
	At   string    `json:"timestamp"`
}

// NewPunch creates a punch of the given kind at instant t.
func NewPunch(kind PunchKind, t time.Time) Punch {
	return Punch{
		ID:   uuid.New().String(),
		Kind: kind,
		At:   t.Format(TimeLayout),
	}
}

// Time parses the punch timestamp in local time.
func (p Punch) Time() (time.Time, error) {
	return time.ParseInLocation(TimeLayout, p.At, time.Local)
}

// Clock returns the HH:MM portion of the timestamp.
func (p Punch) Clock() string {
	if len(p.At) < 16 {
		return p.At
	}
	return p.At[11:16]
}

// DayRecord holds one calendar day's punches, at most one per kind.
type DayRecord struct {
	Date    string  `json:"date"`
	Punches []Punch `json:"punches"`
}

// Get returns the punch of the given kind, if recorded.
func (d DayRecord) Get(kind PunchKind) (Punch, bool) {
	for _, p := range d.Punches {
		if p.Kind == kind {
			return p, true
		}
	}
	return Punch{}, false
}

// NextKind returns the first kind in sequence order not yet recorded.
// ok is false when all four punches are present.
func (d DayRecord) NextKind() (PunchKind, bool) {
	for _, kind := range KindSequence {
		if _, found := d.Get(kind); !found {
			return kind, true
		}
	}
	return "", false
}

// Complete reports whether all four punch kinds are recorded.
func (d DayRecord) Complete() bool {
	_, ok := d.NextKind()
	return !ok
}

// Set records p, replacing any existing punch of the same kind.
func (d *DayRecord) Set(p Punch) {
	for i, existing := range d.Punches {
		if existing.Kind == p.Kind {
			d.Punches[i] = p
			return
		}
	}
	d.Punches = append(d.Punches, p)
}

// Retime updates the timestamp of the punch with the given ID.
// Returns the updated punch, or ok=false if no punch has that ID.
func (d *DayRecord) Retime(id, at string) (Punch, bool) {
	for i, p := range d.Punches {
		if p.ID == id {
			d.Punches[i].At = at
			return d.Punches[i], true
		}
	}
	return Punch{}, false
}

// DateKey formats t as a calendar-day ledger key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Ledger is the full collection of day records, newest first.
type Ledger []DayRecord

// Day returns the record for the given date key, if present.
func (l Ledger) Day(date string) (DayRecord, bool) {
	for _, d := range l {
		if d.Date == date {
			return d, true
		}
	}
	return DayRecord{}, false
}

// Put inserts or replaces the record for day.Date. New days go to the
// front so the ledger stays ordered newest first.
func (l Ledger) Put(day DayRecord) Ledger {
	for i, d := range l {
		if d.Date == day.Date {
			l[i] = day
			return l
		}
	}
	return append(Ledger{day}, l...)
}
