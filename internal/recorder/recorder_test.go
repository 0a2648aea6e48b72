package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"ponto/internal/model"
	"ponto/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecorder(t *testing.T) (*Recorder, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "ponto.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	rec, err := New(st)
	require.NoError(t, err)
	return rec, st
}

func at(clock string) time.Time {
	ts, err := time.ParseInLocation(model.TimeLayout, "2026-08-10T"+clock+":00", time.Local)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestPunchNowFullDay(t *testing.T) {
	rec, _ := newTestRecorder(t)

	clocks := []string{"08:00", "12:00", "13:00", "17:00"}
	for i, clock := range clocks {
		punch, err := rec.PunchNow(at(clock))
		require.NoError(t, err)
		assert.Equal(t, model.KindSequence[i], punch.Kind)
		assert.Equal(t, clock, punch.Clock())
	}

	day := rec.Day(at("17:30"))
	assert.True(t, day.Complete())

	_, err := rec.PunchNow(at("18:00"))
	assert.ErrorIs(t, err, ErrDayComplete)
}

func TestPunchNowPersists(t *testing.T) {
	rec, st := newTestRecorder(t)

	_, err := rec.PunchNow(at("08:00"))
	require.NoError(t, err)

	// A fresh recorder on the same store sees the punch
	rec2, err := New(st)
	require.NoError(t, err)

	day := rec2.Day(at("09:00"))
	punch, ok := day.Get(model.ClockIn)
	require.True(t, ok)
	assert.Equal(t, "08:00", punch.Clock())
}

func TestEditKind(t *testing.T) {
	rec, _ := newTestRecorder(t)

	_, err := rec.PunchNow(at("08:12"))
	require.NoError(t, err)

	punch, err := rec.EditKind("2026-08-10", model.ClockIn, "08:00")
	require.NoError(t, err)
	assert.Equal(t, "08:00", punch.Clock())

	day := rec.Day(at("09:00"))
	got, ok := day.Get(model.ClockIn)
	require.True(t, ok)
	assert.Equal(t, "08:00", got.Clock())
}

func TestEditKindRejectsBadFormat(t *testing.T) {
	rec, _ := newTestRecorder(t)

	_, err := rec.PunchNow(at("08:12"))
	require.NoError(t, err)

	for _, bad := range []string{"8:00", "08.00", "0800", "08:0", "aa:bb "} {
		_, err := rec.EditKind("2026-08-10", model.ClockIn, bad)
		assert.Error(t, err, "clock %q should be rejected", bad)
	}

	// Rejected edits leave the punch untouched
	day := rec.Day(at("09:00"))
	punch, _ := day.Get(model.ClockIn)
	assert.Equal(t, "08:12", punch.Clock())
}

func TestEditKindSyntacticOnly(t *testing.T) {
	rec, _ := newTestRecorder(t)

	for _, clock := range []string{"08:00", "12:00", "13:00", "17:00"} {
		_, err := rec.PunchNow(at(clock))
		require.NoError(t, err)
	}

	// Moving lunch-in before lunch-out is allowed; the day just counts
	// as zero until corrected.
	_, err := rec.EditKind("2026-08-10", model.LunchIn, "11:00")
	require.NoError(t, err)

	day, ok := rec.Ledger().Day("2026-08-10")
	require.True(t, ok)
	punch, _ := day.Get(model.LunchIn)
	assert.Equal(t, "11:00", punch.Clock())
}

func TestEditKindMissing(t *testing.T) {
	rec, _ := newTestRecorder(t)

	_, err := rec.EditKind("2026-08-10", model.ClockIn, "08:00")
	assert.Error(t, err, "no day recorded yet")

	_, err = rec.PunchNow(at("08:00"))
	require.NoError(t, err)

	_, err = rec.EditKind("2026-08-10", model.ClockOut, "17:00")
	assert.Error(t, err, "clock-out not punched yet")
}

func TestEditPunchUnknownID(t *testing.T) {
	rec, _ := newTestRecorder(t)

	_, err := rec.PunchNow(at("08:00"))
	require.NoError(t, err)

	_, err = rec.EditPunch("2026-08-10", "no-such-id", "09:00")
	assert.Error(t, err)
}

func TestDayEmptyWithoutPunches(t *testing.T) {
	rec, _ := newTestRecorder(t)

	day := rec.Day(at("08:00"))
	assert.Equal(t, "2026-08-10", day.Date)
	assert.Empty(t, day.Punches)
}
