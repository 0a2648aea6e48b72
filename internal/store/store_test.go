package store

import (
	"path/filepath"
	"testing"

	"ponto/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "ponto.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestGetMissingKey(t *testing.T) {
	st := openTestStore(t)

	_, ok, err := st.Get("nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get ok=true for missing key")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	st := openTestStore(t)

	if err := st.Set("k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := st.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if got != "v1" {
		t.Errorf("Get = %q, want v1", got)
	}

	// Overwrite
	if err := st.Set("k", "v2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _, _ = st.Get("k")
	if got != "v2" {
		t.Errorf("Get after overwrite = %q, want v2", got)
	}
}

func TestLoadLedgerEmpty(t *testing.T) {
	st := openTestStore(t)

	ledger, err := st.LoadLedger()
	if err != nil {
		t.Fatalf("LoadLedger: %v", err)
	}
	if len(ledger) != 0 {
		t.Errorf("LoadLedger on fresh store = %d days, want 0", len(ledger))
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	st := openTestStore(t)

	ledger := model.Ledger{
		{
			Date: "2026-08-10",
			Punches: []model.Punch{
				{ID: "a", Kind: model.ClockIn, At: "2026-08-10T08:00:00"},
				{ID: "b", Kind: model.LunchOut, At: "2026-08-10T12:00:00"},
			},
		},
		{Date: "2026-08-09"},
	}

	if err := st.SaveLedger(ledger); err != nil {
		t.Fatalf("SaveLedger: %v", err)
	}

	got, err := st.LoadLedger()
	if err != nil {
		t.Fatalf("LoadLedger: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("LoadLedger = %d days, want 2", len(got))
	}
	day, ok := got.Day("2026-08-10")
	if !ok {
		t.Fatal("Day(2026-08-10) missing after round trip")
	}
	p, ok := day.Get(model.ClockIn)
	if !ok || p.At != "2026-08-10T08:00:00" {
		t.Errorf("clock-in after round trip = %+v, %v", p, ok)
	}
}

func TestLoadLedgerDiscardsGarbage(t *testing.T) {
	st := openTestStore(t)

	if err := st.Set(LedgerKey, "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	ledger, err := st.LoadLedger()
	if err != nil {
		t.Fatalf("LoadLedger: %v", err)
	}
	if len(ledger) != 0 {
		t.Errorf("LoadLedger on garbage = %d days, want 0", len(ledger))
	}
}

func TestDataDirFromEnv(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-test")

	want := "/tmp/xdg-test/ponto"
	if got := DataDir(); got != want {
		t.Errorf("DataDir = %q, want %q", got, want)
	}
}
