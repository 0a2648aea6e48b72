package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.WeeklyTargetHours != 44 {
		t.Errorf("WeeklyTargetHours = %v, want 44", cfg.General.WeeklyTargetHours)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.Reminders.Enabled {
		t.Error("Reminders enabled by default")
	}
	if Exists() {
		t.Error("Exists = true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.WeeklyTargetHours = 40
	cfg.Reminders.Enabled = true
	cfg.Reminders.Times = []string{"09:00", "18:00"}
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.WeeklyTargetHours != 40 {
		t.Errorf("WeeklyTargetHours = %v, want 40", got.General.WeeklyTargetHours)
	}
	if !got.Reminders.Enabled || len(got.Reminders.Times) != 2 {
		t.Errorf("Reminders = %+v, want enabled with 2 times", got.Reminders)
	}
	if got.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", got.Appearance.Theme)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, "ponto"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ponto", "config.toml"), []byte("{{{"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load did not report malformed config")
	}
}

func TestDataPathPrecedence(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()

	t.Setenv("PONTO_DATA", "/env/ledger.db")
	if got := DataPath(cfg); got != "/env/ledger.db" {
		t.Errorf("DataPath with env = %q, want /env/ledger.db", got)
	}

	t.Setenv("PONTO_DATA", "")
	cfg.General.DataPath = "/cfg/ledger.db"
	if got := DataPath(cfg); got != "/cfg/ledger.db" {
		t.Errorf("DataPath with config = %q, want /cfg/ledger.db", got)
	}

	cfg.General.DataPath = ""
	if got := DataPath(cfg); got != "/tmp/xdg-data/ponto/ponto.db" {
		t.Errorf("DataPath default = %q", got)
	}
}
