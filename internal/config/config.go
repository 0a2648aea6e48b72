// Package config loads and saves ponto configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"ponto/internal/store"
)

// Config holds all ponto configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Reminders  ReminderConfig   `toml:"reminders"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	WeeklyTargetHours float64 `toml:"weekly_target_hours"`
	DataPath          string  `toml:"data_path,omitempty"`
}

// ReminderConfig holds punch reminder settings used by the daemon.
type ReminderConfig struct {
	Enabled bool     `toml:"enabled"`
	Times   []string `toml:"times,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			WeeklyTargetHours: 44,
		},
		Reminders: ReminderConfig{
			Enabled: false,
			Times:   []string{"08:00", "12:00", "13:00", "17:00"},
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ponto")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ponto")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// DataPath returns the ledger database path from env var, config, or the
// default location, in that order.
func DataPath(cfg Config) string {
	if p := os.Getenv("PONTO_DATA"); p != "" {
		return p
	}
	if cfg.General.DataPath != "" {
		return cfg.General.DataPath
	}
	return store.DefaultPath()
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
