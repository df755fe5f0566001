// Package config loads mrrgen settings from a TOML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// StartLayout is the format of projection start months, e.g. "2023-01".
const StartLayout = "2006-01"

// Config holds all mrrgen configuration.
type Config struct {
	Projection ProjectionConfig `toml:"projection"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// ProjectionConfig holds the default projection parameters.
type ProjectionConfig struct {
	Months        int     `toml:"months" env:"MRRGEN_MONTHS" validate:"gte=0,lte=600"`
	GrowthPercent float64 `toml:"growth_percent" env:"MRRGEN_GROWTH_PERCENT" validate:"finite,gte=-100"`
	Start         string  `toml:"start" env:"MRRGEN_START"`
	TiersFile     string  `toml:"tiers_file,omitempty" env:"MRRGEN_TIERS_FILE"`
	Preset        string  `toml:"preset,omitempty" env:"MRRGEN_PRESET"`
}

// DisplayConfig holds number formatting settings.
type DisplayConfig struct {
	Locale string `toml:"locale" env:"MRRGEN_LOCALE"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" env:"MRRGEN_THEME"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Projection: ProjectionConfig{
			Months:        12,
			GrowthPercent: 10,
			Start:         "2023-01",
		},
		Display: DisplayConfig{
			Locale: "en-US",
		},
		Appearance: AppearanceConfig{
			Theme: "indigo",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mrrgen")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mrrgen")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// MRRGEN_* environment variables override values from the file.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing env: %w", err)
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

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// ParseStart parses a "YYYY-MM" month into the first day of that month, UTC.
func ParseStart(s string) (time.Time, error) {
	t, err := time.Parse(StartLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("start month %q: want YYYY-MM: %w", s, err)
	}
	return t.UTC(), nil
}

// StartTime returns the configured start month, falling back to the default.
func (p ProjectionConfig) StartTime() time.Time {
	if t, err := ParseStart(p.Start); err == nil {
		return t
	}
	t, _ := ParseStart(DefaultConfig().Projection.Start)
	return t
}
