package store

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvConfig is read from the process environment; set values override config.json.
type EnvConfig struct {
	Mode     string `env:"PICKDATE_MODE"`
	Display  string `env:"PICKDATE_DISPLAY"`
	Clock    string `env:"PICKDATE_CLOCK"`
	Format   string `env:"PICKDATE_FORMAT"`
	Theme    string `env:"PICKDATE_TUI_THEME"`
	LogLevel string `env:"PICKDATE_LOG_LEVEL" envDefault:"warn"`
	LogFile  string `env:"PICKDATE_LOG_FILE"`
}

func LoadEnv() (EnvConfig, error) {
	var c EnvConfig
	if err := env.Parse(&c); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Settings are the effective defaults after layering env over config.json over
// built-in values. Command-line flags are applied by the caller on top.
type Settings struct {
	Mode      string `json:"mode"`
	Display   string `json:"display"`
	Clock     string `json:"clock"`
	Format    string `json:"format"`
	Theme     string `json:"theme"`
	AltScreen bool   `json:"altScreen"`
	LogLevel  string `json:"logLevel"`
	LogFile   string `json:"logFile,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		Mode:     "date",
		Display:  "default",
		Clock:    "24h",
		Format:   "json",
		Theme:    "auto",
		LogLevel: "warn",
	}
}

func EffectiveSettings(cfg *GlobalConfig, e EnvConfig) Settings {
	s := DefaultSettings()
	if cfg != nil && cfg.Defaults != nil {
		s.Mode = firstNonEmpty(cfg.Defaults.Mode, s.Mode)
		s.Display = firstNonEmpty(cfg.Defaults.Display, s.Display)
		s.Clock = firstNonEmpty(cfg.Defaults.Clock, s.Clock)
		s.Format = firstNonEmpty(cfg.Defaults.Format, s.Format)
	}
	if cfg != nil && cfg.TUI != nil {
		s.Theme = firstNonEmpty(cfg.TUI.Theme, s.Theme)
		s.AltScreen = cfg.TUI.AltScreen
	}
	s.Mode = firstNonEmpty(e.Mode, s.Mode)
	s.Display = firstNonEmpty(e.Display, s.Display)
	s.Clock = firstNonEmpty(e.Clock, s.Clock)
	s.Format = firstNonEmpty(e.Format, s.Format)
	s.Theme = firstNonEmpty(e.Theme, s.Theme)
	s.LogLevel = firstNonEmpty(e.LogLevel, s.LogLevel)
	s.LogFile = strings.TrimSpace(e.LogFile)
	return s
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
