package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"pickdate-cli/internal/picker"
)

type GlobalConfig struct {
	// Defaults seed `pickdate pick` when the matching flag is not given.
	Defaults *PickerDefaults `json:"defaults,omitempty"`

	// TUI holds optional user preferences for the interactive dialogs.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type PickerDefaults struct {
	Mode    string `json:"mode,omitempty"`
	Display string `json:"display,omitempty"`
	Clock   string `json:"clock,omitempty"`
	Format  string `json:"format,omitempty"`
}

type TUIConfig struct {
	// Theme is "light", "dark", or "auto".
	Theme     string `json:"theme,omitempty"`
	AltScreen bool   `json:"altScreen,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.pickdate).
	if v := strings.TrimSpace(os.Getenv("PICKDATE_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pickdate"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *GlobalConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Best-effort: keep the previous config next to the new one.
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

// ConfigKeys lists the keys accepted by SetConfigValue.
func ConfigKeys() []string {
	keys := []string{"mode", "display", "clock", "format", "tui.theme", "tui.altScreen"}
	sort.Strings(keys)
	return keys
}

// SetConfigValue validates and stores one key. An empty value unsets it.
func SetConfigValue(cfg *GlobalConfig, key, value string) error {
	value = strings.TrimSpace(value)
	if cfg.Defaults == nil {
		cfg.Defaults = &PickerDefaults{}
	}
	if cfg.TUI == nil {
		cfg.TUI = &TUIConfig{}
	}

	switch strings.TrimSpace(key) {
	case "mode":
		if value != "" {
			m, err := picker.ParseMode(value)
			if err != nil {
				return err
			}
			value = string(m)
		}
		cfg.Defaults.Mode = value
	case "display":
		if value != "" {
			d, err := picker.ParseDisplayStyle(value)
			if err != nil {
				return err
			}
			value = string(d)
		}
		cfg.Defaults.Display = value
	case "clock":
		if value != "" {
			c, err := picker.ParseClockFormat(value)
			if err != nil {
				return err
			}
			value = c.String()
		}
		cfg.Defaults.Clock = value
	case "format":
		switch value {
		case "", "json", "edn":
		default:
			return fmt.Errorf("invalid format %q (expected json|edn)", value)
		}
		cfg.Defaults.Format = value
	case "tui.theme":
		value = strings.ToLower(value)
		switch value {
		case "", "light", "dark", "auto":
		default:
			return fmt.Errorf("invalid theme %q (expected light|dark|auto)", value)
		}
		cfg.TUI.Theme = value
	case "tui.altScreen":
		if value == "" {
			cfg.TUI.AltScreen = false
			break
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid tui.altScreen %q (expected true|false)", value)
		}
		cfg.TUI.AltScreen = b
	default:
		return fmt.Errorf("unknown config key %q (expected one of: %s)", key, strings.Join(ConfigKeys(), ", "))
	}

	if *cfg.Defaults == (PickerDefaults{}) {
		cfg.Defaults = nil
	}
	if *cfg.TUI == (TUIConfig{}) {
		cfg.TUI = nil
	}
	return nil
}
