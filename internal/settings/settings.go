package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Settings is the flat user-preferences record persisted as one JSON file.
// Missing keys fall back to defaults on load; there is no migration
// versioning.
type Settings struct {
	RefreshIntervalSec  int      `json:"refresh_interval_sec"`
	EnableNotifications bool     `json:"enable_notifications"`
	EnableSounds        bool     `json:"enable_sounds"`
	DefaultPlatform     string   `json:"default_platform"`
	OrdersPerColumn     int      `json:"orders_per_column"`
	Theme               string   `json:"theme"`
	HideOffline         bool     `json:"hide_offline"`
	VerifiedOnly        bool     `json:"verified_only"`
	DefaultMinPrice     *float64 `json:"default_min_price,omitempty"`
	DefaultMaxPrice     *float64 `json:"default_max_price,omitempty"`
	MinimizeToTray      bool     `json:"minimize_to_tray"`
	StartMinimized      bool     `json:"start_minimized"`
}

// Defaults mirrors the hard-coded defaults of the settings form.
func Defaults() Settings {
	return Settings{
		RefreshIntervalSec:  30,
		EnableNotifications: true,
		EnableSounds:        false,
		DefaultPlatform:     "pc",
		OrdersPerColumn:     10,
		Theme:               "dark",
		HideOffline:         true,
		VerifiedOnly:        false,
		MinimizeToTray:      true,
		StartMinimized:      false,
	}
}

// DefaultPath returns the settings file location under the OS user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "wfm-monitor", "settings.json"), nil
}

// Load reads settings from path, merging the stored keys over Defaults.
// A missing file yields the defaults with found=false.
func Load(path string) (Settings, bool, error) {
	s := Defaults()
	if path == "" {
		return s, false, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, false, nil
		}
		return s, false, err
	}

	// Unmarshal into the defaults so absent keys keep their fallback.
	if err := json.Unmarshal(b, &s); err != nil {
		return Defaults(), false, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, true, nil
}

// Save writes settings atomically (tmp file + rename).
func Save(path string, s Settings) error {
	if path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
