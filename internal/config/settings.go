// Package config provides XDG path helpers and settings persistence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings is the process-wide configuration. It is loaded once at
// start and persisted on every settings-menu exit.
type Settings struct {
	ForgiveErrors     bool    `toml:"forgive-errors"`
	TimeLimit         int     `toml:"time-limit"` // seconds
	WordLimit         int     `toml:"word-limit"`
	LiveWPM           bool    `toml:"live-wpm"`
	AutoSave          bool    `toml:"auto-save"`
	MinAccuracyToSave float64 `toml:"min-accuracy-to-save"` // fraction 0-1
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		ForgiveErrors:     false,
		TimeLimit:         60,
		WordLimit:         25,
		LiveWPM:           true,
		AutoSave:          true,
		MinAccuracyToSave: 0.5,
	}
}

// fileSettings mirrors Settings with optional fields so a partial file
// only overrides what it names.
type fileSettings struct {
	ForgiveErrors     *bool    `toml:"forgive-errors"`
	TimeLimit         *int     `toml:"time-limit"`
	WordLimit         *int     `toml:"word-limit"`
	LiveWPM           *bool    `toml:"live-wpm"`
	AutoSave          *bool    `toml:"auto-save"`
	MinAccuracyToSave *float64 `toml:"min-accuracy-to-save"`
}

// LoadSettings reads the TOML settings file at path. A missing or
// malformed file yields the defaults; no error is surfaced.
func LoadSettings(path string) Settings {
	settings := DefaultSettings()
	if path == "" {
		return settings
	}
	var fs fileSettings
	if _, err := toml.DecodeFile(path, &fs); err != nil {
		return DefaultSettings()
	}
	if fs.ForgiveErrors != nil {
		settings.ForgiveErrors = *fs.ForgiveErrors
	}
	if fs.TimeLimit != nil {
		settings.TimeLimit = *fs.TimeLimit
	}
	if fs.WordLimit != nil {
		settings.WordLimit = *fs.WordLimit
	}
	if fs.LiveWPM != nil {
		settings.LiveWPM = *fs.LiveWPM
	}
	if fs.AutoSave != nil {
		settings.AutoSave = *fs.AutoSave
	}
	if fs.MinAccuracyToSave != nil {
		settings.MinAccuracyToSave = *fs.MinAccuracyToSave
	}
	return settings
}

// SaveSettings writes the settings as TOML, creating the directory if
// needed.
func SaveSettings(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
