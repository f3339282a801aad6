package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	settings := LoadSettings(filepath.Join(t.TempDir(), "settings.toml"))
	if settings != DefaultSettings() {
		t.Fatalf("expected defaults for missing file, got %+v", settings)
	}
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte("time-limit = \"not a number"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	settings := LoadSettings(path)
	if settings != DefaultSettings() {
		t.Fatalf("expected defaults for malformed file, got %+v", settings)
	}
}

func TestLoadSettingsPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	content := "forgive-errors = true\ntime-limit = 30\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	settings := LoadSettings(path)
	if !settings.ForgiveErrors {
		t.Fatalf("expected forgive-errors override")
	}
	if settings.TimeLimit != 30 {
		t.Fatalf("expected time-limit 30, got %d", settings.TimeLimit)
	}
	if settings.WordLimit != 25 {
		t.Fatalf("expected default word-limit, got %d", settings.WordLimit)
	}
	if !settings.LiveWPM || !settings.AutoSave {
		t.Fatalf("expected toggles to keep their defaults")
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "settings.toml")
	want := Settings{
		ForgiveErrors:     true,
		TimeLimit:         90,
		WordLimit:         50,
		LiveWPM:           false,
		AutoSave:          false,
		MinAccuracyToSave: 0.75,
	}
	if err := SaveSettings(path, want); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	got := LoadSettings(path)
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}
