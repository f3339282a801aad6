// Package menu drives the external gum menu collaborator and maps its
// selections onto closed action enumerations.
package menu

import (
	"fmt"

	"github.com/typr-dev/typr/internal/config"
)

// Provider is the external menu collaborator contract.
type Provider interface {
	Choose(header string, options []string) (string, error)
	Input(header, placeholder, value string) (string, error)
	Confirm(prompt string) bool
	Style(text string) error
}

// Action is a top-level menu selection.
type Action int

// Top-level actions.
const (
	ActionWordsTest Action = iota
	ActionTimeTest
	ActionUnbounded
	ActionSettings
	ActionQuit
)

// SettingsAction is a settings-menu selection.
type SettingsAction int

// Settings-menu actions.
const (
	SettingsToggleForgive SettingsAction = iota
	SettingsEditTime
	SettingsEditWords
	SettingsToggleLiveWPM
	SettingsToggleAutoSave
	SettingsEditMinAccuracy
	SettingsReset
	SettingsBack
)

// Main presents the top-level menu. An empty or unknown selection
// maps to ActionQuit, returning control to the caller.
func Main(p Provider) (Action, error) {
	labels := []string{"Start Words Test", "Start Time Test", "Forever Mode", "Settings", "Exit"}
	actions := []Action{ActionWordsTest, ActionTimeTest, ActionUnbounded, ActionSettings, ActionQuit}

	choice, err := p.Choose("TYPR", labels)
	if err != nil {
		return ActionQuit, err
	}
	for i, label := range labels {
		if label == choice {
			return actions[i], nil
		}
	}
	return ActionQuit, nil
}

// Settings presents the settings menu with the current values. An
// empty or unknown selection maps to SettingsBack.
func Settings(p Provider, s config.Settings) (SettingsAction, error) {
	labels := []string{
		fmt.Sprintf("Forgive Errors: %s", onOff(s.ForgiveErrors)),
		fmt.Sprintf("Default Time: %ds", s.TimeLimit),
		fmt.Sprintf("Default Words: %d", s.WordLimit),
		fmt.Sprintf("Live WPM: %s", onOff(s.LiveWPM)),
		fmt.Sprintf("Auto Save: %s", onOff(s.AutoSave)),
		fmt.Sprintf("Min Accuracy to Save: %.0f%%", s.MinAccuracyToSave*100),
		"Reset History",
		"Back",
	}
	actions := []SettingsAction{
		SettingsToggleForgive,
		SettingsEditTime,
		SettingsEditWords,
		SettingsToggleLiveWPM,
		SettingsToggleAutoSave,
		SettingsEditMinAccuracy,
		SettingsReset,
		SettingsBack,
	}

	choice, err := p.Choose("Settings", labels)
	if err != nil {
		return SettingsBack, err
	}
	for i, label := range labels {
		if label == choice {
			return actions[i], nil
		}
	}
	return SettingsBack, nil
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
