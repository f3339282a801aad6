package menu

import (
	"strings"
	"testing"

	"github.com/typr-dev/typr/internal/config"
)

type scriptedProvider struct {
	selection string
	header    string
	options   []string
}

func (p *scriptedProvider) Choose(header string, options []string) (string, error) {
	p.header = header
	p.options = options
	if p.selection == "<first>" {
		return options[0], nil
	}
	return p.selection, nil
}

func (p *scriptedProvider) Input(string, string, string) (string, error) { return "", nil }
func (p *scriptedProvider) Confirm(string) bool                          { return false }
func (p *scriptedProvider) Style(string) error                           { return nil }

func TestMainActions(t *testing.T) {
	cases := []struct {
		selection string
		want      Action
	}{
		{"Start Words Test", ActionWordsTest},
		{"Start Time Test", ActionTimeTest},
		{"Forever Mode", ActionUnbounded},
		{"Settings", ActionSettings},
		{"Exit", ActionQuit},
		{"", ActionQuit},
		{"garbage", ActionQuit},
	}
	for _, tc := range cases {
		p := &scriptedProvider{selection: tc.selection}
		got, err := Main(p)
		if err != nil {
			t.Fatalf("Main(%q): %v", tc.selection, err)
		}
		if got != tc.want {
			t.Fatalf("Main(%q) = %v, want %v", tc.selection, got, tc.want)
		}
	}
}

func TestSettingsLabelsReflectValues(t *testing.T) {
	s := config.Settings{
		ForgiveErrors:     true,
		TimeLimit:         90,
		WordLimit:         40,
		LiveWPM:           false,
		AutoSave:          true,
		MinAccuracyToSave: 0.5,
	}
	p := &scriptedProvider{selection: "<first>"}
	action, err := Settings(p, s)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if action != SettingsToggleForgive {
		t.Fatalf("expected first option to toggle forgiveness, got %v", action)
	}
	joined := strings.Join(p.options, "\n")
	for _, want := range []string{
		"Forgive Errors: On",
		"Default Time: 90s",
		"Default Words: 40",
		"Live WPM: Off",
		"Auto Save: On",
		"Min Accuracy to Save: 50%",
		"Reset History",
		"Back",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing option %q in %q", want, joined)
		}
	}
}

func TestSettingsUnknownSelectionIsBack(t *testing.T) {
	p := &scriptedProvider{selection: ""}
	action, err := Settings(p, config.DefaultSettings())
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if action != SettingsBack {
		t.Fatalf("expected SettingsBack, got %v", action)
	}
}
