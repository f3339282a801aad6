package main

import (
	"strings"
	"testing"

	"github.com/typr-dev/typr/internal/config"
	"github.com/typr-dev/typr/internal/lexicon"
	"github.com/typr-dev/typr/internal/session"
)

// recordingProvider logs every menu-collaborator call in order.
type recordingProvider struct {
	calls []string
}

func (p *recordingProvider) Choose(header string, _ []string) (string, error) {
	p.calls = append(p.calls, "choose:"+header)
	return "", nil
}

func (p *recordingProvider) Input(header, _, _ string) (string, error) {
	p.calls = append(p.calls, "input:"+header)
	return "", nil
}

func (p *recordingProvider) Confirm(prompt string) bool {
	p.calls = append(p.calls, "confirm:"+prompt)
	return false
}

func (p *recordingProvider) Style(text string) error {
	p.calls = append(p.calls, "style:"+text)
	return nil
}

func TestShowResultsStylesThenPauses(t *testing.T) {
	p := &recordingProvider{}
	a := &app{provider: p, settings: config.DefaultSettings(), lex: lexicon.New([]string{"the"})}

	a.showResults(session.Result{NetWPM: 40, RawWPM: 42, Accuracy: 95.2, Seconds: 60, Words: 40})

	if len(p.calls) != 2 {
		t.Fatalf("expected style then pause, got %v", p.calls)
	}
	if !strings.HasPrefix(p.calls[0], "style:") || !strings.Contains(p.calls[0], "Net WPM: 40.0") {
		t.Fatalf("unexpected results card call: %q", p.calls[0])
	}
	if !strings.HasPrefix(p.calls[1], "input:Press Enter") {
		t.Fatalf("expected acknowledgement prompt after the card, got %q", p.calls[1])
	}
}
