package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/typr-dev/typr/internal/render"
	"github.com/typr-dev/typr/internal/session"
)

type fixedSource struct{ word string }

func (s fixedSource) Select(count int) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = s.word
	}
	return out
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	engine := session.New(session.Mode{Kind: session.FixedWords, Limit: 2}, false, fixedSource{word: "ab"}, nil)
	return NewModel(engine, true)
}

func TestUpdateRoutesRunes(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if got := string(m.engine.Input()); got != "ab " {
		t.Fatalf("expected buffer %q, got %q", "ab ", got)
	}
}

func TestUpdateBackspace(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := string(m.engine.Input()); got != "a" {
		t.Fatalf("expected buffer %q, got %q", "a", got)
	}
}

func TestEscapeCancels(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.engine.State() != session.Cancelled {
		t.Fatalf("expected Cancelled, got %v", m.engine.State())
	}
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
}

func TestCompletionQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab ab")})
	if m.engine.State() != session.Completed {
		t.Fatalf("expected Completed, got %v", m.engine.State())
	}
	if cmd == nil {
		t.Fatalf("expected a quit command on completion")
	}
}

func TestViewShowsStatusAndFooter(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	out := m.View()
	if !strings.Contains(out, "Words Mode: 2") {
		t.Fatalf("expected mode in status, got %q", out)
	}
	if !strings.Contains(out, "ESC: Quit") {
		t.Fatalf("expected footer hint")
	}
}

func TestStyleForMapping(t *testing.T) {
	cases := []struct {
		class render.CharClass
		want  string
	}{
		{render.ClassCorrect, correctStyle.Render("x")},
		{render.ClassIncorrect, incorrectStyle.Render("x")},
		{render.ClassCursor, cursorStyle.Render("x")},
		{render.ClassPending, pendingStyle.Render("x")},
	}
	for _, tc := range cases {
		if got := styleFor(tc.class).Render("x"); got != tc.want {
			t.Fatalf("class %d: got %q want %q", tc.class, got, tc.want)
		}
	}
}
