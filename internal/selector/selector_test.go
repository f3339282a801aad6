package selector

import (
	"math/rand"
	"testing"

	"github.com/typr-dev/typr/internal/lexicon"
)

func newSeeded(lex *lexicon.Lexicon) *Selector {
	s := New(lex)
	s.rnd = rand.New(rand.NewSource(1))
	return s
}

func TestSelectReturnsExactCount(t *testing.T) {
	lex := lexicon.New([]string{"one", "two", "three"})
	s := newSeeded(lex)
	for _, n := range []int{0, 1, 7, 40} {
		words := s.Select(n)
		if len(words) != n {
			t.Fatalf("Select(%d) returned %d words", n, len(words))
		}
	}
}

func TestSelectDrawsFromLexicon(t *testing.T) {
	lex := lexicon.New([]string{"alpha", "beta"})
	s := newSeeded(lex)
	allowed := map[string]struct{}{"alpha": {}, "beta": {}}
	for _, word := range s.Select(50) {
		if _, ok := allowed[word]; !ok {
			t.Fatalf("selected word %q not in lexicon", word)
		}
	}
}

func TestSelectUniformFallback(t *testing.T) {
	// Digits carry zero frequency weight, so every word weighs zero
	// and the selector must fall back to uniform draws.
	lex := lexicon.New([]string{"123", "456"})
	s := newSeeded(lex)
	words := s.Select(20)
	if len(words) != 20 {
		t.Fatalf("expected 20 words, got %d", len(words))
	}
	seen := map[string]int{}
	for _, w := range words {
		seen[w]++
	}
	if len(seen) != 2 {
		t.Fatalf("uniform fallback should reach both words, got %v", seen)
	}
}

func TestDrawClampsToLastWord(t *testing.T) {
	// With a total far above the cumulative weight sum, r lands past
	// the last bucket; the draw must clamp to the last word instead of
	// silently returning the first.
	lex := lexicon.New([]string{"alpha", "omega"})
	s := newSeeded(lex)
	for i := 0; i < 5; i++ {
		if got := s.draw([]float64{0.5, 0.5}, 1000); got != "omega" {
			t.Fatalf("draw %d: expected clamp to last word, got %q", i, got)
		}
	}
}

func TestSelectFavorsWeakLetters(t *testing.T) {
	lex := lexicon.New([]string{"tttt", "eeee"})

	// 'e' typed perfectly and fast, 't' barely ever correct and slow.
	e := lex.Letter('e')
	e.Shown = 100
	e.Correct = 100
	e.Accuracy = 1.0
	e.Speed = 80.0
	tt := lex.Letter('t')
	tt.Shown = 100
	tt.Correct = 10
	tt.Accuracy = 0.1
	tt.Speed = 5.0

	s := newSeeded(lex)
	counts := map[string]int{}
	for _, w := range s.Select(500) {
		counts[w]++
	}
	if counts["tttt"] <= counts["eeee"] {
		t.Fatalf("expected weak-letter word to dominate: %v", counts)
	}
}
