// Package lexicon holds the candidate word pool and per-letter history.
package lexicon

// LetterStats aggregates historical performance for a single character.
// LatencySum and LatencyCount only grow on correct keystrokes, so Speed
// is defined once at least one correct sample exists.
type LetterStats struct {
	Shown        int
	Correct      int
	Accuracy     float64
	LatencySum   float64 // seconds across correct keystrokes
	LatencyCount int
	Speed        float64 // WPM-like figure derived from average latency
}

// Lexicon is the word pool plus per-letter performance used to bias
// word selection. The word list is immutable during a session; the
// letter map is mutated incrementally by the stats tracker.
type Lexicon struct {
	Words   []string
	Letters map[rune]*LetterStats
}

// New builds a Lexicon over the given word list with empty history.
func New(words []string) *Lexicon {
	return &Lexicon{
		Words:   words,
		Letters: map[rune]*LetterStats{},
	}
}

// Letter returns the stats entry for ch, creating it if absent.
func (l *Lexicon) Letter(ch rune) *LetterStats {
	if l.Letters == nil {
		l.Letters = map[rune]*LetterStats{}
	}
	entry, ok := l.Letters[ch]
	if !ok {
		entry = &LetterStats{}
		l.Letters[ch] = entry
	}
	return entry
}

// Reset clears all per-letter aggregates.
func (l *Lexicon) Reset() {
	l.Letters = map[rune]*LetterStats{}
}
