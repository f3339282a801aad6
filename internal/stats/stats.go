// Package stats contains keystroke statistics and metric formulas.
package stats

import (
	"time"

	"github.com/typr-dev/typr/internal/lexicon"
)

// speedScale converts average seconds per correct keystroke into a
// words-per-minute-like figure: 5 characters per word, 60 seconds per
// minute.
const speedScale = 12.0

// Tracker folds keystroke events into the per-letter aggregates of a
// Lexicon. It is the sole writer of those aggregates during a session.
type Tracker struct {
	lex *lexicon.Lexicon
}

// NewTracker returns a Tracker over the given lexicon.
func NewTracker(lex *lexicon.Lexicon) *Tracker {
	return &Tracker{lex: lex}
}

// Record registers one keystroke against the target character ch.
// Shown always grows; correct keystrokes additionally contribute their
// inter-keystroke latency. Accuracy and derived speed are recomputed
// on every call.
func (t *Tracker) Record(ch rune, correct bool, elapsed time.Duration) {
	entry := t.lex.Letter(ch)
	entry.Shown++
	if correct {
		entry.Correct++
		entry.LatencySum += elapsed.Seconds()
		entry.LatencyCount++
	}
	entry.Accuracy = float64(entry.Correct) / float64(entry.Shown)
	if entry.LatencyCount > 0 && entry.LatencySum > 0 {
		avg := entry.LatencySum / float64(entry.LatencyCount)
		entry.Speed = speedScale / avg
	}
}

// RawWPM computes the character-rate words-per-minute figure,
// ignoring correctness.
func RawWPM(chars int, elapsed time.Duration) float64 {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return (float64(chars) / 5.0) / (seconds / 60.0)
}
