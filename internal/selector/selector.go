// Package selector produces weighted random word sequences biased
// toward the user's weak letters.
package selector

import (
	"math/rand"
	"time"

	"github.com/typr-dev/typr/internal/lexicon"
)

// letterFrequency is the standard English letter frequency table, in
// percent. Characters outside the table weigh zero.
var letterFrequency = map[rune]float64{
	'e': 12.02, 't': 9.10, 'a': 8.12, 'o': 7.68, 'i': 7.31, 'n': 6.95,
	's': 6.28, 'r': 6.02, 'h': 5.92, 'd': 4.32, 'l': 3.98, 'u': 2.88,
	'c': 2.71, 'm': 2.61, 'f': 2.30, 'y': 2.11, 'w': 2.09, 'g': 2.03,
	'p': 1.82, 'b': 1.49, 'v': 1.11, 'k': 0.69, 'x': 0.17, 'q': 0.11,
	'j': 0.10, 'z': 0.07,
}

const (
	// unknownAccuracyBoost stands in for 1/accuracy when a letter has
	// no usable history, surfacing never-seen letters aggressively.
	unknownAccuracyBoost = 20.0
	// speedOffset keeps the inverse-speed factor finite for letters
	// without a derived speed.
	speedOffset = 0.1
)

// Selector draws words from a lexicon with probability proportional to
// each word's average letter weight.
type Selector struct {
	lex *lexicon.Lexicon
	rnd *rand.Rand
}

// New returns a Selector seeded with the current time. The lexicon
// word list must be non-empty.
func New(lex *lexicon.Lexicon) *Selector {
	return &Selector{
		lex: lex,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Select draws count words with replacement. Slow or inaccurate
// letters raise the weight of words containing them; a degenerate
// distribution falls back to uniform draws.
func (s *Selector) Select(count int) []string {
	weights, total := s.wordWeights()
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, s.draw(weights, total))
	}
	return result
}

func (s *Selector) draw(weights []float64, total float64) string {
	if total <= 0 {
		return s.lex.Words[s.rnd.Intn(len(s.lex.Words))]
	}
	r := s.rnd.Float64() * total
	acc := 0.0
	// Rounding can leave r above the final cumulative sum; the last
	// word absorbs that remainder.
	idx := len(weights) - 1
	for i, w := range weights {
		acc += w
		if r <= acc {
			idx = i
			break
		}
	}
	return s.lex.Words[idx]
}

func (s *Selector) wordWeights() ([]float64, float64) {
	letters := s.letterWeights()
	weights := make([]float64, len(s.lex.Words))
	total := 0.0
	for i, word := range s.lex.Words {
		sum := 0.0
		length := 0
		for _, ch := range word {
			sum += letters[ch]
			length++
		}
		if length > 0 {
			weights[i] = sum / float64(length)
		}
		total += weights[i]
	}
	return weights, total
}

// letterWeights computes, for every printable ASCII character,
// (1/accuracy) * frequency * 1/(speed+offset).
func (s *Selector) letterWeights() map[rune]float64 {
	out := make(map[rune]float64, '~'-' '+1)
	for ch := ' '; ch <= '~'; ch++ {
		invAcc := unknownAccuracyBoost
		speed := 0.0
		if entry, ok := s.lex.Letters[ch]; ok {
			if entry.Accuracy > 0.01 {
				invAcc = 1.0 / entry.Accuracy
			}
			speed = entry.Speed
		}
		out[ch] = invAcc * letterFrequency[ch] * (1.0 / (speed + speedOffset))
	}
	return out
}
