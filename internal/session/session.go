// Package session owns the state machine for one typing-test attempt.
package session

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/typr-dev/typr/internal/stats"
)

// State is the lifecycle phase of a session.
type State int

// Session states. Completed and Cancelled are terminal.
const (
	NotStarted State = iota
	Running
	Completed
	Cancelled
)

// ModeKind discriminates the three test modes.
type ModeKind int

// Test modes.
const (
	FixedWords ModeKind = iota
	FixedTime
	Unbounded
)

// Mode pairs a kind with its limit (words or seconds; unused for
// Unbounded).
type Mode struct {
	Kind  ModeKind
	Limit int
}

// String describes the mode for the status line.
func (m Mode) String() string {
	switch m.Kind {
	case FixedWords:
		return fmt.Sprintf("Words Mode: %d", m.Limit)
	case FixedTime:
		return fmt.Sprintf("Time Mode: %ds", m.Limit)
	default:
		return "Forever Mode"
	}
}

// Recorder receives one event per processed keystroke.
type Recorder interface {
	Record(ch rune, correct bool, elapsed time.Duration)
}

// TextSource supplies batches of practice words.
type TextSource interface {
	Select(count int) []string
}

const (
	// lookaheadMargin is the minimum unconsumed target text kept ahead
	// of the cursor in continuous modes.
	lookaheadMargin = 50
	// refillWords is the batch size appended when the margin is hit.
	refillWords = 20
	// initialContinuousWords seeds continuous-mode target text.
	initialContinuousWords = 50
)

// Result is the immutable outcome of a completed session.
type Result struct {
	Timestamp time.Time
	RawWPM    float64
	NetWPM    float64
	Accuracy  float64 // percent, 0-100
	Seconds   float64
	Chars     int
	Words     int
}

// Snapshot is a point-in-time view of a session handed to the render
// projector.
type Snapshot struct {
	Mode    Mode
	State   State
	Target  []rune
	Input   []rune
	Elapsed time.Duration
	LiveWPM float64
	Scroll  int
}

// Engine consumes keystrokes for one test attempt and computes live
// and final metrics. It is not safe for concurrent use; all calls must
// come from the single UI loop.
type Engine struct {
	mode     Mode
	forgive  bool
	source   TextSource
	recorder Recorder
	now      func() time.Time

	target []rune
	input  []rune
	state  State

	startedAt time.Time
	endedAt   time.Time
	lastKeyAt time.Time
	scroll    int
}

// New creates a fresh session. Fixed-word sessions are seeded with
// exactly the configured word count; continuous modes start with a
// larger batch that Tick extends as needed.
func New(mode Mode, forgive bool, source TextSource, recorder Recorder) *Engine {
	count := initialContinuousWords
	if mode.Kind == FixedWords {
		count = mode.Limit
	}
	e := &Engine{
		mode:     mode,
		forgive:  forgive,
		source:   source,
		recorder: recorder,
		now:      time.Now,
	}
	e.target = []rune(strings.Join(source.Select(count), " "))
	return e
}

// State returns the current lifecycle phase.
func (e *Engine) State() State { return e.state }

// Mode returns the session mode.
func (e *Engine) Mode() Mode { return e.mode }

// Target returns the target text typed so far plus lookahead.
func (e *Engine) Target() []rune { return e.target }

// Input returns the buffer of accepted keystrokes.
func (e *Engine) Input() []rune { return e.input }

// Scroll returns the rendered-row scroll offset.
func (e *Engine) Scroll() int { return e.scroll }

// SetScroll stores the scroll offset. The render projector is the
// sole caller.
func (e *Engine) SetScroll(rows int) { e.scroll = rows }

// Snapshot captures the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Mode:    e.mode,
		State:   e.state,
		Target:  e.target,
		Input:   e.input,
		Elapsed: e.Elapsed(),
		LiveWPM: e.LiveWPM(),
		Scroll:  e.scroll,
	}
}

// Elapsed returns wall-clock time since the first keystroke, frozen at
// the moment a terminal state was reached. Zero before the session
// starts.
func (e *Engine) Elapsed() time.Duration {
	switch e.state {
	case NotStarted:
		return 0
	case Completed, Cancelled:
		return e.endedAt.Sub(e.startedAt)
	default:
		return e.now().Sub(e.startedAt)
	}
}

// LiveWPM estimates the current raw words per minute.
func (e *Engine) LiveWPM() float64 {
	return stats.RawWPM(len(e.input), e.Elapsed())
}

// Tick advances time-dependent state: it tops up the target text for
// continuous modes and then checks the fixed-time completion
// condition. The refill runs first so continuous modes never run out
// of text.
func (e *Engine) Tick() {
	if e.state == Completed || e.state == Cancelled {
		return
	}
	e.refill()
	if e.mode.Kind == FixedTime && e.state == Running {
		if e.Elapsed() >= time.Duration(e.mode.Limit)*time.Second {
			e.complete()
		}
	}
}

// Key processes one printable-character keystroke. The first
// keystroke starts the timer. Each processed keystroke is forwarded to
// the recorder with its inter-keystroke latency; an incorrect
// keystroke is appended to the buffer unless error forgiveness is on,
// in which case it is discarded and the user must retype.
func (e *Engine) Key(r rune) {
	if e.state == Completed || e.state == Cancelled {
		return
	}
	if e.state == NotStarted {
		e.state = Running
		e.startedAt = e.now()
		e.lastKeyAt = e.startedAt
	}
	e.refill()

	if len(e.input) < len(e.target) {
		now := e.now()
		delta := now.Sub(e.lastKeyAt)
		e.lastKeyAt = now

		expected := e.target[len(e.input)]
		correct := r == expected
		if e.recorder != nil {
			e.recorder.Record(expected, correct, delta)
		}
		if correct || !e.forgive {
			e.input = append(e.input, r)
		}
	}

	if e.mode.Kind == FixedWords {
		if e.typedWords() >= e.mode.Limit && e.endsInSeparator() {
			e.complete()
		}
		if len(e.input) == len(e.target) {
			e.complete()
		}
	}
}

// Backspace removes the last buffer character, with no stats effect.
func (e *Engine) Backspace() {
	if e.state == Completed || e.state == Cancelled {
		return
	}
	if len(e.input) > 0 {
		e.input = e.input[:len(e.input)-1]
	}
}

// Cancel terminates the session without a result.
func (e *Engine) Cancel() {
	if e.state == Completed || e.state == Cancelled {
		return
	}
	if e.state == Running {
		e.endedAt = e.now()
	}
	e.state = Cancelled
}

// Result synthesizes the final metrics. It returns false for any
// session that did not complete.
func (e *Engine) Result() (Result, bool) {
	if e.state != Completed {
		return Result{}, false
	}
	elapsed := e.endedAt.Sub(e.startedAt)
	chars := len(e.input)
	raw := stats.RawWPM(chars, elapsed)

	correct := 0
	for i, r := range e.input {
		if i < len(e.target) && e.target[i] == r {
			correct++
		}
	}
	accuracy := 0.0
	if chars > 0 {
		accuracy = float64(correct) / float64(chars)
	}

	return Result{
		Timestamp: e.now(),
		RawWPM:    raw,
		NetWPM:    raw * accuracy,
		Accuracy:  accuracy * 100,
		Seconds:   elapsed.Seconds(),
		Chars:     chars,
		Words:     len(strings.Fields(string(e.input))),
	}, true
}

func (e *Engine) complete() {
	e.endedAt = e.now()
	e.state = Completed
}

func (e *Engine) refill() {
	if e.mode.Kind == FixedWords {
		return
	}
	if len(e.input)+lookaheadMargin <= len(e.target) {
		return
	}
	more := strings.Join(e.source.Select(refillWords), " ")
	e.target = append(e.target, ' ')
	e.target = append(e.target, []rune(more)...)
}

func (e *Engine) typedWords() int {
	return len(strings.Fields(string(e.input)))
}

func (e *Engine) endsInSeparator() bool {
	if len(e.input) == 0 {
		return false
	}
	return unicode.IsSpace(e.input[len(e.input)-1])
}
