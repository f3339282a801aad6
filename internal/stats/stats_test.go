package stats

import (
	"math"
	"testing"
	"time"

	"github.com/typr-dev/typr/internal/lexicon"
)

func TestRecordCorrectKeystroke(t *testing.T) {
	lex := lexicon.New(nil)
	tracker := NewTracker(lex)

	tracker.Record('a', true, 200*time.Millisecond)

	entry := lex.Letter('a')
	if entry.Shown != 1 || entry.Correct != 1 {
		t.Fatalf("expected shown=1 correct=1, got shown=%d correct=%d", entry.Shown, entry.Correct)
	}
	if entry.Accuracy != 1.0 {
		t.Fatalf("expected accuracy 1.0, got %f", entry.Accuracy)
	}
	// 12.0 / 0.2s average latency.
	if math.Abs(entry.Speed-60.0) > 1e-9 {
		t.Fatalf("expected speed 60, got %f", entry.Speed)
	}
}

func TestRecordIncorrectKeystroke(t *testing.T) {
	lex := lexicon.New(nil)
	tracker := NewTracker(lex)

	tracker.Record('a', false, 500*time.Millisecond)

	entry := lex.Letter('a')
	if entry.Shown != 1 || entry.Correct != 0 {
		t.Fatalf("expected shown=1 correct=0, got shown=%d correct=%d", entry.Shown, entry.Correct)
	}
	if entry.Accuracy != 0 {
		t.Fatalf("expected accuracy 0, got %f", entry.Accuracy)
	}
	if entry.LatencyCount != 0 || entry.LatencySum != 0 {
		t.Fatalf("incorrect keystroke must not contribute latency")
	}
	if entry.Speed != 0 {
		t.Fatalf("speed must stay undefined without a correct sample")
	}
}

func TestRecordInvariants(t *testing.T) {
	lex := lexicon.New(nil)
	tracker := NewTracker(lex)

	sequence := []bool{true, false, true, true, false, false, true}
	for _, correct := range sequence {
		tracker.Record('x', correct, 150*time.Millisecond)
	}

	entry := lex.Letter('x')
	if entry.Correct > entry.Shown {
		t.Fatalf("correct %d exceeds shown %d", entry.Correct, entry.Shown)
	}
	if entry.Accuracy < 0 || entry.Accuracy > 1 {
		t.Fatalf("accuracy out of range: %f", entry.Accuracy)
	}
	want := float64(entry.Correct) / float64(entry.Shown)
	if math.Abs(entry.Accuracy-want) > 1e-9 {
		t.Fatalf("accuracy %f, want correct/shown %f", entry.Accuracy, want)
	}
}

func TestRawWPM(t *testing.T) {
	// 9 chars in 9 seconds: (9/5)/(9/60) = 12.
	got := RawWPM(9, 9*time.Second)
	if math.Abs(got-12.0) > 1e-9 {
		t.Fatalf("expected 12.0, got %f", got)
	}
	if RawWPM(10, 0) != 0 {
		t.Fatalf("expected 0 WPM for zero elapsed")
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	out := MovingAverage(values, 2)
	want := []float64{1, 1.5, 2.5, 3.5}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Fatalf("index %d: got %f want %f", i, out[i], want[i])
		}
	}
}

func TestSparklineFlat(t *testing.T) {
	out := Sparkline([]float64{5, 5, 5})
	if len(out) != 3 {
		t.Fatalf("expected 3 chars, got %q", out)
	}
	if out[0] != out[1] || out[1] != out[2] {
		t.Fatalf("flat series must render uniformly: %q", out)
	}
}

func TestResample(t *testing.T) {
	values := []float64{1, 3, 5, 7}
	out := Resample(values, 2)
	if len(out) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(out))
	}
	if math.Abs(out[0]-2) > 1e-9 || math.Abs(out[1]-6) > 1e-9 {
		t.Fatalf("unexpected buckets: %v", out)
	}
	same := Resample(values, 10)
	if len(same) != len(values) {
		t.Fatalf("expected passthrough when width exceeds length")
	}
}
