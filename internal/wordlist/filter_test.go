package wordlist

import "testing"

func TestFilterTypeable(t *testing.T) {
	in := []string{"hello", "résumé", "", "co-op", "naïve", "don’t"}
	out := FilterTypeable(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 words, got %d: %v", len(out), out)
	}
	if out[0] != "hello" || out[1] != "co-op" {
		t.Fatalf("unexpected filtered words: %v", out)
	}
}
