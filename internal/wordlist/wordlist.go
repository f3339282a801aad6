// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	_ "embed"
	"os"
	"strings"
)

//go:embed default.txt
var defaultWords string

// Default returns the baked-in English high-frequency word list.
func Default() []string {
	return strings.Fields(defaultWords)
}

// Load reads one word per line from path. A missing, unreadable, or
// empty file falls back to the default list.
func Load(path string) []string {
	words, err := readWords(path)
	if err != nil || len(words) == 0 {
		return Default()
	}
	return words
}

// LoadTypeable loads the word list at path and drops untypeable
// words. A list that filters down to nothing falls back to the
// default list, so callers always get words to draw from.
func LoadTypeable(path string) []string {
	words := FilterTypeable(Load(path))
	if len(words) == 0 {
		words = FilterTypeable(Default())
	}
	return words
}

func readWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
