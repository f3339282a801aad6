// Package wordlist loads word lists from files.
package wordlist

// FilterTypeable drops words the typing engine cannot present: the
// engine assumes single-width printable ASCII, so anything outside
// the ' '..'~' range (or an empty line) is removed.
func FilterTypeable(words []string) []string {
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if typeable(word) {
			kept = append(kept, word)
		}
	}
	return kept
}

func typeable(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < ' ' || r > '~' {
			return false
		}
	}
	return true
}
