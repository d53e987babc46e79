// Package text provides small helpers for measuring and trimming prompt text.
package text

import "unicode/utf8"

// CountRunes counts the number of Unicode characters (runes) in the given text.
func CountRunes(text string) int {
	return utf8.RuneCountInString(text)
}

// Truncate shortens text to at most maxRunes runes, cutting at a rune boundary.
// It reports whether anything was removed. maxRunes <= 0 disables truncation.
func Truncate(text string, maxRunes int) (string, bool) {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text, false
	}

	n := 0
	for i := range text {
		if n == maxRunes {
			return text[:i], true
		}
		n++
	}
	return text, false
}
