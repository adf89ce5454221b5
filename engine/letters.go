package engine

import "strings"

const alphabetSize = 'Z' - 'A' + 1

// LetterStatistics counts the letters A–Z in text, ignoring case.
//
// Lowercase letters are folded onto uppercase in a single pass before
// counting. Digits, punctuation, whitespace and letters outside A–Z are
// ignored. The result lists only letters that occur, ordered A→Z.
func LetterStatistics(text string) []LetterOccurrence {
	upper := strings.ToUpper(text)

	var counts [alphabetSize]int
	// Bytes, not runes: UTF-8 continuation bytes never fall in 'A'..'Z'.
	for i := 0; i < len(upper); i++ {
		if c := upper[i]; c >= 'A' && c <= 'Z' {
			counts[c-'A']++
		}
	}

	occurrences := []LetterOccurrence{}
	for i, n := range counts {
		if n > 0 {
			occurrences = append(occurrences, LetterOccurrence{Letter: rune('A' + i), Count: n})
		}
	}
	return occurrences
}
