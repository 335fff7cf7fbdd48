package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// normalize lower-cases text and folds every whitespace run to one space so
// multi-word keywords match across line breaks.
func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// countWholeWord counts non-overlapping occurrences of term in text that are
// not embedded in a longer word. Both arguments must already be normalized.
// RE2's \b only understands ASCII, so boundaries are checked by hand to keep
// Cyrillic and accented keywords working.
func countWholeWord(text, term string) int {
	if term == "" {
		return 0
	}
	count := 0
	for offset := 0; offset < len(text); {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(term)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			count++
			offset = end
			continue
		}
		offset = start + 1
	}
	return count
}

// firstWholeWord returns the byte index of the first whole-word occurrence of
// term in text, or -1.
func firstWholeWord(text, term string) int {
	if term == "" {
		return -1
	}
	for offset := 0; offset < len(text); {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			return -1
		}
		start := offset + idx
		if boundaryBefore(text, start) && boundaryAfter(text, start+len(term)) {
			return start
		}
		offset = start + 1
	}
	return -1
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}
