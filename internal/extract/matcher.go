package extract

import (
	"strings"
	"unicode/utf8"
)

// Matcher is a compiled marker table for one lexicon category. Entries are
// lower-cased once at construction; single-word entries match on word
// boundaries, entries containing a space match as literal substrings.
// Each entry is searched independently and occurrences of a single entry
// do not overlap, but entries from different categories (or different
// entries within one) may count the same span of text — categories carry
// independent semantics, not a mutually exclusive classification.
type Matcher struct {
	phrases []compiledPhrase
}

type compiledPhrase struct {
	text      string
	wholeWord bool
}

// NewMatcher compiles a marker table.
func NewMatcher(entries []string) *Matcher {
	m := &Matcher{phrases: make([]compiledPhrase, 0, len(entries))}
	for _, e := range entries {
		lower := strings.ToLower(e)
		m.phrases = append(m.phrases, compiledPhrase{
			text:      lower,
			wholeWord: !strings.Contains(lower, " "),
		})
	}
	return m
}

// Count returns the total occurrences of all entries in textLower, which
// the caller must have lower-cased already.
func (m *Matcher) Count(textLower string) int {
	total := 0
	for _, p := range m.phrases {
		if p.wholeWord {
			total += countWholeWord(textLower, p.text)
		} else {
			total += strings.Count(textLower, p.text)
		}
	}
	return total
}

// countWholeWord counts non-overlapping occurrences of word in text that
// sit on word boundaries: the adjacent characters on both sides must not
// be word characters.
func countWholeWord(text, word string) int {
	count := 0
	off := 0
	for off <= len(text)-len(word) {
		idx := strings.Index(text[off:], word)
		if idx < 0 {
			break
		}
		start := off + idx
		end := start + len(word)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			count++
			off = end
		} else {
			off = start + 1
		}
	}
	return count
}

func boundaryBefore(text string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordChar(r)
}

func boundaryAfter(text string, end int) bool {
	if end == len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordChar(r)
}
