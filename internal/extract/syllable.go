package extract

import "strings"

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// Syllables estimates the syllable count of a single word token. It counts
// transitions into vowel groups (runs of aeiouy), then applies two
// corrections: a trailing silent 'e' drops one syllable when more than one
// was counted, and a trailing consonant+"le" adds one. The result is
// floored at 1.
//
// The heuristic is not phonetically exact, but downstream readability
// depends on these exact counts, so the corrections must not be "improved".
func Syllables(word string) int {
	w := strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	rs := []rune(w)
	if strings.HasSuffix(w, "e") && count > 1 {
		count--
	}
	if strings.HasSuffix(w, "le") && len(rs) > 2 && !isVowel(rs[len(rs)-3]) {
		count++
	}

	if count < 1 {
		return 1
	}
	return count
}
