package extract

import "unicode"

// isWordChar reports whether r counts as a word character for boundary
// purposes: letters, digits, or underscore.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Words splits text into word tokens: maximal runs of ASCII letters with at
// most one internal apostrophe-joined suffix, so contractions like "don't"
// come through as a single token. Tokens must sit on word boundaries —
// letter runs glued to digits or other word characters ("x2go") produce no
// token, matching the boundary rules the marker matcher uses.
func Words(text string) []string {
	rs := []rune(text)
	n := len(rs)
	var words []string
	i := 0
	for i < n {
		if !isASCIILetter(rs[i]) || (i > 0 && isWordChar(rs[i-1])) {
			i++
			continue
		}
		j := i
		for j < n && isASCIILetter(rs[j]) {
			j++
		}
		end := j
		if j+1 < n && rs[j] == '\'' && isASCIILetter(rs[j+1]) {
			k := j + 1
			for k < n && isASCIILetter(rs[k]) {
				k++
			}
			if k == n || !isWordChar(rs[k]) {
				end = k
			}
		}
		if end == j && j < n && isWordChar(rs[j]) {
			// Trailing boundary fails ("like2"); skip the whole run.
			i = j
			continue
		}
		words = append(words, string(rs[i:end]))
		i = end
	}
	return words
}

// SentenceTerminatorRuns counts maximal runs of '.', '!', and '?'.
// "Wait... what?!" has two runs. Callers floor the result at 1.
func SentenceTerminatorRuns(text string) int {
	count := 0
	inRun := false
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	return count
}

// Contractions counts apostrophe-joined token pairs (word'word) on word
// boundaries. Unlike Words it admits digits and underscores on either side,
// and occurrences do not overlap.
func Contractions(text string) int {
	rs := []rune(text)
	n := len(rs)
	count := 0
	i := 0
	for i < n {
		if !isWordChar(rs[i]) {
			i++
			continue
		}
		j := i
		for j < n && isWordChar(rs[j]) {
			j++
		}
		if j+1 < n && rs[j] == '\'' && isWordChar(rs[j+1]) {
			k := j + 1
			for k < n && isWordChar(rs[k]) {
				k++
			}
			count++
			i = k
			continue
		}
		i = j
	}
	return count
}
