package extract

// GradeLevel computes a Flesch-Kincaid style grade level from word,
// sentence, and total syllable counts:
//
//	0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
//
// floored at 0. With no words or no sentences the grade is 0 by
// definition rather than computed.
func GradeLevel(wordCount, sentenceCount, syllableCount int) float64 {
	if wordCount <= 0 || sentenceCount <= 0 {
		return 0
	}
	grade := 0.39*(float64(wordCount)/float64(sentenceCount)) +
		11.8*(float64(syllableCount)/float64(wordCount)) -
		15.59
	if grade < 0 {
		return 0
	}
	return grade
}
