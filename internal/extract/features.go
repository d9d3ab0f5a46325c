// Package extract implements the deterministic linguistic feature pipeline:
// tokenization, syllable estimation, readability, lexical marker matching,
// and the aggregation of everything into one fixed-schema Features record.
// Every call is a pure function of the input text and the injected lexicon;
// extractors are safe for concurrent use.
package extract

// Features is the single output record of one extraction call. All fields
// are derived together; the record is never mutated after construction.
//
// Fields suffixed _density are per-sentence rates and may exceed 1.
// Fields suffixed _ratio with a word-count denominator are fractions in
// [0,1] and are 0 when the text has no words. ExclamationRatio and
// QuestionRatio are per-sentence rates and may also exceed 1.
type Features struct {
	// Basic counts
	CharCount     int `json:"char_count"`
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`

	// Complexity
	AvgWordLength     float64 `json:"avg_word_length"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	LongWordRatio     float64 `json:"long_word_ratio"`
	ReadingGradeLevel float64 `json:"reading_grade_level"`

	// Punctuation and emphasis
	ExclamationRatio float64 `json:"exclamation_ratio"`
	QuestionRatio    float64 `json:"question_ratio"`
	CapsWordCount    int     `json:"caps_word_count"`
	CapsRatio        float64 `json:"caps_ratio"`

	// Lexical markers
	HedgeCount       int     `json:"hedge_count"`
	HedgeDensity     float64 `json:"hedge_density"`
	CertaintyCount   int     `json:"certainty_count"`
	ContractionRatio float64 `json:"contraction_ratio"`
	PolitenessCount  int     `json:"politeness_count"`
	FirstPersonRatio float64 `json:"first_person_ratio"`
	UrgencyWordCount int     `json:"urgency_word_count"`
	ImperativeCount  int     `json:"imperative_count"`
	FillerRatio      float64 `json:"filler_ratio"`

	NegativeEmotionCount   int     `json:"negative_emotion_count"`
	NegativeEmotionDensity float64 `json:"negative_emotion_density"`
	AbsolutistCount        int     `json:"absolutist_count"`
	AbsolutistDensity      float64 `json:"absolutist_density"`
}

// Empty returns the record produced for empty or whitespace-only text.
// SentenceCount is floored at 1 so downstream per-sentence rates never
// divide by zero; every other field is zero.
func Empty() Features {
	return Features{SentenceCount: 1}
}
