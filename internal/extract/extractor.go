package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/soundings-io/soundings/internal/lexicon"
)

const (
	// DefaultLongWordThreshold is the length a token must exceed to count
	// as a long word.
	DefaultLongWordThreshold = 6
	// DefaultMinCapsWordLength keeps single-letter tokens such as "I" from
	// inflating the caps signal.
	DefaultMinCapsWordLength = 2
)

// Option tunes an Extractor at construction time.
type Option func(*Extractor)

// WithLongWordThreshold overrides the long-word length threshold.
func WithLongWordThreshold(n int) Option {
	return func(e *Extractor) { e.longWordThreshold = n }
}

// WithMinCapsWordLength overrides the minimum length for a token to count
// as a caps word.
func WithMinCapsWordLength(n int) Option {
	return func(e *Extractor) { e.minCapsWordLength = n }
}

// Extractor turns raw text into a Features record. It holds only the
// compiled lexicon and two thresholds; Extract is a pure function and the
// extractor is safe for concurrent use.
type Extractor struct {
	longWordThreshold int
	minCapsWordLength int

	hedges          *Matcher
	certainty       *Matcher
	urgency         *Matcher
	politeness      *Matcher
	fillers         *Matcher
	negativeEmotion *Matcher
	absolutist      *Matcher

	firstPerson        map[string]struct{}
	imperativeStarters map[string]struct{}
}

// New compiles the given lexicon into an Extractor.
func New(lex lexicon.Lexicon, opts ...Option) *Extractor {
	e := &Extractor{
		longWordThreshold:  DefaultLongWordThreshold,
		minCapsWordLength:  DefaultMinCapsWordLength,
		hedges:             NewMatcher(lex.Hedges),
		certainty:          NewMatcher(lex.CertaintyMarkers),
		urgency:            NewMatcher(lex.UrgencyWords),
		politeness:         NewMatcher(lex.Politeness),
		fillers:            NewMatcher(lex.Fillers),
		negativeEmotion:    NewMatcher(lex.NegativeEmotion),
		absolutist:         NewMatcher(lex.Absolutist),
		firstPerson:        toSet(lex.FirstPerson),
		imperativeStarters: toSet(lex.ImperativeStarters),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func toSet(entries []string) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		set[strings.ToLower(e)] = struct{}{}
	}
	return set
}

// Extract computes the full feature record for text. Degenerate input is
// never an error: empty or whitespace-only text yields the Empty record,
// and every ratio with a zero denominator is 0 rather than NaN.
func (e *Extractor) Extract(text string) Features {
	if strings.TrimSpace(text) == "" {
		return Empty()
	}

	var f Features
	f.CharCount = utf8.RuneCountInString(text)

	words := Words(text)
	f.WordCount = len(words)

	f.SentenceCount = SentenceTerminatorRuns(text)
	if f.SentenceCount < 1 {
		f.SentenceCount = 1
	}

	if f.WordCount == 0 {
		return f
	}
	wc := float64(f.WordCount)
	sc := float64(f.SentenceCount)

	// Word-level stats
	totalLen := 0
	longWords := 0
	syllables := 0
	for _, w := range words {
		l := utf8.RuneCountInString(w)
		totalLen += l
		if l > e.longWordThreshold {
			longWords++
		}
		syllables += Syllables(w)
	}
	f.AvgWordLength = float64(totalLen) / wc
	f.AvgSentenceLength = wc / sc
	f.LongWordRatio = float64(longWords) / wc
	f.ReadingGradeLevel = GradeLevel(f.WordCount, f.SentenceCount, syllables)

	// Punctuation emphasis
	f.ExclamationRatio = float64(strings.Count(text, "!")) / sc
	f.QuestionRatio = float64(strings.Count(text, "?")) / sc

	for _, w := range words {
		if e.isCapsWord(w) {
			f.CapsWordCount++
		}
	}
	f.CapsRatio = float64(f.CapsWordCount) / wc

	// Lexical markers
	textLower := strings.ToLower(text)

	f.HedgeCount = e.hedges.Count(textLower)
	f.HedgeDensity = float64(f.HedgeCount) / sc

	f.CertaintyCount = e.certainty.Count(textLower)
	f.PolitenessCount = e.politeness.Count(textLower)
	f.UrgencyWordCount = e.urgency.Count(textLower)

	f.ContractionRatio = float64(Contractions(textLower)) / wc

	firstPerson := 0
	for _, w := range words {
		if _, ok := e.firstPerson[strings.ToLower(w)]; ok {
			firstPerson++
		}
	}
	f.FirstPersonRatio = float64(firstPerson) / wc

	f.ImperativeCount = e.countImperatives(text)

	f.FillerRatio = float64(e.fillers.Count(textLower)) / wc

	f.NegativeEmotionCount = e.negativeEmotion.Count(textLower)
	f.NegativeEmotionDensity = float64(f.NegativeEmotionCount) / sc

	f.AbsolutistCount = e.absolutist.Count(textLower)
	f.AbsolutistDensity = float64(f.AbsolutistCount) / sc

	return f
}

// isCapsWord reports whether w is a shouted token: every letter upper-case
// and at least minCapsWordLength characters long.
func (e *Extractor) isCapsWord(w string) bool {
	if utf8.RuneCountInString(w) < e.minCapsWordLength {
		return false
	}
	for _, r := range w {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// countImperatives applies the sentence-initial-word heuristic: split on
// terminal punctuation and test the first word of each segment against the
// imperative starter set. Coarse on purpose; it is not a parser.
func (e *Extractor) countImperatives(text string) int {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	count := 0
	for _, seg := range segments {
		fields := strings.Fields(strings.ToLower(seg))
		if len(fields) == 0 {
			continue
		}
		if _, ok := e.imperativeStarters[fields[0]]; ok {
			count++
		}
	}
	return count
}
