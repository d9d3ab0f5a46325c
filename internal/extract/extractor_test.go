package extract

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/soundings-io/soundings/internal/lexicon"
)

func newTestExtractor(opts ...Option) *Extractor {
	return New(lexicon.Default(), opts...)
}

func TestExtractEmptyInput(t *testing.T) {
	e := newTestExtractor()
	for _, text := range []string{"", "   ", "\n\t  "} {
		f := e.Extract(text)
		if f.WordCount != 0 {
			t.Errorf("Extract(%q): word_count = %d, want 0", text, f.WordCount)
		}
		if f.SentenceCount != 1 {
			t.Errorf("Extract(%q): sentence_count = %d, want 1", text, f.SentenceCount)
		}
		if f != Empty() {
			t.Errorf("Extract(%q) = %+v, want zero record", text, f)
		}
	}
}

func TestExtractPunctuationOnly(t *testing.T) {
	e := newTestExtractor()
	f := e.Extract("!!! ???")
	if f.WordCount != 0 {
		t.Errorf("word_count = %d, want 0", f.WordCount)
	}
	if f.SentenceCount != 2 {
		t.Errorf("sentence_count = %d, want 2", f.SentenceCount)
	}
	if f.CharCount != 7 {
		t.Errorf("char_count = %d, want 7", f.CharCount)
	}
	// With no words, every ratio stays at its zero default.
	if f.ExclamationRatio != 0 || f.CapsRatio != 0 || f.FillerRatio != 0 {
		t.Errorf("expected zero ratios, got %+v", f)
	}
}

func TestExtractDeterminism(t *testing.T) {
	e := newTestExtractor()
	text := "I think maybe I'm overwhelmed, I don't know what to do!!"
	first := e.Extract(text)
	for i := 0; i < 10; i++ {
		if got := e.Extract(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("extraction %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestExtractRatioBounds(t *testing.T) {
	e := newTestExtractor()
	texts := []string{
		"?!?!?!",
		"AAAA BBBB!!!! ???",
		"I'm I'm I'm can't won't don't",
		"café naïve text with accents... and more?",
		strings.Repeat("basically like you know um uh well ", 40),
		"Please HELP me NOW!!! I can't do this anymore, everything is terrible...",
	}
	for _, text := range texts {
		f := e.Extract(text)
		for name, v := range map[string]float64{
			"long_word_ratio":    f.LongWordRatio,
			"caps_ratio":         f.CapsRatio,
			"contraction_ratio":  f.ContractionRatio,
			"first_person_ratio": f.FirstPersonRatio,
			"filler_ratio":       f.FillerRatio,
		} {
			if v < 0 || v > 1 {
				t.Errorf("Extract(%q): %s = %f out of [0,1]", text, name, v)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("Extract(%q): %s is not finite", text, name)
			}
		}
		if f.SentenceCount < 1 {
			t.Errorf("Extract(%q): sentence_count = %d", text, f.SentenceCount)
		}
		if f.ReadingGradeLevel < 0 {
			t.Errorf("Extract(%q): negative grade level", text)
		}
	}
}

func TestExclamationRatioMonotonic(t *testing.T) {
	e := newTestExtractor()
	text := "We need help now"
	prev := e.Extract(text).ExclamationRatio
	for i := 0; i < 5; i++ {
		text += "!"
		cur := e.Extract(text).ExclamationRatio
		if cur < prev {
			t.Fatalf("exclamation_ratio decreased: %f -> %f at %q", prev, cur, text)
		}
		prev = cur
	}
}

func TestCapsWordFilter(t *testing.T) {
	e := newTestExtractor()
	if f := e.Extract("I"); f.CapsWordCount != 0 {
		t.Errorf(`"I" counted as caps word`)
	}
	if f := e.Extract("NO"); f.CapsWordCount != 1 {
		t.Errorf(`"NO" not counted as caps word`)
	}
	if f := e.Extract("STOP SHOUTING please"); f.CapsWordCount != 2 {
		t.Errorf("expected 2 caps words, got %d", f.CapsWordCount)
	}

	loose := newTestExtractor(WithMinCapsWordLength(1))
	if f := loose.Extract("I"); f.CapsWordCount != 1 {
		t.Errorf(`"I" should count with min length 1`)
	}
}

func TestLongWordThresholdOption(t *testing.T) {
	text := "abcdefg" // 7 letters
	if f := newTestExtractor().Extract(text); f.LongWordRatio != 1 {
		t.Errorf("default threshold: long_word_ratio = %f, want 1", f.LongWordRatio)
	}
	if f := newTestExtractor(WithLongWordThreshold(10)).Extract(text); f.LongWordRatio != 0 {
		t.Errorf("threshold 10: long_word_ratio = %f, want 0", f.LongWordRatio)
	}
}

func TestExtractOverwhelmedScenario(t *testing.T) {
	e := newTestExtractor()
	f := e.Extract("I think maybe I'm overwhelmed, I don't know what to do!!")

	if f.HedgeCount < 2 {
		t.Errorf("hedge_count = %d, want >= 2 (maybe, i think)", f.HedgeCount)
	}
	if f.NegativeEmotionCount < 1 {
		t.Errorf("negative_emotion_count = %d, want >= 1 (overwhelmed)", f.NegativeEmotionCount)
	}
	if f.ContractionRatio <= 0 {
		t.Errorf("contraction_ratio = %f, want > 0", f.ContractionRatio)
	}
	if f.ExclamationRatio <= 0 {
		t.Errorf("exclamation_ratio = %f, want > 0", f.ExclamationRatio)
	}
	if f.WordCount != 11 {
		t.Errorf("word_count = %d, want 11", f.WordCount)
	}
	if f.SentenceCount != 1 {
		t.Errorf("sentence_count = %d, want 1", f.SentenceCount)
	}
	if f.FirstPersonRatio <= 0 {
		t.Errorf("first_person_ratio = %f, want > 0", f.FirstPersonRatio)
	}
}

func TestExtractPoliteRequestScenario(t *testing.T) {
	e := newTestExtractor()
	f := e.Extract("Please send the report immediately, thank you.")

	if f.PolitenessCount < 2 {
		t.Errorf("politeness_count = %d, want >= 2 (please, thank you)", f.PolitenessCount)
	}
	if f.UrgencyWordCount < 1 {
		t.Errorf("urgency_word_count = %d, want >= 1 (immediately)", f.UrgencyWordCount)
	}
	if f.ImperativeCount < 1 {
		t.Errorf("imperative_count = %d, want >= 1 (starts with please)", f.ImperativeCount)
	}
}

func TestExtractSharedSurfaceFormsCountTwice(t *testing.T) {
	e := newTestExtractor()
	// "always" is both a certainty marker and an absolutist word; each
	// category accumulates independently.
	f := e.Extract("It always works.")
	if f.CertaintyCount != 1 {
		t.Errorf("certainty_count = %d, want 1", f.CertaintyCount)
	}
	if f.AbsolutistCount != 1 {
		t.Errorf("absolutist_count = %d, want 1", f.AbsolutistCount)
	}
}

func TestExtractReadabilityScenario(t *testing.T) {
	e := newTestExtractor()
	// Three one-syllable words, one sentence: the formula yields -2.62,
	// floored to 0.
	f := e.Extract("Cat dog sat.")
	if f.WordCount != 3 || f.SentenceCount != 1 {
		t.Fatalf("counts: words=%d sentences=%d", f.WordCount, f.SentenceCount)
	}
	if f.ReadingGradeLevel != 0 {
		t.Errorf("reading_grade_level = %f, want 0", f.ReadingGradeLevel)
	}
	if f.AvgSentenceLength != 3 {
		t.Errorf("avg_sentence_length = %f, want 3", f.AvgSentenceLength)
	}
	if f.AvgWordLength != 3 {
		t.Errorf("avg_word_length = %f, want 3", f.AvgWordLength)
	}
}

func TestExtractImperatives(t *testing.T) {
	e := newTestExtractor()
	tests := []struct {
		text string
		want int
	}{
		{"Stop. Look around. Tell me everything.", 3},
		{"Nothing commanding here.", 0},
		{"Don't panic! Check the logs.", 2},
		{"please, wait", 0}, // first token "please," carries the comma
	}
	for _, tt := range tests {
		if got := e.Extract(tt.text).ImperativeCount; got != tt.want {
			t.Errorf("Extract(%q).ImperativeCount = %d, want %d", tt.text, got, tt.want)
		}
	}
}
