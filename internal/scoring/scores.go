// Package scoring derives bounded composite scores from a linguistic
// feature record. Each scorer is a pure function over the subset of fields
// it reads, tolerates partially populated records (unread fields stay at
// their zero value), and returns a value in [0,1].
//
// The scaling constants and per-term weights are fixed design parameters
// calibrated against labeled data. Changing any of them breaks numeric
// compatibility with existing validation artifacts.
package scoring

import (
	"math"

	"github.com/soundings-io/soundings/internal/extract"
)

// Scores bundles all composite scores for one feature record.
type Scores struct {
	Uncertainty        float64 `json:"uncertainty_score"`
	UncertaintyV2      float64 `json:"uncertainty_score_v2"`
	EmotionalIntensity float64 `json:"emotional_intensity"`
	Formality          float64 `json:"formality_score"`
	Complexity         float64 `json:"complexity_score"`
}

// Compute evaluates every composite score against f.
func Compute(f extract.Features) Scores {
	return Scores{
		Uncertainty:        Uncertainty(f),
		UncertaintyV2:      UncertaintyV2(f),
		EmotionalIntensity: EmotionalIntensity(f),
		Formality:          Formality(f),
		Complexity:         Complexity(f),
	}
}

// Uncertainty scores tentativeness from hedging and question rate.
func Uncertainty(f extract.Features) float64 {
	hedge := math.Min(f.HedgeDensity*2.0, 1.0) * 0.6
	question := math.Min(f.QuestionRatio*3.0, 1.0) * 0.4
	return hedge + question
}

// UncertaintyV2 extends Uncertainty with negative-emotion and first-person
// signals, which carry most of the predictive mass on stress-labeled data.
func UncertaintyV2(f extract.Features) float64 {
	base := Uncertainty(f)
	negEmotion := math.Min(f.NegativeEmotionDensity*2.0, 1.0)
	firstPerson := math.Min(f.FirstPersonRatio*2.0, 1.0)
	return base*0.4 + negEmotion*0.4 + firstPerson*0.2
}

// EmotionalIntensity scores emphasis from exclamations and shouted words.
func EmotionalIntensity(f extract.Features) float64 {
	exclaim := math.Min(f.ExclamationRatio*5.0, 1.0) * 0.5
	caps := math.Min(f.CapsRatio*3.0, 1.0) * 0.5
	return exclaim + caps
}

// Formality starts from a 0.5 baseline, rewards reading grade, and
// penalizes contractions and fillers. Clamped to [0,1].
func Formality(f extract.Features) float64 {
	complexityBonus := math.Min(f.ReadingGradeLevel/12.0, 1.0) * 0.4
	contractionPenalty := f.ContractionRatio * 0.4
	fillerPenalty := f.FillerRatio * 0.2
	return clamp(0.5+complexityBonus-contractionPenalty-fillerPenalty, 0, 1)
}

// Complexity combines reading grade, sentence length, and long-word share.
func Complexity(f extract.Features) float64 {
	grade := math.Min(f.ReadingGradeLevel/12.0, 1.0) * 0.4
	sentenceLen := math.Min(f.AvgSentenceLength/25.0, 1.0) * 0.3
	longWords := f.LongWordRatio * 0.3
	return grade + sentenceLen + longWords
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
