// Package infer maps message text onto behavioral-state axis estimates
// using the linguistic feature engine. All estimates are rule-based; there
// is no model and no persistence beyond the per-user baselines.
package infer

import (
	"math"

	"github.com/soundings-io/soundings/internal/extract"
	"github.com/soundings-io/soundings/internal/scoring"
	"github.com/soundings-io/soundings/internal/state"
)

// SourceKind identifies what produced an estimate.
type SourceKind string

const (
	// SourceLinguistic means the estimate came from feature scoring of the
	// message itself.
	SourceLinguistic SourceKind = "linguistic"
	// SourceDelta means the estimate came from deviation against the
	// user's own baseline.
	SourceDelta SourceKind = "delta"
)

// Estimate is one inferred axis value.
type Estimate struct {
	Axis       string     `json:"axis"`
	Value      float64    `json:"value"`
	Confidence float64    `json:"confidence"`
	Source     SourceKind `json:"source"`

	// FeaturesUsed names the feature fields behind a linguistic estimate.
	FeaturesUsed []string `json:"features_used,omitempty"`
	// Metric and ZScore describe a delta estimate.
	Metric string  `json:"metric,omitempty"`
	ZScore float64 `json:"z_score,omitempty"`
}

// Engine derives axis estimates from messages. Stateless; safe for
// concurrent use.
type Engine struct {
	extractor *extract.Extractor
}

// NewEngine wraps an extractor.
func NewEngine(ex *extract.Extractor) *Engine {
	return &Engine{extractor: ex}
}

// Features exposes the raw feature record for a message, for callers that
// echo features alongside estimates.
func (e *Engine) Features(message string) extract.Features {
	return e.extractor.Extract(message)
}

// Infer estimates axes from a single message without baseline context.
func (e *Engine) Infer(message string) []Estimate {
	f := e.extractor.Extract(message)
	return e.linguisticEstimates(f)
}

// InferWithBaseline estimates axes and additionally scores the message
// against the user's baseline, then folds the message into the baseline.
func (e *Engine) InferWithBaseline(message string, baseline *Baseline) []Estimate {
	f := e.extractor.Extract(message)
	estimates := e.linguisticEstimates(f)

	if z, ok := baseline.ZScore(MetricNegativeEmotionDensity, f.NegativeEmotionDensity); ok && math.Abs(z) >= 1.5 {
		estimates = append(estimates, Estimate{
			Axis:       state.AxisAnxietyLevel,
			Value:      clamp(0.5+0.15*z, 0, 1),
			Confidence: 0.5,
			Source:     SourceDelta,
			Metric:     MetricNegativeEmotionDensity,
			ZScore:     z,
		})
	}
	if z, ok := baseline.ZScore(MetricExclamationRatio, f.ExclamationRatio); ok && z >= 1.5 {
		estimates = append(estimates, Estimate{
			Axis:       state.AxisUrgencySensitivity,
			Value:      clamp(0.5+0.15*z, 0, 1),
			Confidence: 0.5,
			Source:     SourceDelta,
			Metric:     MetricExclamationRatio,
			ZScore:     z,
		})
	}

	baseline.Observe(map[string]float64{
		MetricWordCount:              float64(f.WordCount),
		MetricHedgeDensity:           f.HedgeDensity,
		MetricNegativeEmotionDensity: f.NegativeEmotionDensity,
		MetricExclamationRatio:       f.ExclamationRatio,
	})

	return estimates
}

// linguisticEstimates maps composite scores onto axes. The mapping is a
// calibration artifact; see DESIGN.md.
func (e *Engine) linguisticEstimates(f extract.Features) []Estimate {
	conf := messageConfidence(f.WordCount)

	anxiety := scoring.UncertaintyV2(f)
	urgency := math.Min(float64(f.UrgencyWordCount)/3.0, 1.0)*0.6 + scoring.EmotionalIntensity(f)*0.4
	formality := scoring.Formality(f)
	cognitiveLoad := scoring.Complexity(f)*0.7 + math.Min(f.FillerRatio*4.0, 1.0)*0.3

	return []Estimate{
		{
			Axis:       state.AxisAnxietyLevel,
			Value:      clamp(anxiety, 0, 1),
			Confidence: conf,
			Source:     SourceLinguistic,
			FeaturesUsed: []string{
				"hedge_density", "question_ratio",
				"negative_emotion_density", "first_person_ratio",
			},
		},
		{
			Axis:       state.AxisUrgencySensitivity,
			Value:      clamp(urgency, 0, 1),
			Confidence: conf,
			Source:     SourceLinguistic,
			FeaturesUsed: []string{
				"urgency_word_count", "exclamation_ratio", "caps_ratio",
			},
		},
		{
			Axis:       state.AxisFormality,
			Value:      clamp(formality, 0, 1),
			Confidence: conf,
			Source:     SourceLinguistic,
			FeaturesUsed: []string{
				"reading_grade_level", "contraction_ratio", "filler_ratio",
			},
		},
		{
			Axis:       state.AxisCognitiveLoad,
			Value:      clamp(cognitiveLoad, 0, 1),
			Confidence: conf,
			Source:     SourceLinguistic,
			FeaturesUsed: []string{
				"reading_grade_level", "avg_sentence_length",
				"long_word_ratio", "filler_ratio",
			},
		},
	}
}

// messageConfidence discounts estimates from very short messages. Ranges
// from 0.2 for a few words up to 0.8 for 40+ words.
func messageConfidence(wordCount int) float64 {
	return 0.2 + 0.6*math.Min(float64(wordCount)/40.0, 1.0)
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
