// Package translate turns a behavioral-state snapshot into concrete prompt
// guidance for an LLM caller: guidelines, tone, verbosity, and flags.
package translate

import (
	"fmt"

	"github.com/soundings-io/soundings/internal/state"
)

// Verbosity is the desired response length.
type Verbosity string

const (
	VerbosityMinimal  Verbosity = "minimal"
	VerbosityNormal   Verbosity = "normal"
	VerbosityDetailed Verbosity = "detailed"
)

// PromptContext is the translated output consumed by LLM callers.
type PromptContext struct {
	Guidelines []string  `json:"guidelines"`
	Tone       string    `json:"tone"`
	Verbosity  Verbosity `json:"verbosity"`
	Flags      []string  `json:"flags"`
}

// Thresholds above/below which conditional guidelines trigger.
const (
	highThreshold = 0.7
	lowThreshold  = 0.3
)

// RuleTranslator maps axis values to prompt context with fixed threshold
// rules. Stateless.
type RuleTranslator struct{}

// Context translates one snapshot.
func (RuleTranslator) Context(s *state.Snapshot) PromptContext {
	ctx := PromptContext{
		Guidelines: []string{},
		Flags:      []string{},
		Verbosity:  VerbosityNormal,
	}

	if s.Axis(state.AxisAnxietyLevel) > highThreshold {
		ctx.Guidelines = append(ctx.Guidelines,
			"Provide reassurance and acknowledge concerns before problem-solving.")
		ctx.Flags = append(ctx.Flags, "high_anxiety")
	}
	if s.Axis(state.AxisCognitiveLoad) > highThreshold {
		ctx.Guidelines = append(ctx.Guidelines,
			"Keep responses concise and avoid multi-step plans unless asked.")
		ctx.Flags = append(ctx.Flags, "high_cognitive_load")
	}
	if s.Axis(state.AxisDecisionFatigue) > highThreshold {
		ctx.Guidelines = append(ctx.Guidelines,
			"Offer a single clear recommendation rather than a menu of options.")
		ctx.Flags = append(ctx.Flags, "high_decision_fatigue")
	}
	if s.Axis(state.AxisUrgencySensitivity) > highThreshold {
		ctx.Guidelines = append(ctx.Guidelines,
			"Lead with the answer; defer background detail.")
		ctx.Flags = append(ctx.Flags, "high_urgency")
	}

	ctx.Tone = tone(s.Axis(state.AxisWarmth), s.Axis(state.AxisFormality))

	switch v := s.Axis(state.AxisVerbosityPreference); {
	case v < lowThreshold:
		ctx.Verbosity = VerbosityMinimal
	case v > highThreshold:
		ctx.Verbosity = VerbosityDetailed
	}

	return ctx
}

// tone combines warmth and formality into labels like "warm-casual" or
// "neutral-formal".
func tone(warmth, formality float64) string {
	w := "neutral"
	switch {
	case warmth > highThreshold:
		w = "warm"
	case warmth < lowThreshold:
		w = "reserved"
	}
	f := "neutral"
	switch {
	case formality > highThreshold:
		f = "formal"
	case formality < lowThreshold:
		f = "casual"
	}
	return fmt.Sprintf("%s-%s", w, f)
}
