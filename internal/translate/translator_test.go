package translate

import (
	"testing"

	"github.com/soundings-io/soundings/internal/state"
)

func snapshotWithAxes(axes map[string]float64) *state.Snapshot {
	return &state.Snapshot{UserID: "u", Source: state.SourceSelfReport, Axes: axes}
}

func hasFlag(ctx PromptContext, flag string) bool {
	for _, f := range ctx.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

func TestContextNeutralSnapshot(t *testing.T) {
	var tr RuleTranslator
	ctx := tr.Context(snapshotWithAxes(nil))

	if len(ctx.Guidelines) != 0 {
		t.Errorf("neutral snapshot produced guidelines: %v", ctx.Guidelines)
	}
	if len(ctx.Flags) != 0 {
		t.Errorf("neutral snapshot produced flags: %v", ctx.Flags)
	}
	if ctx.Tone != "neutral-neutral" {
		t.Errorf("tone = %q, want neutral-neutral", ctx.Tone)
	}
	if ctx.Verbosity != VerbosityNormal {
		t.Errorf("verbosity = %q, want normal", ctx.Verbosity)
	}
	// Empty collections must serialize as [], not null.
	if ctx.Guidelines == nil || ctx.Flags == nil {
		t.Error("guidelines/flags should be empty slices, not nil")
	}
}

func TestContextFlags(t *testing.T) {
	tests := []struct {
		axis string
		flag string
	}{
		{state.AxisAnxietyLevel, "high_anxiety"},
		{state.AxisCognitiveLoad, "high_cognitive_load"},
		{state.AxisDecisionFatigue, "high_decision_fatigue"},
		{state.AxisUrgencySensitivity, "high_urgency"},
	}
	var tr RuleTranslator
	for _, tt := range tests {
		ctx := tr.Context(snapshotWithAxes(map[string]float64{tt.axis: 0.9}))
		if !hasFlag(ctx, tt.flag) {
			t.Errorf("axis %s at 0.9: missing flag %s", tt.axis, tt.flag)
		}
		if len(ctx.Guidelines) != 1 {
			t.Errorf("axis %s at 0.9: got %d guidelines, want 1", tt.axis, len(ctx.Guidelines))
		}

		// Exactly at the threshold does not trigger.
		ctx = tr.Context(snapshotWithAxes(map[string]float64{tt.axis: 0.7}))
		if hasFlag(ctx, tt.flag) {
			t.Errorf("axis %s at 0.7: flag %s should not trigger", tt.axis, tt.flag)
		}
	}
}

func TestContextTone(t *testing.T) {
	tests := []struct {
		warmth, formality float64
		want              string
	}{
		{0.9, 0.9, "warm-formal"},
		{0.9, 0.1, "warm-casual"},
		{0.1, 0.9, "reserved-formal"},
		{0.1, 0.1, "reserved-casual"},
		{0.5, 0.5, "neutral-neutral"},
		{0.7, 0.3, "neutral-neutral"}, // thresholds are strict
	}
	var tr RuleTranslator
	for _, tt := range tests {
		ctx := tr.Context(snapshotWithAxes(map[string]float64{
			state.AxisWarmth:    tt.warmth,
			state.AxisFormality: tt.formality,
		}))
		if ctx.Tone != tt.want {
			t.Errorf("tone(warmth=%g, formality=%g) = %q, want %q",
				tt.warmth, tt.formality, ctx.Tone, tt.want)
		}
	}
}

func TestContextVerbosity(t *testing.T) {
	tests := []struct {
		pref float64
		want Verbosity
	}{
		{0.1, VerbosityMinimal},
		{0.3, VerbosityNormal},
		{0.5, VerbosityNormal},
		{0.7, VerbosityNormal},
		{0.9, VerbosityDetailed},
	}
	var tr RuleTranslator
	for _, tt := range tests {
		ctx := tr.Context(snapshotWithAxes(map[string]float64{
			state.AxisVerbosityPreference: tt.pref,
		}))
		if ctx.Verbosity != tt.want {
			t.Errorf("verbosity(%g) = %q, want %q", tt.pref, ctx.Verbosity, tt.want)
		}
	}
}

func TestContextCombinedFlags(t *testing.T) {
	var tr RuleTranslator
	ctx := tr.Context(snapshotWithAxes(map[string]float64{
		state.AxisAnxietyLevel:       0.8,
		state.AxisUrgencySensitivity: 0.8,
	}))
	if !hasFlag(ctx, "high_anxiety") || !hasFlag(ctx, "high_urgency") {
		t.Errorf("flags = %v, want both high_anxiety and high_urgency", ctx.Flags)
	}
	if len(ctx.Guidelines) != 2 {
		t.Errorf("got %d guidelines, want 2", len(ctx.Guidelines))
	}
}
