package state

// DefaultAxisValue is the neutral midpoint used when a snapshot does not
// carry a value for an axis.
const DefaultAxisValue = 0.5

// Axis names.
const (
	AxisCognitiveLoad       = "cognitive_load"
	AxisAnxietyLevel        = "anxiety_level"
	AxisDecisionFatigue     = "decision_fatigue"
	AxisWarmth              = "warmth"
	AxisVerbosityPreference = "verbosity_preference"
	AxisUrgencySensitivity  = "urgency_sensitivity"
	AxisFormality           = "formality"
)

// AxisInfo describes one registered axis.
type AxisInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Default     float64 `json:"default"`
}

var registry = []AxisInfo{
	{AxisCognitiveLoad, "How much mental capacity the user has available right now", DefaultAxisValue},
	{AxisAnxietyLevel, "Current stress or anxiety signalled by the user", DefaultAxisValue},
	{AxisDecisionFatigue, "How depleted the user is from making choices", DefaultAxisValue},
	{AxisWarmth, "Preferred interpersonal warmth of responses", DefaultAxisValue},
	{AxisVerbosityPreference, "Preferred response length, brief to detailed", DefaultAxisValue},
	{AxisUrgencySensitivity, "How time-pressured the user currently is", DefaultAxisValue},
	{AxisFormality, "Preferred register, casual to formal", DefaultAxisValue},
}

var registryByName = func() map[string]AxisInfo {
	m := make(map[string]AxisInfo, len(registry))
	for _, a := range registry {
		m[a.Name] = a
	}
	return m
}()

// Axes lists every registered axis.
func Axes() []AxisInfo {
	out := make([]AxisInfo, len(registry))
	copy(out, registry)
	return out
}

// IsAxis reports whether name is a registered axis.
func IsAxis(name string) bool {
	_, ok := registryByName[name]
	return ok
}
