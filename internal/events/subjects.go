package events

const (
	StreamName   = "SOUNDINGS_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectStateUpdated(userID string) string { return "soundings.state." + userID + ".updated" }
func SubjectStateDeleted(userID string) string { return "soundings.state." + userID + ".deleted" }

func SubjectInferCompleted() string { return "soundings.infer.completed" }
