package events

import "time"

// StateUpdatedEvent announces a new latest snapshot for a user.
type StateUpdatedEvent struct {
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	SnapshotID string    `json:"snapshot_id"`
	Source     string    `json:"source"`
	Confidence float64   `json:"confidence"`
	AxisCount  int       `json:"axis_count"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StateDeletedEvent announces removal of all state for a user.
type StateDeletedEvent struct {
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// InferCompletedEvent summarizes one inference call. Message text is never
// included.
type InferCompletedEvent struct {
	EventID       string    `json:"event_id"`
	UserID        string    `json:"user_id,omitempty"`
	EstimateCount int       `json:"estimate_count"`
	WordCount     int       `json:"word_count"`
	Timestamp     time.Time `json:"timestamp"`
}
