// Package state defines the per-user behavioral state model: a snapshot of
// axis values with provenance and confidence, plus the axis registry.
package state

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Source records where a snapshot's axis values came from.
type Source string

const (
	SourceSelfReport Source = "self_report"
	SourceInferred   Source = "inferred"
	SourceMixed      Source = "mixed"
)

// ParseSource maps a wire value to a Source, defaulting to self_report for
// an empty string.
func ParseSource(s string) (Source, error) {
	switch s {
	case "":
		return SourceSelfReport, nil
	case string(SourceSelfReport), string(SourceInferred), string(SourceMixed):
		return Source(s), nil
	}
	return "", fmt.Errorf("unknown source %q", s)
}

// Snapshot is the latest known behavioral state for one user. Axis values
// live in [0,1]; 0.5 is the neutral default for every axis.
type Snapshot struct {
	ID         uuid.UUID          `json:"id"`
	UserID     string             `json:"user_id"`
	Source     Source             `json:"source"`
	Confidence float64            `json:"confidence"`
	Axes       map[string]float64 `json:"axes"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// Validate checks the snapshot against the axis registry.
func (s *Snapshot) Validate() error {
	if s.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if s.Confidence < 0 || s.Confidence > 1 {
		return fmt.Errorf("confidence %g out of range [0,1]", s.Confidence)
	}
	switch s.Source {
	case SourceSelfReport, SourceInferred, SourceMixed:
	default:
		return fmt.Errorf("unknown source %q", s.Source)
	}
	for name, value := range s.Axes {
		if !IsAxis(name) {
			return fmt.Errorf("unknown axis %q", name)
		}
		if value < 0 || value > 1 {
			return fmt.Errorf("axis %s value %g out of range [0,1]", name, value)
		}
	}
	return nil
}

// Clone returns a deep copy so stores and callers never alias axis maps.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Axes = make(map[string]float64, len(s.Axes))
	for k, v := range s.Axes {
		out.Axes[k] = v
	}
	return &out
}

// Axis returns the value for name, falling back to the registry default
// when the snapshot does not carry it.
func (s *Snapshot) Axis(name string) float64 {
	if v, ok := s.Axes[name]; ok {
		return v
	}
	return DefaultAxisValue
}
