// Package store persists per-user state snapshots. Two backends exist:
// an in-memory store for single-process and test use, and a Postgres
// store for deployments.
package store

import (
	"context"

	"github.com/soundings-io/soundings/internal/state"
)

// Store is the snapshot persistence contract. GetLatest returns (nil, nil)
// when no state exists for the user; Delete is idempotent; History returns
// snapshots most-recent-first, up to limit.
type Store interface {
	UpsertLatest(ctx context.Context, snapshot *state.Snapshot) error
	GetLatest(ctx context.Context, userID string) (*state.Snapshot, error)
	Delete(ctx context.Context, userID string) error
	History(ctx context.Context, userID string, limit int) ([]*state.Snapshot, error)
	Ping(ctx context.Context) error
	Close() error
}

// DefaultHistoryLimit caps history reads when the caller passes limit <= 0.
const DefaultHistoryLimit = 20

// MaxHistoryPerUser bounds retained history per user.
const MaxHistoryPerUser = 100
