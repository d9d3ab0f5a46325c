package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/soundings-io/soundings/internal/state"
)

// PostgresStore persists snapshots in two tables:
//
//	user_state(user_id text primary key, snapshot_id uuid, source text,
//	           confidence double precision, axes jsonb, updated_at timestamptz)
//	state_history(id uuid primary key, user_id text, source text,
//	           confidence double precision, axes jsonb, updated_at timestamptz)
type PostgresStore struct {
	pool       *pgxpool.Pool
	maxHistory int
}

// NewPostgresStore connects and pings the database. maxHistory bounds
// retained history rows per user (MaxHistoryPerUser when <= 0).
func NewPostgresStore(ctx context.Context, databaseURL string, maxHistory int) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if maxHistory <= 0 {
		maxHistory = MaxHistoryPerUser
	}
	return &PostgresStore{pool: pool, maxHistory: maxHistory}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) UpsertLatest(ctx context.Context, snapshot *state.Snapshot) error {
	axesJSON, err := json.Marshal(snapshot.Axes)
	if err != nil {
		return fmt.Errorf("marshal axes: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO user_state (user_id, snapshot_id, source, confidence, axes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			snapshot_id = EXCLUDED.snapshot_id,
			source = EXCLUDED.source,
			confidence = EXCLUDED.confidence,
			axes = EXCLUDED.axes,
			updated_at = EXCLUDED.updated_at`,
		snapshot.UserID, snapshot.ID, snapshot.Source, snapshot.Confidence, axesJSON, snapshot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert latest: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO state_history (id, user_id, source, confidence, axes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		snapshot.ID, snapshot.UserID, snapshot.Source, snapshot.Confidence, axesJSON, snapshot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM state_history WHERE id IN (
			SELECT id FROM state_history
			WHERE user_id = $1
			ORDER BY updated_at DESC
			OFFSET $2
		)`,
		snapshot.UserID, s.maxHistory,
	)
	if err != nil {
		return fmt.Errorf("trim history: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) GetLatest(ctx context.Context, userID string) (*state.Snapshot, error) {
	snap := &state.Snapshot{}
	var axesJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT snapshot_id, user_id, source, confidence, axes, updated_at
		FROM user_state WHERE user_id = $1`, userID,
	).Scan(&snap.ID, &snap.UserID, &snap.Source, &snap.Confidence, &axesJSON, &snap.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(axesJSON, &snap.Axes); err != nil {
		return nil, fmt.Errorf("unmarshal axes: %w", err)
	}
	return snap, nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM user_state WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete latest: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM state_history WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	return tx.Commit(ctx)
}

func (s *PostgresStore) History(ctx context.Context, userID string, limit int) ([]*state.Snapshot, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, source, confidence, axes, updated_at
		FROM state_history
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*state.Snapshot
	for rows.Next() {
		snap := &state.Snapshot{}
		var axesJSON []byte
		if err := rows.Scan(&snap.ID, &snap.UserID, &snap.Source, &snap.Confidence, &axesJSON, &snap.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(axesJSON, &snap.Axes); err != nil {
			return nil, fmt.Errorf("unmarshal axes: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}
