// Package history implements the append-only resume status history using
// PostgreSQL. Rows are never updated or deleted by this package; the read
// ordering contract is `date DESC, id DESC`, so the last written entry wins
// on same-day duplicates.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres"
	"github.com/dstepanenko/applytrack-backend/internal/domain"
)

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const appendSQL = `
INSERT INTO resume_history (resume_id, state_id, date)
VALUES ($1, $2, $3)`

const lastStateSQL = `
SELECT state_id
FROM resume_history
WHERE resume_id = $1
ORDER BY date DESC, id DESC
LIMIT 1`

const listByResumeSQL = `
SELECT id, resume_id, state_id, date
FROM resume_history
WHERE resume_id = $1
ORDER BY date DESC, id DESC`

// Append adds one history entry. Day granularity: the time component of
// date is dropped by the column type.
func (r *Repo) Append(ctx context.Context, resumeID, stateID int64, date time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, appendSQL, resumeID, stateID, date); err != nil {
		return postgres.MapError(err, "history", resumeID)
	}

	return nil
}

// LastStateID returns the state of the most recent history entry, or nil
// when the resume has no history yet.
func (r *Repo) LastStateID(ctx context.Context, resumeID int64) (*int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var stateID int64
	err := querier.QueryRow(ctx, lastStateSQL, resumeID).Scan(&stateID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "history", resumeID)
	}

	return &stateID, nil
}

// ListByResume returns all history entries of a resume, most recent first.
// Returns an empty slice (not nil) when the resume has no history.
func (r *Repo) ListByResume(ctx context.Context, resumeID int64) ([]domain.HistoryEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByResumeSQL, resumeID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.ID, &e.ResumeID, &e.StateID, &e.Date); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	if entries == nil {
		entries = []domain.HistoryEntry{}
	}

	return entries, nil
}
