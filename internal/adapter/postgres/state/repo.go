// Package state implements read access to the status and salutation
// catalogs. Both are small seeded tables; there are no write operations.
package state

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres"
	"github.com/dstepanenko/applytrack-backend/internal/domain"
)

// Repo provides catalog reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listStatesSQL = `
SELECT id, name
FROM states
ORDER BY id`

const listSalutationsSQL = `
SELECT id, name
FROM salutations
ORDER BY id`

// List returns all application states ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.State, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listStatesSQL)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	defer rows.Close()

	var states []domain.State
	for rows.Next() {
		var s domain.State
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		states = append(states, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate states: %w", err)
	}

	if states == nil {
		states = []domain.State{}
	}

	return states, nil
}

// ListSalutations returns all contact salutations ordered by id.
func (r *Repo) ListSalutations(ctx context.Context) ([]domain.Salutation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSalutationsSQL)
	if err != nil {
		return nil, fmt.Errorf("list salutations: %w", err)
	}
	defer rows.Close()

	var salutations []domain.Salutation
	for rows.Next() {
		var s domain.Salutation
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan salutation: %w", err)
		}
		salutations = append(salutations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate salutations: %w", err)
	}

	if salutations == nil {
		salutations = []domain.Salutation{}
	}

	return salutations, nil
}
