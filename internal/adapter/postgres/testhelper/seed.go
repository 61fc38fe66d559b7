package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedUser inserts a user row with a unique email and returns its id.
func SeedUser(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	email := fmt.Sprintf("user-%d@test.example", time.Now().UnixNano())

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, name) VALUES ($1, 'Test User') RETURNING id`,
		email,
	).Scan(&id)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return id
}

// SeedCompany inserts a company row owned by ownerID and returns its id.
func SeedCompany(t *testing.T, pool *pgxpool.Pool, ownerID int64, name string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO companies (owner_id, name) VALUES ($1, $2) RETURNING id`,
		ownerID, name,
	).Scan(&id)
	if err != nil {
		t.Fatalf("seed company: %v", err)
	}

	return id
}

// SeedContact inserts a contact row attached to companyID and returns its id.
func SeedContact(t *testing.T, pool *pgxpool.Pool, ownerID, companyID int64, familyName string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO contacts (owner_id, company_id, family_name) VALUES ($1, $2, $3) RETURNING id`,
		ownerID, companyID, familyName,
	).Scan(&id)
	if err != nil {
		t.Fatalf("seed contact: %v", err)
	}

	return id
}

// SeedResume inserts a bare resume row (no sub-entities) and returns its id.
func SeedResume(t *testing.T, pool *pgxpool.Pool, ownerID int64, position string, stateID int64) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO resumes (owner_id, position, state_id) VALUES ($1, $2, $3) RETURNING id`,
		ownerID, position, stateID,
	).Scan(&id)
	if err != nil {
		t.Fatalf("seed resume: %v", err)
	}

	return id
}
