// Package company implements the Company repository using PostgreSQL.
package company

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres"
	"github.com/dstepanenko/applytrack-backend/internal/domain"
)

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new company repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertCompanySQL = `
INSERT INTO companies (owner_id, name, city, street, house_number, postal_code, is_recruiter)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

const updateCompanySQL = `
UPDATE companies
SET name = $2, city = $3, street = $4, house_number = $5, postal_code = $6, is_recruiter = $7
WHERE id = $1`

const getCompanySQL = `
SELECT id, owner_id, name, city, street, house_number, postal_code, is_recruiter
FROM companies
WHERE id = $1`

const listByOwnerSQL = `
SELECT id, owner_id, name, city, street, house_number, postal_code, is_recruiter
FROM companies
WHERE owner_id = $1
ORDER BY name, id`

// Insert creates a new company owned by ownerID and returns the generated id.
func (r *Repo) Insert(ctx context.Context, ownerID int64, data domain.CompanyData) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	err := querier.QueryRow(ctx, insertCompanySQL,
		ownerID, data.Name, data.City, data.Street, data.HouseNumber, data.PostalCode,
		boolToFlag(data.IsRecruiter),
	).Scan(&id)
	if err != nil {
		return 0, postgres.MapError(err, "company", 0)
	}

	return id, nil
}

// Update overwrites all mutable fields of the company row. No ownership
// check beyond existence: referencing never transfers ownership.
// Returns domain.ErrNotFound when the row does not exist.
func (r *Repo) Update(ctx context.Context, companyID int64, data domain.CompanyData) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateCompanySQL,
		companyID, data.Name, data.City, data.Street, data.HouseNumber, data.PostalCode,
		boolToFlag(data.IsRecruiter),
	)
	if err != nil {
		return postgres.MapError(err, "company", companyID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("company %d: %w", companyID, domain.ErrNotFound)
	}

	return nil
}

// GetByID returns a company by primary key.
func (r *Repo) GetByID(ctx context.Context, companyID int64) (domain.Company, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		c    domain.Company
		flag int16
	)
	err := querier.QueryRow(ctx, getCompanySQL, companyID).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.City, &c.Street, &c.HouseNumber, &c.PostalCode, &flag,
	)
	if err != nil {
		return domain.Company{}, postgres.MapError(err, "company", companyID)
	}
	c.IsRecruiter = flag != 0

	return c, nil
}

// ListByOwner returns all companies owned by ownerID ordered by name.
// Returns an empty slice (not nil) when the owner has no companies.
func (r *Repo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Company, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var (
			c    domain.Company
			flag int16
		)
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.City, &c.Street, &c.HouseNumber, &c.PostalCode, &flag); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		c.IsRecruiter = flag != 0
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}

	if companies == nil {
		companies = []domain.Company{}
	}

	return companies, nil
}

// boolToFlag encodes the is_recruiter flag into its 0/1 storage form.
func boolToFlag(b bool) int16 {
	if b {
		return 1
	}
	return 0
}
