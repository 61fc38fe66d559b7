// Package contact implements the Contact repository using PostgreSQL.
// A contact always belongs to exactly one company at write time; both
// Insert and Update take the owning company id.
package contact

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres"
	"github.com/dstepanenko/applytrack-backend/internal/domain"
)

// Repo provides contact persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contact repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertContactSQL = `
INSERT INTO contacts (owner_id, company_id, salutation_id, given_name, family_name, email, title, suffix, phone, mobile)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

const updateContactSQL = `
UPDATE contacts
SET company_id = $2, salutation_id = $3, given_name = $4, family_name = $5,
    email = $6, title = $7, suffix = $8, phone = $9, mobile = $10
WHERE id = $1`

const getContactSQL = `
SELECT id, owner_id, company_id, salutation_id, given_name, family_name, email, title, suffix, phone, mobile
FROM contacts
WHERE id = $1`

const listByCompanySQL = `
SELECT id, owner_id, company_id, salutation_id, given_name, family_name, email, title, suffix, phone, mobile
FROM contacts
WHERE company_id = $1
ORDER BY family_name, given_name, id`

// Insert creates a new contact attached to companyID and returns the
// generated id.
func (r *Repo) Insert(ctx context.Context, ownerID, companyID int64, data domain.ContactData) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	err := querier.QueryRow(ctx, insertContactSQL,
		ownerID, companyID, data.SalutationID, data.GivenName, data.FamilyName,
		data.Email, data.Title, data.Suffix, data.Phone, data.Mobile,
	).Scan(&id)
	if err != nil {
		return 0, postgres.MapError(err, "contact", 0)
	}

	return id, nil
}

// Update overwrites all mutable fields of the contact row, including its
// company reference. Returns domain.ErrNotFound when the row does not exist.
func (r *Repo) Update(ctx context.Context, contactID, companyID int64, data domain.ContactData) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateContactSQL,
		contactID, companyID, data.SalutationID, data.GivenName, data.FamilyName,
		data.Email, data.Title, data.Suffix, data.Phone, data.Mobile,
	)
	if err != nil {
		return postgres.MapError(err, "contact", contactID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contact %d: %w", contactID, domain.ErrNotFound)
	}

	return nil
}

// GetByID returns a contact by primary key.
func (r *Repo) GetByID(ctx context.Context, contactID int64) (domain.Contact, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Contact
	err := querier.QueryRow(ctx, getContactSQL, contactID).Scan(
		&c.ID, &c.OwnerID, &c.CompanyID, &c.SalutationID, &c.GivenName, &c.FamilyName,
		&c.Email, &c.Title, &c.Suffix, &c.Phone, &c.Mobile,
	)
	if err != nil {
		return domain.Contact{}, postgres.MapError(err, "contact", contactID)
	}

	return c, nil
}

// ListByCompany returns all contacts of a company ordered by name.
// Returns an empty slice (not nil) when the company has no contacts.
func (r *Repo) ListByCompany(ctx context.Context, companyID int64) ([]domain.Contact, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByCompanySQL, companyID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(
			&c.ID, &c.OwnerID, &c.CompanyID, &c.SalutationID, &c.GivenName, &c.FamilyName,
			&c.Email, &c.Title, &c.Suffix, &c.Phone, &c.Mobile,
		); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}

	if contacts == nil {
		contacts = []domain.Contact{}
	}

	return contacts, nil
}
