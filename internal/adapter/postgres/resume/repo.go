// Package resume implements the Resume repository using PostgreSQL.
// Write queries are owner-scoped: an UPDATE matching zero rows means the
// resume does not exist or belongs to another user, reported as
// domain.ErrNotFound. Reads return the denormalized six-way join row the
// projector consumes.
package resume

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres"
	"github.com/dstepanenko/applytrack-backend/internal/domain"
)

// Repo provides resume persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new resume repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertResumeSQL = `
INSERT INTO resumes (owner_id, position, state_id, link, comment,
                     company_id, parent_company_id, contact_company_id, contact_parent_company_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

const updateResumeSQL = `
UPDATE resumes
SET position = $3, state_id = $4, link = $5, comment = $6,
    company_id = $7, parent_company_id = $8, contact_company_id = $9, contact_parent_company_id = $10
WHERE id = $1 AND owner_id = $2`

const updateStateSQL = `
UPDATE resumes
SET state_id = $3
WHERE id = $1 AND owner_id = $2`

const currentStateSQL = `
SELECT state_id
FROM resumes
WHERE id = $1 AND owner_id = $2`

// rowColumns is the column list of the denormalized resume row, shared by
// the detail and list queries so both scan through scanRow.
const rowColumns = `
    r.id, r.owner_id, r.position, r.state_id, s.name, r.link, r.comment, r.created_at,
    c.id, c.name, c.city, c.street, c.house_number, c.postal_code, c.is_recruiter,
    pc.id, pc.name, pc.city, pc.street, pc.house_number, pc.postal_code, pc.is_recruiter,
    ct.id, ct.given_name, ct.family_name, ct.email, ct.salutation_id, ct.title, ct.suffix, ct.phone, ct.mobile,
    pct.id, pct.given_name, pct.family_name, pct.email, pct.salutation_id, pct.title, pct.suffix, pct.phone, pct.mobile`

const rowJoins = `
FROM resumes r
JOIN states s ON s.id = r.state_id
LEFT JOIN companies c ON c.id = r.company_id
LEFT JOIN companies pc ON pc.id = r.parent_company_id
LEFT JOIN contacts ct ON ct.id = r.contact_company_id
LEFT JOIN contacts pct ON pct.id = r.contact_parent_company_id`

const getRowSQL = `SELECT` + rowColumns + rowJoins + `
WHERE r.id = $1 AND r.owner_id = $2`

// Insert creates a new resume row with the already-resolved sub-entity ids
// and returns the generated id. Children are resolved strictly before this
// runs, so every non-nil id is valid at insert time.
func (r *Repo) Insert(ctx context.Context, ownerID int64, res domain.Resume) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	err := querier.QueryRow(ctx, insertResumeSQL,
		ownerID, res.Position, res.StateID, res.Link, res.Comment,
		res.CompanyID, res.ParentCompanyID, res.ContactCompanyID, res.ContactParentCompanyID,
	).Scan(&id)
	if err != nil {
		return 0, postgres.MapError(err, "resume", 0)
	}

	return id, nil
}

// Update rewrites the resume row scoped by id AND owner.
// Returns domain.ErrNotFound when no row matched: the resume does not
// exist or is owned by someone else, and the two are indistinguishable on
// purpose.
func (r *Repo) Update(ctx context.Context, ownerID int64, res domain.Resume) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateResumeSQL,
		res.ID, ownerID, res.Position, res.StateID, res.Link, res.Comment,
		res.CompanyID, res.ParentCompanyID, res.ContactCompanyID, res.ContactParentCompanyID,
	)
	if err != nil {
		return postgres.MapError(err, "resume", res.ID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resume %d: %w", res.ID, domain.ErrNotFound)
	}

	return nil
}

// UpdateState sets only the resume's state, owner-scoped.
// Returns domain.ErrNotFound when no row matched.
func (r *Repo) UpdateState(ctx context.Context, ownerID, resumeID, stateID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateStateSQL, resumeID, ownerID, stateID)
	if err != nil {
		return postgres.MapError(err, "resume", resumeID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resume %d: %w", resumeID, domain.ErrNotFound)
	}

	return nil
}

// CurrentState returns the resume's current state id, owner-scoped.
// Returns domain.ErrNotFound when the resume does not exist or is owned by
// another user.
func (r *Repo) CurrentState(ctx context.Context, ownerID, resumeID int64) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var stateID int64
	if err := querier.QueryRow(ctx, currentStateSQL, resumeID, ownerID).Scan(&stateID); err != nil {
		return 0, postgres.MapError(err, "resume", resumeID)
	}

	return stateID, nil
}

// GetRow returns one denormalized resume row, owner-scoped.
func (r *Repo) GetRow(ctx context.Context, ownerID, resumeID int64) (domain.ResumeRow, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getRowSQL, resumeID, ownerID)
	if err != nil {
		return domain.ResumeRow{}, postgres.MapError(err, "resume", resumeID)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.ResumeRow{}, postgres.MapError(err, "resume", resumeID)
		}
		return domain.ResumeRow{}, fmt.Errorf("resume %d: %w", resumeID, domain.ErrNotFound)
	}

	row, err := scanRow(rows)
	if err != nil {
		return domain.ResumeRow{}, fmt.Errorf("scan resume row: %w", err)
	}

	return row, nil
}

// List returns the owner's denormalized resume rows matching the filter.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, ownerID int64, filter domain.ResumeFilter) ([]domain.ResumeRow, error) {
	normalize(&filter)

	builder := sq.Select().
		Column(sq.Expr(rowColumns)).
		From("resumes r").
		Join("states s ON s.id = r.state_id").
		LeftJoin("companies c ON c.id = r.company_id").
		LeftJoin("companies pc ON pc.id = r.parent_company_id").
		LeftJoin("contacts ct ON ct.id = r.contact_company_id").
		LeftJoin("contacts pct ON pct.id = r.contact_parent_company_id").
		Where(sq.Eq{"r.owner_id": ownerID}).
		OrderBy(sortColumn(filter) + " " + filter.SortOrder + ", r.id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		PlaceholderFormat(sq.Dollar)

	if filter.StateID != nil {
		builder = builder.Where(sq.Eq{"r.state_id": *filter.StateID})
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"r.position": pattern},
			sq.ILike{"c.name": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	var result []domain.ResumeRow
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resume row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resumes: %w", err)
	}

	if result == nil {
		result = []domain.ResumeRow{}
	}

	return result, nil
}

// scanRow scans one denormalized join row in rowColumns order.
func scanRow(rows pgx.Rows) (domain.ResumeRow, error) {
	var row domain.ResumeRow

	err := rows.Scan(
		&row.ID, &row.OwnerID, &row.Position, &row.StateID, &row.State, &row.Link, &row.Comment, &row.Created,
		&row.CompanyID, &row.CompanyName, &row.CompanyCity, &row.CompanyStreet,
		&row.CompanyHouseNumber, &row.CompanyPostalCode, &row.CompanyIsRecruiter,
		&row.ParentCompanyID, &row.ParentCompanyName, &row.ParentCompanyCity, &row.ParentCompanyStreet,
		&row.ParentCompanyHouseNumber, &row.ParentCompanyPostalCode, &row.ParentCompanyIsRecruiter,
		&row.ContactID, &row.ContactGivenName, &row.ContactFamilyName, &row.ContactEmail,
		&row.ContactSalutationID, &row.ContactTitle, &row.ContactSuffix, &row.ContactPhone, &row.ContactMobile,
		&row.ParentContactID, &row.ParentContactGivenName, &row.ParentContactFamilyName, &row.ParentContactEmail,
		&row.ParentContactSalutationID, &row.ParentContactTitle, &row.ParentContactSuffix,
		&row.ParentContactPhone, &row.ParentContactMobile,
	)
	if err != nil {
		return domain.ResumeRow{}, err
	}

	return row, nil
}
