package postgres_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres"
	companyrepo "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres/company"
	contactrepo "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres/contact"
	historyrepo "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres/history"
	resumerepo "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres/resume"
	staterepo "github.com/dstepanenko/applytrack-backend/internal/adapter/postgres/state"
	"github.com/dstepanenko/applytrack-backend/internal/adapter/postgres/testhelper"
	"github.com/dstepanenko/applytrack-backend/internal/domain"
	"github.com/dstepanenko/applytrack-backend/internal/service/resume"
	"github.com/dstepanenko/applytrack-backend/pkg/ctxutil"
)

// newService wires the real service over real repositories, so these tests
// exercise the full aggregate path down to SQL.
func newService(t *testing.T) (*resume.Service, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := resume.NewService(
		log,
		companyrepo.New(pool),
		contactrepo.New(pool),
		resumerepo.New(pool),
		historyrepo.New(pool),
		staterepo.New(pool),
		postgres.NewTxManager(pool),
	)

	return svc, pool
}

func stateID(id int64) *int64 { return &id }

func TestAggregate_SaveNewResume_FullGraph(t *testing.T) {
	t.Parallel()
	svc, pool := newService(t)

	userID := testhelper.SeedUser(t, pool)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	result, err := svc.SaveResume(ctx, resume.SaveResumeInput{
		Position: "Backend Engineer",
		StateID:  stateID(1),
		Link:     "https://example.com/job",
		Company: &domain.CompanyRef{
			Kind: domain.RefNew,
			Data: domain.CompanyData{Name: "ACME", City: "Berlin"},
		},
		ContactCompany: &domain.ContactRef{
			Kind: domain.RefNew,
			Data: domain.ContactData{GivenName: "Anna", FamilyName: "Miller"},
		},
	})
	if err != nil {
		t.Fatalf("SaveResume: unexpected error: %v", err)
	}
	if result.ResumeID <= 0 || result.CompanyID == nil || result.ContactCompanyID == nil {
		t.Fatalf("expected resolved ids, got %+v", result)
	}

	view, err := svc.GetResume(ctx, result.ResumeID)
	if err != nil {
		t.Fatalf("GetResume: unexpected error: %v", err)
	}
	if view.Company == nil || view.Company.Name != "ACME" {
		t.Errorf("expected embedded company ACME, got %+v", view.Company)
	}
	if view.ContactCompany == nil || view.ContactCompany.FamilyName != "Miller" {
		t.Errorf("expected embedded contact Miller, got %+v", view.ContactCompany)
	}
	if view.State != "Applied" {
		t.Errorf("expected state name Applied, got %s", view.State)
	}

	entries, err := svc.ListHistory(ctx, result.ResumeID)
	if err != nil {
		t.Fatalf("ListHistory: unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].StateID != 1 {
		t.Fatalf("expected one history entry for state 1, got %+v", entries)
	}
}

func TestAggregate_SaveIsAtomic(t *testing.T) {
	t.Parallel()
	svc, pool := newService(t)

	userID := testhelper.SeedUser(t, pool)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	// Updating a resume that does not exist fails after the new company has
	// already been inserted inside the same transaction.
	_, err := svc.SaveResume(ctx, resume.SaveResumeInput{
		ResumeID: 999999,
		Position: "Backend Engineer",
		StateID:  stateID(1),
		Company: &domain.CompanyRef{
			Kind: domain.RefNew,
			Data: domain.CompanyData{Name: "Orphaned Inc"},
		},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}

	// The company insert must have been rolled back.
	var count int
	if err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM companies WHERE owner_id = $1 AND name = 'Orphaned Inc'`, userID,
	).Scan(&count); err != nil {
		t.Fatalf("count companies: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rolled back company insert, found %d rows", count)
	}
}

func TestAggregate_ResaveSameState_NoNewHistory(t *testing.T) {
	t.Parallel()
	svc, pool := newService(t)

	userID := testhelper.SeedUser(t, pool)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	result, err := svc.SaveResume(ctx, resume.SaveResumeInput{
		Position: "Backend Engineer",
		StateID:  stateID(1),
	})
	if err != nil {
		t.Fatalf("SaveResume: unexpected error: %v", err)
	}

	// Second save with the same state must not append a duplicate entry.
	_, err = svc.SaveResume(ctx, resume.SaveResumeInput{
		ResumeID: result.ResumeID,
		Position: "Backend Engineer (edited)",
		StateID:  stateID(1),
	})
	if err != nil {
		t.Fatalf("second SaveResume: unexpected error: %v", err)
	}

	entries, err := svc.ListHistory(ctx, result.ResumeID)
	if err != nil {
		t.Fatalf("ListHistory: unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 history entry after idempotent re-save, got %d", len(entries))
	}

	// A save that moves the state appends.
	_, err = svc.SaveResume(ctx, resume.SaveResumeInput{
		ResumeID: result.ResumeID,
		Position: "Backend Engineer (edited)",
		StateID:  stateID(2),
	})
	if err != nil {
		t.Fatalf("third SaveResume: unexpected error: %v", err)
	}

	entries, err = svc.ListHistory(ctx, result.ResumeID)
	if err != nil {
		t.Fatalf("ListHistory: unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[0].StateID != 2 {
		t.Fatalf("expected newest entry for state 2, got %+v", entries)
	}
}

func TestAggregate_ChangeStatus(t *testing.T) {
	t.Parallel()
	svc, pool := newService(t)

	userID := testhelper.SeedUser(t, pool)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	result, err := svc.SaveResume(ctx, resume.SaveResumeInput{
		Position: "Backend Engineer",
		StateID:  stateID(1),
	})
	if err != nil {
		t.Fatalf("SaveResume: unexpected error: %v", err)
	}

	date := time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)
	err = svc.ChangeStatus(ctx, resume.ChangeStatusInput{
		ResumeID: result.ResumeID,
		StateID:  stateID(2),
		Date:     date,
	})
	if err != nil {
		t.Fatalf("ChangeStatus: unexpected error: %v", err)
	}

	// Same state again conflicts.
	err = svc.ChangeStatus(ctx, resume.ChangeStatusInput{
		ResumeID: result.ResumeID,
		StateID:  stateID(2),
		Date:     date,
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got: %v", err)
	}

	entries, err := svc.ListHistory(ctx, result.ResumeID)
	if err != nil {
		t.Fatalf("ListHistory: unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(entries))
	}
	// Caller-supplied date is stored at day granularity.
	if !entries[0].Date.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected date 2026-05-01, got %v", entries[0].Date)
	}
}

func TestAggregate_OwnershipIsolation(t *testing.T) {
	t.Parallel()
	svc, pool := newService(t)

	ownerID := testhelper.SeedUser(t, pool)
	strangerID := testhelper.SeedUser(t, pool)

	ownerCtx := ctxutil.WithUserID(context.Background(), ownerID)
	strangerCtx := ctxutil.WithUserID(context.Background(), strangerID)

	result, err := svc.SaveResume(ownerCtx, resume.SaveResumeInput{
		Position: "Backend Engineer",
		StateID:  stateID(1),
	})
	if err != nil {
		t.Fatalf("SaveResume: unexpected error: %v", err)
	}

	if _, err := svc.GetResume(strangerCtx, result.ResumeID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stranger GetResume, got: %v", err)
	}
	if _, err := svc.ListHistory(strangerCtx, result.ResumeID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stranger ListHistory, got: %v", err)
	}
	err = svc.ChangeStatus(strangerCtx, resume.ChangeStatusInput{
		ResumeID: result.ResumeID,
		StateID:  stateID(2),
		Date:     time.Now(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stranger ChangeStatus, got: %v", err)
	}
}
