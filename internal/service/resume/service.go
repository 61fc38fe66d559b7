// Package resume implements the resume aggregate: one save call resolves
// the embedded company/contact sub-documents to persisted rows, writes the
// resume referencing them, and records the status history, all inside a
// single transaction.
package resume

import (
	"context"
	"log/slog"
	"time"

	"github.com/dstepanenko/applytrack-backend/internal/domain"
)

type companyRepo interface {
	Insert(ctx context.Context, ownerID int64, data domain.CompanyData) (int64, error)
	Update(ctx context.Context, companyID int64, data domain.CompanyData) error
}

type contactRepo interface {
	Insert(ctx context.Context, ownerID, companyID int64, data domain.ContactData) (int64, error)
	Update(ctx context.Context, contactID, companyID int64, data domain.ContactData) error
}

type resumeRepo interface {
	Insert(ctx context.Context, ownerID int64, res domain.Resume) (int64, error)
	Update(ctx context.Context, ownerID int64, res domain.Resume) error
	UpdateState(ctx context.Context, ownerID, resumeID, stateID int64) error
	CurrentState(ctx context.Context, ownerID, resumeID int64) (int64, error)
	GetRow(ctx context.Context, ownerID, resumeID int64) (domain.ResumeRow, error)
	List(ctx context.Context, ownerID int64, filter domain.ResumeFilter) ([]domain.ResumeRow, error)
}

type historyRepo interface {
	Append(ctx context.Context, resumeID, stateID int64, date time.Time) error
	LastStateID(ctx context.Context, resumeID int64) (*int64, error)
	ListByResume(ctx context.Context, resumeID int64) ([]domain.HistoryEntry, error)
}

type stateRepo interface {
	List(ctx context.Context) ([]domain.State, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// timeNow is overridable in tests.
var timeNow = time.Now

// Service provides resume aggregate operations.
type Service struct {
	companies companyRepo
	contacts  contactRepo
	resumes   resumeRepo
	history   historyRepo
	states    stateRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new resume service.
func NewService(
	log *slog.Logger,
	companies companyRepo,
	contacts contactRepo,
	resumes resumeRepo,
	history historyRepo,
	states stateRepo,
	tx txManager,
) *Service {
	return &Service{
		companies: companies,
		contacts:  contacts,
		resumes:   resumes,
		history:   history,
		states:    states,
		tx:        tx,
		log:       log.With("service", "resume"),
	}
}

// today returns the server's current date at day granularity, UTC.
func today() time.Time {
	return timeNow().UTC().Truncate(24 * time.Hour)
}
