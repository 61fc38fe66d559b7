package resume

import (
	"strings"
	"time"

	"github.com/dstepanenko/applytrack-backend/internal/domain"
)

// SaveResumeInput is the aggregate save document: the resume fields plus
// embedded (not referenced) company/contact sub-documents, each nil when
// the resume carries no such reference. ResumeID 0 means "not yet
// persisted".
type SaveResumeInput struct {
	ResumeID int64
	Position string
	// StateID is a pointer so that state 0 stays distinguishable from an
	// absent state.
	StateID *int64
	Link    string
	Comment string

	Company                  *domain.CompanyRef
	RecruitingCompany        *domain.CompanyRef
	ContactCompany           *domain.ContactRef
	ContactRecruitingCompany *domain.ContactRef
}

// Validate checks the preconditions that must hold before any write.
func (in SaveResumeInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Position) == "" {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must not be empty"})
	}
	if in.StateID == nil {
		errs = append(errs, domain.FieldError{Field: "stateId", Message: "is required"})
	}
	if in.ResumeID < 0 {
		errs = append(errs, domain.FieldError{Field: "resumeId", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ChangeStatusInput is the companion status-only change: unlike the
// aggregate save it carries a caller-supplied date.
type ChangeStatusInput struct {
	ResumeID int64
	StateID  *int64
	Date     time.Time
}

// Validate checks the preconditions that must hold before any write.
func (in ChangeStatusInput) Validate() error {
	var errs []domain.FieldError

	if in.ResumeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "resumeId", Message: "is required"})
	}
	if in.StateID == nil {
		errs = append(errs, domain.FieldError{Field: "stateId", Message: "is required"})
	}
	if in.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
