package resume

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dstepanenko/applytrack-backend/internal/domain"
	"github.com/dstepanenko/applytrack-backend/pkg/ctxutil"
)

// SaveResume persists the whole aggregate atomically: it resolves the
// company, the recruiting company and each one's contact to row ids,
// inserts or updates the resume row referencing them, and records the
// status history. Any failure rolls back every write of the call.
//
// Children resolve strictly before the resume row is written because its
// foreign keys must be valid at write time; history records last because
// it needs the resume id, which for a new resume only exists after the
// insert.
func (s *Service) SaveResume(ctx context.Context, input SaveResumeInput) (*SaveResumeResult, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	isNew := input.ResumeID == 0

	var result *SaveResumeResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		companyID, err := s.resolveCompany(txCtx, input.Company, actorID)
		if err != nil {
			return err
		}

		parentCompanyID, err := s.resolveCompany(txCtx, input.RecruitingCompany, actorID)
		if err != nil {
			return err
		}

		contactCompanyID, err := s.resolveContact(txCtx, input.ContactCompany, companyID, actorID)
		if err != nil {
			return err
		}

		contactParentCompanyID, err := s.resolveContact(txCtx, input.ContactRecruitingCompany, parentCompanyID, actorID)
		if err != nil {
			return err
		}

		res := domain.Resume{
			ID:                     input.ResumeID,
			OwnerID:                actorID,
			Position:               strings.TrimSpace(input.Position),
			StateID:                *input.StateID,
			Link:                   input.Link,
			Comment:                input.Comment,
			CompanyID:              companyID,
			ParentCompanyID:        parentCompanyID,
			ContactCompanyID:       contactCompanyID,
			ContactParentCompanyID: contactParentCompanyID,
		}

		resumeID := input.ResumeID
		if isNew {
			resumeID, err = s.resumes.Insert(txCtx, actorID, res)
			if err != nil {
				return fmt.Errorf("insert resume: %w", err)
			}
		} else {
			// Owner-scoped: zero rows means not found or foreign, and the
			// resolutions above are rolled back with everything else.
			if err := s.resumes.Update(txCtx, actorID, res); err != nil {
				return fmt.Errorf("update resume %d: %w", input.ResumeID, err)
			}
		}

		if err := s.recordTransition(txCtx, resumeID, *input.StateID, isNew); err != nil {
			return err
		}

		result = &SaveResumeResult{
			ResumeID:               resumeID,
			CompanyID:              companyID,
			ParentCompanyID:        parentCompanyID,
			ContactCompanyID:       contactCompanyID,
			ContactParentCompanyID: contactParentCompanyID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "resume saved",
		slog.Int64("user_id", actorID),
		slog.Int64("resume_id", result.ResumeID),
		slog.Bool("created", isNew),
	)

	return result, nil
}
