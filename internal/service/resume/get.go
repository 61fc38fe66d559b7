package resume

import (
	"context"
	"fmt"

	"github.com/dstepanenko/applytrack-backend/internal/domain"
	"github.com/dstepanenko/applytrack-backend/pkg/ctxutil"
)

// GetResume returns the nested view of one of the actor's resumes.
func (s *Service) GetResume(ctx context.Context, resumeID int64) (*domain.ResumeView, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	row, err := s.resumes.GetRow(ctx, actorID, resumeID)
	if err != nil {
		return nil, fmt.Errorf("get resume: %w", err)
	}

	return projectResumeView(row), nil
}

// ListHistory returns the status history of one of the actor's resumes,
// most recent first. Ownership is checked before the history is read.
func (s *Service) ListHistory(ctx context.Context, resumeID int64) ([]domain.HistoryEntry, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.resumes.CurrentState(ctx, actorID, resumeID); err != nil {
		return nil, fmt.Errorf("check resume: %w", err)
	}

	entries, err := s.history.ListByResume(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return entries, nil
}

// ListStates returns the application status catalog.
func (s *Service) ListStates(ctx context.Context) ([]domain.State, error) {
	states, err := s.states.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	return states, nil
}
