package resume

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dstepanenko/applytrack-backend/internal/domain"
	"github.com/dstepanenko/applytrack-backend/pkg/ctxutil"
)

// ChangeStatus is the narrow status-only companion to SaveResume: it
// verifies the actor owns the resume, rejects a transition into the state
// the resume is already in with domain.ErrConflict, and otherwise updates
// the resume and appends one history entry with the caller-supplied date.
// The adjacent-duplicate history invariant is upheld by the conflict check.
func (s *Service) ChangeStatus(ctx context.Context, input ChangeStatusInput) error {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.resumes.CurrentState(txCtx, actorID, input.ResumeID)
		if err != nil {
			return fmt.Errorf("current state: %w", err)
		}

		if current == *input.StateID {
			return fmt.Errorf("state %d already set: %w", *input.StateID, domain.ErrConflict)
		}

		if err := s.resumes.UpdateState(txCtx, actorID, input.ResumeID, *input.StateID); err != nil {
			return fmt.Errorf("update state: %w", err)
		}

		date := input.Date.UTC().Truncate(24 * time.Hour)
		if err := s.history.Append(txCtx, input.ResumeID, *input.StateID, date); err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "resume status changed",
		slog.Int64("user_id", actorID),
		slog.Int64("resume_id", input.ResumeID),
		slog.Int64("state_id", *input.StateID),
	)

	return nil
}
