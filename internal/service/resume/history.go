package resume

import (
	"context"
	"fmt"
)

// recordTransition appends one history entry dated today (server date, day
// granularity). For a new resume the entry is always written; for an
// existing one it is written only when the most recent recorded state
// differs from stateID, so a save that does not change the effective state
// leaves the history untouched.
func (s *Service) recordTransition(ctx context.Context, resumeID, stateID int64, isNew bool) error {
	if isNew {
		if err := s.history.Append(ctx, resumeID, stateID, today()); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	}

	last, err := s.history.LastStateID(ctx, resumeID)
	if err != nil {
		return fmt.Errorf("last history state: %w", err)
	}
	if last != nil && *last == stateID {
		return nil
	}

	if err := s.history.Append(ctx, resumeID, stateID, today()); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}
