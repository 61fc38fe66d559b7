package resume

import (
	"context"
	"fmt"

	"github.com/dstepanenko/applytrack-backend/internal/domain"
	"github.com/dstepanenko/applytrack-backend/pkg/ctxutil"
)

// ListResumes returns the actor's resumes matching the filter, projected
// into the nested view shape.
func (s *Service) ListResumes(ctx context.Context, filter domain.ResumeFilter) ([]*domain.ResumeView, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rows, err := s.resumes.List(ctx, actorID, filter)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}

	views := make([]*domain.ResumeView, len(rows))
	for i, row := range rows {
		views[i] = projectResumeView(row)
	}

	return views, nil
}
