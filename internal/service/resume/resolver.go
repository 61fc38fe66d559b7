package resume

import (
	"context"
	"fmt"
	"strings"

	"github.com/dstepanenko/applytrack-backend/internal/domain"
)

// resolveCompany turns an embedded company sub-document into a persisted
// row id: RefNew inserts a row owned by the actor, RefExisting overwrites
// the row in place. A nil ref resolves to nil with no side effect. Errors
// are never swallowed: any write failure aborts the whole aggregate save.
func (s *Service) resolveCompany(ctx context.Context, ref *domain.CompanyRef, actorID int64) (*int64, error) {
	if ref == nil {
		return nil, nil
	}

	switch ref.Kind {
	case domain.RefNew:
		id, err := s.companies.Insert(ctx, actorID, ref.Data)
		if err != nil {
			return nil, fmt.Errorf("insert company: %w", err)
		}
		return &id, nil
	case domain.RefExisting:
		if err := s.companies.Update(ctx, ref.ID, ref.Data); err != nil {
			return nil, fmt.Errorf("update company %d: %w", ref.ID, err)
		}
		id := ref.ID
		return &id, nil
	default:
		// Untagged ref: treat as "no company", same as a negative wire id.
		return nil, nil
	}
}

// resolveContact turns an embedded contact sub-document into a persisted
// row id. A contact cannot attach to an unresolved company, so a nil or
// non-positive companyID short-circuits to nil. A contact without a family
// name resolves to nil without writing.
func (s *Service) resolveContact(ctx context.Context, ref *domain.ContactRef, companyID *int64, actorID int64) (*int64, error) {
	if ref == nil || companyID == nil || *companyID <= 0 {
		return nil, nil
	}
	if strings.TrimSpace(ref.Data.FamilyName) == "" {
		return nil, nil
	}

	switch ref.Kind {
	case domain.RefNew:
		id, err := s.contacts.Insert(ctx, actorID, *companyID, ref.Data)
		if err != nil {
			return nil, fmt.Errorf("insert contact: %w", err)
		}
		return &id, nil
	case domain.RefExisting:
		if err := s.contacts.Update(ctx, ref.ID, *companyID, ref.Data); err != nil {
			return nil, fmt.Errorf("update contact %d: %w", ref.ID, err)
		}
		id := ref.ID
		return &id, nil
	default:
		return nil, nil
	}
}
