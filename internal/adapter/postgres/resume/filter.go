package resume

import "github.com/dstepanenko/applytrack-backend/internal/domain"

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByCreated  = "created"
	sortByPosition = "position"
	sortByState    = "state"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func normalize(f *domain.ResumeFilter) {
	switch f.SortBy {
	case sortByCreated, sortByPosition, sortByState:
		// valid
	default:
		f.SortBy = sortByCreated
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}

// sortColumn returns the SQL column for the normalized SortBy value.
func sortColumn(f domain.ResumeFilter) string {
	switch f.SortBy {
	case sortByPosition:
		return "r.position"
	case sortByState:
		return "s.name"
	default:
		return "r.created_at"
	}
}
