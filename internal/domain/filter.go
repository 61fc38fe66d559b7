package domain

// ResumeFilter defines parameters for listing a user's resumes.
type ResumeFilter struct {
	// StateID filters resumes currently in the given state.
	StateID *int64

	// Search performs ILIKE '%...%' on position and company name.
	// nil or empty string means no text filter.
	Search *string

	// SortBy determines the sort column: "created", "position", "state".
	// Default: "created".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the maximum number of resumes to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of resumes to skip.
	Offset int
}
