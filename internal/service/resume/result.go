package resume

// SaveResumeResult carries the ids resolved by one aggregate save. The
// caller re-reads the full view if it needs more than ids.
type SaveResumeResult struct {
	ResumeID               int64
	CompanyID              *int64
	ParentCompanyID        *int64
	ContactCompanyID       *int64
	ContactParentCompanyID *int64
}
