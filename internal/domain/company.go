package domain

// Company is an employer or recruiting agency referenced by resumes.
// A company may be referenced by many resumes; referencing never
// transfers ownership.
type Company struct {
	ID      int64
	OwnerID int64
	CompanyData
}

// CompanyData holds the mutable fields of a company row.
type CompanyData struct {
	Name        string
	City        string
	Street      string
	HouseNumber string
	PostalCode  string
	IsRecruiter bool
}

// CompanyView is the nested company shape inside a ResumeView.
type CompanyView struct {
	ID int64
	CompanyData
}

// Ref converts the view back into the reference the aggregate writer
// consumes. Saving an unchanged view must be a no-op, so this is the exact
// inverse of the read projection.
func (v *CompanyView) Ref() *CompanyRef {
	if v == nil {
		return nil
	}
	return &CompanyRef{Kind: RefExisting, ID: v.ID, Data: v.CompanyData}
}
