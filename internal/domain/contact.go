package domain

// Contact is a person attached to exactly one company.
type Contact struct {
	ID        int64
	OwnerID   int64
	CompanyID int64
	ContactData
}

// ContactData holds the mutable fields of a contact row.
// SalutationID is never nullable in storage; an absent salutation is 0.
type ContactData struct {
	GivenName    string
	FamilyName   string
	Email        string
	SalutationID int64
	Title        *string
	Suffix       *string
	Phone        *string
	Mobile       *string
}

// ContactView is the nested contact shape inside a ResumeView.
type ContactView struct {
	ID        int64
	CompanyID int64
	ContactData
}

// Ref converts the view back into the reference the aggregate writer
// consumes, mirroring CompanyView.Ref.
func (v *ContactView) Ref() *ContactRef {
	if v == nil {
		return nil
	}
	return &ContactRef{Kind: RefExisting, ID: v.ID, Data: v.ContactData}
}
