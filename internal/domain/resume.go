package domain

import "time"

// Resume is a tracked job application. The four company/contact ids are
// nullable references resolved before the resume row is ever written, so a
// persisted resume never points at a row that does not exist.
type Resume struct {
	ID       int64
	OwnerID  int64
	Position string
	StateID  int64
	Link     string
	Comment  string

	CompanyID              *int64
	ParentCompanyID        *int64
	ContactCompanyID       *int64
	ContactParentCompanyID *int64

	Created time.Time
}

// ResumeView is the nested read shape: the resume with its sub-entities
// embedded, each nil when the resume does not reference one.
type ResumeView struct {
	ID       int64
	OwnerID  int64
	Position string
	StateID  int64
	State    string
	Link     string
	Comment  string
	Created  time.Time

	Company                  *CompanyView
	RecruitingCompany        *CompanyView
	ContactCompany           *ContactView
	ContactRecruitingCompany *ContactView
}

// ResumeRow is one denormalized row of the detail/list join
// (resume ⋈ state ⋈ company ⋈ parent company ⋈ contact ⋈ parent contact).
// Sub-entity columns are pointers because the joins are outer: a nil id
// means the resume carries no such reference. IsRecruiter columns keep the
// raw 0/1 storage encoding; the projector coerces them to bool.
type ResumeRow struct {
	ID       int64
	OwnerID  int64
	Position string
	StateID  int64
	State    string
	Link     string
	Comment  string
	Created  time.Time

	CompanyID          *int64
	CompanyName        *string
	CompanyCity        *string
	CompanyStreet      *string
	CompanyHouseNumber *string
	CompanyPostalCode  *string
	CompanyIsRecruiter *int16

	ParentCompanyID          *int64
	ParentCompanyName        *string
	ParentCompanyCity        *string
	ParentCompanyStreet      *string
	ParentCompanyHouseNumber *string
	ParentCompanyPostalCode  *string
	ParentCompanyIsRecruiter *int16

	ContactID           *int64
	ContactGivenName    *string
	ContactFamilyName   *string
	ContactEmail        *string
	ContactSalutationID *int64
	ContactTitle        *string
	ContactSuffix       *string
	ContactPhone        *string
	ContactMobile       *string

	ParentContactID           *int64
	ParentContactGivenName    *string
	ParentContactFamilyName   *string
	ParentContactEmail        *string
	ParentContactSalutationID *int64
	ParentContactTitle        *string
	ParentContactSuffix       *string
	ParentContactPhone        *string
	ParentContactMobile       *string
}
