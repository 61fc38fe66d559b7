package resume

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstepanenko/applytrack-backend/internal/domain"
)

func strPtr(s string) *string { return &s }

func int16Ptr(v int16) *int16 { return &v }

func fullRow() domain.ResumeRow {
	companyID := int64(101)
	parentID := int64(102)
	contactID := int64(201)
	parentContactID := int64(202)
	salutation := int64(1)

	return domain.ResumeRow{
		ID:       301,
		OwnerID:  7,
		Position: "Backend Engineer",
		StateID:  1,
		State:    "Applied",
		Link:     "https://example.com/job",
		Comment:  "referral",
		Created:  time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),

		CompanyID:          &companyID,
		CompanyName:        strPtr("ACME"),
		CompanyCity:        strPtr("Berlin"),
		CompanyStreet:      strPtr("Hauptstr."),
		CompanyHouseNumber: strPtr("12a"),
		CompanyPostalCode:  strPtr("10115"),
		CompanyIsRecruiter: int16Ptr(0),

		ParentCompanyID:          &parentID,
		ParentCompanyName:        strPtr("HeadHunters"),
		ParentCompanyIsRecruiter: int16Ptr(1),

		ContactID:           &contactID,
		ContactGivenName:    strPtr("Anna"),
		ContactFamilyName:   strPtr("Miller"),
		ContactEmail:        strPtr("anna@acme.example"),
		ContactSalutationID: &salutation,
		ContactPhone:        strPtr("+49 30 1234"),

		ParentContactID:         &parentContactID,
		ParentContactFamilyName: strPtr("Schmidt"),
	}
}

func TestProjectResumeView_FullRow(t *testing.T) {
	t.Parallel()

	view := projectResumeView(fullRow())

	assert.Equal(t, int64(301), view.ID)
	assert.Equal(t, "Applied", view.State)

	require.NotNil(t, view.Company)
	assert.Equal(t, int64(101), view.Company.ID)
	assert.Equal(t, "ACME", view.Company.Name)
	assert.Equal(t, "Berlin", view.Company.City)
	assert.False(t, view.Company.IsRecruiter)

	require.NotNil(t, view.RecruitingCompany)
	assert.Equal(t, int64(102), view.RecruitingCompany.ID)
	assert.True(t, view.RecruitingCompany.IsRecruiter)

	require.NotNil(t, view.ContactCompany)
	assert.Equal(t, int64(201), view.ContactCompany.ID)
	assert.Equal(t, int64(101), view.ContactCompany.CompanyID)
	assert.Equal(t, "Miller", view.ContactCompany.FamilyName)
	assert.Equal(t, int64(1), view.ContactCompany.SalutationID)
	require.NotNil(t, view.ContactCompany.Phone)
	assert.Equal(t, "+49 30 1234", *view.ContactCompany.Phone)
	assert.Nil(t, view.ContactCompany.Title)

	require.NotNil(t, view.ContactRecruitingCompany)
	assert.Equal(t, int64(102), view.ContactRecruitingCompany.CompanyID)
}

func TestProjectResumeView_BareRow(t *testing.T) {
	t.Parallel()

	view := projectResumeView(domain.ResumeRow{
		ID:       301,
		OwnerID:  7,
		Position: "Backend Engineer",
		StateID:  0,
		State:    "Draft",
	})

	assert.Nil(t, view.Company)
	assert.Nil(t, view.RecruitingCompany)
	assert.Nil(t, view.ContactCompany)
	assert.Nil(t, view.ContactRecruitingCompany)
}

func TestProjectResumeView_NullRecruiterFlagIsFalse(t *testing.T) {
	t.Parallel()

	companyID := int64(101)
	view := projectResumeView(domain.ResumeRow{
		ID:        301,
		CompanyID: &companyID,
		// Name and is_recruiter columns NULL.
	})

	require.NotNil(t, view.Company)
	assert.Equal(t, "", view.Company.Name)
	assert.False(t, view.Company.IsRecruiter)
}

func TestProjectResumeView_RoundTripThroughRefs(t *testing.T) {
	t.Parallel()

	// Projecting a row and converting the sub-views back to refs yields
	// RefExisting refs carrying the same ids and data, so a read-then-save
	// round trip re-targets exactly the same rows.
	view := projectResumeView(fullRow())

	companyRef := view.Company.Ref()
	require.NotNil(t, companyRef)
	assert.Equal(t, domain.RefExisting, companyRef.Kind)
	assert.Equal(t, int64(101), companyRef.ID)
	assert.Equal(t, "ACME", companyRef.Data.Name)

	contactRef := view.ContactCompany.Ref()
	require.NotNil(t, contactRef)
	assert.Equal(t, domain.RefExisting, contactRef.Kind)
	assert.Equal(t, int64(201), contactRef.ID)

	var noCompany *domain.CompanyView
	assert.Nil(t, noCompany.Ref())
}
