package resume

import "github.com/dstepanenko/applytrack-backend/internal/domain"

// projectResumeView assembles one denormalized join row into the nested
// view shape. Pure function, no I/O. Each sub-entity is nil when its id
// column is NULL. This is the exact inverse of the Ref() mapping the
// writer consumes, so a read-then-save round trip changes nothing.
func projectResumeView(row domain.ResumeRow) *domain.ResumeView {
	return &domain.ResumeView{
		ID:       row.ID,
		OwnerID:  row.OwnerID,
		Position: row.Position,
		StateID:  row.StateID,
		State:    row.State,
		Link:     row.Link,
		Comment:  row.Comment,
		Created:  row.Created,

		Company: projectCompany(row.CompanyID, row.CompanyName, row.CompanyCity,
			row.CompanyStreet, row.CompanyHouseNumber, row.CompanyPostalCode, row.CompanyIsRecruiter),
		RecruitingCompany: projectCompany(row.ParentCompanyID, row.ParentCompanyName, row.ParentCompanyCity,
			row.ParentCompanyStreet, row.ParentCompanyHouseNumber, row.ParentCompanyPostalCode, row.ParentCompanyIsRecruiter),

		ContactCompany: projectContact(row.ContactID, row.CompanyID, row.ContactGivenName, row.ContactFamilyName,
			row.ContactEmail, row.ContactSalutationID, row.ContactTitle, row.ContactSuffix, row.ContactPhone, row.ContactMobile),
		ContactRecruitingCompany: projectContact(row.ParentContactID, row.ParentCompanyID, row.ParentContactGivenName,
			row.ParentContactFamilyName, row.ParentContactEmail, row.ParentContactSalutationID,
			row.ParentContactTitle, row.ParentContactSuffix, row.ParentContactPhone, row.ParentContactMobile),
	}
}

func projectCompany(id *int64, name, city, street, houseNumber, postalCode *string, isRecruiter *int16) *domain.CompanyView {
	if id == nil {
		return nil
	}
	return &domain.CompanyView{
		ID: *id,
		CompanyData: domain.CompanyData{
			Name:        deref(name),
			City:        deref(city),
			Street:      deref(street),
			HouseNumber: deref(houseNumber),
			PostalCode:  deref(postalCode),
			IsRecruiter: isRecruiter != nil && *isRecruiter != 0,
		},
	}
}

func projectContact(id, companyID *int64, givenName, familyName, email *string, salutationID *int64, title, suffix, phone, mobile *string) *domain.ContactView {
	if id == nil {
		return nil
	}

	var salutation int64
	if salutationID != nil {
		salutation = *salutationID
	}

	v := &domain.ContactView{
		ID: *id,
		ContactData: domain.ContactData{
			GivenName:    deref(givenName),
			FamilyName:   deref(familyName),
			Email:        deref(email),
			SalutationID: salutation,
			Title:        title,
			Suffix:       suffix,
			Phone:        phone,
			Mobile:       mobile,
		},
	}
	if companyID != nil {
		v.CompanyID = *companyID
	}
	return v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
