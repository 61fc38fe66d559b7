package domain

// RefKind tags an embedded sub-document as either creating a new row or
// updating an existing one. The two paths are explicit variants instead of
// a magic sentinel id, so every switch over a ref is exhaustively checked.
type RefKind uint8

const (
	// RefNew means "insert a new row and use its generated id".
	RefNew RefKind = iota + 1
	// RefExisting means "update row ID in place, trust the id".
	RefExisting
)

// CompanyRef is an embedded company sub-document inside a resume save.
// ID is meaningful only when Kind == RefExisting.
type CompanyRef struct {
	Kind RefKind
	ID   int64
	Data CompanyData
}

// ContactRef is an embedded contact sub-document inside a resume save.
// ID is meaningful only when Kind == RefExisting.
type ContactRef struct {
	Kind RefKind
	ID   int64
	Data ContactData
}

// CompanyRefFromID maps the wire id convention onto a tagged ref:
// 0 creates, a positive id updates, a negative id means "no company" (nil).
func CompanyRefFromID(id int64, data CompanyData) *CompanyRef {
	switch {
	case id == 0:
		return &CompanyRef{Kind: RefNew, Data: data}
	case id > 0:
		return &CompanyRef{Kind: RefExisting, ID: id, Data: data}
	default:
		return nil
	}
}

// ContactRefFromID maps the wire id convention onto a tagged ref,
// with the same rules as CompanyRefFromID.
func ContactRefFromID(id int64, data ContactData) *ContactRef {
	switch {
	case id == 0:
		return &ContactRef{Kind: RefNew, Data: data}
	case id > 0:
		return &ContactRef{Kind: RefExisting, ID: id, Data: data}
	default:
		return nil
	}
}
