package domain

// State is one entry of the application status catalog.
// State 0 ("draft") is a valid state, not an absent value.
type State struct {
	ID   int64
	Name string
}

// Salutation is one entry of the contact salutation catalog.
// Salutation 0 is the empty salutation contacts default to.
type Salutation struct {
	ID   int64
	Name string
}
