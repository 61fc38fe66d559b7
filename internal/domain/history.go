package domain

import "time"

// HistoryEntry is one append-only status-change record of a resume.
// Entries are read in `date DESC, id DESC` order ("last written wins" on
// same-day duplicates); no two adjacent entries of a resume may carry the
// same state.
type HistoryEntry struct {
	ID       int64
	ResumeID int64
	StateID  int64
	Date     time.Time
}
