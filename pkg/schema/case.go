// Package schema defines the data structures shared by the server, the SDK,
// and the command-line tools.
package schema

import "errors"

// ErrMissingFields is returned when a draft is submitted with one or more
// required fields empty.
var ErrMissingFields = errors.New("missing fields")

// CreatedAtFormat is the fixed-width millisecond timestamp layout used for
// CreatedAt. Fixed width keeps lexicographic order equal to chronological
// order, which both stores rely on when sorting.
const CreatedAtFormat = "2006-01-02T15:04:05.000Z07:00"

// Case is a single portfolio entry describing one legal matter.
//
// CreatedAt is an RFC 3339 UTC timestamp assigned once at creation and never
// touched by updates. ID is assigned by the store on insert.
type Case struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Summary   string `json:"summary"`
	Outcome   string `json:"outcome"`
	CreatedAt string `json:"createdAt"`
}

// CaseDraft carries the client-editable fields of a case. The same draft
// shape is used for both create and update; update replaces all four fields.
type CaseDraft struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Outcome  string `json:"outcome"`
}

// Validate checks that every field is non-empty.
func (d CaseDraft) Validate() error {
	if d.Title == "" || d.Category == "" || d.Summary == "" || d.Outcome == "" {
		return ErrMissingFields
	}
	return nil
}

// Apply copies the draft fields onto c, leaving ID and CreatedAt alone.
func (d CaseDraft) Apply(c *Case) {
	c.Title = d.Title
	c.Category = d.Category
	c.Summary = d.Summary
	c.Outcome = d.Outcome
}
