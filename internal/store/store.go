// Package store defines the case persistence contract and its
// implementations. Handlers receive a CaseStore at construction time so a
// fake or embedded store can stand in for Postgres in tests.
package store

import (
	"context"
	"errors"

	"github.com/advmanik/casefolio/pkg/schema"
)

// ErrCaseNotFound is returned when no case matches the requested id. An id
// that cannot be parsed as a store identifier maps here too, not to a
// separate bad-request error.
var ErrCaseNotFound = errors.New("case not found")

// CaseStore is the primary interface for reading and mutating cases.
type CaseStore interface {
	// List returns every case ordered by creation time, newest first.
	List(ctx context.Context) ([]schema.Case, error)
	// Insert stores a new case and assigns its identifier. The caller is
	// responsible for stamping CreatedAt beforehand.
	Insert(ctx context.Context, c schema.Case) (schema.Case, error)
	// Update replaces the four draft fields of the case with the given id,
	// preserving ID and CreatedAt, and returns the updated record.
	Update(ctx context.Context, id string, d schema.CaseDraft) (schema.Case, error)
	// Delete removes the case with the given id.
	Delete(ctx context.Context, id string) error
}

// Store combines the data operations with the lifecycle hooks the daemon
// uses at shutdown.
type Store interface {
	CaseStore

	// Wait blocks until background persistence has drained.
	Wait()
	// Close releases the underlying connection or file handles.
	Close()
}
