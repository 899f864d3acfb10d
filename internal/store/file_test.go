package store

import (
	"context"
	"testing"

	"github.com/advmanik/casefolio/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft(title string) schema.CaseDraft {
	return schema.CaseDraft{Title: title, Category: "সিভিল", Summary: "s", Outcome: "o"}
}

func insert(t *testing.T, s *FileStore, title, createdAt string) schema.Case {
	t.Helper()
	c := schema.Case{CreatedAt: createdAt}
	draft(title).Apply(&c)
	inserted, err := s.Insert(context.Background(), c)
	require.NoError(t, err)
	require.NotEmpty(t, inserted.ID)
	return inserted
}

func TestFileStoreListNewestFirst(t *testing.T) {
	s := NewFileStore("cases", nil, nil)
	insert(t, s, "oldest", "2025-01-01T00:00:00.000Z")
	insert(t, s, "newest", "2025-03-01T00:00:00.000Z")
	insert(t, s, "middle", "2025-02-01T00:00:00.000Z")

	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "newest", list[0].Title)
	assert.Equal(t, "middle", list[1].Title)
	assert.Equal(t, "oldest", list[2].Title)
}

func TestFileStoreUpdatePreservesIDAndCreatedAt(t *testing.T) {
	s := NewFileStore("cases", nil, nil)
	orig := insert(t, s, "before", "2025-01-01T00:00:00.000Z")

	updated, err := s.Update(context.Background(), orig.ID, draft("after"))
	require.NoError(t, err)
	assert.Equal(t, orig.ID, updated.ID)
	assert.Equal(t, orig.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "after", updated.Title)

	// Applying the same payload again changes nothing further.
	again, err := s.Update(context.Background(), orig.ID, draft("after"))
	require.NoError(t, err)
	assert.Equal(t, updated, again)
}

func TestFileStoreUpdateMissing(t *testing.T) {
	s := NewFileStore("cases", nil, nil)

	_, err := s.Update(context.Background(), "no-such-id", draft("x"))
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestFileStoreDelete(t *testing.T) {
	s := NewFileStore("cases", nil, nil)
	c := insert(t, s, "doomed", "2025-01-01T00:00:00.000Z")

	require.NoError(t, s.Delete(context.Background(), c.ID))

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, s.Delete(context.Background(), c.ID), ErrCaseNotFound)
}

func TestFileStorePersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenFileStore(dir, "cases")
	require.NoError(t, err)
	c := insert(t, s, "kept", "2025-01-01T00:00:00.000Z")
	s.Wait()

	reopened, err := OpenFileStore(dir, "cases")
	require.NoError(t, err)
	list, err := reopened.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c, list[0])
}

func TestPersistenceLoadMissingFile(t *testing.T) {
	p, err := NewPersistence(t.TempDir())
	require.NoError(t, err)

	cases, err := p.Load("cases")
	require.NoError(t, err)
	assert.Empty(t, cases)
}
