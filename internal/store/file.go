package store

import (
	"context"
	"sort"
	"sync"

	"github.com/advmanik/casefolio/pkg/schema"
	"github.com/google/uuid"
)

// FileStore is a thread-safe in-memory case collection with JSON snapshots
// on disk. It backs local development and tests; production deployments use
// the Postgres store.
type FileStore struct {
	mu        sync.RWMutex
	name      string
	cases     map[string]schema.Case
	persister *Persistence
	wg        sync.WaitGroup
}

// NewFileStore initializes a store over existing data. A nil persister
// keeps the store purely in memory, which is what tests want.
func NewFileStore(name string, initial map[string]schema.Case, p *Persistence) *FileStore {
	if initial == nil {
		initial = make(map[string]schema.Case)
	}
	return &FileStore{name: name, cases: initial, persister: p}
}

// OpenFileStore loads (or creates) the snapshot file under dataDir and
// returns a store over its contents.
func OpenFileStore(dataDir, name string) (*FileStore, error) {
	p, err := NewPersistence(dataDir)
	if err != nil {
		return nil, err
	}
	initial, err := p.Load(name)
	if err != nil {
		return nil, err
	}
	return NewFileStore(name, initial, p), nil
}

func (s *FileStore) List(ctx context.Context) ([]schema.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]schema.Case, 0, len(s.cases))
	for _, c := range s.cases {
		list = append(list, c)
	}
	// Fixed-width UTC timestamps compare lexicographically in
	// chronological order.
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt > list[j].CreatedAt
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (s *FileStore) Insert(ctx context.Context, c schema.Case) (schema.Case, error) {
	s.mu.Lock()
	c.ID = uuid.NewString()
	s.cases[c.ID] = c
	snapshot := s.copyCases()
	s.mu.Unlock()

	s.persist(snapshot)
	return c, nil
}

func (s *FileStore) Update(ctx context.Context, id string, d schema.CaseDraft) (schema.Case, error) {
	s.mu.Lock()
	c, ok := s.cases[id]
	if !ok {
		s.mu.Unlock()
		return schema.Case{}, ErrCaseNotFound
	}
	d.Apply(&c)
	s.cases[id] = c
	snapshot := s.copyCases()
	s.mu.Unlock()

	s.persist(snapshot)
	return c, nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	if _, ok := s.cases[id]; !ok {
		s.mu.Unlock()
		return ErrCaseNotFound
	}
	delete(s.cases, id)
	snapshot := s.copyCases()
	s.mu.Unlock()

	s.persist(snapshot)
	return nil
}

// copyCases creates a copy of the collection safe to hand to the background
// writer. It MUST be called while holding s.mu.
func (s *FileStore) copyCases() map[string]schema.Case {
	snapshot := make(map[string]schema.Case, len(s.cases))
	for id, c := range s.cases {
		snapshot[id] = c
	}
	return snapshot
}

// persist saves a snapshot in the background so mutations do not wait on
// disk. Wait drains these writers before shutdown.
func (s *FileStore) persist(snapshot map[string]schema.Case) {
	if s.persister == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.persister.Save(s.name, snapshot)
	}()
}

// Wait blocks until all background persistence tasks complete.
func (s *FileStore) Wait() {
	s.wg.Wait()
}

// Close flushes pending snapshots. There is no file handle held open.
func (s *FileStore) Close() {
	s.Wait()
}
