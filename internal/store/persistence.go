package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/advmanik/casefolio/pkg/schema"
)

// Persistence handles the disk I/O for the FileStore. The whole collection
// is small enough to snapshot on every mutation.
type Persistence struct {
	DataDir string
	mu      sync.Mutex // Protects concurrent writes to the filesystem
}

// NewPersistence initializes a persistence handler, creating the data
// directory if needed.
func NewPersistence(dir string) (*Persistence, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Persistence{DataDir: dir}, nil
}

// Save writes the case collection to <name>.json atomically: the snapshot
// goes to a temporary file first and is then renamed over the previous one,
// so a crash leaves either the old file or the new one, never a torn write.
func (p *Persistence) Save(name string, cases map[string]schema.Case) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	filePath := filepath.Join(p.DataDir, fmt.Sprintf("%s.json", name))
	tempPath := filePath + ".tmp"

	bytes, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tempPath, bytes, 0644); err != nil {
		return err
	}

	return os.Rename(tempPath, filePath)
}

// Load reads the case collection from <name>.json. A missing file is not an
// error; it yields an empty collection.
func (p *Persistence) Load(name string) (map[string]schema.Case, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	content, err := os.ReadFile(filepath.Join(p.DataDir, fmt.Sprintf("%s.json", name)))
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]schema.Case), nil
	}
	if err != nil {
		return nil, err
	}

	cases := make(map[string]schema.Case)
	if err := json.Unmarshal(content, &cases); err != nil {
		return nil, fmt.Errorf("corrupt snapshot %s.json: %w", name, err)
	}
	return cases, nil
}
