package jsondb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"excursion-booking/config"
)

// Store keeps each collection in its own <name>.json file under the data
// directory. Every read-modify-write cycle runs under the store lock, so
// concurrent requests cannot lose updates to the backing files.
type Store struct {
	dir string
	mu  sync.RWMutex
}

func NewStore(cfg *config.StorageConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("storage dir is not configured")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: cfg.Dir}, nil
}

// Tx gives callbacks passed to Update access to the collections while the
// exclusive lock is held.
type Tx struct {
	s *Store
}

// View loads a collection under a shared lock. A missing file reads as an
// empty collection.
func (s *Store) View(name string, v interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(name, v)
}

// Update runs fn under the exclusive lock. Reads and writes made through
// the Tx observe and produce a single consistent state.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s})
}

func (tx *Tx) Read(name string, v interface{}) error {
	return tx.s.read(name, v)
}

func (tx *Tx) Write(name string, v interface{}) error {
	return tx.s.write(name, v)
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) read(name string, v interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		data = []byte("[]")
	} else if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", name, err)
	}
	return nil
}

// write replaces the collection file through a temp file and rename, so a
// concurrent reader never observes a partially written collection.
func (s *Store) write(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to chmod temp file for %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace collection %s: %w", name, err)
	}
	return nil
}
