// Package state provides the durable snapshot medium shared by the
// filesystem and environment stores.
package state

import "os"

// Store abstracts where a snapshot lives. A nil Store keeps the owning
// component purely in-memory.
type Store interface {
	// Load returns the raw snapshot bytes. found is false when no
	// snapshot has been written yet.
	Load() (data []byte, found bool, err error)
	// Save replaces the snapshot.
	Save(data []byte) error
}

// FileStore persists snapshots to a single file on the host.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *FileStore) Save(data []byte) error {
	return os.WriteFile(s.path, data, 0o644)
}

// MemStore is an in-memory Store used by tests.
type MemStore struct {
	data  []byte
	saves int
}

func (s *MemStore) Load() ([]byte, bool, error) {
	if s.data == nil {
		return nil, false, nil
	}
	return s.data, true, nil
}

func (s *MemStore) Save(data []byte) error {
	s.data = append([]byte(nil), data...)
	s.saves++
	return nil
}

// Bytes returns the last saved snapshot.
func (s *MemStore) Bytes() []byte { return s.data }

// Saves returns how many times Save has been called.
func (s *MemStore) Saves() int { return s.saves }
