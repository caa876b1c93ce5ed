package storage

import (
	"log"
	"os"
	"path/filepath"

	"train-reservations/internal/models"

	json "github.com/goccy/go-json"
)

// Store persists the whole ledger aggregate as a single snapshot. Save
// overwrites any prior snapshot; Load returns nil when no usable snapshot
// exists so the caller can seed defaults.
type Store interface {
	Load() (*models.Snapshot, error)
	Save(snap *models.Snapshot) error
	Close() error
}

// FileStore keeps the snapshot in one JSON file. Writes go to a temp file in
// the same directory followed by a rename, so readers never observe a partial
// snapshot.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path. The file does
// not need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the snapshot. A missing or unreadable snapshot
// yields (nil, nil): the process starts fresh rather than refusing to run.
func (s *FileStore) Load() (*models.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("snapshot %s is unreadable, starting fresh: %v", s.path, err)
		return nil, nil
	}
	return &snap, nil
}

// Save serializes the aggregate and atomically replaces the snapshot file.
func (s *FileStore) Save(snap *models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Close is a no-op; the file is not held open between operations.
func (s *FileStore) Close() error {
	return nil
}
