package fintrace

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Blob keys. Records and each setting persist independently, last write wins.
const (
	recordsKey  = "finance:data"
	currencyKey = "app:currency"
	capKey      = "app:cap"
)

// Blob is the persistence collaborator: a key-value blob store. The store
// never interprets missing keys as errors, only as absent values.
type Blob interface {
	// Get returns the blob stored under key, or false if nothing is stored.
	Get(key string) ([]byte, bool)
	// Set stores the blob under key, replacing any previous value.
	Set(key string, value []byte) error
}

// DirStore is a Blob backed by one file per key under a directory.
type DirStore struct {
	dir string
}

// OpenDirStore returns a DirStore rooted at dir. The directory is created
// lazily on first write.
func OpenDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// keyPath maps a blob key to a file path; ':' is not portable in file names.
func (s *DirStore) keyPath(key string) string {
	return filepath.Join(s.dir, strings.ReplaceAll(key, ":", "_")+".json")
}

func (s *DirStore) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not read blob %q: %v", key, err)
		}
		return nil, false
	}
	return data, true
}

func (s *DirStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, err)
	}
	path := s.keyPath(key)
	if err := os.WriteFile(path, value, 0644); err != nil {
		return fmt.Errorf("could not write blob %q: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory Blob, for tests and throwaway sessions.
type MemStore struct {
	blobs map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, bool) {
	b, ok := s.blobs[key]
	return b, ok
}

func (s *MemStore) Set(key string, value []byte) error {
	s.blobs[key] = append([]byte(nil), value...)
	return nil
}

var _ Blob = (*DirStore)(nil)
var _ Blob = (*MemStore)(nil)
