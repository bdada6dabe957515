package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// FileStore keeps each collection in a <name>.json file under dir.
type FileStore struct {
	dir string
	log *logrus.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileStore opens a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string, log *logrus.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir, log: log, locks: make(map[string]*sync.Mutex)}, nil
}

// Load reads the full collection into out. A collection that was never
// persisted, or whose file cannot be read or parsed, loads as empty:
// availability wins over strictness here, but the failure is logged so
// operators can see it.
func (s *FileStore) Load(collection string, out any) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).WithField("collection", collection).
				Warn("collection unreadable, treating as empty")
		}
		return json.Unmarshal([]byte("[]"), out)
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.WithError(err).WithField("collection", collection).
			Warn("collection corrupt, treating as empty")
		return json.Unmarshal([]byte("[]"), out)
	}
	return nil
}

// Persist replaces the collection on disk. The document set is written to a
// temp file that is renamed over the old one, so a concurrent Load never
// observes a half-written collection and a failed write leaves prior state.
func (s *FileStore) Persist(collection string, docs any) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := os.Rename(tmp, s.path(collection)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", collection, err)
	}
	return nil
}

// Update runs fn while holding the collection's write lock. Every mutation
// goes through here so two in-flight requests cannot interleave their
// load-mutate-persist spans and lose a write.
func (s *FileStore) Update(collection string, fn func() error) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()
	return fn()
}

// Exists reports whether the collection file has ever been written.
func (s *FileStore) Exists(collection string) bool {
	_, err := os.Stat(s.path(collection))
	return err == nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}
