package store

import (
	"encoding/json"
	"sync"
)

// MemStore is an in-memory Store with the same contract as FileStore.
// Tests use it in place of the file-backed store.
type MemStore struct {
	mu    sync.Mutex
	data  map[string][]byte
	locks map[string]*sync.Mutex
}

func NewMemStore() *MemStore {
	return &MemStore{
		data:  make(map[string][]byte),
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *MemStore) Load(collection string, out any) error {
	s.mu.Lock()
	data, ok := s.data[collection]
	s.mu.Unlock()
	if !ok {
		data = []byte("[]")
	}
	return json.Unmarshal(data, out)
}

func (s *MemStore) Persist(collection string, docs any) error {
	data, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[collection] = data
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Update(collection string, fn func() error) error {
	s.mu.Lock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	s.mu.Unlock()
	l.Lock()
	defer l.Unlock()
	return fn()
}

func (s *MemStore) Exists(collection string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[collection]
	return ok
}
