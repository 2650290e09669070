package memory

import (
	"sync"

	"github.com/TommyZ-7/list-checker-tauri/pkg/storage"
)

type onTheDayStore struct {
	store map[string][]string
	sync.RWMutex
}

func newOnTheDayStore() *onTheDayStore {
	return &onTheDayStore{
		store: make(map[string][]string),
	}
}

func (s *onTheDayStore) FindByID(id string) ([]string, error) {
	s.RLock()
	defer s.RUnlock()
	if names, ok := s.store[id]; ok {
		out := make([]string, len(names))
		copy(out, names)
		return out, nil
	}

	return nil, storage.ErrNotFound
}

func (s *onTheDayStore) Save(id string, names []string) error {
	s.Lock()
	defer s.Unlock()

	stored := make([]string, len(names))
	copy(stored, names)
	s.store[id] = stored

	return nil
}
