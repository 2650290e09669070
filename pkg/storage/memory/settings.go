package memory

import (
	"sync"

	"github.com/TommyZ-7/list-checker-tauri/pkg/model"
	"github.com/TommyZ-7/list-checker-tauri/pkg/storage"
)

type settingsStore struct {
	store map[string]model.Settings
	sync.RWMutex
}

func newSettingsStore() *settingsStore {
	return &settingsStore{
		store: make(map[string]model.Settings),
	}
}

func (s *settingsStore) FindByID(id string) (*model.Settings, error) {
	s.RLock()
	defer s.RUnlock()
	if m, ok := s.store[id]; ok {
		return &m, nil
	}

	return nil, storage.ErrNotFound
}

func (s *settingsStore) Save(id string, m *model.Settings) error {
	s.Lock()
	defer s.Unlock()

	s.store[id] = *m

	return nil
}
