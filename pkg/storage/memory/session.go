package memory

import (
	"sync"

	"github.com/TommyZ-7/list-checker-tauri/pkg/model"
	"github.com/TommyZ-7/list-checker-tauri/pkg/storage"
)

type sessionStore struct {
	store map[string]model.Session
	sync.RWMutex
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		store: make(map[string]model.Session),
	}
}

func (s *sessionStore) FetchAll() (map[string]model.Session, error) {
	s.RLock()
	defer s.RUnlock()
	models := make(map[string]model.Session, len(s.store))

	for id, m := range s.store {
		m.RoomID = id
		models[id] = m
	}

	return models, nil
}

func (s *sessionStore) FindByID(id string) (*model.Session, error) {
	s.RLock()
	defer s.RUnlock()
	if m, ok := s.store[id]; ok {
		m.RoomID = id
		return &m, nil
	}

	return nil, storage.ErrNotFound
}

func (s *sessionStore) Save(id string, m *model.Session) error {
	s.Lock()
	defer s.Unlock()

	stored := *m
	stored.RoomID = ""
	s.store[id] = stored

	return nil
}
