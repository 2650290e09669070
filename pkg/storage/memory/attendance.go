package memory

import (
	"sync"

	"github.com/TommyZ-7/list-checker-tauri/pkg/storage"
)

type attendanceStore struct {
	store map[string][]int
	sync.RWMutex
}

func newAttendanceStore() *attendanceStore {
	return &attendanceStore{
		store: make(map[string][]int),
	}
}

func (s *attendanceStore) FindByID(id string) ([]int, error) {
	s.RLock()
	defer s.RUnlock()
	if indices, ok := s.store[id]; ok {
		out := make([]int, len(indices))
		copy(out, indices)
		return out, nil
	}

	return nil, storage.ErrNotFound
}

func (s *attendanceStore) Save(id string, indices []int) error {
	s.Lock()
	defer s.Unlock()

	stored := make([]int, len(indices))
	copy(stored, indices)
	s.store[id] = stored

	return nil
}
