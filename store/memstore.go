package store

import "sync"

// MemStore is an in-memory Persistence adapter, primarily for testing.
type MemStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

// Load returns the blob saved under name, or ErrNotFound.
func (s *MemStore) Load(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Save writes the blob under name.
func (s *MemStore) Save(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(data))
	copy(v, data)
	s.values[name] = v
	return nil
}

// Delete removes the blob saved under name.
func (s *MemStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, name)
	return nil
}
