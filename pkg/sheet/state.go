package sheet

import "sync"

// SavedState survives view-model recreation. Values are opaque to the store.
type SavedState interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// MemoryState is a SavedState backed by a map.
type MemoryState struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewMemoryState returns an empty MemoryState.
func NewMemoryState() *MemoryState {
	return &MemoryState{values: make(map[string]any)}
}

func (s *MemoryState) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

func (s *MemoryState) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}
