package storage

import (
	"sync"
)

// MemoryStorage records markers in memory and never touches the filesystem
type MemoryStorage struct {
	markers map[string]struct{}
	mu      sync.RWMutex
}

// NewMemoryStorage creates a new memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		markers: make(map[string]struct{}),
	}
}

// CreateTable records a marker for tableName
func (s *MemoryStorage) CreateTable(tableName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.markers[tableName] = struct{}{}
	return nil
}

// HasTable reports whether a marker was recorded for tableName
func (s *MemoryStorage) HasTable(tableName string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.markers[tableName]
	return ok, nil
}
