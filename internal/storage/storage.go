package storage

import (
	"errors"
	"sync"
)

var (
	// ErrInvalidBoxCount indicates the provided box count violates validation rules.
	ErrInvalidBoxCount = errors.New("box count must be a positive integer")
)

const defaultBoxCount = 3

// Storage provides access to the default box count used by pack requests
// that do not specify one.
type Storage interface {
	GetBoxCount() (int, error)
	SetBoxCount(count int) error
}

// MemoryStorage keeps the box count in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu       sync.RWMutex
	boxCount int
}

// NewMemoryStorage initialises storage with the default box count.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		boxCount: defaultBoxCount,
	}
}

// DefaultBoxCount returns the built-in default box count.
func DefaultBoxCount() int {
	return defaultBoxCount
}

// GetBoxCount returns the currently configured box count.
func (s *MemoryStorage) GetBoxCount() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.boxCount, nil
}

// SetBoxCount validates and stores the provided box count.
func (s *MemoryStorage) SetBoxCount(count int) error {
	if count < 1 {
		return ErrInvalidBoxCount
	}

	s.mu.Lock()
	s.boxCount = count
	s.mu.Unlock()

	return nil
}
