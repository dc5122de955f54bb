// internal/infrastructure/storage/memory.go
package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used by tests and local development
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-memory key-value store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]memoryEntry)}
}

// Get retrieves a value by key
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	entry, ok := s.values[key]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrKeyNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.values, key)
		s.mu.Unlock()
		return nil, ErrKeyNotFound
	}

	val := make([]byte, len(entry.value))
	copy(val, entry.value)
	return val, nil
}

// Set stores a value with the given TTL (0 means no expiration)
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: make([]byte, len(value))}
	copy(entry.value, value)
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.values[key] = entry
	s.mu.Unlock()
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}
