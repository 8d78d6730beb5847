package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps documents in a plain map. It backs tests and the
// throwaway "memory" run mode; nothing survives a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.docs[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return cloneBytes(value), nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[key] = cloneBytes(value)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, key)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, key string, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var old []byte
	if current, ok := s.docs[key]; ok {
		old = cloneBytes(current)
	}

	next, err := fn(old)
	if err != nil {
		return err
	}

	if next == nil {
		delete(s.docs, key)
		return nil
	}

	s.docs[key] = cloneBytes(next)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
