package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. Each operation holds the mutex for its
// own duration only and gives up with ErrLockUnavailable when another
// operation holds it. Entries live as long as the process.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[Token]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[Token]string)}
}

func (s *MemoryStore) Insert(_ context.Context, token Token, identity string) error {
	if !s.mu.TryLock() {
		return ErrLockUnavailable
	}
	defer s.mu.Unlock()

	if _, ok := s.entries[token]; ok {
		return ErrTokenExists
	}
	s.entries[token] = identity
	return nil
}

func (s *MemoryStore) Lookup(_ context.Context, token Token) (string, bool, error) {
	if !s.mu.TryLock() {
		return "", false, ErrLockUnavailable
	}
	defer s.mu.Unlock()

	identity, ok := s.entries[token]
	return identity, ok, nil
}
