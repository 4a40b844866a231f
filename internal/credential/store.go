package credential

import (
	"context"
	"strings"
	"sync"
)

// Store keeps a credential supplied at runtime in memory. It is both a Source
// and a Requester.
type Store struct {
	mu  sync.RWMutex
	key string
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Resolve returns the stored key, or ErrMissing when none was supplied.
func (s *Store) Resolve(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == "" {
		return "", ErrMissing
	}
	return s.key, nil
}

// RequestCredential stores key. A blank key is rejected with ErrMissing.
func (s *Store) RequestCredential(_ context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrMissing
	}
	s.mu.Lock()
	s.key = key
	s.mu.Unlock()
	return nil
}

// Clear forgets the stored key.
func (s *Store) Clear() {
	s.mu.Lock()
	s.key = ""
	s.mu.Unlock()
}
