package antiforgery

import (
	"context"
	"sync"
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
)

// MemoryStore keeps tokens in a mutex-guarded map. Expired entries are dropped
// on lookup and by Purge, which the purge job calls periodically.
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	ttl    time.Duration
	clock  kernel.Clock
}

func NewMemoryStore(ttl time.Duration, clock kernel.Clock) *MemoryStore {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return &MemoryStore{
		tokens: make(map[string]time.Time),
		ttl:    ttlOrDefault(ttl),
		clock:  clock,
	}
}

func (s *MemoryStore) Issue(_ context.Context) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.tokens[token] = s.clock.Now().Add(s.ttl)
	s.mu.Unlock()

	return token, nil
}

func (s *MemoryStore) ValidateAndConsume(_ context.Context, token string) (bool, error) {
	if !wellFormed(token) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.tokens[token]
	if !ok {
		return false, nil
	}
	delete(s.tokens, token)

	return s.clock.Now().Before(expiresAt), nil
}

// Purge removes expired tokens and reports how many were dropped.
func (s *MemoryStore) Purge(_ context.Context) (int, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	for token, expiresAt := range s.tokens {
		if !now.Before(expiresAt) {
			delete(s.tokens, token)
			removed++
		}
	}
	return removed, nil
}

// Len is the number of tokens currently held, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}
