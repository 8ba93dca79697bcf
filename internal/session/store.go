package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Store keeps the upstream access token for each live session. The browser
// only ever sees the storefront's own session JWT; the upstream bearer token
// stays server-side.
type Store interface {
	Put(ctx context.Context, sid, accessToken string) error
	Get(ctx context.Context, sid string) (string, error)
	Delete(ctx context.Context, sid string) error
}

// InMemoryStore is used for tests and local scenarios.
type InMemoryStore struct {
	mu       sync.RWMutex
	tokens   map[string]string
	deadline map[string]time.Time
	ttl      time.Duration
}

func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	return &InMemoryStore{
		tokens:   make(map[string]string),
		deadline: make(map[string]time.Time),
		ttl:      ttl,
	}
}

func (s *InMemoryStore) Put(ctx context.Context, sid, accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sid] = accessToken
	s.deadline[sid] = time.Now().Add(s.ttl)
	return nil
}

func (s *InMemoryStore) Get(ctx context.Context, sid string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[sid]
	if !ok || time.Now().After(s.deadline[sid]) {
		return "", ErrNotFound
	}
	return token, nil
}

func (s *InMemoryStore) Delete(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sid)
	delete(s.deadline, sid)
	return nil
}
