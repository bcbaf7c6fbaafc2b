// Package store persists student profiles. The Store contract lives in the
// profile service package.
package store

import (
	"context"
	"fmt"
	"sync"

	"disha/internal/profile"
	"disha/pkg/platform/sentinel"
)

// InMemoryStore is a map-backed Store for tests and local development.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]profile.Profile
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[string]profile.Profile)}
}

func (s *InMemoryStore) Create(_ context.Context, p *profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[p.UserID]; ok {
		return fmt.Errorf("profile for user %s: %w", p.UserID, sentinel.ErrConflict)
	}
	s.profiles[p.UserID] = *p
	return nil
}

func (s *InMemoryStore) FindByUserID(_ context.Context, userID string) (*profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile for user %s: %w", userID, sentinel.ErrNotFound)
	}
	return &p, nil
}

func (s *InMemoryStore) Update(_ context.Context, p *profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[p.UserID]; !ok {
		return fmt.Errorf("profile for user %s: %w", p.UserID, sentinel.ErrNotFound)
	}
	s.profiles[p.UserID] = *p
	return nil
}
