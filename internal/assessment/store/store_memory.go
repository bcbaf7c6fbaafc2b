// Package store persists scored assessment results. The ResultStore contract
// lives in the assessment service package.
package store

import (
	"context"
	"fmt"
	"sync"

	"disha/internal/assessment"
	"disha/pkg/platform/sentinel"
)

// InMemoryResultStore keeps results per user in insertion order.
type InMemoryResultStore struct {
	mu      sync.RWMutex
	results map[string][]assessment.Result
}

func NewInMemoryResultStore() *InMemoryResultStore {
	return &InMemoryResultStore{results: make(map[string][]assessment.Result)}
}

func (s *InMemoryResultStore) Save(_ context.Context, r *assessment.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[r.UserID] = append(s.results[r.UserID], *r)
	return nil
}

func (s *InMemoryResultStore) LatestByUserID(_ context.Context, userID string) (*assessment.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rs := s.results[userID]
	if len(rs) == 0 {
		return nil, fmt.Errorf("results for user %s: %w", userID, sentinel.ErrNotFound)
	}
	latest := rs[len(rs)-1]
	return &latest, nil
}

func (s *InMemoryResultStore) CountByUserID(_ context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results[userID]), nil
}
