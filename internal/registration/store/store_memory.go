// Package store holds pending-registration records between intake and OTP
// verification. Stores are pure I/O with atomic per-key operations; the
// state-machine rules and the PendingStore contract live in the registration
// service package.
package store

import (
	"context"
	"sync"

	"disha/internal/registration"
	"disha/pkg/platform/sentinel"
	"disha/pkg/requestcontext"
)

// InMemoryStore keeps pending registrations in a mutex-guarded map. This is
// the default deployment: pending state is transient by design and does not
// survive a restart.
//
// A single mutex covers every operation, which makes each read-check-write
// sequence atomic per key. Time comes from requestcontext.Now so tests pin
// expiry behavior without waiting real seconds.
type InMemoryStore struct {
	mu      sync.Mutex
	pending map[string]registration.PendingRegistration
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{pending: make(map[string]registration.PendingRegistration)}
}

func (s *InMemoryStore) Create(ctx context.Context, rec registration.PendingRegistration) (*registration.PendingRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := requestcontext.Now(ctx)
	if existing, ok := s.pending[rec.Phone]; ok && !existing.Expired(now) {
		return &existing, sentinel.ErrConflict
	}
	s.pending[rec.Phone] = rec
	return &rec, nil
}

func (s *InMemoryStore) Get(_ context.Context, phone string) (*registration.PendingRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.pending[phone]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &rec, nil
}

func (s *InMemoryStore) RecordAttempt(_ context.Context, phone string) (*registration.PendingRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.pending[phone]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	rec.Attempts++
	s.pending[phone] = rec
	return &rec, nil
}

func (s *InMemoryStore) Remove(_ context.Context, phone string) (*registration.PendingRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.pending[phone]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	delete(s.pending, phone)
	return &rec, nil
}

func (s *InMemoryStore) Delete(_ context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, phone)
	return nil
}

func (s *InMemoryStore) DeleteExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := requestcontext.Now(ctx)
	removed := 0
	for phone, rec := range s.pending {
		if rec.Expired(now) {
			delete(s.pending, phone)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of live records. Test helper.
func (s *InMemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
