package store

import (
	"context"
	"strings"
	"sync"

	"disha/internal/user"
	"disha/pkg/platform/sentinel"
	"disha/pkg/requestcontext"
)

// InMemoryStore keeps user records in process memory. It favors clarity over
// performance and backs development and tests.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{users: make(map[string]user.User)}
}

func (s *InMemoryStore) Create(ctx context.Context, u user.User) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) || existing.Phone == u.Phone {
			return nil, sentinel.ErrConflict
		}
	}

	now := requestcontext.Now(ctx)
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = u
	return &u, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindByEmailOrPhone(_ context.Context, email, phone string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) || u.Phone == phone {
			return &u, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) SaveCompletion(ctx context.Context, id string, percentage int, complete bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	u.ProfileCompletionPercentage = percentage
	u.IsProfileComplete = complete
	u.UpdatedAt = requestcontext.Now(ctx)
	s.users[id] = u
	return nil
}
