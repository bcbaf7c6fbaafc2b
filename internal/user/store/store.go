// Package store persists durable user records. Implementations are pure I/O;
// uniqueness and verification rules live in the services.
package store

import (
	"context"

	"disha/internal/user"
)

// Store is the durable user store consumed by the registration and auth
// services. Absent records surface as sentinel.ErrNotFound; unique violations
// on create surface as sentinel.ErrConflict.
type Store interface {
	Create(ctx context.Context, u user.User) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*user.User, error)
	SaveCompletion(ctx context.Context, id string, percentage int, complete bool) error
}
