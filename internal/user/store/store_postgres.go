package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"disha/internal/user"
	"disha/pkg/platform/sentinel"
)

// PostgresStore persists user records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const userColumns = `id, first_name, middle_name, last_name, email, password_hash, phone,
	is_verified, profile_completion_percentage, is_profile_complete, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, u user.User) (*user.User, error) {
	query := `
		INSERT INTO users (id, first_name, middle_name, last_name, email, password_hash, phone,
			is_verified, profile_completion_percentage, is_profile_complete, created_at, updated_at)
		VALUES ($1, $2, $3, $4, lower($5), $6, $7, $8, $9, $10, now(), now())
		RETURNING ` + userColumns
	row := s.db.QueryRowContext(ctx, query,
		u.ID, u.FirstName, nullable(u.MiddleName), u.LastName, u.Email, u.PasswordHash, u.Phone,
		u.IsVerified, u.ProfileCompletionPercentage, u.IsProfileComplete,
	)
	created, err := scanUser(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, sentinel.ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = lower($1)`
	u, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) FindByEmailOrPhone(ctx context.Context, email, phone string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = lower($1) OR phone = $2 LIMIT 1`
	u, err := scanUser(s.db.QueryRowContext(ctx, query, email, phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user by email or phone: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) SaveCompletion(ctx context.Context, id string, percentage int, complete bool) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET profile_completion_percentage = $2, is_profile_complete = $3, updated_at = now()
		WHERE id = $1
	`, id, percentage, complete)
	if err != nil {
		return fmt.Errorf("save profile completion: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*user.User, error) {
	var u user.User
	var middle sql.NullString
	err := row.Scan(
		&u.ID, &u.FirstName, &middle, &u.LastName, &u.Email, &u.PasswordHash, &u.Phone,
		&u.IsVerified, &u.ProfileCompletionPercentage, &u.IsProfileComplete,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.MiddleName = middle.String
	return &u, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
