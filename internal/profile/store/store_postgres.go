package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"disha/internal/profile"
	"disha/pkg/platform/sentinel"
)

// PostgresStore persists profiles in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const profileColumns = `user_id, dob, gender, location, class, stream, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, p *profile.Profile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, dob, gender, location, class, stream, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	`, p.UserID, p.DOB, nullable(p.Gender), nullable(p.Location), nullable(p.Class), nullable(p.Stream))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	p, err := scanProfile(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) Update(ctx context.Context, p *profile.Profile) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE profiles
		SET dob = $2, gender = $3, location = $4, class = $5, stream = $6, updated_at = now()
		WHERE user_id = $1
	`, p.UserID, p.DOB, nullable(p.Gender), nullable(p.Location), nullable(p.Class), nullable(p.Stream))
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*profile.Profile, error) {
	var p profile.Profile
	var gender, location, class, stream sql.NullString
	err := row.Scan(&p.UserID, &p.DOB, &gender, &location, &class, &stream, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Gender = gender.String
	p.Location = location.String
	p.Class = class.String
	p.Stream = stream.String
	return &p, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
