package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"disha/internal/assessment"
	"disha/pkg/platform/sentinel"
)

// PostgresResultStore persists results in PostgreSQL. Scores are stored as
// jsonb keyed by path name.
type PostgresResultStore struct {
	pool *pgxpool.Pool
}

func NewPostgresResultStore(pool *pgxpool.Pool) *PostgresResultStore {
	return &PostgresResultStore{pool: pool}
}

func (s *PostgresResultStore) Save(ctx context.Context, r *assessment.Result) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO assessment_results (id, user_id, recommended_path, scores, confidence, completion_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.ID, r.UserID, r.RecommendedPath, r.Scores, r.Confidence, r.CompletionRate, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("save assessment result: %w", err)
	}
	return nil
}

func (s *PostgresResultStore) LatestByUserID(ctx context.Context, userID string) (*assessment.Result, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, user_id, recommended_path, scores, confidence, completion_rate, created_at
		FROM assessment_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)

	var r assessment.Result
	err := row.Scan(&r.ID, &r.UserID, &r.RecommendedPath, &r.Scores, &r.Confidence, &r.CompletionRate, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("latest assessment result: %w", err)
	}
	return &r, nil
}

func (s *PostgresResultStore) CountByUserID(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx,
		`SELECT count(*) FROM assessment_results WHERE user_id = $1`, userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count assessment results: %w", err)
	}
	return n, nil
}
