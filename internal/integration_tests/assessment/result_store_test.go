//go:build integration

package assessment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disha/internal/assessment"
	"disha/internal/assessment/store"
	"disha/internal/user"
	userstore "disha/internal/user/store"
	"disha/pkg/platform/sentinel"
	"disha/pkg/testutil/containers"
)

func TestPostgresResultStore(t *testing.T) {
	ctx := context.Background()
	pc := containers.NewPostgresContainer(t)

	pool, err := pgxpool.New(ctx, pc.DSN)
	require.NoError(t, err)
	defer pool.Close()

	users := userstore.NewPostgresStore(pc.DB)
	s := store.NewPostgresResultStore(pool)

	seeded, err := users.Create(ctx, user.User{
		ID:           uuid.New().String(),
		FirstName:    "Asha",
		LastName:     "Patil",
		Email:        "asha@example.com",
		PasswordHash: "$2a$10$fixturehashfixturehashfixturehashfixtu",
		Phone:        "+919812345678",
		IsVerified:   true,
	})
	require.NoError(t, err)
	userID := seeded.ID

	_, err = s.LatestByUserID(ctx, userID)
	require.ErrorIs(t, err, sentinel.ErrNotFound)

	base := time.Now().UTC().Truncate(time.Millisecond)
	first := &assessment.Result{
		ID:              uuid.New().String(),
		UserID:          userID,
		RecommendedPath: "science",
		Scores:          map[string]int{"science": 8, "commerce": 0, "arts": 0, "vocational": 0},
		Confidence:      25,
		CompletionRate:  100,
		CreatedAt:       base.Add(-time.Minute),
	}
	second := &assessment.Result{
		ID:              uuid.New().String(),
		UserID:          userID,
		RecommendedPath: "commerce",
		Scores:          map[string]int{"science": 1, "commerce": 6, "arts": 1, "vocational": 0},
		Confidence:      19,
		CompletionRate:  100,
		CreatedAt:       base,
	}
	require.NoError(t, s.Save(ctx, first))
	require.NoError(t, s.Save(ctx, second))

	latest, err := s.LatestByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, "commerce", latest.RecommendedPath)
	assert.Equal(t, second.Scores, latest.Scores)
	assert.Equal(t, 19, latest.Confidence)

	count, err := s.CountByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = s.CountByUserID(ctx, uuid.New().String())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
