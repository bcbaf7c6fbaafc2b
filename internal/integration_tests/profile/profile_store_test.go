//go:build integration

package profile

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disha/internal/profile"
	"disha/internal/profile/store"
	"disha/internal/user"
	userstore "disha/internal/user/store"
	"disha/pkg/platform/sentinel"
	"disha/pkg/testutil/containers"
)

// seedUser inserts a user row so profile foreign keys resolve.
func seedUser(t *testing.T, ctx context.Context, users *userstore.PostgresStore) string {
	t.Helper()

	created, err := users.Create(ctx, user.User{
		ID:           uuid.New().String(),
		FirstName:    "Asha",
		LastName:     "Patil",
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: "$2a$10$fixturehashfixturehashfixturehashfixtu",
		Phone:        "+9198" + uuid.New().String()[:8],
		IsVerified:   true,
	})
	require.NoError(t, err)
	return created.ID
}

func TestPostgresProfileStore(t *testing.T) {
	ctx := context.Background()
	pc := containers.NewPostgresContainer(t)
	users := userstore.NewPostgresStore(pc.DB)
	s := store.NewPostgresStore(pc.DB)

	t.Run("create and find", func(t *testing.T) {
		require.NoError(t, pc.TruncateAll(ctx))
		userID := seedUser(t, ctx, users)

		dob := time.Date(2009, time.March, 14, 0, 0, 0, 0, time.UTC)
		p := &profile.Profile{
			UserID:   userID,
			DOB:      &dob,
			Gender:   profile.GenderFemale,
			Location: "Pune",
			Class:    profile.ClassTenth,
			Stream:   profile.StreamNone,
		}
		require.NoError(t, s.Create(ctx, p))

		got, err := s.FindByUserID(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, got.DOB)
		assert.True(t, got.DOB.Equal(dob))
		assert.Equal(t, profile.GenderFemale, got.Gender)
		assert.Equal(t, "Pune", got.Location)
		assert.Equal(t, profile.ClassTenth, got.Class)
		assert.Equal(t, profile.StreamNone, got.Stream)
	})

	t.Run("duplicate create conflicts", func(t *testing.T) {
		require.NoError(t, pc.TruncateAll(ctx))
		userID := seedUser(t, ctx, users)

		require.NoError(t, s.Create(ctx, &profile.Profile{UserID: userID, Location: "Pune"}))
		err := s.Create(ctx, &profile.Profile{UserID: userID, Location: "Mumbai"})
		assert.ErrorIs(t, err, sentinel.ErrConflict)
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, pc.TruncateAll(ctx))
		userID := seedUser(t, ctx, users)

		require.NoError(t, s.Create(ctx, &profile.Profile{UserID: userID, Location: "Pune"}))
		require.NoError(t, s.Update(ctx, &profile.Profile{
			UserID:   userID,
			Location: "Nashik",
			Class:    profile.ClassTwelfth,
			Stream:   profile.StreamScience,
		}))

		got, err := s.FindByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "Nashik", got.Location)
		assert.Equal(t, profile.ClassTwelfth, got.Class)

		err = s.Update(ctx, &profile.Profile{UserID: uuid.New().String(), Location: "Pune"})
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("missing profile", func(t *testing.T) {
		require.NoError(t, pc.TruncateAll(ctx))

		_, err := s.FindByUserID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}
