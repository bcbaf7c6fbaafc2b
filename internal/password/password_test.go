package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	dErrors "disha/pkg/domain-errors"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", digest)

	assert.True(t, h.Compare("s3cret-pass", digest))
	assert.False(t, h.Compare("wrong-pass", digest))
	assert.False(t, h.Compare("s3cret-pass", "not-a-digest"))
}

func TestBcryptHasherRejectsEmptyPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash("")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeInvalidInput, dErrors.CodeOf(err))
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	// Out-of-range costs fall back to the default rather than failing later.
	h := NewBcryptHasher(99)

	digest, err := h.Hash("s3cret-pass")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
