package security

import (
	"testing"
	"time"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	timeprovider "github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	t.Run("Matching password", func(t *testing.T) {
		assert.NoError(t, hasher.Compare(hash, "correct horse"))
	})

	t.Run("Wrong password", func(t *testing.T) {
		assert.ErrorIs(t, hasher.Compare(hash, "battery staple"), errs.ErrInvalidCredentials)
	})

	t.Run("Corrupt hash is an internal error", func(t *testing.T) {
		assert.ErrorIs(t, hasher.Compare("not-a-hash", "x"), errs.ErrInternalServer)
	})
}

func TestJWTManager(t *testing.T) {
	clock := timeprovider.NewFixedTimeProvider(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	manager := NewJWTManager("secret", time.Hour, clock)

	token, err := manager.Issue(42)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(time.Hour), token.ExpiresAt)

	t.Run("Valid token", func(t *testing.T) {
		userID, err := manager.Verify(token.Value)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), userID)
	})

	t.Run("Other secret", func(t *testing.T) {
		_, err := NewJWTManager("other", time.Hour, clock).Verify(token.Value)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Expired token", func(t *testing.T) {
		later := timeprovider.NewFixedTimeProvider(clock.Now().Add(2 * time.Hour))
		_, err := NewJWTManager("secret", time.Hour, later).Verify(token.Value)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Garbage and empty tokens", func(t *testing.T) {
		_, err := manager.Verify("abc.def.ghi")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		_, err = manager.Verify("")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
