package entity

import (
	"testing"
	"time"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coremocks "github.com/csmqbusy/personal-finances/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(" alice ", "Alice@Example.com", "hash", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.True(t, user.Active)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name     string
			username string
			email    string
			hash     string
		}{
			{"short username", "al", "a@b.io", "hash"},
			{"bad email", "alice", "not-an-email", "hash"},
			{"missing hash", "alice", "a@b.io", ""},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				user, err := NewUser(tc.username, tc.email, tc.hash, mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidRequest)
				assert.Nil(t, user)
			})
		}
	})

	t.Run("Deactivate", func(t *testing.T) {
		user := &User{Active: true}
		user.Deactivate()
		assert.False(t, user.Active)
	})
}
