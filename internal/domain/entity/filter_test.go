package entity

import (
	"testing"
	"time"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAmountRange(t *testing.T) {
	low, high := int64(10), int64(20)

	r, err := NewAmountRange(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, r)

	_, err = NewAmountRange(&high, &low)
	assert.ErrorIs(t, err, errs.ErrInvalidRange)

	r, err = NewAmountRange(&low, &high)
	require.NoError(t, err)
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(20))
	assert.False(t, r.Contains(21))

	r, err = NewAmountRange(&low, nil)
	require.NoError(t, err)
	assert.True(t, r.Contains(1_000_000))
	assert.False(t, r.Contains(9))
}

func TestNewDateRange(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewDateRange(&from, &to)
	assert.ErrorIs(t, err, errs.ErrInvalidRange)

	r, err := NewDateRange(&to, &from)
	require.NoError(t, err)
	assert.Equal(t, to, *r.From)
	assert.Equal(t, from, *r.To)

	r, err = NewDateRange(&from, &from)
	require.NoError(t, err)
	assert.NotNil(t, r)
}
