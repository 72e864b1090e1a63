package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	provider := NewRealTimeProvider()

	t.Run("Now is reported in UTC", func(t *testing.T) {
		assert.Equal(t, time.UTC, provider.Now().Location())
	})

	t.Run("Today has no clock part", func(t *testing.T) {
		today := provider.Today()
		assert.Zero(t, today.Hour())
		assert.Zero(t, today.Minute())
		assert.Zero(t, today.Nanosecond())
	})
}

func TestFixedTimeProvider(t *testing.T) {
	moment := time.Date(2024, 2, 29, 23, 15, 0, 0, time.UTC)
	provider := NewFixedTimeProvider(moment)

	assert.Equal(t, moment, provider.Now())
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), provider.Today())
	assert.Equal(t, time.Hour, provider.Since(moment.Add(-time.Hour)))
}
