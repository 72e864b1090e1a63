package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock so goal status and default timestamps are testable
type TimeProvider interface {
	// Now returns the current instant in UTC
	Now() time.Time
	// Today returns the current calendar date in UTC at midnight
	Today() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// WithTimeout derives a context bounded by the given timeout
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}

// TruncateToDate drops the clock part of t, keeping the calendar date in UTC
func TruncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
