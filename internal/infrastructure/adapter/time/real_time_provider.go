package time

import (
	"context"
	"time"

	"github.com/csmqbusy/personal-finances/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time in UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Today returns the current UTC date
func (p *RealTimeProvider) Today() time.Time {
	return core.TruncateToDate(time.Now())
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// FixedTimeProvider always reports the same instant; used by tests and the CLI's --today flag
type FixedTimeProvider struct {
	now time.Time
}

// NewFixedTimeProvider creates a time provider frozen at now
func NewFixedTimeProvider(now time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{now: now.UTC()}
}

// Now returns the frozen instant
func (p *FixedTimeProvider) Now() time.Time {
	return p.now
}

// Today returns the frozen date
func (p *FixedTimeProvider) Today() time.Time {
	return core.TruncateToDate(p.now)
}

// Since returns the distance between t and the frozen instant
func (p *FixedTimeProvider) Since(t time.Time) time.Duration {
	return p.now.Sub(t)
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *FixedTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
