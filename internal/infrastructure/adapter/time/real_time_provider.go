package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
)

// RealTimeProvider reads the wall clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time in UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// WithTimeout returns a context that is canceled after timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
