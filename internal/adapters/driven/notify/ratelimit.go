package notify

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
)

// Ensure RateLimited implements the interface.
var _ driven.Notifier = (*RateLimited)(nil)

// RateLimitConfig holds rate limiting configuration for a notifier.
type RateLimitConfig struct {
	// PerSecond is the sustained number of reminders per second.
	PerSecond float64
	// Burst is how many reminders may be sent back to back.
	Burst int
}

// DefaultRateLimit lets a short backlog through at once, then one reminder
// every half second.
var DefaultRateLimit = RateLimitConfig{PerSecond: 2, Burst: 5}

// RateLimited delays delivery so reminders leave at a bounded rate.
type RateLimited struct {
	next    driven.Notifier
	limiter *rate.Limiter
}

// NewRateLimited wraps next. Non-positive config values fall back to
// DefaultRateLimit.
func NewRateLimited(next driven.Notifier, cfg RateLimitConfig) *RateLimited {
	if cfg.PerSecond <= 0 {
		cfg.PerSecond = DefaultRateLimit.PerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimit.Burst
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(cfg.PerSecond), cfg.Burst),
	}
}

// Notify waits for a token, then delivers through the wrapped notifier.
// It returns the context error if ctx ends while waiting.
func (r *RateLimited) Notify(ctx context.Context, reminder domain.Reminder) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}
	return r.next.Notify(ctx, reminder)
}
