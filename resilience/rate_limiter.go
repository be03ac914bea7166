package resilience

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

const defaultRate = 10.0

// RateLimiterConfig configures a RateLimiter. Zero fields take defaults.
type RateLimiterConfig struct {
	// Rate is the sustained number of requests per second. Defaults to 10.
	Rate float64 `yaml:"rate" mapstructure:"rate"`
	// Burst is how many requests may be sent back to back. Defaults to
	// Rate rounded down, and at least 1.
	Burst int `yaml:"burst" mapstructure:"burst"`
}

// RateLimiter spaces requests out to stay under an AppKey's quota.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a token bucket limiter that starts full.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.Rate <= 0 {
		cfg.Rate = defaultRate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = max(1, int(cfg.Rate))
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst)}
}

// Wait blocks until a request may be sent. It fails with the context's
// error once ctx is done, and with an error wrapping
// context.DeadlineExceeded when the wait would outlast the deadline.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	err := rl.limiter.Wait(ctx)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
}
