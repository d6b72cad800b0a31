package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/docinv"
	"golang.org/x/time/rate"
)

// Ensure FetchLimiter implements docinv.Limiter at compile time.
var _ docinv.Limiter = (*FetchLimiter)(nil)

// FetchLimiter enforces a fixed delay between successive page fetches
// using a token bucket with burst 1. The crawl targets a single host, so
// one limiter paces everything.
type FetchLimiter struct {
	limiter *rate.Limiter
}

// NewFetchLimiter creates a FetchLimiter with the given inter-fetch delay.
// A zero or negative delay disables pacing.
func NewFetchLimiter(delay time.Duration) *FetchLimiter {
	if delay <= 0 {
		return &FetchLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &FetchLimiter{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the delay since the previous fetch has elapsed.
// Returns an error if the context is canceled before then.
func (l *FetchLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
