package mock

import (
	"context"

	"github.com/fwojciec/docinv"
)

var _ docinv.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docinv.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ docinv.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of docinv.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx)
}
