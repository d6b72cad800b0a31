package docinv

import "context"

// Fetcher retrieves rendered HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the HTML content at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// Limiter paces successive fetches to respect the remote server.
type Limiter interface {
	// Wait blocks until the next fetch is allowed to start.
	// Returns an error if the context is canceled before then.
	Wait(ctx context.Context) error
}
