package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/docinv"
	"github.com/fwojciec/docinv/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements docinv.Limiter interface", func(t *testing.T) {
		t.Parallel()
		var _ docinv.Limiter = crawl.NewFetchLimiter(time.Second)
	})

	t.Run("first wait is immediate", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewFetchLimiter(time.Second)

		start := time.Now()
		err := limiter.Wait(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first wait should be immediate")
	})

	t.Run("enforces the delay between successive waits", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewFetchLimiter(100 * time.Millisecond)

		err := limiter.Wait(context.Background())
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait out the delay")
	})

	t.Run("zero delay disables pacing", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewFetchLimiter(0)

		start := time.Now()
		for range 10 {
			require.NoError(t, limiter.Wait(context.Background()))
		}

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewFetchLimiter(time.Second)

		err := limiter.Wait(context.Background())
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err = limiter.Wait(ctx)
		assert.Error(t, err, "should fail when context times out")
	})
}
