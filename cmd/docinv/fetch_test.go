package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docinv"
	main "github.com/fwojciec/docinv/cmd/docinv"
	"github.com/fwojciec/docinv/crawl"
	"github.com/fwojciec/docinv/goquery"
	"github.com/fwojciec/docinv/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLandingHTML = `<html><body>
	<div>
		<h2>Get started</h2>
		<a href="/en/documentation/product/1.0/html/getting_started/index">Getting started</a>
	</div>
</body></html>`

const testGuideHTML = `<html><body><article aria-live="polite">
	<h1 id="getting-started">Getting started</h1>
	<h2 id="overview">Chapter 1. Overview</h2>
</article></body></html>`

// testDeps wires a crawler over the real goquery extractors with a mocked
// network so the command test exercises the full extraction path.
func testDeps(written *[]docinv.Row) *main.Dependencies {
	var stdout, stderr bytes.Buffer
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Crawler: &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					if url == "https://docs.example.com/en/documentation/product/1.0" {
						return testLandingHTML, nil
					}
					return testGuideHTML, nil
				},
			},
			Nav:      goquery.NewNavExtractor(),
			Headings: goquery.NewHeadingExtractor(),
		},
		Writer: &mock.RowWriter{
			WriteRowsFn: func(_ context.Context, rows []docinv.Row) error {
				*written = rows
				return nil
			},
		},
	}
}

func TestFetchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("crawls and writes flattened rows", func(t *testing.T) {
		t.Parallel()

		var written []docinv.Row
		deps := testDeps(&written)

		cmd := &main.FetchCmd{
			URL:        "https://docs.example.com/en/documentation/product/1.0",
			OutputPath: "output/product_content_inventory.csv",
		}

		require.NoError(t, cmd.Run(deps))

		require.Len(t, written, 2)
		assert.Equal(t, "Get started", written[0].Category)
		assert.Equal(t, "Getting started", written[0].Title)
		assert.Equal(t,
			"https://docs.example.com/en/documentation/product/1.0/html-single/getting_started/index",
			written[0].URL)
		assert.Equal(t, "Chapter 1. Overview", written[1].Chapter)
		assert.Equal(t,
			"https://docs.example.com/en/documentation/product/1.0/html-single/getting_started/index#overview",
			written[1].URL)
	})

	t.Run("chapter filter empties the inventory when nothing matches", func(t *testing.T) {
		t.Parallel()

		var written []docinv.Row
		deps := testDeps(&written)

		cmd := &main.FetchCmd{
			URL:        "https://docs.example.com/en/documentation/product/1.0",
			OutputPath: "output/product_content_inventory.csv",
			Filter:     docinv.FilterSpec{Chapters: []string{"no such chapter"}},
		}

		require.NoError(t, cmd.Run(deps))
		assert.Empty(t, written)
	})

	t.Run("propagates writer errors", func(t *testing.T) {
		t.Parallel()

		var written []docinv.Row
		deps := testDeps(&written)
		deps.Writer = &mock.RowWriter{
			WriteRowsFn: func(_ context.Context, _ []docinv.Row) error {
				return docinv.Errorf(docinv.EINTERNAL, "disk full")
			},
		}

		cmd := &main.FetchCmd{
			URL:        "https://docs.example.com/en/documentation/product/1.0",
			OutputPath: "output/product_content_inventory.csv",
		}

		require.Error(t, cmd.Run(deps))
	})
}
