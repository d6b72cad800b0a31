// Package crawl provides content inventory crawling orchestration.
// It coordinates landing page navigation extraction, filtered guide
// fetching with pacing, and per-guide heading extraction.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docinv"
	"golang.org/x/sync/errgroup"
)

// Crawler orchestrates the crawl of a documentation product.
type Crawler struct {
	Fetcher  docinv.Fetcher
	Nav      docinv.NavigationExtractor
	Headings docinv.HeadingExtractor
	Limiter  docinv.Limiter
	Logger   *slog.Logger

	// Limit caps the number of guides retained after filtering, counted
	// across all categories. 0 means unlimited.
	Limit int

	// Concurrency is the number of guide pages fetched in parallel.
	// Values below 1 mean sequential fetching. The limiter still paces
	// fetch starts, and output order is unaffected.
	Concurrency int
}

// Result holds the outcome of a crawl operation.
type Result struct {
	// Categories is the filtered category tree with headings populated,
	// in navigation order, with failed guides and empty groups removed.
	Categories []docinv.Category

	// Fetched and Failed count unique guide pages.
	Fetched int
	Failed  int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Title     string
	Err       error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress. It is invoked
// from a single goroutine.
type ProgressFunc func(event ProgressEvent)

// guideResult holds the outcome of processing a single guide URL.
type guideResult struct {
	position int
	url      string
	headings []docinv.Heading
	err      error
}

// Crawl fetches the landing page, extracts and filters the navigation
// structure, then fetches each retained guide and extracts its headings.
// Landing page failures are fatal; an individual guide failure skips that
// guide with a warning and the crawl continues. Duplicate guide URLs are
// fetched once and their extraction result shared across occurrences.
func (c *Crawler) Crawl(ctx context.Context, baseURL string, filter docinv.FilterSpec, progress ProgressFunc) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	landingURL := strings.TrimSuffix(baseURL, "/")

	html, err := c.Fetcher.Fetch(ctx, landingURL)
	if err != nil {
		return nil, fmt.Errorf("landing page fetch: %w", err)
	}

	categories, err := c.Nav.ExtractCategories(html, landingURL)
	if err != nil {
		return nil, fmt.Errorf("navigation extraction: %w", err)
	}

	categories = selectGuides(categories, filter, c.Limit)

	// Unique guide URLs in first-occurrence order. A guide listed under
	// two categories is fetched once; each occurrence still produces its
	// own row block downstream.
	var urls []string
	titles := make(map[string]string)
	seen := make(map[string]bool)
	for _, cat := range categories {
		for _, g := range cat.Guides {
			if seen[g.URL] {
				continue
			}
			seen[g.URL] = true
			urls = append(urls, g.URL)
			titles[g.URL] = g.Title
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(urls)})
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	resultCh := make(chan guideResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				resultCh <- c.processGuide(gctx, i, url)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results; progress stays single-goroutine here.
	results := make([]guideResult, len(urls))
	var completed int
	for result := range resultCh {
		completed++
		results[result.position] = result

		if progress != nil {
			event := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     len(urls),
				URL:       result.url,
				Title:     titles[result.url],
			}
			if result.err != nil {
				event.Type = ProgressFailed
				event.Err = result.err
			}
			progress(event)
		}
	}

	headingsByURL := make(map[string][]docinv.Heading)
	failed := make(map[string]bool)
	var failedCount int
	for _, result := range results {
		if result.err != nil {
			failed[result.url] = true
			failedCount++
			logger.Warn("guide skipped",
				"url", result.url,
				"title", titles[result.url],
				"error", result.err,
			)
			continue
		}
		headingsByURL[result.url] = result.headings
	}

	out := assemble(categories, headingsByURL, failed, filter)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: len(urls)})
	}

	return &Result{
		Categories: out,
		Fetched:    len(urls) - failedCount,
		Failed:     failedCount,
	}, nil
}

// processGuide waits for the pacing limiter, fetches one guide page, and
// extracts its headings.
func (c *Crawler) processGuide(ctx context.Context, position int, url string) guideResult {
	result := guideResult{position: position, url: url}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			result.err = err
			return result
		}
	}

	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		result.err = err
		return result
	}

	if c.Logger != nil {
		c.Logger.Debug("guide fetched",
			"url", url,
			"bytes", len(html),
			"content_hash", fmt.Sprintf("%016x", xxhash.Sum64String(html)),
		)
	}

	headings, err := c.Headings.ExtractHeadings(html)
	if err != nil {
		result.err = err
		return result
	}

	result.headings = headings
	return result
}

// selectGuides applies the category and title filter dimensions and the
// guide limit. Categories left without guides are dropped.
func selectGuides(categories []docinv.Category, filter docinv.FilterSpec, limit int) []docinv.Category {
	var out []docinv.Category
	var count int

	for _, cat := range categories {
		if !filter.MatchCategory(cat.Name) {
			continue
		}

		var guides []docinv.Guide
		for _, g := range cat.Guides {
			if limit > 0 && count >= limit {
				break
			}
			if !filter.MatchTitle(g.Title) {
				continue
			}
			guides = append(guides, g)
			count++
		}

		if len(guides) == 0 {
			continue
		}
		out = append(out, docinv.Category{Name: cat.Name, Guides: guides})
	}

	return out
}

// assemble rebuilds the category tree with extracted headings attached,
// failed guides removed, and the chapter filter applied. When a chapter
// filter is active, a guide whose content headings are all excluded is
// dropped; categories left empty are dropped with it.
func assemble(categories []docinv.Category, headingsByURL map[string][]docinv.Heading, failed map[string]bool, filter docinv.FilterSpec) []docinv.Category {
	var out []docinv.Category

	for _, cat := range categories {
		var guides []docinv.Guide
		for _, g := range cat.Guides {
			if failed[g.URL] {
				continue
			}

			headings := filter.FilterHeadings(headingsByURL[g.URL])
			if len(filter.Chapters) > 0 && !hasContent(headings) {
				continue
			}

			g.Headings = headings
			guides = append(guides, g)
		}

		if len(guides) == 0 {
			continue
		}
		out = append(out, docinv.Category{Name: cat.Name, Guides: guides})
	}

	return out
}

// hasContent reports whether any heading would become a content row.
func hasContent(headings []docinv.Heading) bool {
	for _, h := range headings {
		if h.Level > docinv.LevelTitle {
			return true
		}
	}
	return false
}
