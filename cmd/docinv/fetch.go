package main

import (
	"fmt"

	"github.com/fwojciec/docinv"
	"github.com/fwojciec/docinv/crawl"
)

// Run executes the fetch command: crawl, flatten, write.
func (c *FetchCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Fetching landing page: %s\n", c.URL)

	progress := func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d guides to fetch\n", e.Total)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", e.Completed, e.Total, truncate(e.Title, 60))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", e.URL, docinv.ErrorMessage(e.Err))
		}
	}

	result, err := deps.Crawler.Crawl(deps.Ctx, c.URL, c.Filter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docinv.ErrorMessage(err))
		return err
	}

	rows := docinv.BuildRows(result.Categories)

	if err := deps.Writer.WriteRows(deps.Ctx, rows); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", c.OutputPath, err)
		return err
	}

	var guides, headings int
	for _, cat := range result.Categories {
		guides += len(cat.Guides)
		for _, g := range cat.Guides {
			for _, h := range g.Headings {
				if h.Level > docinv.LevelTitle {
					headings++
				}
			}
		}
	}

	fmt.Fprintf(deps.Stdout, "\nDone! Wrote %s\n", c.OutputPath)
	fmt.Fprintf(deps.Stdout, "  %d categories, %d guides, %d headings\n", len(result.Categories), guides, headings)
	fmt.Fprintf(deps.Stdout, "  %d rows (including separators)\n", len(rows))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d guides skipped\n", result.Failed)
	}

	return nil
}

// truncate shortens a title for single-line progress display.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
