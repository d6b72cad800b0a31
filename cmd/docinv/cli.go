package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/docinv"
	"github.com/fwojciec/docinv/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Crawler *crawl.Crawler
	Writer  docinv.RowWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL         string        `arg:"" required:"" help:"Product documentation landing page URL"`
	Output      string        `short:"o" help:"Output CSV file path (default: output/<product>_content_inventory.csv)"`
	Limit       int           `short:"l" default:"0" help:"Limit number of guides to fetch (0 = all)"`
	Delay       time.Duration `default:"1s" help:"Delay between page fetches"`
	Timeout     time.Duration `short:"t" default:"60s" help:"Fetch timeout per page"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent guide fetch limit"`
	Category    []string      `short:"C" help:"Filter by category (case-insensitive substring, repeatable)"`
	Title       []string      `short:"T" help:"Filter by guide title (case-insensitive substring, repeatable)"`
	Chapter     []string      `help:"Filter by chapter heading (case-insensitive substring, repeatable)"`
	Hyperlink   bool          `help:"Wrap title and heading cells in spreadsheet HYPERLINK formulas"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}

// Filter builds the filter specification from the repeatable flags.
func (c *CLI) Filter() docinv.FilterSpec {
	return docinv.FilterSpec{
		Categories: c.Category,
		Titles:     c.Title,
		Chapters:   c.Chapter,
	}
}

// FetchCmd runs the crawl and writes the inventory CSV.
type FetchCmd struct {
	URL        string
	OutputPath string
	Filter     docinv.FilterSpec
}
