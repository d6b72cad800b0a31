package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docinv/crawl"
	"github.com/fwojciec/docinv/fs"
	"github.com/fwojciec/docinv/goquery"
	docinvhttp "github.com/fwojciec/docinv/http"
	docinvslog "github.com/fwojciec/docinv/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docinv"),
		kong.Description("Crawl a documentation product and generate a content inventory CSV"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := docinvslog.NewFetcher(
		docinvhttp.NewFetcher(docinvhttp.WithTimeout(cli.Timeout)),
		logger,
	)

	outputPath := cli.Output
	if outputPath == "" {
		outputPath = fs.DefaultPath(cli.URL)
	}

	var writerOpts []fs.Option
	if cli.Hyperlink {
		writerOpts = append(writerOpts, fs.WithHyperlinks())
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Crawler: &crawl.Crawler{
			Fetcher:     fetcher,
			Nav:         goquery.NewNavExtractor(),
			Headings:    goquery.NewHeadingExtractor(),
			Limiter:     crawl.NewFetchLimiter(cli.Delay),
			Logger:      logger,
			Limit:       cli.Limit,
			Concurrency: cli.Concurrency,
		},
		Writer: fs.NewWriter(outputPath, writerOpts...),
	}

	cmd := &FetchCmd{
		URL:        cli.URL,
		OutputPath: outputPath,
		Filter:     cli.Filter(),
	}

	return cmd.Run(deps)
}
