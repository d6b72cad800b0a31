// Package fs provides file-based CSV persistence for the content inventory.
package fs

import (
	"context"
	"encoding/csv"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docinv"
)

// DefaultPath derives the output CSV path from the landing page URL:
// output/<product-slug>_content_inventory.csv.
func DefaultPath(baseURL string) string {
	return filepath.Join("output", ProductSlug(baseURL)+"_content_inventory.csv")
}

// ProductSlug extracts the product path segment from a landing page URL:
// the segment following "documentation", falling back to the last path
// segment and then to "docs".
func ProductSlug(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "docs"
	}

	var parts []string
	for _, p := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	for i, part := range parts {
		if part == "documentation" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return "docs"
}

// Hyperlink wraps text in a spreadsheet HYPERLINK formula so the cell
// becomes a clickable link in Google Sheets or Excel. Double quotes are
// escaped: %22 in the URL, doubled in the text.
func Hyperlink(linkURL, text string) string {
	safeURL := strings.ReplaceAll(linkURL, `"`, "%22")
	safeText := strings.ReplaceAll(text, `"`, `""`)
	return `=HYPERLINK("` + safeURL + `","` + safeText + `")`
}

// Ensure Writer implements docinv.RowWriter at compile time.
var _ docinv.RowWriter = (*Writer)(nil)

// Writer writes inventory rows to a CSV file. The write is atomic: rows
// go to a temporary file which replaces the destination on success, so a
// failed run never leaves a truncated inventory behind.
type Writer struct {
	path       string
	hyperlinks bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithHyperlinks wraps populated title and heading cells in HYPERLINK
// formulas targeting the row's URL.
func WithHyperlinks() Option {
	return func(w *Writer) {
		w.hyperlinks = true
	}
}

// NewWriter creates a new Writer that writes to the given file path.
func NewWriter(path string, opts ...Option) *Writer {
	w := &Writer{path: path}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path returns the destination file path.
func (w *Writer) Path() string {
	return w.path
}

// WriteRows writes the header followed by rows to the destination.
func (w *Writer) WriteRows(ctx context.Context, rows []docinv.Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmpPath := w.path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(docinv.Columns); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	for _, row := range rows {
		if err := cw.Write(w.record(row)); err != nil {
			f.Close()
			os.Remove(tmpPath)
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, w.path)
}

// record renders a row's cells, applying the hyperlink transform to the
// populated title/heading cell when enabled.
func (w *Writer) record(row docinv.Row) []string {
	record := row.Record()
	if !w.hyperlinks || row.URL == "" {
		return record
	}
	// Cells 1-6 are Titles..Details; exactly one is populated per
	// content row.
	for i := 1; i <= 6; i++ {
		if record[i] != "" {
			record[i] = Hyperlink(row.URL, record[i])
		}
	}
	return record
}
