package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docinv"
	"golang.org/x/net/html"
)

// contentSelectors locate a guide's primary content region, most specific
// first. The aria-live article is the platform's rendered guide body.
var contentSelectors = []string{
	`article[aria-live="polite"]`,
	"article[aria-live]",
	"article",
	"main",
}

// Ensure HeadingExtractor implements docinv.HeadingExtractor at compile time.
var _ docinv.HeadingExtractor = (*HeadingExtractor)(nil)

// HeadingExtractor extracts the ordered h1-h6 heading sequence from a
// guide's rendered single-page HTML.
type HeadingExtractor struct{}

// NewHeadingExtractor creates a new HeadingExtractor.
func NewHeadingExtractor() *HeadingExtractor {
	return &HeadingExtractor{}
}

// ExtractHeadings parses the guide HTML and returns every heading in the
// primary content region, in document order. Heading text is normalized;
// platform chrome headings and headings without a resolvable anchor are
// dropped. Returns EEXTRACT when no content region exists.
func (e *HeadingExtractor) ExtractHeadings(htmlStr string) ([]docinv.Heading, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil, docinv.Errorf(docinv.EINVALID, "failed to parse HTML: %v", err)
	}

	var content *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			content = sel
			break
		}
	}
	if content == nil {
		return nil, docinv.Errorf(docinv.EEXTRACT, "no content region found in guide page")
	}

	var headings []docinv.Heading

	content.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		level, ok := headingLevel(sel.Get(0))
		if !ok {
			return
		}

		text := docinv.CleanText(sel.Text())
		if text == "" || docinv.SkipHeading(text) {
			return
		}

		anchor := findAnchor(sel)
		if anchor == "" {
			// No stable URL exists for this heading.
			return
		}

		headings = append(headings, docinv.Heading{
			Level:  level,
			Text:   text,
			Anchor: anchor,
		})
	})

	return headings, nil
}

// headingLevel maps a heading element to its docinv.Level.
func headingLevel(node *html.Node) (docinv.Level, bool) {
	if node == nil || len(node.Data) != 2 || node.Data[0] != 'h' {
		return 0, false
	}
	level := docinv.Level(node.Data[1] - '0')
	return level, level.Valid()
}

// findAnchor resolves the best anchor id for a heading: the element's own
// id, then the enclosing container's id, then an inner anchor target.
func findAnchor(sel *goquery.Selection) string {
	if id, ok := sel.Attr("id"); ok && id != "" {
		return id
	}
	if id, ok := sel.Parent().Attr("id"); ok && id != "" {
		return id
	}
	if id, ok := sel.Find("a[id]").First().Attr("id"); ok && id != "" {
		return id
	}
	if name, ok := sel.Find("a[name]").First().Attr("name"); ok && name != "" {
		return name
	}
	return ""
}
