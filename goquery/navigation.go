// Package goquery provides goquery-based implementations of the docinv
// extraction interfaces for the fixed markup conventions of the target
// documentation platform.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docinv"
)

// Ensure NavExtractor implements docinv.NavigationExtractor at compile time.
var _ docinv.NavigationExtractor = (*NavExtractor)(nil)

// NavExtractor extracts the category/guide structure from a product
// landing page. Every h2 heading (minus platform chrome) is a category;
// the documentation links inside the h2's parent container are its guides.
type NavExtractor struct{}

// NewNavExtractor creates a new NavExtractor.
func NewNavExtractor() *NavExtractor {
	return &NavExtractor{}
}

// ExtractCategories parses the landing page HTML and returns the ordered
// category groups. Guide URLs are resolved against baseURL and rewritten
// to their single-page variant. Categories with no guide links are
// omitted. Returns EEXTRACT if the page has no h2 headings at all, which
// signals a structure contract violation (wrong URL or platform redesign).
func (e *NavExtractor) ExtractCategories(html string, baseURL string) ([]docinv.Category, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, docinv.Errorf(docinv.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docinv.Errorf(docinv.EINVALID, "failed to parse HTML: %v", err)
	}

	var categories []docinv.Category
	found := false

	doc.Find("h2").Each(func(_ int, sel *goquery.Selection) {
		found = true

		name := docinv.CleanText(sel.Text())
		if name == "" || docinv.SkipHeading(name) {
			return
		}

		parent := sel.Parent()
		if parent.Length() == 0 {
			return
		}

		// Dedupe within this category's container; the same guide under
		// another category is an independent occurrence and is not merged.
		seen := make(map[string]bool)
		var guides []docinv.Guide

		parent.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
			href, exists := link.Attr("href")
			if !exists || href == "" || isNonContentLink(href) {
				return
			}

			guideURL, err := docinv.ResolveGuideURL(base, href)
			if err != nil {
				return
			}

			// Only documentation links are guide candidates.
			if !strings.Contains(guideURL, "/documentation/") {
				return
			}

			if seen[guideURL] {
				return
			}
			seen[guideURL] = true

			title := docinv.CleanText(link.Text())
			if title == "" {
				return
			}

			guides = append(guides, docinv.Guide{Title: title, URL: guideURL})
		})

		if len(guides) == 0 {
			return
		}

		categories = append(categories, docinv.Category{Name: name, Guides: guides})
	})

	if !found {
		return nil, docinv.Errorf(docinv.EEXTRACT, "no category headings found on landing page")
	}

	return categories, nil
}

// isNonContentLink reports whether a href can never lead to a guide page.
func isNonContentLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
