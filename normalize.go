package docinv

import "strings"

// boilerplateSuffixes are fragments the docs platform appends to heading
// text when rendering its copy-link widget. Ordered longest-first so the
// most specific match strips first.
var boilerplateSuffixes = []string{
	"Copy linkLink copied to clipboard!",
	"Copy linkLink copied to clipboard",
	"Copy link",
	"Link copied",
	"Copied!",
	" to clipboard!",
}

// skipHeadings are platform chrome headings that must never enter the
// inventory, compared lowercase.
var skipHeadings = map[string]struct{}{
	"legal notice":     {},
	"left navigation":  {},
	"copyright":        {},
	"privacy":          {},
	"red hat legal":    {},
	"about red hat":    {},
	"learn":            {},
	"try, buy, & sell": {},
	"communities":      {},
}

// CleanText collapses whitespace runs to single spaces, trims, and strips
// platform boilerplate suffixes from extracted heading text.
func CleanText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	for _, suffix := range boilerplateSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
		}
	}
	return s
}

// SkipHeading reports whether a heading is platform chrome to be excluded
// from the inventory.
func SkipHeading(s string) bool {
	_, ok := skipHeadings[strings.ToLower(strings.TrimSpace(s))]
	return ok
}
