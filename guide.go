package docinv

// Guide is a single documentation unit: one fetched page belonging to one
// category occurrence. URL is the single-page rendering variant of the
// navigation link. Headings is populated after the guide page is fetched.
type Guide struct {
	Title    string    `json:"title"`
	URL      string    `json:"url"`
	Headings []Heading `json:"headings,omitempty"`
}

// Category is a top-level navigation grouping on the landing page. Guides
// keep navigation document order; a guide listed under two categories
// appears independently in each (no cross-category merge).
type Category struct {
	Name   string  `json:"name"`
	Guides []Guide `json:"guides"`
}

// NavigationExtractor extracts the category/guide structure from a landing
// page's rendered HTML.
type NavigationExtractor interface {
	// ExtractCategories returns the ordered category groups discovered on
	// the landing page. Guide URLs are resolved against baseURL and
	// rewritten to their single-page variant. Returns EEXTRACT if the page
	// contains no category headings.
	ExtractCategories(html string, baseURL string) ([]Category, error)
}
