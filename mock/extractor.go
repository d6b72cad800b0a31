package mock

import "github.com/fwojciec/docinv"

var _ docinv.NavigationExtractor = (*NavigationExtractor)(nil)

// NavigationExtractor is a mock implementation of docinv.NavigationExtractor.
type NavigationExtractor struct {
	ExtractCategoriesFn func(html string, baseURL string) ([]docinv.Category, error)
}

func (e *NavigationExtractor) ExtractCategories(html string, baseURL string) ([]docinv.Category, error) {
	return e.ExtractCategoriesFn(html, baseURL)
}

var _ docinv.HeadingExtractor = (*HeadingExtractor)(nil)

// HeadingExtractor is a mock implementation of docinv.HeadingExtractor.
type HeadingExtractor struct {
	ExtractHeadingsFn func(html string) ([]docinv.Heading, error)
}

func (e *HeadingExtractor) ExtractHeadings(html string) ([]docinv.Heading, error) {
	return e.ExtractHeadingsFn(html)
}
