package docinv

import (
	"net/url"
	"strings"
)

// SinglePageURL rewrites the paginated /html/ path segment to the
// /html-single/ variant so a guide renders as one page. Pure function:
// identical input always yields identical output.
func SinglePageURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Path = strings.Replace(u.Path, "/html/", "/html-single/", 1)
	return u.String()
}

// ResolveGuideURL resolves a navigation href against the landing page URL
// and rewrites it to the single-page variant. Returns EINVALID if the href
// cannot be parsed.
func ResolveGuideURL(base *url.URL, href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", Errorf(EINVALID, "invalid guide href %q: %v", href, err)
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	resolved.Path = strings.Replace(resolved.Path, "/html/", "/html-single/", 1)
	return resolved.String(), nil
}

// AnchorURL builds the stable URL for a heading within a guide.
func AnchorURL(guideURL, anchor string) string {
	if anchor == "" {
		return guideURL
	}
	return guideURL + "#" + anchor
}
