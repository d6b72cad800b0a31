package docinv

import "strings"

// FilterSpec selects which categories, guides, and chapters are retained.
// Within a dimension the terms combine with OR as case-insensitive
// substring matches; an empty dimension places no constraint; the three
// dimensions combine with AND.
type FilterSpec struct {
	Categories []string `json:"categories,omitempty"`
	Titles     []string `json:"titles,omitempty"`
	Chapters   []string `json:"chapters,omitempty"`
}

// Empty reports whether the spec places no constraint at all.
func (f FilterSpec) Empty() bool {
	return len(f.Categories) == 0 && len(f.Titles) == 0 && len(f.Chapters) == 0
}

// Matches reports whether any term occurs as a case-insensitive substring
// of text. An empty term set matches everything.
func Matches(text string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// MatchCategory reports whether a category passes the category dimension.
func (f FilterSpec) MatchCategory(name string) bool {
	return Matches(name, f.Categories)
}

// MatchTitle reports whether a guide passes the title dimension.
func (f FilterSpec) MatchTitle(title string) bool {
	return Matches(title, f.Titles)
}

// FilterHeadings applies the chapter dimension to a guide's heading
// sequence. A chapter (h2) heading gates itself and every deeper heading
// until the next h2, so a section never survives under a removed chapter.
// Level-1 headings are guide identity and are always kept, never matched
// against the chapter terms.
func (f FilterSpec) FilterHeadings(headings []Heading) []Heading {
	if len(f.Chapters) == 0 {
		return headings
	}
	var kept []Heading
	include := false
	for _, h := range headings {
		if h.Level == LevelTitle {
			kept = append(kept, h)
			continue
		}
		if h.Level == LevelChapter {
			include = Matches(h.Text, f.Chapters)
		}
		if include {
			kept = append(kept, h)
		}
	}
	return kept
}
