package docinv

// Level identifies the depth of a heading and the inventory column it maps
// to. Values correspond to HTML heading elements h1 through h6.
type Level int

// Heading levels in column order. LevelTitle (h1) is the guide's own title
// and never becomes a content row; LevelChapter (h2) through LevelDetail
// (h6) map to the Chapters..Details columns.
const (
	LevelTitle Level = iota + 1
	LevelChapter
	LevelSection
	LevelSubsection
	LevelSubsubsection
	LevelDetail
)

// Valid reports whether l is within the h1-h6 range.
func (l Level) Valid() bool {
	return l >= LevelTitle && l <= LevelDetail
}

// Heading is a titled content boundary within a guide.
type Heading struct {
	Level  Level  `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// HeadingExtractor extracts the ordered heading sequence from a guide's
// rendered HTML.
type HeadingExtractor interface {
	// ExtractHeadings returns every anchored h1-h6 heading within the
	// guide's primary content region, in document order. Headings without
	// a resolvable anchor are omitted. Returns EEXTRACT if the page has no
	// recognizable content region.
	ExtractHeadings(html string) ([]Heading, error)
}
