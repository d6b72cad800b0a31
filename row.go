package docinv

import "context"

// Columns is the inventory header row, in output order.
var Columns = []string{
	"Category",
	"Titles",
	"Chapters",
	"Sections",
	"Sub-sections",
	"Sub-sub-sections",
	"Details",
	"Notes",
	"URL",
}

// Row is one record in the flattened inventory. An empty cell means "same
// value as the nearest populated cell above in that column". Notes is
// reserved for manual editing downstream and is always empty in generated
// rows. A zero-value Row is a guide separator.
type Row struct {
	Category      string `json:"category,omitempty"`
	Title         string `json:"title,omitempty"`
	Chapter       string `json:"chapter,omitempty"`
	Section       string `json:"section,omitempty"`
	Subsection    string `json:"subsection,omitempty"`
	Subsubsection string `json:"subsubsection,omitempty"`
	Detail        string `json:"detail,omitempty"`
	Notes         string `json:"notes,omitempty"`
	URL           string `json:"url,omitempty"`
}

// IsBlank reports whether the row is a separator (every field empty).
func (r Row) IsBlank() bool {
	return r == Row{}
}

// Record returns the row's cells in Columns order.
func (r Row) Record() []string {
	return []string{
		r.Category,
		r.Title,
		r.Chapter,
		r.Section,
		r.Subsection,
		r.Subsubsection,
		r.Detail,
		r.Notes,
		r.URL,
	}
}

// Cell returns the heading cell for a level and whether the level maps to a
// heading column at all (LevelTitle does not; it is the Titles cell).
func (r Row) Cell(l Level) (string, bool) {
	switch l {
	case LevelChapter:
		return r.Chapter, true
	case LevelSection:
		return r.Section, true
	case LevelSubsection:
		return r.Subsection, true
	case LevelSubsubsection:
		return r.Subsubsection, true
	case LevelDetail:
		return r.Detail, true
	}
	return "", false
}

// setCell assigns the heading cell for a level. LevelTitle is not a
// heading column and is ignored.
func (r *Row) setCell(l Level, v string) {
	switch l {
	case LevelChapter:
		r.Chapter = v
	case LevelSection:
		r.Section = v
	case LevelSubsection:
		r.Subsection = v
	case LevelSubsubsection:
		r.Subsubsection = v
	case LevelDetail:
		r.Detail = v
	}
}

// RowWriter persists an ordered row sequence.
type RowWriter interface {
	// WriteRows writes the header followed by rows to the writer's
	// destination.
	WriteRows(ctx context.Context, rows []Row) error
}
