package docinv

// registers hold the value currently in effect for each inventory column.
// A cell is populated on an emitted row only when its value differs from
// the register, which is how column inheritance stays readable: an empty
// cell means "same as the nearest populated cell above".
type registers struct {
	category      string
	title         string
	chapter       string
	section       string
	subsection    string
	subsubsection string
	detail        string
}

// slot returns the register for a heading level.
func (r *registers) slot(l Level) *string {
	switch l {
	case LevelTitle:
		return &r.title
	case LevelChapter:
		return &r.chapter
	case LevelSection:
		return &r.section
	case LevelSubsection:
		return &r.subsection
	case LevelSubsubsection:
		return &r.subsubsection
	case LevelDetail:
		return &r.detail
	}
	return nil
}

// resetBelow clears every register strictly deeper than l. Entering a new
// guide clears chapter and below; a heading at level L clears everything
// deeper than L.
func (r *registers) resetBelow(l Level) {
	for lv := l + 1; lv <= LevelDetail; lv++ {
		*r.slot(lv) = ""
	}
}

// BuildRows flattens the category tree into the final ordered row
// sequence. Ordering is categories in navigation order, guides in
// navigation order within each category, headings in document order within
// each guide. A blank row separates consecutive guides; none appears
// before the first guide or after the last. Each guide contributes an
// identity row (category/title columns) followed by one row per content
// heading (h2-h6); the guide's own h1 is represented by the identity row
// and is skipped here.
func BuildRows(categories []Category) []Row {
	var rows []Row
	var reg registers
	first := true

	for _, cat := range categories {
		for _, g := range cat.Guides {
			if !first {
				rows = append(rows, Row{})
			}
			first = false

			reg.resetBelow(LevelTitle)
			row := Row{URL: g.URL}
			if cat.Name != reg.category {
				reg.category = cat.Name
				row.Category = cat.Name
			}
			if g.Title != reg.title {
				reg.title = g.Title
				row.Title = g.Title
			}
			rows = append(rows, row)

			for _, h := range g.Headings {
				if h.Level <= LevelTitle || !h.Level.Valid() {
					continue
				}
				reg.resetBelow(h.Level)
				row := Row{URL: AnchorURL(g.URL, h.Anchor)}
				slot := reg.slot(h.Level)
				if h.Text != *slot {
					*slot = h.Text
					row.setCell(h.Level, h.Text)
				}
				rows = append(rows, row)
			}
		}
	}

	return rows
}
