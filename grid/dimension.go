package grid

import (
	"errors"
	"fmt"
	"sort"
)

// Configuration errors detected before any layout output is produced.
var (
	// ErrRaggedMatrix reports rows of unequal length.
	ErrRaggedMatrix = errors.New("matrix rows have unequal lengths")
	// ErrSpanOutOfBounds reports a span extending past the matrix.
	ErrSpanOutOfBounds = errors.New("span extends past matrix bounds")
	// ErrSpanOverlap reports two spans covering the same coordinate.
	ErrSpanOverlap = errors.New("overlapping span regions")
	// ErrConstraint reports a contradictory width or height constraint.
	ErrConstraint = errors.New("contradictory size constraint")
)

// Pos is a logical grid coordinate.
type Pos struct {
	Row int
	Col int
}

// Resolved holds the outcome of dimension resolution for one render:
// final column widths, row heights and the span coverage map. It is
// allocated fresh per render and discarded afterwards.
type Resolved struct {
	// Widths is the display width of each column, excluding borders.
	Widths []int
	// Heights is the line count of each row, excluding border lines.
	Heights []int

	rows  int
	cols  int
	cover [][]Pos
}

// Anchor returns the anchor coordinate of the cell covering (r, c).
func (res *Resolved) Anchor(r, c int) Pos {
	return res.cover[r][c]
}

// Covered reports whether (r, c) is shadowed by another cell's span.
func (res *Resolved) Covered(r, c int) bool {
	return res.cover[r][c] != Pos{Row: r, Col: c}
}

// Resolve validates the matrix and computes final column widths and row
// heights under the configuration's constraints and spans. It returns a
// configuration error before producing any dimensions; it never returns
// partial results.
func Resolve(m Matrix, cfg *Config) (*Resolved, error) {
	res, err := validate(m)
	if err != nil {
		return nil, err
	}
	if err := validateConstraints(cfg); err != nil {
		return nil, err
	}
	if res.rows == 0 || res.cols == 0 {
		return res, nil
	}

	// Heights depend on how content wraps at the final column widths, so
	// every width decision, the budget included, settles first.
	res.resolveWidths(m, cfg)
	res.applyBudget(m, cfg)
	res.resolveHeights(m, cfg)
	return res, nil
}

// validate checks rectangularity and that span regions partition the
// coordinate space, and builds the coverage map.
func validate(m Matrix) (*Resolved, error) {
	rows := m.Rows()
	cols := m.Cols()
	res := &Resolved{rows: rows, cols: cols}

	cover := make([][]Pos, rows)
	marked := make([][]bool, rows)
	for r := range m {
		if len(m[r]) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w",
				r, len(m[r]), cols, ErrRaggedMatrix)
		}
		cover[r] = make([]Pos, cols)
		marked[r] = make([]bool, cols)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if marked[r][c] {
				// Shadowed placeholder; a span declared here would
				// overlap the covering cell's region.
				if m[r][c].spanning() {
					return nil, fmt.Errorf("cell (%d,%d): %w", r, c, ErrSpanOverlap)
				}
				continue
			}
			cell := m[r][c]
			rs, cs := cell.RowSpan(), cell.ColSpan()
			if r+rs > rows || c+cs > cols {
				return nil, fmt.Errorf("cell (%d,%d) span %dx%d: %w",
					r, c, rs, cs, ErrSpanOutOfBounds)
			}
			for rr := r; rr < r+rs; rr++ {
				for cc := c; cc < c+cs; cc++ {
					if marked[rr][cc] {
						return nil, fmt.Errorf("cell (%d,%d): %w", r, c, ErrSpanOverlap)
					}
					marked[rr][cc] = true
					cover[rr][cc] = Pos{Row: r, Col: c}
				}
			}
		}
	}

	res.cover = cover
	return res, nil
}

func validateConstraints(cfg *Config) error {
	for c, cons := range cfg.Columns {
		if cons.MinWidth > 0 && cons.MaxWidth > 0 && cons.MinWidth > cons.MaxWidth {
			return fmt.Errorf("column %d: min %d > max %d: %w",
				c, cons.MinWidth, cons.MaxWidth, ErrConstraint)
		}
	}
	for r, cons := range cfg.RowHeights {
		if cons.MinHeight > 0 && cons.MaxHeight > 0 && cons.MinHeight > cons.MaxHeight {
			return fmt.Errorf("row %d: min %d > max %d: %w",
				r, cons.MinHeight, cons.MaxHeight, ErrConstraint)
		}
	}
	return nil
}

// requiredWidth is the box width a cell needs to hold its content without
// wrapping, including its padding.
func requiredWidth(cell Cell, cfg *Config) int {
	pad := cfg.padding(cell)
	need := cell.ContentWidth() + pad.Left + pad.Right
	if cell.MaxWidth > 0 && need > cell.MaxWidth {
		need = cell.MaxWidth
	}
	if cell.MinWidth > 0 && need < cell.MinWidth {
		need = cell.MinWidth
	}
	return need
}

// requiredHeight is the box height a cell needs at its resolved box
// width, including padding. Lines wider than the content area count per
// the overflow policy: wrapped lines all count, truncation keeps one
// line per source line. An empty cell still occupies one line.
func requiredHeight(cell Cell, boxWidth int, cfg *Config) int {
	pad := cfg.padding(cell)
	area := boxWidth - pad.Left - pad.Right
	if area < 0 {
		area = 0
	}
	return wrappedLineCount(cell, area, cfg) + pad.Top + pad.Bottom
}

// boxWidth is the display width of a cell box anchored at column c,
// spanning colSpan columns plus the separators it absorbs.
func (res *Resolved) boxWidth(cfg *Config, c, colSpan int) int {
	w := 0
	if cfg.Borders.Vertical != 0 {
		w = colSpan - 1
	}
	for cc := c; cc < c+colSpan; cc++ {
		w += res.Widths[cc]
	}
	return w
}

func (res *Resolved) resolveWidths(m Matrix, cfg *Config) {
	widths := make([]int, res.cols)

	// Single-column cells seed the baseline; spanning cells are deferred
	// so they cannot inflate one column disproportionately.
	var spanned []Pos
	for r := 0; r < res.rows; r++ {
		for c := 0; c < res.cols; c++ {
			if res.Covered(r, c) {
				continue
			}
			cell := m[r][c]
			if cell.ColSpan() > 1 {
				spanned = append(spanned, Pos{Row: r, Col: c})
				continue
			}
			if need := requiredWidth(cell, cfg); need > widths[c] {
				widths[c] = need
			}
		}
	}

	// Smallest spans first so later, larger spans see settled widths.
	sort.Slice(spanned, func(i, j int) bool {
		a, b := m[spanned[i].Row][spanned[i].Col], m[spanned[j].Row][spanned[j].Col]
		if a.ColSpan() != b.ColSpan() {
			return a.ColSpan() < b.ColSpan()
		}
		if spanned[i].Row != spanned[j].Row {
			return spanned[i].Row < spanned[j].Row
		}
		return spanned[i].Col < spanned[j].Col
	})

	sep := 0
	if cfg.Borders.Vertical != 0 {
		sep = 1
	}
	for _, p := range spanned {
		cell := m[p.Row][p.Col]
		cs := cell.ColSpan()
		need := requiredWidth(cell, cfg)
		avail := (cs - 1) * sep
		for c := p.Col; c < p.Col+cs; c++ {
			avail += widths[c]
		}
		if need > avail {
			distribute(widths[p.Col:p.Col+cs], need-avail)
		}
	}

	// Explicit per-column clamps are applied after natural and span
	// resolution; wrapping absorbs any deficit they introduce.
	for c := 0; c < res.cols; c++ {
		cons, ok := cfg.Columns[c]
		if !ok {
			continue
		}
		fixed := cons.Width
		if fixed == 0 && cons.Percent > 0 && cfg.MaxWidth > 0 {
			fixed = cfg.MaxWidth * cons.Percent / 100
		}
		if fixed > 0 {
			widths[c] = fixed
			continue
		}
		if cons.MinWidth > 0 && widths[c] < cons.MinWidth {
			widths[c] = cons.MinWidth
		}
		if cons.MaxWidth > 0 && widths[c] > cons.MaxWidth {
			widths[c] = cons.MaxWidth
		}
	}

	res.Widths = widths
}

// distribute spreads deficit across ws proportionally to each entry's
// current share, equal shares when all entries are zero. Remainders go to
// the lowest indexes first.
func distribute(ws []int, deficit int) {
	total := 0
	for _, w := range ws {
		total += w
	}
	if total == 0 {
		base := deficit / len(ws)
		rem := deficit % len(ws)
		for i := range ws {
			ws[i] += base
			if i < rem {
				ws[i]++
			}
		}
		return
	}

	added := 0
	for i, w := range ws {
		add := deficit * w / total
		ws[i] += add
		added += add
	}
	for i := 0; added < deficit; i = (i + 1) % len(ws) {
		ws[i]++
		added++
	}
}

// absorbedRules counts the internal horizontal rules a row span crosses;
// those lines become part of the spanning cell's box.
func (res *Resolved) absorbedRules(cfg *Config, r, rowSpan int) int {
	n := 0
	for b := r + 1; b < r+rowSpan; b++ {
		if cfg.hRule(b, res.rows) != 0 {
			n++
		}
	}
	return n
}

func (res *Resolved) resolveHeights(m Matrix, cfg *Config) {
	heights := make([]int, res.rows)

	var spanned []Pos
	for r := 0; r < res.rows; r++ {
		for c := 0; c < res.cols; c++ {
			if res.Covered(r, c) {
				continue
			}
			cell := m[r][c]
			if cell.RowSpan() > 1 {
				spanned = append(spanned, Pos{Row: r, Col: c})
				continue
			}
			need := requiredHeight(cell, res.boxWidth(cfg, c, cell.ColSpan()), cfg)
			if need > heights[r] {
				heights[r] = need
			}
		}
	}

	sort.Slice(spanned, func(i, j int) bool {
		a, b := m[spanned[i].Row][spanned[i].Col], m[spanned[j].Row][spanned[j].Col]
		if a.RowSpan() != b.RowSpan() {
			return a.RowSpan() < b.RowSpan()
		}
		if spanned[i].Row != spanned[j].Row {
			return spanned[i].Row < spanned[j].Row
		}
		return spanned[i].Col < spanned[j].Col
	})

	for _, p := range spanned {
		cell := m[p.Row][p.Col]
		rs := cell.RowSpan()
		need := requiredHeight(cell, res.boxWidth(cfg, p.Col, cell.ColSpan()), cfg)
		avail := res.absorbedRules(cfg, p.Row, rs)
		for r := p.Row; r < p.Row+rs; r++ {
			avail += heights[r]
		}
		if need > avail {
			distribute(heights[p.Row:p.Row+rs], need-avail)
		}
	}

	for r := 0; r < res.rows; r++ {
		cons, ok := cfg.RowHeights[r]
		if !ok {
			continue
		}
		if cons.Height > 0 {
			heights[r] = cons.Height
			continue
		}
		if cons.MinHeight > 0 && heights[r] < cons.MinHeight {
			heights[r] = cons.MinHeight
		}
		if cons.MaxHeight > 0 && heights[r] > cons.MaxHeight {
			heights[r] = cons.MaxHeight
		}
	}

	res.Heights = heights
}

// TotalWidth returns the full rendered line width including borders.
func (res *Resolved) TotalWidth(cfg *Config) int {
	total := 0
	for _, w := range res.Widths {
		total += w
	}
	if cfg.Borders.Left != 0 {
		total++
	}
	if cfg.Borders.Right != 0 {
		total++
	}
	if cfg.Borders.Vertical != 0 && res.cols > 1 {
		total += res.cols - 1
	}
	return total
}

// applyBudget shrinks columns to approach the total width budget:
// largest columns yield first, ties broken by ascending index, and no
// column shrinks below its floor. The budget is a best-effort target, so
// an unsatisfiable budget leaves the table wider than requested.
func (res *Resolved) applyBudget(m Matrix, cfg *Config) {
	if cfg.MaxWidth <= 0 {
		return
	}

	floors := make([]int, res.cols)
	for c := range floors {
		// The floor keeps one content cell visible under the widest
		// effective padding in the column.
		floors[c] = cfg.Padding.Left + cfg.Padding.Right + 1
		for r := 0; r < res.rows; r++ {
			if res.Covered(r, c) {
				continue
			}
			cell := m[r][c]
			if cell.ColSpan() > 1 || cell.Padding == nil {
				continue
			}
			if f := cell.Padding.Left + cell.Padding.Right + 1; f > floors[c] {
				floors[c] = f
			}
		}
		if cons, ok := cfg.Columns[c]; ok {
			switch {
			case cons.Width > 0:
				floors[c] = cons.Width
			case cons.MinWidth > 0 && cons.MinWidth > floors[c]:
				floors[c] = cons.MinWidth
			}
		}
		if floors[c] > res.Widths[c] {
			floors[c] = res.Widths[c]
		}
	}

	for res.TotalWidth(cfg) > cfg.MaxWidth {
		pick := -1
		for c := 0; c < res.cols; c++ {
			if res.Widths[c] <= floors[c] {
				continue
			}
			if pick < 0 || res.Widths[c] > res.Widths[pick] {
				pick = c
			}
		}
		if pick < 0 {
			return
		}
		res.Widths[pick]--
	}
}
