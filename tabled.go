// Package tabled renders structured records and raw string rows as
// aligned, border-decorated text tables.
//
// Content is assembled into a grid.Matrix either from records
// implementing the Tabled interface (see New and Mapper) or from raw
// rows (see Builder). Rendering is a pure function of the matrix and the
// table's configuration: no I/O, no state between renders, safe to run
// concurrently from independent goroutines.
package tabled

import (
	"github.com/scirin/tabled/grid"
	"github.com/scirin/tabled/style"
)

// Table is buildable table content plus its render configuration.
type Table struct {
	matrix grid.Matrix
	cfg    grid.Config
	err    error
}

// New builds a table from records: a header row from the first record's
// Headers, then one row per record. Directives (skip, rename, order) are
// available through Mapper.
func New[T Tabled](records []T) *Table {
	rs := make([]Tabled, len(records))
	for i, r := range records {
		rs[i] = r
	}
	t, err := NewMapper().Table(rs...)
	if err != nil {
		// The default mapper carries no directives, so the only failure
		// mode is a record whose Headers and Fields disagree. The error
		// is held until Render so call chaining stays intact.
		return &Table{cfg: grid.DefaultConfig(), err: err}
	}
	return t
}

// FromMatrix wraps an already-assembled matrix.
func FromMatrix(m grid.Matrix) *Table {
	return &Table{matrix: m, cfg: grid.DefaultConfig()}
}

// Matrix exposes the table's content for inspection or direct editing.
func (t *Table) Matrix() grid.Matrix {
	return t.matrix
}

// Config exposes the underlying render configuration for settings not
// covered by the Set helpers.
func (t *Table) Config() *grid.Config {
	return &t.cfg
}

// SetStyle replaces the table's border glyphs and rule policy.
func (t *Table) SetStyle(s style.Style) *Table {
	t.cfg.Borders = s.Borders
	t.cfg.Rules = s.Rules
	return t
}

// SetTheme applies a full theme: style, padding, alignment, overflow,
// width budget and color decoration.
func (t *Table) SetTheme(th *style.Theme) *Table {
	cfg, err := th.Config()
	if err == nil {
		t.cfg = cfg
	}
	return t
}

// SetAlignment sets the default horizontal alignment.
func (t *Table) SetAlignment(a grid.Alignment) *Table {
	t.cfg.Align = a
	return t
}

// SetMaxWidth sets the total width budget including border characters.
// The budget is best-effort: columns never shrink below their minimum.
func (t *Table) SetMaxWidth(w int) *Table {
	t.cfg.MaxWidth = w
	return t
}

// SetOverflow sets the policy for content wider than its box.
func (t *Table) SetOverflow(o grid.Overflow) *Table {
	t.cfg.Overflow = o
	return t
}

// SetColumn constrains one column's resolved width.
func (t *Table) SetColumn(col int, c grid.Constraint) *Table {
	if t.cfg.Columns == nil {
		t.cfg.Columns = make(map[int]grid.Constraint)
	}
	t.cfg.Columns[col] = c
	return t
}

// SetSpan merges the region anchored at (row, col) into a single cell.
// The span is validated at render time.
func (t *Table) SetSpan(row, col, rowSpan, colSpan int) *Table {
	if row >= 0 && row < len(t.matrix) && col >= 0 && col < len(t.matrix[row]) {
		t.matrix[row][col].Span = grid.Span{Rows: rowSpan, Cols: colSpan}
	}
	return t
}

// SetDecorator installs a per-cell line decorator (color markup).
func (t *Table) SetDecorator(d grid.Decorator) *Table {
	t.cfg.Decorate = d
	return t
}

// Render lays the table out and returns the bordered text. A mapping or
// configuration error (mismatched record fields, span out of bounds,
// overlapping spans, contradictory constraints) is returned before any
// output is produced.
func (t *Table) Render() (string, error) {
	if t.err != nil {
		return "", t.err
	}
	return grid.Render(t.matrix, &t.cfg)
}

// String renders the table, returning the empty string when the
// configuration is invalid. Use Render to observe the error.
func (t *Table) String() string {
	out, err := t.Render()
	if err != nil {
		return ""
	}
	return out
}
