// Package grid implements the table layout engine: it resolves per-column
// widths and per-row heights under constraints and spans, formats each
// cell's text into its resolved box, and composes border glyphs into the
// final character grid.
//
// A render is a pure function of (Matrix, Config) to text. The engine
// holds no state between renders, so independent renders may run
// concurrently without coordination.
package grid

import (
	"strings"

	"github.com/scirin/tabled/internal/format"
)

// Span is the row/column extent a cell occupies, anchored at the cell's
// top-left coordinate. Zero or negative components are treated as 1.
type Span struct {
	Rows int
	Cols int
}

// Line is one line of cell content with its precomputed display width.
type Line struct {
	Text  string
	Width int
}

// Cell is one logical cell of a table. Create cells with NewCell; the
// zero value is an empty single-coordinate cell.
type Cell struct {
	// Span is the extent the cell covers. Coordinates shadowed by a
	// span hold placeholder cells whose content is ignored.
	Span Span

	// Align overrides the table's horizontal alignment when not
	// AlignDefault.
	Align Alignment
	// VAlign overrides the table's vertical alignment when not
	// VAlignDefault.
	VAlign VerticalAlignment
	// Padding overrides the table padding when non-nil.
	Padding *Padding
	// MinWidth is a lower bound on the cell's column width (0 = none).
	MinWidth int
	// MaxWidth caps the cell's column width (0 = none).
	MaxWidth int

	lines []Line
}

// NewCell builds a cell from raw text, splitting on explicit newlines and
// measuring each line's display width. Escape sequences and wide runes
// are measured per terminal cell rules, not byte or rune count.
func NewCell(text string) Cell {
	return Cell{lines: splitLines(text)}
}

// NewSpanCell builds a cell covering rowSpan x colSpan coordinates.
func NewSpanCell(text string, rowSpan, colSpan int) Cell {
	c := NewCell(text)
	c.Span = Span{Rows: rowSpan, Cols: colSpan}
	return c
}

func splitLines(text string) []Line {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = Line{Text: p, Width: format.StringWidth(p)}
	}
	return lines
}

// Lines returns the cell's content lines with their display widths.
func (c Cell) Lines() []Line {
	return c.lines
}

// LineCount returns the number of content lines. An empty cell reports 1
// so it still occupies one display line.
func (c Cell) LineCount() int {
	if len(c.lines) == 0 {
		return 1
	}
	return len(c.lines)
}

// ContentWidth returns the widest line's display width.
func (c Cell) ContentWidth() int {
	w := 0
	for _, l := range c.lines {
		if l.Width > w {
			w = l.Width
		}
	}
	return w
}

// RowSpan returns the normalized row extent (always >= 1).
func (c Cell) RowSpan() int {
	if c.Span.Rows < 1 {
		return 1
	}
	return c.Span.Rows
}

// ColSpan returns the normalized column extent (always >= 1).
func (c Cell) ColSpan() int {
	if c.Span.Cols < 1 {
		return 1
	}
	return c.Span.Cols
}

// spanning reports whether the cell covers more than one coordinate.
func (c Cell) spanning() bool {
	return c.RowSpan() > 1 || c.ColSpan() > 1
}

// Matrix is the logical table content: rows of cells addressed by 0-based
// (row, col). Every coordinate must hold a Cell; coordinates covered by a
// neighbor's span are shadowed and their content is ignored.
type Matrix [][]Cell

// NewMatrix builds a matrix of plain cells from raw string rows.
func NewMatrix(rows [][]string) Matrix {
	m := make(Matrix, len(rows))
	for r, row := range rows {
		m[r] = make([]Cell, len(row))
		for c, text := range row {
			m[r][c] = NewCell(text)
		}
	}
	return m
}

// Rows returns the number of logical rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of logical columns (the width of the first
// row; validation rejects ragged matrices).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
