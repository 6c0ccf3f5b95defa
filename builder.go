package tabled

import "github.com/scirin/tabled/grid"

// Builder assembles a table from raw string rows. Short rows are padded
// with empty cells so the matrix stays rectangular.
type Builder struct {
	header []string
	rows   [][]string
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetHeader sets the header row.
func (b *Builder) SetHeader(cells ...string) *Builder {
	b.header = cells
	return b
}

// AddRow appends one data row.
func (b *Builder) AddRow(cells ...string) *Builder {
	b.rows = append(b.rows, cells)
	return b
}

// Build produces the table. Column count is the widest row seen; shorter
// rows are right-padded with empty cells.
func (b *Builder) Build() *Table {
	cols := len(b.header)
	for _, r := range b.rows {
		if len(r) > cols {
			cols = len(r)
		}
	}

	var matrix grid.Matrix
	if b.header != nil {
		matrix = append(matrix, paddedRow(b.header, cols))
	}
	for _, r := range b.rows {
		matrix = append(matrix, paddedRow(r, cols))
	}

	return &Table{matrix: matrix, cfg: grid.DefaultConfig()}
}

func paddedRow(cells []string, cols int) []grid.Cell {
	row := make([]grid.Cell, cols)
	for i := 0; i < cols; i++ {
		if i < len(cells) {
			row[i] = grid.NewCell(cells[i])
		} else {
			row[i] = grid.NewCell("")
		}
	}
	return row
}
