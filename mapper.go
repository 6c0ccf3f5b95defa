package tabled

import (
	"errors"
	"fmt"

	"github.com/scirin/tabled/grid"
)

// Tabled is implemented by record types that can present themselves as a
// table row. Headers and Fields must return slices of equal length, and
// every record in one table must agree with the first record's headers.
type Tabled interface {
	// Headers returns the column titles for this record type.
	Headers() []string
	// Fields returns the record's values, one per header.
	Fields() []string
}

// Mapping-layer configuration errors.
var (
	// ErrFieldCount reports a record whose Fields length differs from
	// its Headers length.
	ErrFieldCount = errors.New("record field count does not match headers")
	// ErrOrderRange reports an order directive index outside the
	// remaining field range.
	ErrOrderRange = errors.New("order index out of fields range")
	// ErrUnknownField reports a directive naming a header that does not
	// exist on the record type.
	ErrUnknownField = errors.New("unknown field name")
)

// Mapper converts records into table rows, applying optional skip,
// rename and order directives keyed by the record's original header
// names. Directives replace the reflection-style field attributes of
// other table libraries with explicit calls.
type Mapper struct {
	skip   map[string]bool
	rename map[string]string
	order  map[string]int
}

// NewMapper returns a directive-free mapper.
func NewMapper() *Mapper {
	return &Mapper{
		skip:   make(map[string]bool),
		rename: make(map[string]string),
		order:  make(map[string]int),
	}
}

// Skip drops the named columns from the output.
func (mp *Mapper) Skip(names ...string) *Mapper {
	for _, n := range names {
		mp.skip[n] = true
	}
	return mp
}

// Rename retitles a column; the original name stays the key for other
// directives.
func (mp *Mapper) Rename(old, new string) *Mapper {
	mp.rename[old] = new
	return mp
}

// Order pins a column to a target index after skips are applied; columns
// without a directive keep their relative order in the remaining slots.
func (mp *Mapper) Order(name string, index int) *Mapper {
	mp.order[name] = index
	return mp
}

// Table maps records into a table: one header row, then one row per
// record. The first record defines the headers; records with a
// mismatched field count are a configuration error.
func (mp *Mapper) Table(records ...Tabled) (*Table, error) {
	t := &Table{cfg: grid.DefaultConfig()}
	if len(records) == 0 {
		return t, nil
	}

	headers := records[0].Headers()
	plan, err := mp.plan(headers)
	if err != nil {
		return nil, err
	}

	titled := make([]string, len(plan))
	for i, src := range plan {
		name := headers[src]
		if renamed, ok := mp.rename[name]; ok {
			name = renamed
		}
		titled[i] = name
	}

	matrix := make(grid.Matrix, 0, len(records)+1)
	matrix = append(matrix, headerRow(titled))
	for i, rec := range records {
		fields := rec.Fields()
		if len(fields) != len(headers) {
			return nil, fmt.Errorf("record %d has %d fields, want %d: %w",
				i, len(fields), len(headers), ErrFieldCount)
		}
		row := make([]grid.Cell, len(plan))
		for j, src := range plan {
			row[j] = grid.NewCell(fields[src])
		}
		matrix = append(matrix, row)
	}

	t.matrix = matrix
	return t, nil
}

// plan resolves directives into source-column indexes in output order.
func (mp *Mapper) plan(headers []string) ([]int, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}
	for name := range mp.skip {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("skip %q: %w", name, ErrUnknownField)
		}
	}
	for name := range mp.rename {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("rename %q: %w", name, ErrUnknownField)
		}
	}

	var kept []int
	for i, h := range headers {
		if !mp.skip[h] {
			kept = append(kept, i)
		}
	}

	if len(mp.order) == 0 {
		return kept, nil
	}

	// Pinned columns land on their target index; the rest fill the free
	// slots left to right.
	out := make([]int, len(kept))
	taken := make([]bool, len(kept))
	pinned := make(map[int]bool, len(headers))
	for name, target := range mp.order {
		src, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("order %q: %w", name, ErrUnknownField)
		}
		if mp.skip[name] {
			continue
		}
		if target < 0 || target >= len(kept) {
			return nil, fmt.Errorf("order %q to %d of %d columns: %w",
				name, target, len(kept), ErrOrderRange)
		}
		if taken[target] {
			return nil, fmt.Errorf("order %q to occupied index %d: %w",
				name, target, ErrOrderRange)
		}
		out[target] = src
		taken[target] = true
		pinned[src] = true
	}
	slot := 0
	for _, src := range kept {
		if pinned[src] {
			continue
		}
		for taken[slot] {
			slot++
		}
		out[slot] = src
		taken[slot] = true
	}
	return out, nil
}

func headerRow(titles []string) []grid.Cell {
	row := make([]grid.Cell, len(titles))
	for i, h := range titles {
		row[i] = grid.NewCell(h)
	}
	return row
}

// Inline splices a nested record into a parent's header and field lists,
// prefixing the nested headers. Record types embed other records by
// appending Inline's results inside their own Headers and Fields.
func Inline(prefix string, v Tabled) ([]string, []string) {
	nested := v.Headers()
	headers := make([]string, len(nested))
	for i, h := range nested {
		headers[i] = prefix + h
	}
	return headers, v.Fields()
}
