// Package style provides named border presets, yaml-loadable themes and
// color profile handling for table rendering.
package style

import "github.com/scirin/tabled/grid"

// Style names a border glyph set plus its horizontal rule policy.
type Style struct {
	// Name is the preset's lookup key.
	Name string
	// Borders is the glyph per border position kind.
	Borders grid.Borders
	// Rules selects which internal horizontal rules are drawn.
	Rules grid.RulePolicy
}

// ASCII draws the classic +-| table.
func ASCII() Style {
	return Style{
		Name: "ascii",
		Borders: grid.Borders{
			Top: '-', Bottom: '-', Left: '|', Right: '|',
			Horizontal: '-', Vertical: '|',
			TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
			TopIntersection: '+', BottomIntersection: '+',
			LeftIntersection: '+', RightIntersection: '+',
			Intersection: '+',
		},
	}
}

// Modern draws single-line box drawing characters.
func Modern() Style {
	return Style{
		Name: "modern",
		Borders: grid.Borders{
			Top: '─', Bottom: '─', Left: '│', Right: '│',
			Horizontal: '─', Vertical: '│',
			TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
			TopIntersection: '┬', BottomIntersection: '┴',
			LeftIntersection: '├', RightIntersection: '┤',
			Intersection: '┼',
		},
	}
}

// Rounded is Modern with rounded frame corners.
func Rounded() Style {
	s := Modern()
	s.Name = "rounded"
	s.Borders.TopLeft = '╭'
	s.Borders.TopRight = '╮'
	s.Borders.BottomLeft = '╰'
	s.Borders.BottomRight = '╯'
	return s
}

// Double draws double-line box drawing characters.
func Double() Style {
	return Style{
		Name: "double",
		Borders: grid.Borders{
			Top: '═', Bottom: '═', Left: '║', Right: '║',
			Horizontal: '═', Vertical: '║',
			TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
			TopIntersection: '╦', BottomIntersection: '╩',
			LeftIntersection: '╠', RightIntersection: '╣',
			Intersection: '╬',
		},
	}
}

// Markdown renders pipe tables with a rule under the header only.
func Markdown() Style {
	return Style{
		Name: "markdown",
		Borders: grid.Borders{
			Left: '|', Right: '|', Vertical: '|',
			Horizontal:       '-',
			LeftIntersection: '|', RightIntersection: '|',
			Intersection: '|',
		},
		Rules: grid.RuleHeaderOnly,
	}
}

// PSQL mimics psql output: no frame, a header rule joined with '+'.
func PSQL() Style {
	return Style{
		Name: "psql",
		Borders: grid.Borders{
			Vertical:     '|',
			Horizontal:   '-',
			Intersection: '+',
		},
		Rules: grid.RuleHeaderOnly,
	}
}

// Dots draws every border position with dots and colons.
func Dots() Style {
	return Style{
		Name: "dots",
		Borders: grid.Borders{
			Top: '.', Bottom: '.', Left: ':', Right: ':',
			Horizontal: '.', Vertical: ':',
			TopLeft: '.', TopRight: '.', BottomLeft: ':', BottomRight: ':',
			TopIntersection: '.', BottomIntersection: ':',
			LeftIntersection: ':', RightIntersection: ':',
			Intersection: ':',
		},
	}
}

// Blank separates columns with a space and draws no lines.
func Blank() Style {
	return Style{
		Name:    "blank",
		Borders: grid.Borders{Vertical: ' '},
		Rules:   grid.RuleNone,
	}
}

// Empty draws nothing at all: columns abut directly.
func Empty() Style {
	return Style{
		Name:  "empty",
		Rules: grid.RuleNone,
	}
}

// All returns every preset in display order.
func All() []Style {
	return []Style{
		ASCII(), Modern(), Rounded(), Double(),
		Markdown(), PSQL(), Dots(), Blank(), Empty(),
	}
}

// ByName looks a preset up by its lookup key.
func ByName(name string) (Style, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}
	return Style{}, false
}
