package grid

// Alignment controls horizontal text placement within a column.
type Alignment int

const (
	// AlignDefault defers to the table-level alignment (left when unset).
	AlignDefault Alignment = iota
	// AlignLeft aligns text to the left.
	AlignLeft
	// AlignCenter centers text; a one-cell remainder goes to the right.
	AlignCenter
	// AlignRight aligns text to the right.
	AlignRight
)

// VerticalAlignment controls vertical content placement within a row.
type VerticalAlignment int

const (
	// VAlignDefault defers to the table-level alignment (top when unset).
	VAlignDefault VerticalAlignment = iota
	// VAlignTop places content at the top of the cell box.
	VAlignTop
	// VAlignCenter centers content; a one-line remainder goes below.
	VAlignCenter
	// VAlignBottom places content at the bottom of the cell box.
	VAlignBottom
)

// Overflow selects the policy for content wider than its resolved box.
type Overflow int

const (
	// OverflowWrap hard-breaks lines at the box width.
	OverflowWrap Overflow = iota
	// OverflowWrapWords breaks at whitespace when a word fits, else hard.
	OverflowWrapWords
	// OverflowTruncate cuts the line, appending the configured ellipsis.
	OverflowTruncate
)

// RulePolicy selects which internal horizontal rules are drawn.
type RulePolicy int

const (
	// RuleAll draws a horizontal rule between every pair of rows.
	RuleAll RulePolicy = iota
	// RuleHeaderOnly draws a rule only below the first row.
	RuleHeaderOnly
	// RuleNone draws no internal horizontal rules.
	RuleNone
)

// Borders maps each border position kind to its glyph. A zero rune means
// the position is not drawn and occupies no space.
type Borders struct {
	// Frame edges.
	Top    rune
	Bottom rune
	Left   rune
	Right  rune

	// Internal rules.
	Horizontal rune
	Vertical   rune

	// Frame corners.
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune

	// Tee joints where an internal rule meets the frame.
	TopIntersection    rune
	BottomIntersection rune
	LeftIntersection   rune
	RightIntersection  rune

	// Cross joint of two internal rules.
	Intersection rune
}

// Padding is the fill inserted around cell content, in display cells
// (left/right) and lines (top/bottom).
type Padding struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Constraint bounds one column's resolved width. Width pins the column
// exactly; Percent pins it to a share of Config.MaxWidth. Zero fields are
// unset. Min > Max (both set) is a configuration error.
type Constraint struct {
	Width    int
	Percent  int
	MinWidth int
	MaxWidth int
}

// RowConstraint bounds one row's resolved height in lines.
type RowConstraint struct {
	Height    int
	MinHeight int
	MaxHeight int
}

// Decorator post-processes one formatted content line of a cell, e.g. to
// insert color escapes. It runs after layout has fixed the line, so it
// must only add zero-display-width decoration; widths are measured
// ANSI-aware, so escape markers never desynchronize alignment.
type Decorator func(row, col int, line string) string

// Config is the full render configuration. It is read-only during a
// render and shared by every layout stage.
type Config struct {
	// Borders selects the glyph for each border position kind.
	Borders Borders
	// Rules selects which internal horizontal rules are drawn. Ignored
	// when Borders.Horizontal is unset.
	Rules RulePolicy
	// Padding is the default per-cell padding.
	Padding Padding
	// Fill is the padding rune (space when zero).
	Fill rune
	// Align is the default horizontal alignment.
	Align Alignment
	// VAlign is the default vertical alignment.
	VAlign VerticalAlignment
	// Overflow is the policy for content wider than its box.
	Overflow Overflow
	// Ellipsis is the truncation marker; its display width counts
	// against the box ("…" when empty and Overflow is truncate).
	Ellipsis string
	// Columns holds per-column width constraints keyed by column index.
	Columns map[int]Constraint
	// RowHeights holds per-row height constraints keyed by row index.
	RowHeights map[int]RowConstraint
	// MaxWidth is the total table width budget including border
	// characters (0 = unbounded). The budget is best-effort: columns
	// never shrink below their minimum, so output may exceed it.
	MaxWidth int
	// Decorate, when non-nil, post-processes each formatted content
	// line. Coordinates are the owning cell's anchor.
	Decorate Decorator
}

// DefaultConfig returns a configuration with ASCII borders, one cell of
// horizontal padding, left/top alignment and wrapping overflow.
func DefaultConfig() Config {
	return Config{
		Borders: Borders{
			Top: '-', Bottom: '-', Left: '|', Right: '|',
			Horizontal: '-', Vertical: '|',
			TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
			TopIntersection: '+', BottomIntersection: '+',
			LeftIntersection: '+', RightIntersection: '+',
			Intersection: '+',
		},
		Padding:  Padding{Left: 1, Right: 1},
		Ellipsis: "…",
	}
}

// fill returns the padding rune.
func (c *Config) fill() rune {
	if c.Fill == 0 {
		return ' '
	}
	return c.Fill
}

// ellipsis returns the truncation marker.
func (c *Config) ellipsis() string {
	if c.Ellipsis == "" {
		return "…"
	}
	return c.Ellipsis
}

// hRule returns the rule glyph for row boundary b of rows total, or 0
// when that boundary is not drawn.
func (c *Config) hRule(b, rows int) rune {
	switch {
	case b == 0:
		return c.Borders.Top
	case b == rows:
		return c.Borders.Bottom
	default:
		switch c.Rules {
		case RuleNone:
			return 0
		case RuleHeaderOnly:
			if b != 1 {
				return 0
			}
		}
		return c.Borders.Horizontal
	}
}

// vRule returns the separator glyph for column boundary j of cols total,
// or 0 when that boundary occupies no space.
func (c *Config) vRule(j, cols int) rune {
	switch {
	case j == 0:
		return c.Borders.Left
	case j == cols:
		return c.Borders.Right
	default:
		return c.Borders.Vertical
	}
}

// align resolves a cell's effective horizontal alignment.
func (c *Config) align(cell Cell) Alignment {
	if cell.Align != AlignDefault {
		return cell.Align
	}
	if c.Align != AlignDefault {
		return c.Align
	}
	return AlignLeft
}

// valign resolves a cell's effective vertical alignment.
func (c *Config) valign(cell Cell) VerticalAlignment {
	if cell.VAlign != VAlignDefault {
		return cell.VAlign
	}
	if c.VAlign != VAlignDefault {
		return c.VAlign
	}
	return VAlignTop
}

// padding resolves a cell's effective padding.
func (c *Config) padding(cell Cell) Padding {
	if cell.Padding != nil {
		return *cell.Padding
	}
	return c.Padding
}
