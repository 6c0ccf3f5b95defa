package grid

import "strings"

// Render lays out and renders the matrix under the configuration. It is
// a pure function: identical inputs produce byte-identical output. A
// configuration error is returned before any output is produced; an
// empty matrix renders to the empty string.
func Render(m Matrix, cfg *Config) (string, error) {
	res, err := Resolve(m, cfg)
	if err != nil {
		return "", err
	}
	if res.rows == 0 || res.cols == 0 {
		return "", nil
	}
	r := renderer{m: m, cfg: cfg, res: res}
	return r.run(), nil
}

// renderer holds the transient state of one render walk.
type renderer struct {
	m   Matrix
	cfg *Config
	res *Resolved

	// contentStart[r] is the output line index of row r's first content
	// line, counting shared border lines exactly once.
	contentStart []int
	// boxes holds each anchor cell's formatted lines. A spanning cell's
	// box covers its rows' heights plus the border lines it absorbs.
	boxes map[Pos][]string
}

func (r *renderer) run() string {
	r.layoutBoxes()

	var lines []string
	for b := 0; b <= r.res.rows; b++ {
		if r.cfg.hRule(b, r.res.rows) != 0 {
			lines = append(lines, r.borderLine(b, len(lines)))
		}
		if b < r.res.rows {
			for k := 0; k < r.res.Heights[b]; k++ {
				lines = append(lines, r.contentLine(b, len(lines)))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (r *renderer) layoutBoxes() {
	res, cfg := r.res, r.cfg

	r.contentStart = make([]int, res.rows)
	idx := 0
	for b := 0; b < res.rows; b++ {
		if cfg.hRule(b, res.rows) != 0 {
			idx++
		}
		r.contentStart[b] = idx
		idx += res.Heights[b]
	}

	sep := 0
	if cfg.Borders.Vertical != 0 {
		sep = 1
	}
	r.boxes = make(map[Pos][]string)
	for row := 0; row < res.rows; row++ {
		for col := 0; col < res.cols; col++ {
			if res.Covered(row, col) {
				continue
			}
			cell := r.m[row][col]
			rs, cs := cell.RowSpan(), cell.ColSpan()

			w := (cs - 1) * sep
			for c := col; c < col+cs; c++ {
				w += res.Widths[c]
			}
			h := res.absorbedRules(cfg, row, rs)
			for rr := row; rr < row+rs; rr++ {
				h += res.Heights[rr]
			}
			r.boxes[Pos{Row: row, Col: col}] = formatBox(cell, w, h, cfg)
		}
	}
}

// segment returns the formatted line of the cell anchored at a for the
// output line at index out, decorated when a decorator is configured.
func (r *renderer) segment(a Pos, out int) string {
	text := r.boxes[a][out-r.contentStart[a.Row]]
	if r.cfg.Decorate != nil {
		text = r.cfg.Decorate(a.Row, a.Col, text)
	}
	return text
}

// contentLine emits one content line of the given row: the left border,
// each covering cell's formatted text with separators where no span
// suppresses them, and the right border.
func (r *renderer) contentLine(row, out int) string {
	res, cfg := r.res, r.cfg

	var sb strings.Builder
	if g := cfg.vRule(0, res.cols); g != 0 {
		sb.WriteRune(g)
	}
	c := 0
	for c < res.cols {
		a := res.cover[row][c]
		end := c + 1
		for end < res.cols && res.cover[row][end] == a {
			end++
		}
		sb.WriteString(r.segment(a, out))
		c = end
		if g := cfg.vRule(c, res.cols); g != 0 {
			sb.WriteRune(g)
		}
	}
	return sb.String()
}

// borderLine emits the rule at row boundary b. Segments crossed by a row
// span carry the spanning cell's continuing content instead of a rule.
func (r *renderer) borderLine(b, out int) string {
	res, cfg := r.res, r.cfg

	var sb strings.Builder
	if cfg.vRule(0, res.cols) != 0 {
		r.writeJoint(&sb, b, 0)
	}
	c := 0
	for c < res.cols {
		if res.hSuppressed(b, c) {
			a := res.cover[b][c]
			end := c + 1
			for end < res.cols && res.cover[b][end] == a {
				end++
			}
			sb.WriteString(r.segment(a, out))
			c = end
		} else {
			g := cfg.hRule(b, res.rows)
			sb.WriteString(strings.Repeat(string(g), res.Widths[c]))
			c++
		}
		if cfg.vRule(c, res.cols) != 0 {
			r.writeJoint(&sb, b, c)
		}
	}
	return sb.String()
}

func (r *renderer) writeJoint(sb *strings.Builder, b, j int) {
	g := r.res.jointAt(r.cfg, b, j)
	if g == 0 {
		g = ' '
	}
	sb.WriteRune(g)
}
