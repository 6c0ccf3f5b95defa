package grid

// vSuppressed reports whether column boundary j lies strictly inside a
// column span at row r, which removes the separator there so the merged
// cell presents an unbroken interior.
func (res *Resolved) vSuppressed(r, j int) bool {
	if j <= 0 || j >= res.cols {
		return false
	}
	return res.cover[r][j-1] == res.cover[r][j]
}

// hSuppressed reports whether row boundary b lies strictly inside a row
// span at column c.
func (res *Resolved) hSuppressed(b, c int) bool {
	if b <= 0 || b >= res.rows {
		return false
	}
	return res.cover[b-1][c] == res.cover[b][c]
}

// jointAt selects the lattice glyph at row boundary b, column boundary j.
// The glyph follows from which of the four arms are present; an arm is
// absent when its glyph is unset or the segment is suppressed by a span.
// Returns 0 when no glyph applies (the caller fills the position when the
// boundary occupies width).
func (res *Resolved) jointAt(cfg *Config, b, j int) rune {
	h := cfg.hRule(b, res.rows)
	v := cfg.vRule(j, res.cols)

	up := b > 0 && v != 0 && !res.vSuppressed(b-1, j)
	down := b < res.rows && v != 0 && !res.vSuppressed(b, j)
	left := j > 0 && h != 0 && !res.hSuppressed(b, j-1)
	right := j < res.cols && h != 0 && !res.hSuppressed(b, j)

	bd := cfg.Borders
	var g rune
	switch {
	case up && down && left && right:
		g = bd.Intersection
	case !up && down && left && right:
		g = bd.TopIntersection
	case up && !down && left && right:
		g = bd.BottomIntersection
	case up && down && !left && right:
		g = bd.LeftIntersection
	case up && down && left && !right:
		g = bd.RightIntersection
	case !up && down && !left && right:
		g = bd.TopLeft
	case !up && down && left && !right:
		g = bd.TopRight
	case up && !down && !left && right:
		g = bd.BottomLeft
	case up && !down && left && !right:
		g = bd.BottomRight
	}

	// Degrade to a plain rule when the preset has no joint glyph or only
	// collinear arms remain.
	if g == 0 {
		switch {
		case left && right:
			g = h
		case up && down:
			g = v
		}
	}
	return g
}
