package grid

import (
	"strings"

	"github.com/scirin/tabled/internal/format"
)

// replacement substitutes a wide rune that cannot fit the space left on a
// wrapped line, so every wrapped line lands exactly on the box width.
const replacement = '�'

// formatBox renders a cell's content into exactly height lines, each
// exactly width display cells, applying padding, overflow policy and
// alignment from the configuration with per-cell overrides.
func formatBox(cell Cell, width, height int, cfg *Config) []string {
	pad := cfg.padding(cell)
	fill := cfg.fill()

	area := width - pad.Left - pad.Right
	if area < 0 {
		area = 0
	}

	raw := cell.Lines()
	if len(raw) == 0 {
		raw = []Line{{}}
	}

	var lines []string
	for _, l := range raw {
		if l.Width <= area {
			lines = append(lines, l.Text)
			continue
		}
		switch cfg.Overflow {
		case OverflowTruncate:
			lines = append(lines, format.TruncateWithEllipsis(l.Text, area, cfg.ellipsis()))
		case OverflowWrapWords:
			lines = append(lines, wrapWords(l.Text, area)...)
		default:
			lines = append(lines, wrapHard(l.Text, area)...)
		}
	}

	slot := height - pad.Top - pad.Bottom
	if slot < 0 {
		slot = 0
	}
	// More lines than the box holds only happens under a fixed height
	// clamp; excess lines are dropped.
	if len(lines) > slot {
		lines = lines[:slot]
	}

	free := slot - len(lines)
	above := 0
	switch cfg.valign(cell) {
	case VAlignCenter:
		above = free / 2
	case VAlignBottom:
		above = free
	}

	align := cfg.align(cell)
	out := make([]string, 0, height)
	blank := strings.Repeat(string(fill), width)
	for i := 0; i < pad.Top+above; i++ {
		out = append(out, blank)
	}
	for _, l := range lines {
		out = append(out, padLine(l, width, pad, align, fill))
	}
	for len(out) < height {
		out = append(out, blank)
	}
	// A fixed height smaller than the padding alone clips from the top.
	if len(out) > height {
		out = out[:height]
	}
	return out
}

// wrappedLineCount is the number of lines a cell's content occupies once
// the overflow policy is applied at the given content area. The resolver
// uses it so row heights account for wrapping at the final column widths.
func wrappedLineCount(cell Cell, area int, cfg *Config) int {
	lines := cell.Lines()
	if len(lines) == 0 {
		return 1
	}
	n := 0
	for _, l := range lines {
		switch {
		case l.Width <= area, cfg.Overflow == OverflowTruncate:
			n++
		case cfg.Overflow == OverflowWrapWords:
			n += len(wrapWords(l.Text, area))
		default:
			n += len(wrapHard(l.Text, area))
		}
	}
	return n
}

// padLine aligns text within the box width, splitting the leftover space
// per the alignment; center ties give the extra cell to the right.
func padLine(text string, width int, pad Padding, align Alignment, fill rune) string {
	area := width - pad.Left - pad.Right
	if area < 0 {
		area = 0
	}
	free := area - format.StringWidth(text)
	if free < 0 {
		free = 0
	}

	var left, right int
	switch align {
	case AlignRight:
		left = free
	case AlignCenter:
		left = free / 2
		right = free - left
	default:
		right = free
	}

	f := string(fill)
	var sb strings.Builder
	sb.WriteString(strings.Repeat(f, pad.Left+left))
	sb.WriteString(text)
	sb.WriteString(strings.Repeat(f, right+pad.Right))
	return sb.String()
}

// wrapHard breaks s into lines of at most width display cells with no
// regard for word boundaries. A wide rune straddling the boundary is
// replaced so each full line lands exactly on width.
func wrapHard(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}

	var lines []string
	var sb strings.Builder
	cur := 0
	for _, tok := range format.Tokens(s) {
		if tok.Width == 0 {
			sb.WriteString(tok.Text)
			continue
		}
		text, w := tok.Text, tok.Width
		if w > width {
			// A rune wider than the whole box is replaced outright.
			text, w = string(replacement), 1
		}
		if cur+w > width {
			// Fill the straddled remainder; the rune moves to the next line.
			for cur < width {
				sb.WriteRune(replacement)
				cur++
			}
			lines = append(lines, sb.String())
			sb.Reset()
			cur = 0
		}
		sb.WriteString(text)
		cur += w
		if cur == width {
			lines = append(lines, sb.String())
			sb.Reset()
			cur = 0
		}
	}
	if sb.Len() > 0 || len(lines) == 0 {
		lines = append(lines, sb.String())
	}
	return lines
}

// wrapWords breaks s into lines of at most width display cells,
// preferring space boundaries. A word wider than the box is hard-broken.
func wrapWords(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}

	var lines []string
	var sb strings.Builder
	cur := 0

	flush := func() {
		lines = append(lines, sb.String())
		sb.Reset()
		cur = 0
	}

	for i, word := range strings.Split(s, " ") {
		ww := format.StringWidth(word)
		if i > 0 && cur > 0 && cur < width {
			sb.WriteByte(' ')
			cur++
		}
		switch {
		case cur+ww <= width:
			sb.WriteString(word)
			cur += ww
		case ww <= width:
			flush()
			sb.WriteString(word)
			cur = ww
		default:
			// Word wider than the box: hard-break it, keeping the
			// last fragment open for following words.
			if cur > 0 {
				flush()
			}
			frags := wrapHard(word, width)
			for _, f := range frags[:len(frags)-1] {
				lines = append(lines, f)
			}
			last := frags[len(frags)-1]
			sb.WriteString(last)
			cur = format.StringWidth(last)
		}
		if cur == width {
			flush()
		}
	}
	if sb.Len() > 0 || len(lines) == 0 {
		lines = append(lines, sb.String())
	}
	return lines
}
