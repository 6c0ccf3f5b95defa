// Package format provides shared display-width-aware string utilities.
//
// All widths are measured in terminal cells: East-Asian wide runes count
// as two cells, combining marks as zero, and ANSI escape sequences (CSI
// and OSC) as zero. This keeps measurements stable whether or not a
// string carries color decoration.
package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Token is one measured unit of a string: either a single visible rune or
// a complete ANSI escape sequence with zero width.
type Token struct {
	// Text is the rune or escape sequence verbatim.
	Text string
	// Width is the display width in terminal cells (0 for escapes).
	Width int
}

// Tokens splits s into visible runes and ANSI escape sequences. CSI
// sequences (ESC [ ... final byte) and OSC sequences (ESC ] ... BEL or
// ESC \) are kept intact as single zero-width tokens. A trailing
// unterminated escape is returned as-is with zero width.
func Tokens(s string) []Token {
	var toks []Token
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != 0x1b {
			toks = append(toks, Token{Text: string(r), Width: runewidth.RuneWidth(r)})
			continue
		}
		j := i + 1
		if j < len(runes) && runes[j] == '[' {
			// CSI: parameters end at the first byte in 0x40-0x7e.
			j++
			for j < len(runes) && (runes[j] < 0x40 || runes[j] > 0x7e) {
				j++
			}
			if j < len(runes) {
				j++
			}
		} else if j < len(runes) && runes[j] == ']' {
			// OSC: terminated by BEL or ST (ESC \).
			j++
			for j < len(runes) && runes[j] != 0x07 && runes[j] != 0x1b {
				j++
			}
			if j < len(runes) && runes[j] == 0x07 {
				j++
			} else if j+1 < len(runes) && runes[j] == 0x1b && runes[j+1] == '\\' {
				j += 2
			}
		} else if j < len(runes) {
			// Two-byte escape (ESC c, ESC 7, ...).
			j++
		}
		toks = append(toks, Token{Text: string(runes[i:j]), Width: 0})
		i = j - 1
	}
	return toks
}

// StringWidth returns the display width of s in terminal cells.
func StringWidth(s string) int {
	// Fast path for plain ASCII without escapes.
	plain := true
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= 0x7f {
			plain = false
			break
		}
	}
	if plain {
		return len(s)
	}

	w := 0
	for _, t := range Tokens(s) {
		w += t.Width
	}
	return w
}

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	var sb strings.Builder
	for _, t := range Tokens(s) {
		if !strings.HasPrefix(t.Text, "\x1b") {
			sb.WriteString(t.Text)
		}
	}
	return sb.String()
}

// Truncate cuts s to at most width display cells. Escape sequences are
// preserved so decorated text stays terminated. A wide rune that would
// straddle the cut is dropped entirely.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if StringWidth(s) <= width {
		return s
	}
	var sb strings.Builder
	used := 0
	cut := false
	for _, t := range Tokens(s) {
		if t.Width == 0 {
			sb.WriteString(t.Text)
			continue
		}
		if cut || used+t.Width > width {
			cut = true
			continue
		}
		sb.WriteString(t.Text)
		used += t.Width
	}
	return sb.String()
}

// TruncateWithEllipsis cuts s to at most width display cells, appending
// marker when content was removed. The marker's width counts against the
// budget. If the budget is smaller than the marker, s is hard-truncated
// without it.
func TruncateWithEllipsis(s string, width int, marker string) string {
	if width <= 0 {
		return ""
	}
	if StringWidth(s) <= width {
		return s
	}
	mw := StringWidth(marker)
	if mw >= width {
		return Truncate(s, width)
	}
	return Truncate(s, width-mw) + marker
}
