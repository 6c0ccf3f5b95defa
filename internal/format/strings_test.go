package format

import "testing"

func TestStringWidth_Plain(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"hello world", 11},
	}
	for _, c := range cases {
		if got := StringWidth(c.in); got != c.want {
			t.Errorf("StringWidth(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestStringWidth_Wide(t *testing.T) {
	// CJK runes occupy two cells each.
	if got := StringWidth("日本語"); got != 6 {
		t.Errorf("StringWidth(日本語) = %d, want 6", got)
	}
	if got := StringWidth("a日b"); got != 4 {
		t.Errorf("StringWidth(a日b) = %d, want 4", got)
	}
}

func TestStringWidth_ANSI(t *testing.T) {
	colored := "\x1b[31mred\x1b[0m"
	if got := StringWidth(colored); got != 3 {
		t.Errorf("StringWidth(%q) = %d, want 3", colored, got)
	}

	// OSC 8 hyperlink markers are zero width.
	link := "\x1b]8;;https://example.com\x1b\\text\x1b]8;;\x1b\\"
	if got := StringWidth(link); got != 4 {
		t.Errorf("StringWidth(hyperlink) = %d, want 4", got)
	}
}

func TestStripANSI(t *testing.T) {
	if got := StripANSI("\x1b[1;32mok\x1b[0m"); got != "ok" {
		t.Errorf("StripANSI = %q, want %q", got, "ok")
	}
	if got := StripANSI("plain"); got != "plain" {
		t.Errorf("StripANSI(plain) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		// A wide rune that would straddle the cut is dropped.
		{"a日b", 2, "a"},
		{"a日b", 3, "a日"},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.width); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
		}
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	cases := []struct {
		in     string
		width  int
		marker string
		want   string
	}{
		{"hello", 10, "…", "hello"},
		{"hello", 4, "…", "hel…"},
		{"hello", 4, "...", "h..."},
		{"hello", 1, "…", "h"},
		{"hello", 0, "…", ""},
	}
	for _, c := range cases {
		if got := TruncateWithEllipsis(c.in, c.width, c.marker); got != c.want {
			t.Errorf("TruncateWithEllipsis(%q, %d, %q) = %q, want %q",
				c.in, c.width, c.marker, got, c.want)
		}
	}
}

func TestTokens_UnterminatedEscape(t *testing.T) {
	toks := Tokens("ab\x1b[31")
	w := 0
	for _, tok := range toks {
		w += tok.Width
	}
	if w != 2 {
		t.Errorf("unterminated escape should be zero width, total = %d", w)
	}
}
