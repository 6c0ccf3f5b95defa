package style

import (
	"errors"
	"strings"
	"testing"

	"github.com/scirin/tabled/grid"
)

func TestParseTheme_DefaultsKept(t *testing.T) {
	th, err := ParseTheme([]byte("style: rounded\n"))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if th.Style != "rounded" {
		t.Errorf("style = %q", th.Style)
	}
	// Unset keys keep their defaults.
	if th.Padding.Left != 1 || th.Padding.Right != 1 {
		t.Errorf("padding = %+v, want default 1/1", th.Padding)
	}
	if th.Align != "left" || th.Overflow != "wrap" {
		t.Errorf("defaults lost: align=%q overflow=%q", th.Align, th.Overflow)
	}
}

func TestParseTheme_FullDocument(t *testing.T) {
	doc := `
style: psql
padding:
  left: 2
  right: 2
align: right
valign: bottom
max_width: 60
overflow: truncate
ellipsis: "..."
colors:
  header:
    fg: "212"
    bold: true
  alt_row:
    bg: "236"
`
	th, err := ParseTheme([]byte(doc))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}

	cfg, err := th.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.Borders.Vertical != '|' || cfg.Rules != grid.RuleHeaderOnly {
		t.Error("psql borders not applied")
	}
	if cfg.Align != grid.AlignRight || cfg.VAlign != grid.VAlignBottom {
		t.Error("alignment not applied")
	}
	if cfg.MaxWidth != 60 || cfg.Overflow != grid.OverflowTruncate || cfg.Ellipsis != "..." {
		t.Error("width/overflow settings not applied")
	}
	if cfg.Decorate == nil {
		t.Error("colors should install a decorator")
	}
}

func TestParseTheme_BadYAML(t *testing.T) {
	if _, err := ParseTheme([]byte("style: [oops\n")); err == nil {
		t.Error("expected parse error")
	}
}

func TestThemeConfig_UnknownStyle(t *testing.T) {
	th := DefaultTheme()
	th.Style = "glitter"
	if _, err := th.Config(); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("err = %v, want ErrUnknownStyle", err)
	}
}

func TestThemeConfig_BadEnum(t *testing.T) {
	th := DefaultTheme()
	th.Align = "justified"
	if _, err := th.Config(); !errors.Is(err, ErrBadTheme) {
		t.Errorf("err = %v, want ErrBadTheme", err)
	}
}

func TestThemeConfig_NoColorsNoDecorator(t *testing.T) {
	cfg, err := DefaultTheme().Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.Decorate != nil {
		t.Error("colorless theme should not install a decorator")
	}
}

func TestDecorator_PlainUnderAsciiProfile(t *testing.T) {
	DisableColor()

	th := DefaultTheme()
	th.Colors.Header = ColorSpec{Bold: true}
	cfg, err := th.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}

	m := grid.NewMatrix([][]string{{"h"}, {"v"}})
	decorated, err := grid.Render(m, &cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	plain := cfg
	plain.Decorate = nil
	want, err := grid.Render(m, &plain)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Under the Ascii profile the decorator must be a no-op, so the
	// grid stays byte-identical.
	if decorated != want {
		t.Errorf("ascii-profile decoration altered output:\n%q\nvs\n%q", decorated, want)
	}
	if strings.Contains(decorated, "\x1b") {
		t.Error("escape sequences present under Ascii profile")
	}
}
