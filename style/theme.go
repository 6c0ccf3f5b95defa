package style

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/scirin/tabled/grid"
)

// Theme configuration errors.
var (
	// ErrUnknownStyle reports a style name with no matching preset.
	ErrUnknownStyle = errors.New("unknown style name")
	// ErrBadTheme reports an unparseable theme value.
	ErrBadTheme = errors.New("invalid theme value")
)

// ColorSpec describes one lipgloss style in theme files. Colors accept
// anything lipgloss.Color does (ANSI index or hex). The zero value means
// no decoration.
type ColorSpec struct {
	// Fg is the foreground color.
	Fg string `yaml:"fg"`
	// Bg is the background color.
	Bg string `yaml:"bg"`
	// Bold enables bold text.
	Bold bool `yaml:"bold"`
}

func (cs ColorSpec) zero() bool {
	return cs.Fg == "" && cs.Bg == "" && !cs.Bold
}

func (cs ColorSpec) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if cs.Fg != "" {
		st = st.Foreground(lipgloss.Color(cs.Fg))
	}
	if cs.Bg != "" {
		st = st.Background(lipgloss.Color(cs.Bg))
	}
	if cs.Bold {
		st = st.Bold(true)
	}
	return st
}

// ThemeColors styles table regions. Rows are counted from the first data
// row, so alternation is stable whether or not a header is present.
type ThemeColors struct {
	// Header styles row 0.
	Header ColorSpec `yaml:"header"`
	// Row styles data rows.
	Row ColorSpec `yaml:"row"`
	// AltRow styles every second data row when set.
	AltRow ColorSpec `yaml:"alt_row"`
}

// ThemePadding mirrors grid.Padding in theme files.
type ThemePadding struct {
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
}

// Theme is a declarative render configuration loadable from yaml.
type Theme struct {
	// Style names a border preset (see ByName).
	Style string `yaml:"style"`
	// Padding is the per-cell padding.
	Padding ThemePadding `yaml:"padding"`
	// Align is "left", "center" or "right".
	Align string `yaml:"align"`
	// VAlign is "top", "center" or "bottom".
	VAlign string `yaml:"valign"`
	// MaxWidth is the total width budget (0 = unbounded).
	MaxWidth int `yaml:"max_width"`
	// Overflow is "wrap", "wrap-words" or "truncate".
	Overflow string `yaml:"overflow"`
	// Ellipsis overrides the truncation marker.
	Ellipsis string `yaml:"ellipsis"`
	// Colors decorates rendered rows.
	Colors ThemeColors `yaml:"colors"`
}

// DefaultTheme matches DefaultConfig: ascii borders, one cell of
// horizontal padding, wrapping overflow, no colors.
func DefaultTheme() *Theme {
	return &Theme{
		Style:    "ascii",
		Padding:  ThemePadding{Left: 1, Right: 1},
		Align:    "left",
		VAlign:   "top",
		Overflow: "wrap",
	}
}

// ParseTheme unmarshals yaml over the default theme, so absent keys keep
// their defaults.
func ParseTheme(data []byte) (*Theme, error) {
	th := DefaultTheme()
	if err := yaml.Unmarshal(data, th); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}
	return th, nil
}

// LoadTheme reads and parses a theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme %s: %w", path, err)
	}
	return ParseTheme(data)
}

// Config resolves the theme into a render configuration, including the
// color decorator when any color is set.
func (th *Theme) Config() (grid.Config, error) {
	s, ok := ByName(th.Style)
	if !ok {
		return grid.Config{}, fmt.Errorf("style %q: %w", th.Style, ErrUnknownStyle)
	}

	cfg := grid.Config{
		Borders: s.Borders,
		Rules:   s.Rules,
		Padding: grid.Padding{
			Left:   th.Padding.Left,
			Right:  th.Padding.Right,
			Top:    th.Padding.Top,
			Bottom: th.Padding.Bottom,
		},
		MaxWidth: th.MaxWidth,
		Ellipsis: th.Ellipsis,
	}

	switch th.Align {
	case "", "left":
		cfg.Align = grid.AlignLeft
	case "center":
		cfg.Align = grid.AlignCenter
	case "right":
		cfg.Align = grid.AlignRight
	default:
		return grid.Config{}, fmt.Errorf("align %q: %w", th.Align, ErrBadTheme)
	}

	switch th.VAlign {
	case "", "top":
		cfg.VAlign = grid.VAlignTop
	case "center":
		cfg.VAlign = grid.VAlignCenter
	case "bottom":
		cfg.VAlign = grid.VAlignBottom
	default:
		return grid.Config{}, fmt.Errorf("valign %q: %w", th.VAlign, ErrBadTheme)
	}

	switch th.Overflow {
	case "", "wrap":
		cfg.Overflow = grid.OverflowWrap
	case "wrap-words":
		cfg.Overflow = grid.OverflowWrapWords
	case "truncate":
		cfg.Overflow = grid.OverflowTruncate
	default:
		return grid.Config{}, fmt.Errorf("overflow %q: %w", th.Overflow, ErrBadTheme)
	}

	cfg.Decorate = th.Colors.decorator()
	return cfg, nil
}

// decorator builds the per-line color decorator, or nil when the theme
// sets no colors. Decoration only adds escape sequences, and the layout
// engine measures widths ANSI-aware, so alignment is preserved.
func (tc ThemeColors) decorator() grid.Decorator {
	if tc.Header.zero() && tc.Row.zero() && tc.AltRow.zero() {
		return nil
	}
	header := tc.Header.style()
	row := tc.Row.style()
	alt := row
	if !tc.AltRow.zero() {
		alt = tc.AltRow.style()
	}

	return func(r, _ int, line string) string {
		switch {
		case r == 0:
			if tc.Header.zero() {
				return line
			}
			return header.Render(line)
		case r%2 == 0 && !tc.AltRow.zero():
			return alt.Render(line)
		default:
			if tc.Row.zero() {
				return line
			}
			return row.Render(line)
		}
	}
}
