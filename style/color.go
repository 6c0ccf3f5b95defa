package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorEnabled reports whether decorated renders should carry color.
// Color is suppressed when the NO_COLOR environment variable is present
// (any value, per https://no-color.org/) or stdout is not a terminal.
func ColorEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// ApplyColorProfile configures the global lipgloss renderer from
// ColorEnabled, so theme decorators degrade to plain text on pipes and
// redirects. Returns whether color is enabled.
func ApplyColorProfile() bool {
	if !ColorEnabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
		return false
	}
	return true
}

// DisableColor unconditionally sets the Ascii profile so every lipgloss
// render produces undecorated text. Tests use this for stable output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
