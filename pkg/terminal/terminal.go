// Package terminal answers the two questions output code has about the
// terminal it writes to: how wide it is, and whether it renders ANSI colors.
package terminal

import (
	"os"
	"strings"

	"github.com/arthur-debert/cork/pkg/textwrap"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Environment variables consulted by this package
const (
	// EnvDisableAutoWrap turns off terminal width detection when set to any
	// non-empty value other than "0" or "false".
	EnvDisableAutoWrap = "CORK_DISABLE_AUTO_WRAP"

	// EnvNoColor is the https://no-color.org convention.
	EnvNoColor = "NO_COLOR"
)

// ANSIMode selects how ANSI support is decided
type ANSIMode string

const (
	ANSIAuto   ANSIMode = "auto"
	ANSIAlways ANSIMode = "always"
	ANSINever  ANSIMode = "never"
)

// ParseANSIMode parses a mode name. The empty string means auto.
func ParseANSIMode(s string) (ANSIMode, bool) {
	switch ANSIMode(strings.ToLower(s)) {
	case ANSIAuto, "":
		return ANSIAuto, true
	case ANSIAlways, "on", "true":
		return ANSIAlways, true
	case ANSINever, "off", "false":
		return ANSINever, true
	default:
		return ANSIAuto, false
	}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Width returns a WidthProvider reporting the column count of f. It reports 0
// when f is not a terminal, when the size cannot be read, or when auto wrap
// is disabled through the environment. The size is read on every call, so a
// resized terminal is picked up.
func Width(f *os.File) textwrap.WidthProvider {
	return func() int {
		if autoWrapDisabled() || !IsTerminal(f) {
			return 0
		}
		cols, _, err := term.GetSize(int(f.Fd()))
		if err != nil || cols < 0 {
			return 0
		}
		return cols
	}
}

// SupportsANSI decides whether output to f should carry ANSI colors
func SupportsANSI(f *os.File, mode ANSIMode) bool {
	switch mode {
	case ANSIAlways:
		return true
	case ANSINever:
		return false
	}

	if os.Getenv(EnvNoColor) != "" {
		return false
	}
	if !IsTerminal(f) {
		return false
	}
	return termenv.NewOutput(f).Profile != termenv.Ascii
}

func autoWrapDisabled() bool {
	v := strings.ToLower(os.Getenv(EnvDisableAutoWrap))
	return v != "" && v != "0" && v != "false"
}
