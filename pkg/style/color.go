package style

import (
	"github.com/muesli/termenv"
)

// Color is a semantic decoration name
type Color string

// Colors understood by every Colorizer
const (
	None      Color = ""
	Black     Color = "black"
	Red       Color = "red"
	Green     Color = "green"
	Yellow    Color = "yellow"
	Blue      Color = "blue"
	Magenta   Color = "magenta"
	Cyan      Color = "cyan"
	White     Color = "white"
	Gray      Color = "gray"
	Bold      Color = "bold"
	Underline Color = "underline"
)

// Colorizer decorates text with a named color
type Colorizer interface {
	Colorize(text string, color Color) string
}

// ColorizerFunc adapts a function to the Colorizer interface
type ColorizerFunc func(text string, color Color) string

// Colorize calls f(text, color)
func (f ColorizerFunc) Colorize(text string, color Color) string {
	return f(text, color)
}

// Plain is the identity Colorizer
var Plain Colorizer = ColorizerFunc(func(text string, _ Color) string {
	return text
})

// ANSI renders colors as basic ANSI escape sequences
type ANSI struct{}

// NewANSI creates an ANSI colorizer
func NewANSI() *ANSI {
	return &ANSI{}
}

var ansiColors = map[Color]termenv.ANSIColor{
	Black:   termenv.ANSIBlack,
	Red:     termenv.ANSIRed,
	Green:   termenv.ANSIGreen,
	Yellow:  termenv.ANSIYellow,
	Blue:    termenv.ANSIBlue,
	Magenta: termenv.ANSIMagenta,
	Cyan:    termenv.ANSICyan,
	White:   termenv.ANSIWhite,
	Gray:    termenv.ANSIBrightBlack,
}

// Colorize wraps text in the escape sequence for color. Unknown colors and
// None leave text unchanged.
func (a *ANSI) Colorize(text string, color Color) string {
	s := termenv.String(text)
	switch color {
	case Bold:
		return s.Bold().String()
	case Underline:
		return s.Underline().String()
	}
	c, ok := ansiColors[color]
	if !ok {
		return text
	}
	return s.Foreground(c).String()
}

// For returns the ANSI colorizer when enabled and Plain otherwise
func For(enabled bool) Colorizer {
	if enabled {
		return NewANSI()
	}
	return Plain
}

// Known reports whether color is one of the predefined names
func Known(color Color) bool {
	if color == Bold || color == Underline || color == None {
		return true
	}
	_, ok := ansiColors[color]
	return ok
}
