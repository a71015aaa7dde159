// Package style maps semantic color names to decorated text.
//
// Output code never emits escape sequences itself. It asks a Colorizer to
// decorate a string with a named Color, and the Colorizer decides how, or
// whether, to do it:
//
//   - Plain returns text untouched. It is what a board uses when ANSI output
//     is disabled.
//   - ANSI wraps text in basic 16-color SGR sequences through termenv, so
//     Colorize("abc", Yellow) is "\x1b[33mabc\x1b[0m" on every terminal.
//   - Theme renders through lipgloss with adaptive colors loaded from a YAML
//     theme, picking the light or dark variant from the terminal background.
//
// The default theme is embedded; custom themes use the same YAML layout:
//
//	colors:
//	  amber: {light: "#B7791F", dark: "#F6E05E"}
//	styles:
//	  yellow: {foreground: amber}
//	  underline: {underline: true}
package style
