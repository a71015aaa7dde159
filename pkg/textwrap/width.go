package textwrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

const escape = "\x1b"

// VisibleWidth is the number of terminal columns s occupies, ignoring ANSI
// escape sequences.
func VisibleWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

// separatorWidth counts every whitespace rune as at least one column. Tabs
// and other control characters have no width of their own.
func separatorWidth(sep string) int {
	n := 0
	for _, r := range sep {
		n += max(1, runewidth.RuneWidth(r))
	}
	return n
}

// PadRight pads s with spaces up to width columns. Longer strings are
// returned untouched.
func PadRight(s string, width int) string {
	if !strings.Contains(s, escape) {
		return runewidth.FillRight(s, width)
	}
	if pad := width - VisibleWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
