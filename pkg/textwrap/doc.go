// Package textwrap reflows console text to a bounded width.
//
// Everything here is a pure function of its arguments. The terminal width is
// not looked up by this package; callers pass a WidthProvider, which lets the
// same code serve a live terminal, a pipe (width 0, meaning "use the maximum")
// and tests (a fixed width).
//
// The four building blocks are:
//
//   - Dedent removes the indentation shared by every non-blank line.
//   - WordWrap greedily packs words into lines no wider than a given width.
//     A single word wider than the limit is kept whole and overflows.
//   - WrapWithIndent treats its input as one paragraph, wraps it to the
//     available width and indents continuation lines.
//   - WrapFormattedText handles several paragraphs separated by blank lines,
//     leaving paragraphs indented by four spaces (code) unwrapped.
//
// Widths are display widths: East Asian wide runes count as two columns and
// ANSI escape sequences count as zero, so colorized text wraps by what the
// user actually sees.
package textwrap
