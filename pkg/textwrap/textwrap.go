package textwrap

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// DefaultMaxWidth is the width used for free text when nothing narrower is known.
	DefaultMaxWidth = 80

	// UnboundedMaxWidth lets the terminal width alone decide where lines break.
	UnboundedMaxWidth = 9999

	// preformattedPrefix marks a paragraph that must not be reflowed.
	preformattedPrefix = "    "
)

// WidthProvider reports the current terminal width in columns. Zero means the
// width is unknown and the caller supplied maximum applies.
type WidthProvider func() int

// Fixed returns a WidthProvider that always reports n columns.
func Fixed(n int) WidthProvider {
	return func() int { return n }
}

// Unbounded is a WidthProvider for output that is not a terminal.
func Unbounded() int { return 0 }

var paragraphSeparator = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

// Dedent strips the leading whitespace common to all non-blank lines. Blank
// lines are left as they are. Text without any non-blank line is returned
// unchanged.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")

	shared := -1
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		n := leadingWhitespace(line)
		if shared < 0 || n < shared {
			shared = n
		}
	}
	if shared <= 0 {
		return text
	}

	for i, line := range lines {
		if isBlank(line) {
			continue
		}
		lines[i] = line[shared:]
	}
	return strings.Join(lines, "\n")
}

// WordWrap breaks line into lines of at most width columns at whitespace
// boundaries. Words wider than width are not split. Whitespace between words
// that end up on the same line is preserved; whitespace at a break, and at the
// start and end of the text, is dropped.
func WordWrap(line string, width int) string {
	if width < 1 {
		width = 1
	}

	var (
		lines   []string
		current strings.Builder
		used    int
	)
	for _, tok := range tokenize(line) {
		sepWidth := separatorWidth(tok.sep)
		wordWidth := VisibleWidth(tok.word)

		if current.Len() == 0 {
			current.WriteString(tok.word)
			used = wordWidth
			continue
		}
		if used+sepWidth+wordWidth <= width {
			current.WriteString(tok.sep)
			current.WriteString(tok.word)
			used += sepWidth + wordWidth
			continue
		}
		lines = append(lines, current.String())
		current.Reset()
		current.WriteString(tok.word)
		used = wordWidth
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return strings.Join(lines, "\n")
}

// WrapWithIndent wraps text as a single paragraph so that it fits in
// min(width(), maxWidth) columns once indented by indent spaces. Continuation
// lines are prefixed with the indentation; the first line is not, since the
// caller usually has something on the line already.
func WrapWithIndent(text string, indent, maxWidth int, width WidthProvider) string {
	if indent < 0 {
		indent = 0
	}
	available := EffectiveWidth(maxWidth, width) - indent
	if available < 1 {
		available = 1
	}

	full := strings.ReplaceAll(text, "\n", " ")
	wrapped := WordWrap(full, available)
	return strings.ReplaceAll(wrapped, "\n", "\n"+strings.Repeat(" ", indent))
}

// WrapFormattedText dedents text, splits it into paragraphs on blank lines and
// wraps each one at indent. Paragraphs starting with four spaces are treated
// as preformatted: they are indented but not reflowed. Paragraphs are joined
// with a blank line.
func WrapFormattedText(text string, indent, maxWidth int, width WidthProvider) string {
	if indent < 0 {
		indent = 0
	}
	space := strings.Repeat(" ", indent)

	var out []string
	for _, paragraph := range paragraphSeparator.Split(Dedent(text), -1) {
		paragraph = trimLeadingBlankLines(paragraph)
		if paragraph == "" {
			continue
		}
		if strings.HasPrefix(paragraph, preformattedPrefix) {
			paragraph = strings.ReplaceAll(paragraph, "\n", "\n"+space)
		} else {
			paragraph = WrapWithIndent(paragraph, indent, maxWidth, width)
		}
		out = append(out, strings.TrimRightFunc(space+paragraph, unicode.IsSpace))
	}
	return strings.Join(out, "\n\n")
}

// Indent prefixes text with indent spaces. When wrap is set the text is
// first reflowed with WrapWithIndent so continuation lines line up under the
// first one; otherwise it is left untouched.
func Indent(text string, indent int, wrap bool, maxWidth int, width WidthProvider) string {
	if indent < 0 {
		indent = 0
	}
	if wrap {
		text = WrapWithIndent(text, indent, maxWidth, width)
	}
	return strings.Repeat(" ", indent) + text
}

// EffectiveWidth is the narrower of the terminal width and maxWidth. A
// non-positive terminal width (or a nil provider) yields maxWidth.
func EffectiveWidth(maxWidth int, width WidthProvider) int {
	if width == nil {
		return maxWidth
	}
	if w := width(); w > 0 && w < maxWidth {
		return w
	}
	return maxWidth
}

type token struct {
	sep  string
	word string
}

// tokenize splits s into words, each carrying the whitespace run before it.
func tokenize(s string) []token {
	var (
		tokens []token
		sep    strings.Builder
		word   strings.Builder
	)
	flush := func() {
		if word.Len() == 0 {
			return
		}
		tokens = append(tokens, token{sep: sep.String(), word: word.String()})
		sep.Reset()
		word.Reset()
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			flush()
			sep.WriteRune(r)
			continue
		}
		word.WriteRune(r)
	}
	flush()
	return tokens
}

func trimLeadingBlankLines(s string) string {
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			if isBlank(s) {
				return ""
			}
			return s
		}
		if !isBlank(s[:i]) {
			return s
		}
		s = s[i+1:]
	}
}

func leadingWhitespace(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
