package topics

import (
	"strings"

	"github.com/arthur-debert/cork/pkg/textwrap"
)

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal
	// display. format is the topic file extension, e.g. ".md".
	Render(content string, format string) (string, error)
}

// PlainRenderer returns content as is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) (string, error) {
	return content, nil
}

// TextRenderer reflows plain text topics to the terminal width. Paragraphs
// indented by four spaces are kept as they are.
type TextRenderer struct {
	Indent   int
	MaxWidth int
	Width    textwrap.WidthProvider
}

// NewTextRenderer creates a text renderer bounded by maxWidth columns
func NewTextRenderer(maxWidth int, width textwrap.WidthProvider) *TextRenderer {
	return &TextRenderer{MaxWidth: maxWidth, Width: width}
}

// Render wraps content and ends it with a newline
func (r *TextRenderer) Render(content string, format string) (string, error) {
	maxWidth := r.MaxWidth
	if maxWidth <= 0 {
		maxWidth = textwrap.DefaultMaxWidth
	}
	wrapped := textwrap.WrapFormattedText(content, r.Indent, maxWidth, r.Width)
	if wrapped == "" || strings.HasSuffix(wrapped, "\n") {
		return wrapped, nil
	}
	return wrapped + "\n", nil
}

// ByFormat picks a renderer by topic file extension. Formats without a
// renderer are returned unchanged.
type ByFormat map[string]Renderer

// Render dispatches to the renderer registered for format
func (r ByFormat) Render(content string, format string) (string, error) {
	renderer, ok := r[format]
	if !ok || renderer == nil {
		return content, nil
	}
	return renderer.Render(content, format)
}
