package style

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color in a theme file
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is the decoration applied for one Color
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// ThemeDef is a parsed theme file
type ThemeDef struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[Color]StyleDef  `yaml:"styles"`
}

//go:embed themes/default.yaml
var defaultTheme []byte

// DefaultThemeData returns the embedded default theme
func DefaultThemeData() []byte {
	return defaultTheme
}

// ParseTheme parses YAML theme data
func ParseTheme(data []byte) (*ThemeDef, error) {
	var def ThemeDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	for color, sd := range def.Styles {
		for _, ref := range []string{sd.Foreground, sd.Background} {
			if ref == "" {
				continue
			}
			if _, ok := def.Colors[ref]; !ok {
				return nil, fmt.Errorf("style %q references undefined color %q", color, ref)
			}
		}
	}
	return &def, nil
}

// LoadThemeFile reads and parses a theme from path
func LoadThemeFile(path string) (*ThemeDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	return ParseTheme(data)
}

// Theme is a Colorizer rendering through lipgloss
type Theme struct {
	renderer *lipgloss.Renderer
	def      *ThemeDef
	styles   map[Color]lipgloss.Style
}

// NewTheme creates a Theme whose color profile and background detection
// follow w. A nil def uses the embedded default theme.
func NewTheme(w io.Writer, def *ThemeDef) (*Theme, error) {
	if def == nil {
		var err error
		if def, err = ParseTheme(defaultTheme); err != nil {
			return nil, err
		}
	}
	t := &Theme{
		renderer: lipgloss.NewRenderer(w),
		def:      def,
	}
	t.build()
	return t, nil
}

// SetColorProfile overrides the detected color profile
func (t *Theme) SetColorProfile(p termenv.Profile) {
	t.renderer.SetColorProfile(p)
	t.build()
}

func (t *Theme) build() {
	t.styles = make(map[Color]lipgloss.Style, len(t.def.Styles))
	for color, sd := range t.def.Styles {
		s := t.renderer.NewStyle().
			Bold(sd.Bold).
			Italic(sd.Italic).
			Underline(sd.Underline)
		if c, ok := t.def.Colors[sd.Foreground]; ok {
			s = s.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
		}
		if c, ok := t.def.Colors[sd.Background]; ok {
			s = s.Background(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
		}
		t.styles[color] = s
	}
}

// Colorize renders text with the style registered for color. Lines are
// rendered one by one so lipgloss does not pad them to a common width.
func (t *Theme) Colorize(text string, color Color) string {
	s, ok := t.styles[color]
	if !ok {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = s.Render(line)
	}
	return strings.Join(lines, "\n")
}
