package style_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/cork/pkg/style"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestANSIColorize(t *testing.T) {
	ansi := style.NewANSI()

	tests := []struct {
		name     string
		text     string
		color    style.Color
		expected string
	}{
		{"yellow", "abc", style.Yellow, "\x1b[33mabc\x1b[0m"},
		{"green keeps leading newline inside", "\nsubtitle", style.Green, "\x1b[32m\nsubtitle\x1b[0m"},
		{"red", "x", style.Red, "\x1b[31mx\x1b[0m"},
		{"blue", "--verbose", style.Blue, "\x1b[34m--verbose\x1b[0m"},
		{"magenta", "NAME", style.Magenta, "\x1b[35mNAME\x1b[0m"},
		{"bold", "b", style.Bold, "\x1b[1mb\x1b[0m"},
		{"underline", "Usage:", style.Underline, "\x1b[4mUsage:\x1b[0m"},
		{"none", "plain", style.None, "plain"},
		{"unknown", "plain", style.Color("chartreuse"), "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ansi.Colorize(tt.text, tt.color))
		})
	}
}

func TestPlainIsIdentity(t *testing.T) {
	for _, c := range []style.Color{style.Yellow, style.Underline, style.None} {
		assert.Equal(t, "text", style.Plain.Colorize("text", c))
	}
}

func TestFor(t *testing.T) {
	assert.Equal(t, "\x1b[32mok\x1b[0m", style.For(true).Colorize("ok", style.Green))
	assert.Equal(t, "ok", style.For(false).Colorize("ok", style.Green))
}

func TestKnown(t *testing.T) {
	assert.True(t, style.Known(style.Yellow))
	assert.True(t, style.Known(style.Underline))
	assert.False(t, style.Known(style.Color("mauve")))
}

func TestParseTheme(t *testing.T) {
	t.Run("default theme parses", func(t *testing.T) {
		def, err := style.ParseTheme(style.DefaultThemeData())
		require.NoError(t, err)
		assert.Contains(t, def.Styles, style.Yellow)
		assert.Contains(t, def.Colors, "amber")
	})

	t.Run("undefined color reference", func(t *testing.T) {
		_, err := style.ParseTheme([]byte("styles:\n  yellow:\n    foreground: nowhere\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nowhere")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := style.ParseTheme([]byte("styles: [unclosed"))
		assert.Error(t, err)
	})
}

func TestLoadThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  mint: {light: "#38A169", dark: "#9AE6B4"}
styles:
  green: {foreground: mint, bold: true}
`), 0644))

	def, err := style.LoadThemeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mint", def.Styles[style.Green].Foreground)
	assert.True(t, def.Styles[style.Green].Bold)

	_, err = style.LoadThemeFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestThemeColorize(t *testing.T) {
	theme, err := style.NewTheme(&bytes.Buffer{}, nil)
	require.NoError(t, err)

	t.Run("non terminal writer renders plain text", func(t *testing.T) {
		assert.Equal(t, "abc", theme.Colorize("abc", style.Yellow))
	})

	t.Run("forced profile adds escapes per line", func(t *testing.T) {
		theme.SetColorProfile(termenv.ANSI256)
		got := theme.Colorize("\nabc", style.Yellow)

		lines := strings.Split(got, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "", lines[0])
		assert.Contains(t, lines[1], "abc")
		assert.Contains(t, lines[1], "\x1b[")
	})

	t.Run("unknown color is identity", func(t *testing.T) {
		assert.Equal(t, "abc", theme.Colorize("abc", style.Color("nope")))
	})
}
