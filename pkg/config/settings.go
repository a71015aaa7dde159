package config

import (
	"github.com/arthur-debert/cork/pkg/board"
	"github.com/arthur-debert/cork/pkg/errors"
	"github.com/arthur-debert/cork/pkg/style"
	"github.com/arthur-debert/cork/pkg/terminal"
)

// Settings is the effective cork configuration
type Settings struct {
	Output OutputSettings `koanf:"output" toml:"output"`
	Layout LayoutSettings `koanf:"layout" toml:"layout"`
	Theme  ThemeSettings  `koanf:"theme" toml:"theme"`
	Log    LogSettings    `koanf:"log" toml:"log"`
}

// OutputSettings controls the board mode
type OutputSettings struct {
	Verbose     bool   `koanf:"verbose" toml:"verbose"`
	Silent      bool   `koanf:"silent" toml:"silent"`
	ANSI        string `koanf:"ansi" toml:"ansi"`
	DisableWrap bool   `koanf:"disable_wrap" toml:"disable_wrap"`
}

// LayoutSettings controls widths and indentation
type LayoutSettings struct {
	MaxWidth    int `koanf:"max_width" toml:"max_width"`
	Indentation int `koanf:"indentation" toml:"indentation"`
}

// ThemeSettings selects colors
type ThemeSettings struct {
	Name        string   `koanf:"name" toml:"name"`
	TitleColors []string `koanf:"title_colors" toml:"title_colors"`
}

// LogSettings controls the zerolog level
type LogSettings struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// Theme names understood besides a file path
const (
	ThemeANSI    = "ansi"
	ThemeDefault = "default"
)

// Validate checks values that decoding alone cannot
func (s *Settings) Validate() error {
	if _, ok := terminal.ParseANSIMode(s.Output.ANSI); !ok {
		return invalid("output.ansi", s.Output.ANSI, "must be auto, always or never")
	}
	if s.Layout.MaxWidth < 1 {
		return invalid("layout.max_width", s.Layout.MaxWidth, "must be positive")
	}
	if s.Layout.Indentation < 0 {
		return invalid("layout.indentation", s.Layout.Indentation, "must not be negative")
	}
	for _, c := range s.Theme.TitleColors {
		if !style.Known(style.Color(c)) {
			return invalid("theme.title_colors", c, "unknown color")
		}
	}
	if s.Log.Verbosity < 0 {
		return invalid("log.verbosity", s.Log.Verbosity, "must not be negative")
	}
	return nil
}

func invalid(key string, value interface{}, reason string) error {
	return errors.Newf(errors.ErrConfigValid, "invalid %s: %s", key, reason).
		WithDetail("key", key).
		WithDetail("value", value)
}

// ANSIMode returns the parsed output.ansi value
func (s *Settings) ANSIMode() terminal.ANSIMode {
	mode, _ := terminal.ParseANSIMode(s.Output.ANSI)
	return mode
}

// TitleColors returns the title palette as style colors
func (s *Settings) TitleColors() []style.Color {
	colors := make([]style.Color, 0, len(s.Theme.TitleColors))
	for _, c := range s.Theme.TitleColors {
		colors = append(colors, style.Color(c))
	}
	return colors
}

// BoardConfig maps the output settings to a board configuration. Whether
// colors are used is decided by the caller, usually from ANSIMode and the
// terminal.
func (s *Settings) BoardConfig(ansi bool) board.Config {
	return board.Config{
		Verbose:     s.Output.Verbose,
		Silent:      s.Output.Silent,
		ANSI:        ansi,
		DisableWrap: s.Output.DisableWrap,
	}
}
