package board

import (
	"os"

	"github.com/arthur-debert/cork/pkg/errors"
	"github.com/arthur-debert/cork/pkg/style"
	"github.com/arthur-debert/cork/pkg/textwrap"
	"github.com/arthur-debert/cork/pkg/utils"
	"github.com/rs/zerolog"
)

// DefaultIndentation is the indentation a new Board starts with
const DefaultIndentation = 2

// DefaultJustification is the column labeled values start at
const DefaultJustification = 12

// Config holds the output mode of a Board
type Config struct {
	// Verbose renders nested sections and titles
	Verbose bool
	// Silent suppresses everything written to the output stream
	Silent bool
	// ANSI allows colors
	ANSI bool
	// DisableWrap prints text as is instead of reflowing it to the terminal width
	DisableWrap bool
}

// Board renders indentation aware output. Create one per run with New.
type Board struct {
	cfg     Config
	streams Streams

	width       textwrap.WidthProvider
	colorizer   style.Colorizer
	relativizer utils.Relativizer
	workingDir  func() (string, error)
	titleColors []style.Color
	logger      zerolog.Logger

	indentation           int
	titleLevel            int
	treatTitlesAsMessages bool

	warnings []Warning
}

// Option configures a Board
type Option func(*Board)

// WithWidth sets the terminal width provider used for wrapping. The default
// reports no width, which leaves lines unwrapped.
func WithWidth(width textwrap.WidthProvider) Option {
	return func(b *Board) {
		if width != nil {
			b.width = width
		}
	}
}

// WithColorizer replaces the ANSI colorizer. It is only consulted when
// Config.ANSI is set.
func WithColorizer(c style.Colorizer) Option {
	return func(b *Board) {
		if c != nil {
			b.colorizer = c
		}
	}
}

// WithRelativizer replaces the function Path uses to relativize paths
func WithRelativizer(r utils.Relativizer) Option {
	return func(b *Board) {
		if r != nil {
			b.relativizer = r
		}
	}
}

// WithWorkingDir replaces the working directory lookup used by Path
func WithWorkingDir(wd func() (string, error)) Option {
	return func(b *Board) {
		if wd != nil {
			b.workingDir = wd
		}
	}
}

// WithIndentation sets the starting indentation
func WithIndentation(n int) Option {
	return func(b *Board) {
		if n >= 0 {
			b.indentation = n
		}
	}
}

// WithTitleColors sets the title color of each level, starting at level 0.
// Levels past the end of the list are not colored.
func WithTitleColors(colors ...style.Color) Option {
	return func(b *Board) {
		b.titleColors = append([]style.Color(nil), colors...)
	}
}

// WithLogger sets the logger used for block tracing
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Board) {
		b.logger = logger
	}
}

// New creates a Board writing to streams. Missing streams are replaced by
// an empty input and discarding outputs.
func New(streams Streams, cfg Config, opts ...Option) *Board {
	if streams.In == nil {
		streams.In = NewReaderSource(nil)
	}
	if streams.Out == nil {
		streams.Out = NewWriterSink(nil)
	}
	if streams.Err == nil {
		streams.Err = NewWriterSink(nil)
	}

	b := &Board{
		cfg:         cfg,
		streams:     streams,
		width:       textwrap.Unbounded,
		colorizer:   style.NewANSI(),
		relativizer: utils.RelativePath,
		workingDir:  os.Getwd,
		titleColors: []style.Color{style.Yellow, style.Green},
		logger:      zerolog.Nop(),
		indentation: DefaultIndentation,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Verbose reports whether the board renders nested output
func (b *Board) Verbose() bool { return b.cfg.Verbose }

// Silent reports whether output is suppressed
func (b *Board) Silent() bool { return b.cfg.Silent }

// ANSI reports whether colors are enabled
func (b *Board) ANSI() bool { return b.cfg.ANSI }

// WrapDisabled reports whether text is printed without reflowing
func (b *Board) WrapDisabled() bool { return b.cfg.DisableWrap }

// Indentation returns the current indentation in columns
func (b *Board) Indentation() int { return b.indentation }

// TitleLevel returns the current nesting depth of sections and titles
func (b *Board) TitleLevel() int { return b.titleLevel }

// Colorizer returns the colorizer used when ANSI is enabled
func (b *Board) Colorizer() style.Colorizer { return b.colorizer }

// Width returns the terminal width provider
func (b *Board) Width() textwrap.WidthProvider { return b.width }

// Write prints message without a trailing newline
func (b *Board) Write(message string) error {
	if b.cfg.Silent {
		return nil
	}
	return b.streams.Out.Print(message)
}

// WriteLine prints message followed by a newline
func (b *Board) WriteLine(message string) error {
	if b.cfg.Silent {
		return nil
	}
	return b.streams.Out.Println(message)
}

// ReadLine reads a line from the input stream
func (b *Board) ReadLine() (string, error) {
	return b.streams.In.ReadLine()
}

// wrap indents s and, unless wrapping is disabled, reflows it to the
// terminal width.
func (b *Board) wrap(s string, indent int) string {
	return textwrap.Indent(s, indent, !b.cfg.DisableWrap, textwrap.UnboundedMaxWidth, b.width)
}

func (b *Board) colorize(text string, color style.Color) string {
	if !b.cfg.ANSI || color == style.None {
		return text
	}
	return b.colorizer.Colorize(text, color)
}

func (b *Board) titleColor(level int) style.Color {
	if level < 0 || level >= len(b.titleColors) {
		return style.None
	}
	return b.titleColors[level]
}

// nest raises the indentation by relativeIndent and the title level by one
// while body runs.
func (b *Board) nest(relativeIndent int, body func() error) error {
	b.enter(relativeIndent, 1)
	defer b.exit(relativeIndent, 1)

	if body == nil {
		return nil
	}
	return body()
}

func (b *Board) enter(indent, levels int) {
	b.shift(indent, levels)
	b.logger.Trace().
		Int("indentation", b.indentation).
		Int("title_level", b.titleLevel).
		Msg("enter block")
}

func (b *Board) exit(indent, levels int) {
	b.shift(-indent, -levels)
	b.logger.Trace().
		Int("indentation", b.indentation).
		Int("title_level", b.titleLevel).
		Msg("exit block")
}

func (b *Board) shift(indent, levels int) {
	indentation := b.indentation + indent
	titleLevel := b.titleLevel + levels
	if indentation < 0 || titleLevel < 0 {
		panic(errors.Newf(errors.ErrInternal,
			"unbalanced board nesting: indentation %d, title level %d", indentation, titleLevel).
			WithDetail("indentation", indentation).
			WithDetail("title_level", titleLevel))
	}
	b.indentation = indentation
	b.titleLevel = titleLevel
}
