package banner

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/cork/pkg/style"
	"github.com/arthur-debert/cork/pkg/textwrap"
)

// Layout constants, in columns
const (
	// TextIndent is where usage descriptions start
	TextIndent = 6
	// MaxWidth bounds every banner line
	MaxWidth = TextIndent + 80
	// DescriptionSpaces separates a name from its description
	DescriptionSpaces = 3
	// SubcommandBulletSize is the width of the "> " and "+ " bullets
	SubcommandBulletSize = 2
)

// Ellipsis marks a repeatable argument, separated from its name by a space
const Ellipsis = "..."

const entryIndent = TextIndent - 2

// Command describes what a banner is built from
type Command struct {
	// FullCommand is the command as typed, e.g. "cork wrap"
	FullCommand string
	Description string
	// Summary is used when Description is empty
	Summary string
	// DefaultSubcommand runs when no subcommand is given
	DefaultSubcommand string
	Subcommands       []Subcommand
	Options           []Option
	Arguments         []Argument
}

// Subcommand is one line of the Commands section
type Subcommand struct {
	Name    string
	Summary string
}

// Option is one line of the Options section
type Option struct {
	Name        string
	Description string
}

// Argument is a positional argument of the usage signature
type Argument struct {
	// Names holds alternatives, rendered joined by "|"
	Names      []string
	Required   bool
	Repeatable bool
}

// String renders the argument as it appears in the signature
func (a Argument) String() string {
	s := strings.Join(a.Names, "|")
	if a.Repeatable {
		s += " " + Ellipsis
	}
	if !a.Required {
		s = "[" + s + "]"
	}
	return s
}

// Formatter renders banners
type Formatter struct {
	Colorizer style.Colorizer
	Width     textwrap.WidthProvider
}

// FormatterOption configures a Formatter
type FormatterOption func(*Formatter)

// WithColorizer sets the colorizer used to prettify the banner
func WithColorizer(c style.Colorizer) FormatterOption {
	return func(f *Formatter) {
		if c != nil {
			f.Colorizer = c
		}
	}
}

// WithWidth sets the terminal width provider. Lines never exceed MaxWidth.
func WithWidth(w textwrap.WidthProvider) FormatterOption {
	return func(f *Formatter) {
		if w != nil {
			f.Width = w
		}
	}
}

// New creates a Formatter. Without options it produces plain text limited
// only by MaxWidth.
func New(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		Colorizer: style.Plain,
		Width:     textwrap.Unbounded,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders cmd with a plain formatter
func Format(cmd Command) string {
	return New().Format(cmd)
}

// Format renders the banner of cmd
func (f *Formatter) Format(cmd Command) string {
	sections := []struct {
		title string
		body  string
	}{
		{"Usage", f.usage(cmd)},
		{"Commands", f.commands(cmd)},
		{"Options", f.options(cmd)},
	}

	var out []string
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		out = append(out, f.colorize(s.title+":", style.Underline)+"\n\n"+s.body)
	}
	return strings.Join(out, "\n\n")
}

func (f *Formatter) usage(cmd Command) string {
	if cmd.FullCommand == "" {
		return ""
	}

	body := strings.Repeat(" ", entryIndent) + "$ " + f.signature(cmd)

	text := cmd.Description
	if text == "" {
		text = cmd.Summary
	}
	if text = textwrap.WrapFormattedText(text, TextIndent, MaxWidth, f.Width); text != "" {
		body += "\n\n" + f.highlightNames(text, cmd)
	}
	return body
}

func (f *Formatter) signature(cmd Command) string {
	parts := []string{f.colorize(cmd.FullCommand, style.Green)}

	switch {
	case cmd.DefaultSubcommand != "":
		parts = append(parts, f.colorize("[COMMAND]", style.Green))
	case len(cmd.Subcommands) > 0:
		parts = append(parts, f.colorize("COMMAND", style.Green))
	}

	for _, arg := range cmd.Arguments {
		if len(arg.Names) == 0 {
			continue
		}
		parts = append(parts, f.colorize(arg.String(), style.Magenta))
	}
	return strings.Join(parts, " ")
}

func (f *Formatter) commands(cmd Command) string {
	entries := make([]entry, 0, len(cmd.Subcommands))
	for _, sub := range cmd.Subcommands {
		bullet := "+ "
		if sub.Name == cmd.DefaultSubcommand {
			bullet = "> "
		}
		entries = append(entries, entry{name: bullet + sub.Name, description: sub.Summary})
	}
	return f.entries(entries, style.Green)
}

func (f *Formatter) options(cmd Command) string {
	entries := make([]entry, 0, len(cmd.Options))
	for _, opt := range cmd.Options {
		entries = append(entries, entry{name: opt.Name, description: opt.Description})
	}
	return f.entries(entries, style.Blue)
}

type entry struct {
	name        string
	description string
}

// entries aligns descriptions in a column right of the widest name
func (f *Formatter) entries(entries []entry, nameColor style.Color) string {
	if len(entries) == 0 {
		return ""
	}

	maxNameWidth := 0
	for _, e := range entries {
		if w := textwrap.VisibleWidth(e.name); w > maxNameWidth {
			maxNameWidth = w
		}
	}
	descStart := maxNameWidth + entryIndent + DescriptionSpaces

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		padding := maxNameWidth - textwrap.VisibleWidth(e.name)
		description := textwrap.WrapWithIndent(e.description, descStart, MaxWidth, f.Width)

		line := strings.Repeat(" ", entryIndent) +
			f.colorize(e.name, nameColor) +
			strings.Repeat(" ", DescriptionSpaces+padding) +
			description
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return strings.Join(lines, "\n")
}

var backticked = regexp.MustCompile("`([^`]+)`")

// highlightNames colors backticked argument and option names found in a
// description.
func (f *Formatter) highlightNames(text string, cmd Command) string {
	args := map[string]bool{}
	for _, arg := range cmd.Arguments {
		for _, name := range arg.Names {
			args[name] = true
		}
	}
	opts := map[string]bool{}
	for _, opt := range cmd.Options {
		for _, name := range optionNames(opt.Name) {
			opts[name] = true
		}
	}

	return backticked.ReplaceAllStringFunc(text, func(match string) string {
		name := match[1 : len(match)-1]
		switch {
		case args[name]:
			return f.colorize(match, style.Magenta)
		case opts[name]:
			return f.colorize(match, style.Blue)
		}
		return match
	})
}

// optionNames splits "-v, --verbose=LEVEL" into "-v" and "--verbose"
func optionNames(name string) []string {
	var names []string
	for _, part := range strings.Split(name, ",") {
		part = strings.TrimSpace(part)
		if i := strings.IndexAny(part, "= "); i >= 0 {
			part = part[:i]
		}
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

func (f *Formatter) colorize(text string, color style.Color) string {
	if f.Colorizer == nil {
		return text
	}
	return f.Colorizer.Colorize(text, color)
}
