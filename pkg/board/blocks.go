package board

import "github.com/arthur-debert/cork/pkg/style"

type blockOptions struct {
	verbosePrefix  string
	relativeIndent *int
}

// BlockOption customizes Section and Title
type BlockOption func(*blockOptions)

// WithVerbosePrefix prepends prefix to the title in verbose mode
func WithVerbosePrefix(prefix string) BlockOption {
	return func(o *blockOptions) {
		o.verbosePrefix = prefix
	}
}

// WithRelativeIndent sets how far the body is indented relative to the
// current indentation
func WithRelativeIndent(n int) BlockOption {
	return func(o *blockOptions) {
		o.relativeIndent = &n
	}
}

func resolveBlockOptions(defaultIndent int, opts []BlockOption) (string, int) {
	o := blockOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	indent := defaultIndent
	if o.relativeIndent != nil {
		indent = *o.relativeIndent
	}
	return o.verbosePrefix, indent
}

// Section prints title and runs body one level deeper. In verbose mode the
// title is decorated as in Title; in normal mode only top level sections
// print their title. The body runs in both modes. The relative indentation
// defaults to 0.
func (b *Board) Section(title string, body func() error, opts ...BlockOption) error {
	prefix, indent := resolveBlockOptions(0, opts)

	var err error
	switch {
	case b.cfg.Verbose:
		err = b.printHeading(title, prefix)
	case b.titleLevel < 1:
		err = b.WriteLine(title)
	}
	if err != nil {
		return err
	}
	return b.nest(indent, body)
}

// Title prints a title that is visible in every mode and runs body one level
// deeper. Inside an Info block the title is printed as a plain indented
// message. The relative indentation defaults to 2.
func (b *Board) Title(title string, body func() error, opts ...BlockOption) error {
	prefix, indent := resolveBlockOptions(2, opts)

	if err := b.printHeading(title, prefix); err != nil {
		return err
	}
	return b.nest(indent, body)
}

// Info prints message and runs body with titles turned into messages. The
// message uses the current indentation only in verbose mode. The body is
// indented by two more columns.
func (b *Board) Info(message string, body func() error) error {
	indent := 0
	if b.cfg.Verbose {
		indent = b.indentation
	}
	if err := b.WriteLine(b.wrap(message, indent)); err != nil {
		return err
	}

	previous := b.treatTitlesAsMessages
	b.treatTitlesAsMessages = true
	b.enter(2, 0)
	defer func() {
		b.exit(2, 0)
		b.treatTitlesAsMessages = previous
	}()

	if body == nil {
		return nil
	}
	return body()
}

// Notice prints a highlighted message preceded by a blank line
func (b *Board) Notice(message string) error {
	return b.WriteLine(b.colorize("\n[!] "+message, style.Green))
}

// printHeading prints the header of a title, or of a section in verbose
// mode. Inside an Info block it is a plain message.
func (b *Board) printHeading(title, verbosePrefix string) error {
	if b.treatTitlesAsMessages {
		return b.printMessage(title, verbosePrefix)
	}
	return b.printTitle(title, verbosePrefix)
}

func (b *Board) printTitle(title, verbosePrefix string) error {
	if b.cfg.Verbose {
		title = verbosePrefix + title
	}
	if b.titleLevel < 2 {
		title = "\n" + title
	}
	return b.WriteLine(b.colorize(title, b.titleColor(b.titleLevel)))
}

func (b *Board) printMessage(message, verbosePrefix string) error {
	if b.cfg.Verbose {
		message = verbosePrefix + message
	}
	return b.WriteLine(b.wrap(message, b.indentation))
}
