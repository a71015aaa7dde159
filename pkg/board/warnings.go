package board

import "github.com/arthur-debert/cork/pkg/style"

// Warning is a message queued for the end of the run, with the actions the
// user should take about it
type Warning struct {
	Message     string
	Actions     []string
	VerboseOnly bool
}

// Warn queues a warning. Nothing is printed until FlushWarnings.
func (b *Board) Warn(message string, actions []string, verboseOnly bool) {
	b.warnings = append(b.warnings, Warning{
		Message:     message,
		Actions:     append([]string(nil), actions...),
		VerboseOnly: verboseOnly,
	})
}

// WarnVerbose queues a warning shown only in verbose mode
func (b *Board) WarnVerbose(message string, actions ...string) {
	b.Warn(message, actions, true)
}

// Warnings returns a copy of the queued warnings
func (b *Board) Warnings() []Warning {
	out := make([]Warning, len(b.warnings))
	copy(out, b.warnings)
	return out
}

// FlushWarnings prints the queued warnings to the error stream in the order
// they were added. Verbose only warnings are skipped in normal mode. The
// queue is kept, so flushing again prints the same warnings again.
func (b *Board) FlushWarnings() error {
	b.logger.Debug().Int("count", len(b.warnings)).Msg("flushing warnings")

	for _, w := range b.warnings {
		if w.VerboseOnly && !b.cfg.Verbose {
			continue
		}
		if err := b.streams.Err.Println(b.colorize("\n[!] "+w.Message, style.Yellow)); err != nil {
			return err
		}
		for _, action := range w.Actions {
			if err := b.streams.Err.Println(b.wrap("- "+action, 4)); err != nil {
				return err
			}
		}
	}
	return nil
}
