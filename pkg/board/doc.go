// Package board renders hierarchical console output for command line tools.
//
// A Board keeps two counters, the indentation and the title level, plus a
// flag telling whether titles should be printed as plain messages. Block
// methods (Section, Title, Info) raise the counters, run their body and
// restore them on the way out, even when the body fails:
//
//	b := board.New(board.NewStreams(os.Stdin, os.Stdout, os.Stderr), board.Config{ANSI: true})
//	_ = b.Section("Installing", func() error {
//		return b.Labeled("version", "1.2.0")
//	})
//	_ = b.FlushWarnings()
//
// In normal mode only the outermost sections are visible; verbose mode renders
// the whole tree with per-level title colors. Warnings are queued with Warn and
// printed to the error stream by FlushWarnings, usually once at exit.
//
// A Board is not safe for concurrent use.
package board
