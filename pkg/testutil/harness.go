package testutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/cork/pkg/board"
	"github.com/arthur-debert/cork/pkg/textwrap"
)

// Harness is a Board whose streams are captured for inspection
type Harness struct {
	*board.Board

	In  *strings.Reader
	Out *bytes.Buffer
	Err *bytes.Buffer
}

// NewHarness creates a Board writing to buffers. The board reports an
// unknown terminal width and "/" as the working directory unless opts say
// otherwise.
func NewHarness(t *testing.T, cfg board.Config, opts ...board.Option) *Harness {
	t.Helper()
	return NewHarnessWithInput(t, "", cfg, opts...)
}

// NewHarnessWithInput is NewHarness with input available for ReadLine
func NewHarnessWithInput(t *testing.T, input string, cfg board.Config, opts ...board.Option) *Harness {
	t.Helper()

	h := &Harness{
		In:  strings.NewReader(input),
		Out: &bytes.Buffer{},
		Err: &bytes.Buffer{},
	}
	defaults := []board.Option{
		board.WithWidth(textwrap.Unbounded),
		board.WithWorkingDir(func() (string, error) { return "/", nil }),
	}
	h.Board = board.New(board.NewStreams(h.In, h.Out, h.Err), cfg, append(defaults, opts...)...)
	return h
}

// Output returns everything written to the output stream so far
func (h *Harness) Output() string {
	return h.Out.String()
}

// Errors returns everything written to the error stream so far
func (h *Harness) Errors() string {
	return h.Err.String()
}

// Reset clears both captured streams
func (h *Harness) Reset() {
	h.Out.Reset()
	h.Err.Reset()
}
