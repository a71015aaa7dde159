package board_test

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/arthur-debert/cork/pkg/board"
	"github.com/arthur-debert/cork/pkg/errors"
	"github.com/arthur-debert/cork/pkg/testutil"
	"github.com/arthur-debert/cork/pkg/textwrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndWriteLine(t *testing.T) {
	h := testutil.NewHarness(t, board.Config{})

	require.NoError(t, h.Write("abc"))
	require.NoError(t, h.WriteLine(""))
	require.NoError(t, h.WriteLine("def"))

	assert.Equal(t, "abc\ndef\n", h.Output())
}

func TestSilentBoardWritesNothing(t *testing.T) {
	h := testutil.NewHarness(t, board.Config{Silent: true, Verbose: true, ANSI: true})

	require.NoError(t, h.Write("abc"))
	require.NoError(t, h.WriteLine("abc"))
	require.NoError(t, h.Labeled("label", "value"))
	require.NoError(t, h.Labeled("list", []string{"a", "b"}))
	require.NoError(t, h.Notice("notice"))
	require.NoError(t, h.Title("title", func() error {
		return h.Section("section", func() error {
			return h.Info("info", func() error {
				return h.Title("nested", nil)
			})
		})
	}))

	assert.Empty(t, h.Output())
}

func TestSilentBoardStillFlushesWarnings(t *testing.T) {
	h := testutil.NewHarness(t, board.Config{Silent: true})

	h.Warn("careful", nil, false)
	require.NoError(t, h.FlushWarnings())

	assert.Empty(t, h.Output())
	assert.Equal(t, "\n[!] careful\n", h.Errors())
}

func TestReadLine(t *testing.T) {
	h := testutil.NewHarnessWithInput(t, "first\nsecond", board.Config{})

	line, err := h.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "first\n", line)

	line, err = h.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	_, err = h.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLineDoesNotReadAhead(t *testing.T) {
	in := strings.NewReader("one\ntwo\n")
	b := board.New(board.NewStreams(in, nil, nil), board.Config{})

	line, err := b.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "one\n", line)
	assert.Equal(t, 4, in.Len())
}

type failingSink struct{ err error }

func (s failingSink) Print(string) error   { return s.err }
func (s failingSink) Println(string) error { return s.err }

func TestSinkErrorsPropagate(t *testing.T) {
	boom := stderrors.New("boom")
	b := board.New(board.Streams{Out: failingSink{boom}, Err: failingSink{boom}}, board.Config{})

	assert.ErrorIs(t, b.WriteLine("x"), boom)
	assert.ErrorIs(t, b.Labeled("label", "value"), boom)
	assert.ErrorIs(t, b.Section("title", nil), boom)

	b.Warn("w", nil, false)
	assert.ErrorIs(t, b.FlushWarnings(), boom)
}

func TestNilStreamsAreSafe(t *testing.T) {
	b := board.New(board.Streams{}, board.Config{})

	assert.NoError(t, b.WriteLine("dropped"))
	_, err := b.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestAccessors(t *testing.T) {
	b := board.New(board.Streams{}, board.Config{Verbose: true, Silent: true, ANSI: true, DisableWrap: true})

	assert.True(t, b.Verbose())
	assert.True(t, b.Silent())
	assert.True(t, b.ANSI())
	assert.True(t, b.WrapDisabled())
	assert.Equal(t, board.DefaultIndentation, b.Indentation())
	assert.Equal(t, 0, b.TitleLevel())
	assert.Equal(t, 0, b.Width()())
	assert.NotNil(t, b.Colorizer())
}

func TestWrappingUsesTerminalWidth(t *testing.T) {
	t.Run("wraps at the provider width", func(t *testing.T) {
		h := testutil.NewHarness(t, board.Config{}, board.WithWidth(textwrap.Fixed(20)))

		require.NoError(t, h.Labeled("label", "aaa bbb ccc ddd"))

		assert.Equal(t, "  - label:    aaa\n  bbb ccc ddd\n", h.Output())
	})

	t.Run("disabled wrap keeps the line", func(t *testing.T) {
		h := testutil.NewHarness(t, board.Config{DisableWrap: true}, board.WithWidth(textwrap.Fixed(20)))

		require.NoError(t, h.Labeled("label", "aaa bbb ccc ddd"))

		assert.Equal(t, "  - label:    aaa bbb ccc ddd\n", h.Output())
	})

	t.Run("width is read on every call", func(t *testing.T) {
		width := 0
		var out bytes.Buffer
		b := board.New(board.NewStreams(nil, &out, nil), board.Config{},
			board.WithWidth(func() int { return width }))

		require.NoError(t, b.Labeled("label", "aaa bbb ccc ddd"))
		width = 20
		require.NoError(t, b.Labeled("label", "aaa bbb ccc ddd"))

		assert.Equal(t, "  - label:    aaa bbb ccc ddd\n  - label:    aaa\n  bbb ccc ddd\n", out.String())
	})
}

func TestUnbalancedNestingPanics(t *testing.T) {
	h := testutil.NewHarness(t, board.Config{})

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
		assert.Equal(t, board.DefaultIndentation, h.Indentation())
		assert.Equal(t, 0, h.TitleLevel())
	}()

	_ = h.Section("oops", nil, board.WithRelativeIndent(-5))
}
