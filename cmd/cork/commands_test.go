package cork

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/cork/internal/version"
	"github.com/arthur-debert/cork/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "reads standard input",
			stdin: "one two three four five\n",
			args:  []string{"wrap", "--width", "10"},
			want:  "one two\nthree four\nfive\n",
		},
		{
			name:  "keeps paragraphs",
			stdin: "first paragraph\n\nsecond one",
			args:  []string{"wrap"},
			want:  "first paragraph\n\nsecond one\n",
		},
		{
			name:  "keeps preformatted paragraphs",
			stdin: "text\n\n    $ cork   demo\n",
			args:  []string{"wrap", "-w", "5"},
			want:  "text\n\n    $ cork   demo\n",
		},
		{
			name:  "empty input prints nothing",
			stdin: "",
			args:  []string{"wrap"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, tt.stdin, tt.args...)
			require.NoError(t, r.err)
			assert.Equal(t, tt.want, r.out)
		})
	}
}

func TestWrapIndent(t *testing.T) {
	r := execute(t, "alpha beta", "wrap", "--indent", "4")
	require.NoError(t, r.err)
	assert.Equal(t, "    alpha beta\n", r.out)
}

func TestWrapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("    from a file\n"), 0644))

	r := execute(t, "ignored", "wrap", path)
	require.NoError(t, r.err)
	assert.Equal(t, "from a file\n", r.out)
}

func TestWrapErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.txt")
		r := execute(t, "", "wrap", path)
		require.Error(t, r.err)
		assert.True(t, errors.IsErrorCode(r.err, errors.ErrNotFound))
		assert.Equal(t, path, errors.GetErrorDetails(r.err)["path"])
	})

	t.Run("negative indent", func(t *testing.T) {
		r := execute(t, "text", "wrap", "--indent", "-1")
		require.Error(t, r.err)
		assert.True(t, errors.IsErrorCode(r.err, errors.ErrInvalidInput))
	})
}

func TestBanner(t *testing.T) {
	t.Run("root", func(t *testing.T) {
		r := execute(t, "", "banner")
		require.NoError(t, r.err)
		assert.True(t, strings.HasPrefix(r.out, "Usage:\n\n    $ cork [COMMAND]\n"), r.out)
		assert.Contains(t, r.out, "Commands:")
		assert.Contains(t, r.out, "    > demo ")
		assert.Contains(t, r.out, "    + wrap ")
		assert.Contains(t, r.out, "--silent")
	})

	t.Run("subcommand", func(t *testing.T) {
		r := execute(t, "", "banner", "wrap")
		require.NoError(t, r.err)
		assert.True(t, strings.HasPrefix(r.out, "Usage:\n\n    $ cork wrap [file]\n"), r.out)
		assert.Contains(t, r.out, "--indent")
		assert.Contains(t, r.out, "--width")
		assert.NotContains(t, r.out, "Commands:")
	})

	t.Run("unknown command", func(t *testing.T) {
		r := execute(t, "", "banner", "nope")
		require.Error(t, r.err)
		assert.True(t, errors.IsErrorCode(r.err, errors.ErrNotFound))
	})
}

func TestHelpFlagPrintsBanner(t *testing.T) {
	viaFlag := execute(t, "", "wrap", "--help")
	require.NoError(t, viaFlag.err)
	viaCommand := execute(t, "", "banner", "wrap")
	require.NoError(t, viaCommand.err)

	assert.Equal(t, viaCommand.out, viaFlag.out)
}

func TestHelpTopics(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r := execute(t, "", "help", "topics")
		require.NoError(t, r.err)
		for _, name := range []string{"colors", "configuration", "verbosity", "wrapping"} {
			assert.Contains(t, r.out, name)
		}
	})

	t.Run("text topic", func(t *testing.T) {
		r := execute(t, "", "help", "wrapping")
		require.NoError(t, r.err)
		assert.Contains(t, r.out, "Paragraphs are separated by blank lines.")
		assert.Contains(t, r.out, "\n    $ cork wrap --indent 4 notes.txt\n")
	})

	t.Run("option topic", func(t *testing.T) {
		r := execute(t, "", "help", "--no-wrap")
		require.NoError(t, r.err)
		assert.Contains(t, r.out, "--no-wrap prints every line")
	})

	t.Run("markdown topic", func(t *testing.T) {
		r := execute(t, "", "help", "configuration")
		require.NoError(t, r.err)
		assert.Contains(t, r.out, "Configuration")
		assert.Contains(t, r.out, "CORK_CONFIG_DIR")
	})

	t.Run("command", func(t *testing.T) {
		r := execute(t, "", "help", "config")
		require.NoError(t, r.err)
		assert.Contains(t, r.out, "$ cork config")
		assert.Contains(t, r.out, "--commented")
	})

	t.Run("unknown", func(t *testing.T) {
		r := execute(t, "", "help", "nope")
		require.Error(t, r.err)
		assert.True(t, errors.IsErrorCode(r.err, errors.ErrTopicNotFound))
	})
}

func TestConfig(t *testing.T) {
	t.Run("effective settings", func(t *testing.T) {
		r := execute(t, "", "config", "--ansi", "never", "--no-wrap")
		require.NoError(t, r.err)
		assert.Contains(t, r.out, "[output]")
		assert.Contains(t, r.out, "ansi = 'never'")
		assert.Contains(t, r.out, "disable_wrap = true")
		assert.Contains(t, r.out, "max_width = 80")
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("CORK_LAYOUT_MAX_WIDTH", "120")
		r := execute(t, "", "config")
		require.NoError(t, r.err)
		assert.Contains(t, r.out, "max_width = 120")
	})

	t.Run("commented", func(t *testing.T) {
		r := execute(t, "", "config", "--commented")
		require.NoError(t, r.err)
		assert.Contains(t, r.out, "[output]")
		assert.Contains(t, r.out, "# verbose = false")
		assert.NotContains(t, r.out, "\nverbose = false")
	})

	t.Run("printed when silent", func(t *testing.T) {
		r := execute(t, "", "config", "--silent")
		require.NoError(t, r.err)
		assert.Contains(t, r.out, "silent = true")
	})
}

func TestVersion(t *testing.T) {
	r := execute(t, "", "version")
	require.NoError(t, r.err)
	assert.Equal(t, strings.Join(version.Report("cork"), "\n")+"\n", r.out)
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			r := execute(t, "", "completion", shell)
			require.NoError(t, r.err)
			assert.NotEmpty(t, r.out)
		})
	}

	t.Run("unsupported shell", func(t *testing.T) {
		r := execute(t, "", "completion", "tcsh")
		assert.Error(t, r.err)
	})
}
