package topics_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/cork/pkg/cobrax/topics"
	"github.com/arthur-debert/cork/pkg/errors"
	"github.com/arthur-debert/cork/pkg/textwrap"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"dry-run.txt":        {Data: []byte("Information about dry-run mode")},
		"guides/layout.md":   {Data: []byte("# Layout\n\nHow output is laid out.")},
		"config.txxt":        {Data: []byte("Configuration Guide")},
		"ignore.json":        {Data: []byte("{}")},
		"option-no-wrap.txt": {Data: []byte("Disables wrapping.")},
		"wrapping.txt":       {Data: []byte("one two three four five six\n\n    keep   this\n")},
	}
}

func TestLoad(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		m := topics.New(topicFS(), topics.Options{})
		require.NoError(t, m.Load())

		assert.Equal(t, []string{"dry-run", "layout", "option-no-wrap", "wrapping"}, m.List())

		topic, ok := m.Get("layout")
		require.True(t, ok)
		assert.Equal(t, "guides/layout.md", topic.Path)
		assert.Equal(t, ".md", topic.Format())
	})

	t.Run("custom extensions", func(t *testing.T) {
		m := topics.New(topicFS(), topics.Options{Extensions: []string{".txxt"}})
		require.NoError(t, m.Load())

		assert.Equal(t, []string{"config"}, m.List())
	})

	t.Run("no file system", func(t *testing.T) {
		m := topics.New(nil, topics.Options{})
		require.NoError(t, m.Load())

		assert.Empty(t, m.List())
	})
}

func TestGet(t *testing.T) {
	m := topics.New(topicFS(), topics.Options{})
	require.NoError(t, m.Load())

	tests := []struct {
		name   string
		want   string
		exists bool
	}{
		{"dry-run", "dry-run", true},
		{"--dry-run", "dry-run", true},
		{"no-wrap", "option-no-wrap", true},
		{"--no-wrap", "option-no-wrap", true},
		{"missing", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, ok := m.Get(tt.name)
			assert.Equal(t, tt.exists, ok)
			if ok {
				assert.Equal(t, tt.want, topic.Name)
			}
		})
	}
}

func TestRenderers(t *testing.T) {
	t.Run("text reflows and keeps preformatted blocks", func(t *testing.T) {
		r := topics.NewTextRenderer(80, textwrap.Fixed(12))

		got, err := r.Render("one two three four five six\n\n    keep   this\n", ".txt")
		require.NoError(t, err)

		assert.Equal(t, "one two\nthree four\nfive six\n\n    keep   this\n", got)
	})

	t.Run("plain", func(t *testing.T) {
		got, err := (&topics.PlainRenderer{}).Render("as is", ".txt")
		require.NoError(t, err)
		assert.Equal(t, "as is", got)
	})

	t.Run("by format", func(t *testing.T) {
		r := topics.ByFormat{".txt": topics.NewTextRenderer(80, nil)}

		got, err := r.Render("  a\n  b", ".txt")
		require.NoError(t, err)
		assert.Equal(t, "a b\n", got)

		got, err = r.Render("  raw", ".rst")
		require.NoError(t, err)
		assert.Equal(t, "  raw", got)
	})

	t.Run("glamour renders markdown only", func(t *testing.T) {
		r := &topics.GlamourRenderer{Style: "notty", Width: 40}

		got, err := r.Render("# Title\n\nSome *text*.", ".md")
		require.NoError(t, err)
		assert.Contains(t, got, "Title")
		assert.Contains(t, got, "text")

		got, err = r.Render("# not markdown", ".txt")
		require.NoError(t, err)
		assert.Equal(t, "# not markdown", got)
	})
}

func newRoot(out *bytes.Buffer) *cobra.Command {
	root := &cobra.Command{Use: "cork", Short: "Console output helper"}
	root.AddCommand(&cobra.Command{Use: "wrap", Short: "Reflow text", Run: func(*cobra.Command, []string) {}})
	root.SetOut(out)
	root.SetErr(out)
	root.SetHelpFunc(func(c *cobra.Command, _ []string) {
		c.Println("HELP " + c.CommandPath())
	})
	return root
}

func TestHelpCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"root help", []string{"help"}, "HELP cork\n"},
		{"command help", []string{"help", "wrap"}, "HELP cork wrap\n"},
		{"topic", []string{"help", "dry-run"}, "Information about dry-run mode\n"},
		{"option topic", []string{"help", "--no-wrap"}, "Disables wrapping.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			root := newRoot(&out)
			_, err := topics.Initialize(root, topicFS(), topics.Options{})
			require.NoError(t, err)

			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())

			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestHelpTopicsList(t *testing.T) {
	var out bytes.Buffer
	root := newRoot(&out)
	_, err := topics.Initialize(root, topicFS(), topics.Options{})
	require.NoError(t, err)

	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())

	want := strings.Join([]string{
		"Available help topics:",
		"  dry-run",
		"  layout",
		"  wrapping",
		"",
		"Option topics:",
		"  --no-wrap",
		"",
		"Use 'cork help <topic>' to read about a specific topic.",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestHelpTopicsListEmpty(t *testing.T) {
	var out bytes.Buffer
	m := topics.New(fstest.MapFS{}, topics.Options{})
	require.NoError(t, m.Load())

	require.NoError(t, m.WriteList(&out, "cork"))
	assert.Equal(t, "No help topics available.\n", out.String())
}

func TestHelpUnknownTopic(t *testing.T) {
	var out bytes.Buffer
	root := newRoot(&out)
	root.SilenceUsage = true
	root.SilenceErrors = true
	_, err := topics.Initialize(root, topicFS(), topics.Options{})
	require.NoError(t, err)

	root.SetArgs([]string{"help", "nothing-here"})
	err = root.Execute()

	assert.True(t, errors.IsErrorCode(err, errors.ErrTopicNotFound))
}
