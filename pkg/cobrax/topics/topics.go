// Package topics provides a pluggable, topic-based help system for Cobra CLI applications.
// It extends the default Cobra help functionality to support arbitrary help topics
// loaded from a file system, usually an embedded one, making CLIs self-documenting.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/cork/pkg/errors"
	"github.com/arthur-debert/cork/pkg/textwrap"
	"github.com/spf13/cobra"
)

// optionPrefix marks topics documenting a flag, e.g. option-no-wrap.txt
const optionPrefix = "option-"

// Manager manages help topics for a Cobra application
type Manager struct {
	fsys         fs.FS
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic represents a help topic
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Format returns the topic file extension
func (t *Topic) Format() string {
	return path.Ext(t.Path)
}

// Options configures the Manager
type Options struct {
	// Extensions is the list of file extensions to consider as topics
	// Defaults to [".txt", ".md"] if not specified
	Extensions []string

	// Renderer for formatting topic content (optional). Defaults to text
	// reflow for .txt and glamour for .md.
	Renderer Renderer
}

// New creates a Manager reading topics from fsys. Call Load before use.
func New(fsys fs.FS, opts Options) *Manager {
	m := &Manager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}

	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = ByFormat{
			".txt": NewTextRenderer(textwrap.DefaultMaxWidth, textwrap.Unbounded),
			".md":  NewGlamourRenderer(textwrap.DefaultMaxWidth),
		}
	}
	return m
}

// Load scans the file system for topic files. A nil file system has no
// topics.
func (m *Manager) Load() error {
	if m.fsys == nil {
		return nil
	}

	return fs.WalkDir(m.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrTopicLoad, "failed to scan topics at %s", p)
		}
		if d.IsDir() || !m.supported(path.Ext(p)) {
			return nil
		}

		content, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return errors.Wrapf(err, errors.ErrTopicLoad, "failed to read topic %s", p)
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
}

func (m *Manager) supported(ext string) bool {
	for _, valid := range m.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// Get retrieves a topic by name
func (m *Manager) Get(name string) (*Topic, bool) {
	// Handle flag-style topics (e.g., --no-wrap -> no-wrap)
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := m.topics[name]; ok {
		return topic, true
	}

	// For flag-style topics, also try with the option prefix
	topic, ok := m.topics[optionPrefix+name]
	return topic, ok
}

// List returns all topic names, sorted
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render renders a topic with the configured renderer
func (m *Manager) Render(t *Topic) (string, error) {
	return m.renderer.Render(t.Content, t.Format())
}

// WriteList prints the topic index
func (m *Manager) WriteList(w io.Writer, program string) error {
	names := m.List()
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "No help topics available.")
		return err
	}

	var options, general []string
	for _, name := range names {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	var b strings.Builder
	if len(general) > 0 {
		b.WriteString("Available help topics:\n")
		for _, name := range general {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Option topics:\n")
		for _, name := range options {
			fmt.Fprintf(&b, "  --%s\n", name)
		}
	}
	fmt.Fprintf(&b, "\nUse '%s help <topic>' to read about a specific topic.\n", program)

	_, err := io.WriteString(w, b.String())
	return err
}

// Initialize loads topics from fsys and installs a help command that knows
// about them. The root command's help function at the time of the call is
// used for commands.
func Initialize(rootCmd *cobra.Command, fsys fs.FS, opts Options) (*Manager, error) {
	m := New(fsys, opts)
	if err := m.Load(); err != nil {
		return nil, err
	}
	m.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + "`" + rootCmd.Name() + ` help [path to command or topic]` + "`" + ` for full details.

To see all available help topics:

    ` + rootCmd.Name() + ` help topics`,
		// Topic names may look like flags ("help --no-wrap")
		DisableFlagParsing: true,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if c.IsAvailableCommand() {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.List()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.help(rootCmd, cmd.OutOrStdout(), args)
		},
	}

	// Remove any existing help command
	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)

	return m, nil
}

func (m *Manager) help(rootCmd *cobra.Command, out io.Writer, args []string) error {
	if len(args) == 0 {
		m.originalHelp(rootCmd, args)
		return nil
	}

	if args[0] == "topics" {
		return m.WriteList(out, rootCmd.Name())
	}

	if topic, ok := m.Get(args[0]); ok {
		rendered, err := m.Render(topic)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, rendered)
		return err
	}

	target, _, err := rootCmd.Find(args)
	if err != nil || target == nil || target == rootCmd {
		return errors.Newf(errors.ErrTopicNotFound, "unknown help topic %q", strings.Join(args, " ")).
			WithDetail("topic", args[0])
	}
	target.InitDefaultHelpFlag()
	target.HelpFunc()(target, args)
	return nil
}
