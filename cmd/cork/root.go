package cork

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/cork/internal/version"
	"github.com/arthur-debert/cork/pkg/banner"
	"github.com/arthur-debert/cork/pkg/cobrax/topics"
	"github.com/arthur-debert/cork/pkg/textwrap"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "cork",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Annotations: map[string]string{
			banner.DefaultSubcommandAnnotation: "demo",
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		// Without a command the default subcommand runs
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.demo()
		},
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	a.bindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newDemoCmd(a))
	rootCmd.AddCommand(newWrapCmd(a))
	rootCmd.AddCommand(newBannerCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newCompletionCmd())

	// Help renders the banner of the command it was asked for
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		banner.HelpFunc(a.formatter(cmd))(cmd, args)
	})

	if err := a.initTopics(rootCmd); err != nil {
		// The topics are embedded in the binary
		panic(err)
	}

	return rootCmd
}

// initTopics installs the help command serving the embedded topics
func (a *app) initTopics(rootCmd *cobra.Command) error {
	fsys, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}

	a.textRenderer = topics.NewTextRenderer(textwrap.DefaultMaxWidth, textwrap.Unbounded)
	a.glamourRenderer = topics.NewGlamourRenderer(textwrap.DefaultMaxWidth)

	_, err = topics.Initialize(rootCmd, fsys, topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer: topics.ByFormat{
			".txt": a.textRenderer,
			".md":  a.glamourRenderer,
		},
	})
	return err
}
