package cork

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/cork/internal/version"
	"github.com/arthur-debert/cork/pkg/banner"
	"github.com/arthur-debert/cork/pkg/board"
	"github.com/arthur-debert/cork/pkg/config"
	"github.com/arthur-debert/cork/pkg/errors"
	"github.com/arthur-debert/cork/pkg/logging"
	"github.com/arthur-debert/cork/pkg/paths"
	"github.com/arthur-debert/cork/pkg/textwrap"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: MsgDemoShort,
		Long:  MsgDemoLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.demo()
		},
	}
}

func (a *app) demo() error {
	b := a.board
	b.Warn(MsgDemoWarning, []string{MsgDemoWarningAction}, false)
	b.WarnVerbose(MsgDemoVerboseWarning)

	err := b.Section(MsgDemoSection, func() error {
		if err := b.Title(MsgDemoSettings, a.demoSettings, board.WithVerbosePrefix(MsgDemoVerbosePrefix)); err != nil {
			return err
		}
		if err := b.Title(MsgDemoLayout, a.demoLayout); err != nil {
			return err
		}
		err := b.Info(MsgDemoInfo, func() error {
			return b.Title(MsgDemoInfoTitle, func() error {
				return b.Title(MsgDemoInfoBody, nil)
			})
		})
		if err != nil {
			return err
		}
		return b.Notice(MsgDemoNotice)
	})
	if err != nil {
		return err
	}
	return b.FlushWarnings()
}

func (a *app) demoSettings() error {
	b := a.board

	configFile := a.configFile
	if configFile == "" {
		configFile = paths.ConfigFile()
	}
	configFile, err := b.Path(configFile)
	if err != nil {
		return err
	}
	logFile := MsgDemoNone
	if a.logFile != "" {
		if logFile, err = b.Path(a.logFile); err != nil {
			return err
		}
	}

	fields := []struct {
		label string
		value any
	}{
		{MsgLabelVerbose, b.Verbose()},
		{MsgLabelSilent, b.Silent()},
		{MsgLabelANSI, b.ANSI()},
		{MsgLabelWrap, !b.WrapDisabled()},
		{MsgLabelConfig, configFile},
		{MsgLabelLogFile, logFile},
	}
	for _, f := range fields {
		if err := b.Labeled(f.label, f.value); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) demoLayout() error {
	b := a.board

	width := MsgDemoNone
	if w := b.Width()(); w > 0 && !b.WrapDisabled() {
		width = fmt.Sprint(w)
	}

	fields := []struct {
		label string
		value any
	}{
		{MsgLabelTheme, a.settings.Theme.Name},
		{MsgLabelTitleColors, a.settings.Theme.TitleColors},
		{MsgLabelIndentation, a.settings.Layout.Indentation},
		{MsgLabelWidth, width},
	}
	for _, f := range fields {
		if err := b.Labeled(f.label, f.value); err != nil {
			return err
		}
	}
	return nil
}

func newWrapCmd(a *app) *cobra.Command {
	var indent, width int

	cmd := &cobra.Command{
		Use:     "wrap [file]",
		Short:   MsgWrapShort,
		Long:    MsgWrapLong,
		Example: MsgWrapExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if indent < 0 {
				return errors.Newf(errors.ErrInvalidInput, "invalid indent %d", indent).
					WithDetail("indent", indent)
			}
			if width <= 0 {
				width = a.settings.Layout.MaxWidth
			}

			done := logging.LogOperationStart(logging.GetLogger("wrap"), "wrap")
			defer done()

			text, err := a.readInput(args)
			if err != nil {
				return err
			}

			provider := a.board.Width()
			if a.board.WrapDisabled() {
				provider = textwrap.Unbounded
			}
			wrapped := textwrap.WrapFormattedText(text, indent, width, provider)
			if wrapped == "" {
				return nil
			}
			return a.board.WriteLine(wrapped)
		},
	}

	cmd.Flags().IntVarP(&indent, "indent", "i", 0, MsgFlagIndent)
	cmd.Flags().IntVarP(&width, "width", "w", 0, MsgFlagWidth)
	return cmd
}

// readInput returns the content of the file named in args, or everything
// left on the board's input stream.
func (a *app) readInput(args []string) (string, error) {
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			code := errors.ErrInvalidInput
			if os.IsNotExist(err) {
				code = errors.ErrNotFound
			}
			return "", errors.Wrapf(err, code, MsgErrReadInput, args[0]).
				WithDetail("path", args[0])
		}
		return string(content), nil
	}

	var text strings.Builder
	for {
		line, err := a.board.ReadLine()
		text.WriteString(line)
		if err == io.EOF {
			return text.String(), nil
		}
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidInput, MsgErrReadInput, "standard input")
		}
	}
}

func newBannerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "banner [command...]",
		Short: MsgBannerShort,
		Long:  MsgBannerLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			target, rest, err := root.Find(args)
			if err != nil || len(rest) > 0 {
				return errors.Newf(errors.ErrNotFound, MsgErrUnknownCommand, strings.Join(args, " ")).
					WithDetail("command", args)
			}
			target.InitDefaultHelpFlag()
			return a.board.WriteLine(a.formatter(cmd).Format(banner.FromCobra(target)))
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var commented bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.Generate(a.settings)
			if err != nil {
				return err
			}
			out := string(content)
			if commented {
				out = config.CommentOut(out)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&commented, "commented", false, MsgFlagCommented)
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.board.WriteLine(strings.Join(version.Report(cmd.Root().Name()), "\n"))
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenerateCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// GenerateCompletion writes the completion script of root for shell
func GenerateCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unsupported shell %q", shell).
			WithDetail("shell", shell)
	}
}
