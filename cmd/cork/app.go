package cork

import (
	"io"
	"os"

	"github.com/arthur-debert/cork/pkg/banner"
	"github.com/arthur-debert/cork/pkg/board"
	"github.com/arthur-debert/cork/pkg/cobrax/topics"
	"github.com/arthur-debert/cork/pkg/config"
	"github.com/arthur-debert/cork/pkg/logging"
	"github.com/arthur-debert/cork/pkg/style"
	"github.com/arthur-debert/cork/pkg/terminal"
	"github.com/arthur-debert/cork/pkg/utils"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Persistent flag names
const (
	flagVerbose = "verbose"
	flagSilent  = "silent"
	flagANSI    = "ansi"
	flagNoWrap  = "no-wrap"
	flagConfig  = "config"
)

// app holds the global flags and what is built from them once per run
type app struct {
	verbosity  int
	silent     bool
	ansi       string
	noWrap     bool
	configFile string

	settings *config.Settings
	board    *board.Board
	logFile  string

	// Topic renderers follow layout.max_width once settings are loaded
	textRenderer    *topics.TextRenderer
	glamourRenderer *topics.GlamourRenderer
}

func (a *app) bindFlags(flags *pflag.FlagSet) {
	flags.CountVarP(&a.verbosity, flagVerbose, "v", MsgFlagVerbose)
	flags.BoolVar(&a.silent, flagSilent, false, MsgFlagSilent)
	flags.StringVar(&a.ansi, flagANSI, string(terminal.ANSIAuto), MsgFlagANSI)
	flags.BoolVar(&a.noWrap, flagNoWrap, false, MsgFlagNoWrap)
	flags.StringVar(&a.configFile, flagConfig, "", MsgFlagConfig)
}

// overrides turns the flags given on the command line into configuration
// keys. Flags left at their default do not override the file or environment.
// The first -v makes the board verbose, each further one raises the log
// level.
func (a *app) overrides(flags *pflag.FlagSet) map[string]interface{} {
	o := make(map[string]interface{})
	if flags.Changed(flagVerbose) && a.verbosity > 0 {
		o["output.verbose"] = true
		if a.verbosity > 1 {
			o["log.verbosity"] = a.verbosity - 1
		}
	}
	if flags.Changed(flagSilent) {
		o["output.silent"] = a.silent
	}
	if flags.Changed(flagANSI) {
		o["output.ansi"] = a.ansi
	}
	if flags.Changed(flagNoWrap) {
		o["output.disable_wrap"] = a.noWrap
	}
	return o
}

// setup loads the configuration, configures logging and builds the board.
// It runs once per app; later calls are no-ops.
func (a *app) setup(cmd *cobra.Command) error {
	if a.board != nil {
		return nil
	}

	settings, err := config.Load(config.LoadOptions{
		ConfigFile: a.configFile,
		Overrides:  a.overrides(cmd.Flags()),
	})
	if err != nil {
		return err
	}
	a.settings = settings

	mode := settings.ANSIMode()
	a.logFile = logging.Setup(logging.Options{
		Verbosity: settings.Log.Verbosity,
		Console:   cmd.ErrOrStderr(),
		NoColor:   !terminal.SupportsANSI(fileOf(cmd.ErrOrStderr()), mode),
	})
	logging.LogCommand(cmd.CommandPath(), cmd.Flags().Args())

	out := cmd.OutOrStdout()
	ansi := terminal.SupportsANSI(fileOf(out), mode)
	colorizer, err := a.colorizer(out, ansi)
	if err != nil {
		return err
	}

	a.board = board.New(
		board.NewStreams(cmd.InOrStdin(), out, cmd.ErrOrStderr()),
		settings.BoardConfig(ansi),
		board.WithWidth(terminal.Width(fileOf(out))),
		board.WithColorizer(colorizer),
		board.WithIndentation(settings.Layout.Indentation),
		board.WithTitleColors(settings.TitleColors()...),
		board.WithLogger(logging.GetLogger("board")),
	)

	if a.textRenderer != nil {
		a.textRenderer.MaxWidth = settings.Layout.MaxWidth
		a.textRenderer.Width = a.board.Width()
	}
	if a.glamourRenderer != nil {
		a.glamourRenderer.Width = settings.Layout.MaxWidth
		if !ansi {
			a.glamourRenderer.Style = "notty"
		}
	}
	return nil
}

// colorizer picks the colorizer named by theme.name: the basic ANSI palette,
// the embedded lipgloss theme, or a theme file.
func (a *app) colorizer(w io.Writer, ansi bool) (style.Colorizer, error) {
	if !ansi {
		return style.Plain, nil
	}

	var def *style.ThemeDef
	switch name := a.settings.Theme.Name; name {
	case config.ThemeANSI, "":
		return style.NewANSI(), nil
	case config.ThemeDefault:
	default:
		path, err := utils.ExpandHome(name)
		if err != nil {
			return nil, err
		}
		if def, err = style.LoadThemeFile(path); err != nil {
			return nil, err
		}
	}

	theme, err := style.NewTheme(w, def)
	if err != nil {
		return nil, err
	}
	// Colors were forced on a stream lipgloss would not color
	if !terminal.IsTerminal(fileOf(w)) {
		theme.SetColorProfile(termenv.ANSI)
	}
	return theme, nil
}

// formatter returns a banner formatter for cmd's output. It is used by the
// help function, which cobra may call before any hook ran, so a
// configuration error falls back to plain output.
func (a *app) formatter(cmd *cobra.Command) *banner.Formatter {
	out := cmd.OutOrStdout()
	colorizer := style.Plain
	if err := a.setup(cmd); err == nil && a.board.ANSI() {
		colorizer = a.board.Colorizer()
	}
	return banner.New(
		banner.WithColorizer(colorizer),
		banner.WithWidth(terminal.Width(fileOf(out))),
	)
}

func fileOf(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
