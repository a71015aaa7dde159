package cork

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Console output helper for command line tools"
	MsgDemoShort       = "Print a sample report using every board element"
	MsgWrapShort       = "Reflow text to the terminal width"
	MsgBannerShort     = "Print the help banner of a command"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose   = "Verbose output; repeat to raise the log level (-vv INFO, -vvv DEBUG, -vvvv TRACE)"
	MsgFlagSilent    = "Print warnings only"
	MsgFlagANSI      = "Colorize output: auto, always or never"
	MsgFlagNoWrap    = "Do not wrap output to the terminal width"
	MsgFlagConfig    = "Configuration file (default $XDG_CONFIG_HOME/cork/config.toml)"
	MsgFlagIndent    = "Indent every line by this many spaces"
	MsgFlagWidth     = "Maximum line width (default layout.max_width)"
	MsgFlagCommented = "Comment out every value"

	// Demo output
	MsgDemoSection        = "cork demo"
	MsgDemoSettings       = "Settings"
	MsgDemoLayout         = "Layout"
	MsgDemoInfo           = "Info blocks indent what follows them and print titles as plain messages."
	MsgDemoInfoTitle      = "A title inside an info block"
	MsgDemoInfoBody       = "Long lines are wrapped to the terminal width, and continuation lines stay aligned with the first one, however deep the block is nested."
	MsgDemoNotice         = "Notices stand out from the rest of the output."
	MsgDemoWarning        = "Warnings are collected and printed together at the end."
	MsgDemoWarningAction  = "Run `cork demo --verbose` to see verbose-only warnings"
	MsgDemoVerboseWarning = "This warning only shows up in verbose mode."
	MsgDemoVerbosePrefix  = "==> "
	MsgDemoNone           = "none"

	// Labels
	MsgLabelVerbose     = "Verbose"
	MsgLabelSilent      = "Silent"
	MsgLabelANSI        = "ANSI"
	MsgLabelWrap        = "Wrap"
	MsgLabelConfig      = "Config"
	MsgLabelLogFile     = "Log file"
	MsgLabelTheme       = "Theme"
	MsgLabelTitleColors = "Title colors"
	MsgLabelIndentation = "Indent"
	MsgLabelWidth       = "Width"

	// Error messages
	MsgErrUnknownCommand = "unknown command %q"
	MsgErrReadInput      = "failed to read %s"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/demo-long.txt
	msgDemoLongRaw string
	MsgDemoLong    = strings.TrimSpace(msgDemoLongRaw)

	//go:embed msgs/wrap-long.txt
	msgWrapLongRaw string
	MsgWrapLong    = strings.TrimSpace(msgWrapLongRaw)

	//go:embed msgs/wrap-example.txt
	msgWrapExampleRaw string
	MsgWrapExample    = strings.TrimRight(msgWrapExampleRaw, "\n")

	//go:embed msgs/banner-long.txt
	msgBannerLongRaw string
	MsgBannerLong    = strings.TrimSpace(msgBannerLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/config-example.txt
	msgConfigExampleRaw string
	MsgConfigExample    = strings.TrimRight(msgConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
