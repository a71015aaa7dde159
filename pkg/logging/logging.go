// Package logging sets up the zerolog logger shared by cork commands.
//
// Logs go to stderr through a console writer and are appended to
// $XDG_STATE_HOME/cork/cork.log. Board output never goes through the logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/cork/pkg/errors"
	"github.com/arthur-debert/cork/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DisableLogFile as Options.LogFile turns file logging off
const DisableLogFile = "-"

// Options controls Setup
type Options struct {
	// Verbosity maps 0 to warn, 1 to info, 2 to debug and 3+ to trace
	Verbosity int
	// Console receives human readable logs. Defaults to stderr.
	Console io.Writer
	// NoColor disables colors in console logs
	NoColor bool
	// LogFile defaults to paths.LogFile()
	LogFile string
}

// SetupLogger configures the global logger based on verbosity level
// It sets up dual output to both console and a log file
func SetupLogger(verbosity int) {
	Setup(Options{Verbosity: verbosity})
}

// Setup configures the global logger and returns the log file in use, empty
// when logging to the console only.
func Setup(opts Options) string {
	zerolog.SetGlobalLevel(LevelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = paths.LogFile()
	}
	var fileErr error
	if logFile != DisableLogFile {
		var f *os.File
		if f, fileErr = openLogFile(logFile); fileErr == nil {
			writers = append(writers, f)
		}
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Failed to create log file, logging to console only")
		logFile = ""
	}
	if logFile == DisableLogFile {
		logFile = ""
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")
	return logFile
}

// LevelFor maps a verbosity count to a log level
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// WithFields returns a logger with additional fields
func WithFields(fields map[string]interface{}) zerolog.Logger {
	ctx := log.Logger.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return ctx.Logger()
}

// openLogFile opens logPath for appending, creating its directory
func openLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrLogFile, "failed to create log directory")
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrLogFile, "failed to open log file")
	}
	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
