// Package paths resolves where cork keeps its configuration and state.
//
// Both directories follow the XDG base directory layout and can be moved
// with an environment variable:
//
//	CORK_CONFIG_DIR  default $XDG_CONFIG_HOME/cork
//	CORK_STATE_DIR   default $XDG_STATE_HOME/cork
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/cork/pkg/utils"
)

const (
	// DirName is the directory cork uses under each XDG base directory
	DirName = "cork"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file in the state directory
	LogFileName = "cork.log"
)

// Environment overrides
const (
	EnvConfigDir = "CORK_CONFIG_DIR"
	EnvStateDir  = "CORK_STATE_DIR"
)

// ConfigDir returns the cork configuration directory
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return utils.ExpandPath(dir)
	}
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, DirName)
	}
	return filepath.Join(xdg.ConfigHome, DirName)
}

// StateDir returns the cork state directory
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return utils.ExpandPath(dir)
	}
	if base := os.Getenv("XDG_STATE_HOME"); base != "" {
		return filepath.Join(base, DirName)
	}
	return filepath.Join(xdg.StateHome, DirName)
}

// ConfigFile returns the default user configuration file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// LogFile returns the log file path
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}
