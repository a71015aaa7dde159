package utils

import (
	"os"

	"github.com/arthur-debert/cork/pkg/errors"
)

// HomeDirectory returns the user's home directory.
// It tries os.UserHomeDir() first, then falls back to the HOME environment variable.
func HomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv("HOME")
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrPathResolve, "unable to determine home directory")
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !(len(path) > 1 && path[0] == '~' && path[1] == '/') {
		return path, nil
	}

	homeDir, err := HomeDirectory()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve, "cannot expand %q", path)
	}
	return homeDir + path[1:], nil
}
