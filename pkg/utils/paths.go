package utils

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/cork/pkg/errors"
)

// Relativizer computes path relative to base
type Relativizer func(path, base string) (string, error)

// ExpandPath expands ~ and environment variables in a path.
// When the home directory is unknown the path is returned with only its
// environment variables expanded.
func ExpandPath(path string) string {
	expanded, err := ExpandHome(path)
	if err != nil {
		return os.ExpandEnv(path)
	}
	return os.ExpandEnv(expanded)
}

// RelativePath is the default Relativizer. Both paths are made absolute
// (after ~ expansion) before the relative path is computed, so
// RelativePath("/lib/cork", "/lib") is "cork" and a path outside base
// comes back with ".." segments. A "$" is part of the file name, never a
// variable reference.
func RelativePath(path, base string) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve, "cannot resolve %q", path).
			WithDetail("path", path)
	}
	if expanded, err = ExpandHome(base); err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve, "cannot resolve %q", base).
			WithDetail("path", base)
	}

	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve, "%q is not reachable from %q", path, base).
			WithDetail("path", path).
			WithDetail("base", base)
	}
	return rel, nil
}
