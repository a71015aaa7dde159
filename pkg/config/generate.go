package config

import (
	"strings"

	"github.com/arthur-debert/cork/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = "# cork configuration\n# Generated from the effective settings.\n\n"

// Generate renders settings as a TOML configuration file
func Generate(s *Settings) ([]byte, error) {
	body, err := toml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return append([]byte(generatedHeader), body...), nil
}

// CommentOut comments every assignment of a TOML document, keeping comments,
// blank lines and section headers, so the result documents values without
// overriding anything.
func CommentOut(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
