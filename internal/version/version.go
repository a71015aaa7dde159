package version

import "fmt"

// Build information set by ldflags, e.g.
// -X github.com/arthur-debert/cork/internal/version.Version={{.Version}}
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Report returns the lines printed by the version command
func Report(program string) []string {
	return []string{
		fmt.Sprintf("%s version %s", program, Version),
		fmt.Sprintf("  commit: %s", Commit),
		fmt.Sprintf("  built:  %s", Date),
	}
}
