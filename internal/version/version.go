// Package version holds build information for the flairgen binary.
package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/flairgen/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/flairgen/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/flairgen/internal/version.Date={{.Date}}
)
