package config

import (
	"strings"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Generate renders cfg as TOML, the format the user config file uses
func Generate(cfg *Config) (string, error) {
	var b strings.Builder
	enc := toml.NewEncoder(&b)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return b.String(), nil
}

// GenerateCommented returns the embedded defaults with every value line
// commented out, ready to be saved as a starting user config.
func GenerateCommented() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines, comments and section headers as-is
		if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
			(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
