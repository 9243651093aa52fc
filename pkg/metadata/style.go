package metadata

import (
	"path"
	"regexp"
	"strings"

	"github.com/arthur-debert/flairgen/pkg/types"
)

// InitialVersion is the version every generated theme starts at
const InitialVersion = "0.0.1"

// StyleHeaderFiles are the base names of stylesheets carrying the theme header
var StyleHeaderFiles = []string{"style.scss", "style.css"}

type styleField struct {
	label string
	value func(id types.ProjectIdentity) string
	re    *regexp.Regexp
}

func newStyleField(label string, value func(id types.ProjectIdentity) string) styleField {
	return styleField{
		label: label,
		value: value,
		// Leading whitespace and comment stars are kept as part of the label.
		re: regexp.MustCompile(`(?m)^([ \t*]*` + regexp.QuoteMeta(label) + `: )[^\r\n]+`),
	}
}

var styleFields = []styleField{
	newStyleField("Theme Name", func(id types.ProjectIdentity) string { return id.ThemeName }),
	newStyleField("Theme URI", func(id types.ProjectIdentity) string { return id.ThemeURI }),
	newStyleField("Author", func(id types.ProjectIdentity) string { return id.Author }),
	newStyleField("Author URI", func(id types.ProjectIdentity) string { return id.AuthorURI }),
	newStyleField("Description", func(id types.ProjectIdentity) string { return id.Description }),
	newStyleField("Version", func(types.ProjectIdentity) string { return InitialVersion }),
}

// IsStyleHeader reports whether relPath is a stylesheet carrying the theme header
func IsStyleHeader(relPath string) bool {
	base := path.Base(relPath)
	for _, name := range StyleHeaderFiles {
		if base == name {
			return true
		}
	}
	return false
}

// RewriteStyleHeader replaces the value of every theme header field line
// with the matching identity value. Version is reset to InitialVersion.
func RewriteStyleHeader(content string, id types.ProjectIdentity) string {
	for _, f := range styleFields {
		replacement := "${1}" + strings.ReplaceAll(f.value(id), "$", "$$")
		content = f.re.ReplaceAllString(content, replacement)
	}
	return content
}
