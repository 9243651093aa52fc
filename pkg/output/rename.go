package output

import (
	"strings"

	"github.com/arthur-debert/flairgen/pkg/substitute"
)

// RenamePath maps a slash separated template-relative path to its output
// path. The first segment that begins with the placeholder has that prefix
// replaced by shortName; separators are never part of a match.
func RenamePath(relPath, shortName string) string {
	if shortName == "" {
		return relPath
	}
	segments := strings.Split(relPath, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, substitute.Placeholder) {
			segments[i] = shortName + strings.TrimPrefix(segment, substitute.Placeholder)
			return strings.Join(segments, "/")
		}
	}
	return relPath
}
