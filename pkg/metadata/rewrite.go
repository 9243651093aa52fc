package metadata

import (
	"github.com/arthur-debert/flairgen/pkg/logging"
	"github.com/arthur-debert/flairgen/pkg/types"
)

// Kind names the structured file a path was recognised as
type Kind string

const (
	KindNone        Kind = ""
	KindStyleHeader Kind = "style-header"
	KindManifest    Kind = "manifest"
)

// KindOf returns which structured file relPath is, if any
func KindOf(relPath string) Kind {
	switch {
	case IsManifest(relPath):
		return KindManifest
	case IsStyleHeader(relPath):
		return KindStyleHeader
	default:
		return KindNone
	}
}

// Rewrite applies the field rewriter matching relPath. Content of any other
// file is returned unchanged.
func Rewrite(relPath, content string, id types.ProjectIdentity) (string, Kind) {
	logger := logging.ForFile("metadata", relPath)

	kind := KindOf(relPath)
	switch kind {
	case KindStyleHeader:
		logger.Info().Msg("Updating theme information")
		return RewriteStyleHeader(content, id), kind
	case KindManifest:
		logger.Info().Msg("Updating package information")
		return RewriteManifest(content, id), kind
	}
	return content, kind
}
