// Package classify walks a materialised template tree and decides, for every
// file, whether it is rewritten as text, copied verbatim or ignored.
package classify

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/logging"
	"github.com/arthur-debert/flairgen/pkg/types"
	"github.com/rs/zerolog"
)

// VCSDir is the version control metadata directory name
const VCSDir = ".git"

// IgnoredFiles are template-relative paths that never reach the output
var IgnoredFiles = []string{
	"LICENSE",
	"README.md",
}

// RewriteExtensions are the extensions whose files go through substitution.
// Anything else is copied byte for byte.
var RewriteExtensions = []string{
	".php",
	".css",
	".scss",
	".js",
	".json",
}

// Classifier enumerates template files
type Classifier struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a classifier reading through fs
func New(fs types.FS) *Classifier {
	return &Classifier{
		fs:     fs,
		logger: logging.GetLogger("classify"),
	}
}

// ClassifyPath returns the classification of a slash separated,
// template-relative path. Ignore rules win over the extension allow-list.
func ClassifyPath(relPath string) types.Classification {
	for _, ignored := range IgnoredFiles {
		if relPath == ignored {
			return types.Ignored
		}
	}
	for _, segment := range strings.Split(relPath, "/") {
		if segment == VCSDir {
			return types.Ignored
		}
	}

	ext := path.Ext(relPath)
	for _, allowed := range RewriteExtensions {
		if ext == allowed {
			return types.TextRewrite
		}
	}
	return types.VerbatimCopy
}

// Classify walks root recursively, hidden entries included, and returns one
// record per regular file in lexical order. The version control directory is
// reported as a single ignored record without descending into it. Entries
// that cannot be read are returned as failures and skipped; only a failure on
// root itself is fatal.
func (c *Classifier) Classify(root string) ([]types.FileRecord, []types.FileFailure, error) {
	done := logging.LogOperationStart(c.logger, "classify")
	defer done()

	if _, err := c.fs.Stat(root); err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrClassify, "cannot read template root %s", root).
			WithDetail("root", root)
	}

	var records []types.FileRecord
	var failures []types.FileFailure

	err := c.fs.Walk(root, func(p string, info os.FileInfo, walkErr error) error {
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if walkErr != nil {
			if rel == "." {
				return walkErr
			}
			c.logger.Warn().Err(walkErr).Str("path", rel).Msg("cannot read template entry")
			failures = append(failures, types.FileFailure{
				Path:  rel,
				Stage: "classify",
				Error: walkErr.Error(),
			})
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if rel == "." {
			return nil
		}

		if info.IsDir() {
			if info.Name() == VCSDir {
				records = append(records, types.FileRecord{RelPath: rel, Classification: types.Ignored, Mode: info.Mode()})
				return filepath.SkipDir
			}
			return nil
		}

		record := types.FileRecord{
			RelPath:        rel,
			Classification: ClassifyPath(rel),
			Mode:           info.Mode().Perm(),
		}
		c.logger.Trace().
			Str("path", rel).
			Str("classification", record.Classification.String()).
			Msg("classified template file")
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrClassify, "failed to walk template tree %s", root).
			WithDetail("root", root)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].RelPath < records[j].RelPath
	})

	c.logger.Info().
		Int("files", len(records)).
		Int("failures", len(failures)).
		Msg("classified template tree")

	return records, failures, nil
}
