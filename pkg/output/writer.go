package output

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sync/atomic"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/logging"
	"github.com/arthur-debert/flairgen/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// DefaultFileMode is used when a record carries no permission bits
	DefaultFileMode fs.FileMode = 0644
	// DirMode is used for directories created on demand
	DirMode fs.FileMode = 0755
)

// Writer creates and overwrites files below an output root
type Writer struct {
	fs     types.FS
	root   string
	dryRun bool
	seq    atomic.Uint64
	logger zerolog.Logger
}

// NewWriter creates a writer for root. In dry-run mode every operation
// succeeds without touching fs.
func NewWriter(fs types.FS, root string, dryRun bool) *Writer {
	return &Writer{
		fs:     fs,
		root:   root,
		dryRun: dryRun,
		logger: logging.GetLogger("output"),
	}
}

// Root returns the output root directory
func (w *Writer) Root() string {
	return w.root
}

// Target returns the absolute output path for a slash separated relative path
func (w *Writer) Target(relPath string) string {
	return filepath.Join(w.root, filepath.FromSlash(relPath))
}

// Write stores content at relPath, creating parent directories. The file is
// first written to a temporary sibling and then renamed over the target, so
// a failed write never leaves a truncated file behind.
func (w *Writer) Write(relPath string, content []byte, mode fs.FileMode) error {
	target := w.Target(relPath)
	if mode == 0 {
		mode = DefaultFileMode
	}

	if w.dryRun {
		w.logger.Debug().Str("path", target).Int("bytes", len(content)).Msg("Dry run: skipping write")
		return nil
	}

	dir := filepath.Dir(target)
	if err := w.fs.MkdirAll(dir, DirMode); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory for %s", relPath).
			WithDetail("path", dir)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%d.flairgen-tmp", filepath.Base(target), w.seq.Add(1)))
	if err := w.fs.WriteFile(tmp, content, mode); err != nil {
		_ = w.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", relPath).
			WithDetail("path", target)
	}
	if err := w.fs.Rename(tmp, target); err != nil {
		_ = w.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot move %s into place", relPath).
			WithDetail("path", target)
	}

	w.logger.Trace().Str("path", target).Int("bytes", len(content)).Msg("File written")
	return nil
}

// Copy writes the bytes of src, read from srcFS, to relPath unchanged
func (w *Writer) Copy(srcFS types.FS, src, relPath string, mode fs.FileMode) error {
	data, err := srcFS.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", relPath).
			WithDetail("path", src)
	}
	return w.Write(relPath, data, mode)
}
