package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/flairgen/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

// NewAferoOS creates an afero-backed view of the OS filesystem
func NewAferoOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewMemoryFS creates an in-memory filesystem, mostly for tests and dry runs
func NewMemoryFS() types.FS {
	return NewAferoFS(afero.NewMemMapFs())
}

// NewReadOnlyFS wraps base so that every write fails
func NewReadOnlyFS(base types.FS) types.FS {
	if a, ok := base.(*aferoFS); ok {
		return &aferoFS{fs: afero.NewReadOnlyFs(a.fs)}
	}
	return &aferoFS{fs: afero.NewReadOnlyFs(afero.NewOsFs())}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Walk(root string, fn filepath.WalkFunc) error {
	return afero.Walk(a.fs, root, fn)
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

func (a *aferoFS) Rename(oldpath, newpath string) error {
	return a.fs.Rename(oldpath, newpath)
}
