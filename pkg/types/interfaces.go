package types

import (
	"io/fs"
	"path/filepath"
)

// FS is the filesystem interface required for flairgen operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	Walk(root string, fn filepath.WalkFunc) error

	// Other operations
	Remove(name string) error
	Rename(oldpath, newpath string) error
}
