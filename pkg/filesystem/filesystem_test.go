package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/flairgen/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	testFile := filepath.Join(root, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(root, "sub", "dir")
	require.NoError(t, fsys.MkdirAll(subDir, 0755))
	require.NoError(t, fsys.WriteFile(filepath.Join(subDir, "inner.php"), []byte("<?php"), 0644))

	var files []string
	err = fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			rel, _ := filepath.Rel(root, path)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	assert.Equal(t, []string{"sub/dir/inner.php", "test.txt"}, files)

	renamed := filepath.Join(root, "renamed.txt")
	require.NoError(t, fsys.Rename(testFile, renamed))
	_, err = fsys.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fsys.Remove(renamed))
	_, err = fsys.Stat(renamed)
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	assert.NotNil(t, fsys)
	exerciseFS(t, fsys, t.TempDir())
}

func TestNewMemoryFS(t *testing.T) {
	fsys := NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/tmpl", 0755))
	exerciseFS(t, fsys, "/tmpl")
}

func TestAferoReadFileOnDirectory(t *testing.T) {
	fsys := NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/dir", 0755))

	_, err := fsys.ReadFile("/dir")
	assert.Error(t, err)
}

func TestReadOnlyFSRejectsWrites(t *testing.T) {
	base := NewMemoryFS()
	require.NoError(t, base.WriteFile("/a.txt", []byte("a"), 0644))

	ro := NewReadOnlyFS(base)
	content, err := ro.ReadFile("/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a", string(content))

	assert.Error(t, ro.WriteFile("/b.txt", []byte("b"), 0644))
}
