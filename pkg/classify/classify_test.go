package classify

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/filesystem"
	"github.com/arthur-debert/flairgen/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		path string
		want types.Classification
	}{
		{"functions.php", types.TextRewrite},
		{"sass/style.scss", types.TextRewrite},
		{"style.css", types.TextRewrite},
		{"js/navigation.js", types.TextRewrite},
		{"package.json", types.TextRewrite},
		{"images/logo.png", types.VerbatimCopy},
		{"fonts/icons.woff2", types.VerbatimCopy},
		{"Gruntfile.coffee", types.VerbatimCopy},
		{".jshintrc", types.VerbatimCopy},
		{"languages/flair.pot", types.VerbatimCopy},
		{"LICENSE", types.Ignored},
		{"README.md", types.Ignored},
		{"docs/README.md", types.VerbatimCopy},
		{".git", types.Ignored},
		{".git/config", types.Ignored},
		{"vendor/lib/.git/HEAD", types.Ignored},
		{"vendor/lib/.git", types.Ignored},
		{".gitignore", types.VerbatimCopy},
		{"STYLE.PHP", types.VerbatimCopy},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPath(tt.path))
		})
	}
}

func TestIgnoreWinsOverExtension(t *testing.T) {
	// A .js file inside the VCS directory qualifies for rewriting by
	// extension but must still be ignored.
	assert.Equal(t, types.Ignored, ClassifyPath(".git/hooks/pre-commit.js"))
}

func writeTree(t *testing.T, fs types.FS, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, fs.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, fs.WriteFile(full, []byte(content), 0644))
	}
}

func TestClassify(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	root := "/template"
	writeTree(t, fs, root, map[string]string{
		"style.css":                  "/* Theme Name: Flair */",
		"functions.php":              "<?php",
		"templates/flair-header.php": "<?php",
		"images/logo.png":            "\x89PNG",
		".editorconfig":              "root = true",
		"LICENSE":                    "GPL",
		"README.md":                  "# Flair",
		".git/HEAD":                  "ref: refs/heads/master",
		".git/objects/ab/cdef":       "blob",
	})

	records, failures, err := New(fs).Classify(root)
	require.NoError(t, err)
	assert.Empty(t, failures)

	got := make(map[string]types.Classification, len(records))
	var order []string
	for _, r := range records {
		got[r.RelPath] = r.Classification
		order = append(order, r.RelPath)
	}

	assert.Equal(t, map[string]types.Classification{
		".editorconfig":              types.VerbatimCopy,
		".git":                       types.Ignored,
		"LICENSE":                    types.Ignored,
		"README.md":                  types.Ignored,
		"functions.php":              types.TextRewrite,
		"images/logo.png":            types.VerbatimCopy,
		"style.css":                  types.TextRewrite,
		"templates/flair-header.php": types.TextRewrite,
	}, got)

	assert.IsIncreasing(t, order)
}

func TestClassifyMissingRoot(t *testing.T) {
	_, _, err := New(filesystem.NewMemoryFS()).Classify("/nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrClassify))
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "rewrite", types.TextRewrite.String())
	assert.Equal(t, "copy", types.VerbatimCopy.String())
	assert.Equal(t, "ignored", types.Ignored.String())
	assert.Equal(t, "unknown", types.Classification(42).String())
}
