package topics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/flairgen/pkg/filesystem"
	"github.com/arthur-debert/flairgen/pkg/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	fs := filesystem.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("help", 0755))
	for path, content := range files {
		require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
	}
	return fs
}

func TestScan(t *testing.T) {
	fs := topicFS(t, map[string]string{
		"help/substitution.md":    "# Rules",
		"help/option-dry-run.txt": "Dry run help",
		"help/notes.json":         "{}",
	})

	tests := []struct {
		name       string
		extensions []string
		topics     []string
	}{
		{"default extensions", nil, []string{"option-dry-run", "substitution"}},
		{"markdown only", []string{".md"}, []string{"substitution"}},
		{"json included", []string{".md", ".txt", ".json"}, []string{"notes", "option-dry-run", "substitution"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(fs, "help", Options{Extensions: tt.extensions})
			require.NoError(t, m.Scan())
			assert.Equal(t, tt.topics, m.List())
		})
	}
}

func TestScanMissingDir(t *testing.T) {
	m := New(filesystem.NewMemoryFS(), "nope", Options{})
	require.NoError(t, m.Scan())
	assert.Empty(t, m.List())
}

func TestGet(t *testing.T) {
	m := New(topicFS(t, map[string]string{
		"help/option-dry-run.txt": "Dry run help",
		"help/answers.md":         "Answers",
	}), "help", Options{})
	require.NoError(t, m.Scan())

	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"answers", "answers", true},
		{"option-dry-run", "option-dry-run", true},
		{"dry-run", "option-dry-run", true},
		{"--dry-run", "option-dry-run", true},
		{"-v", "", false},
		{"missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, ok := m.Get(tt.input)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.want, topic.Name)
			}
		})
	}
}

func TestRenderUsesMarkdownOnlyForMarkdown(t *testing.T) {
	upper := MarkdownFunc(strings.ToUpper)
	m := New(topicFS(t, map[string]string{
		"help/a.md":  "markdown",
		"help/b.txt": "plain",
	}), "help", Options{Renderer: upper})
	require.NoError(t, m.Scan())

	a, _ := m.Get("a")
	b, _ := m.Get("b")
	assert.Equal(t, "MARKDOWN", m.Render(a))
	assert.Equal(t, "plain", m.Render(b))
}

func TestWriteIndex(t *testing.T) {
	m := New(topicFS(t, map[string]string{
		"help/substitution.md":    "x",
		"help/option-dry-run.txt": "y",
	}), "help", Options{})
	require.NoError(t, m.Scan())

	var buf bytes.Buffer
	m.WriteIndex(&buf, "flairgen")
	out := buf.String()
	assert.Contains(t, out, "General topics:\n  substitution")
	assert.Contains(t, out, "Option topics:\n  --dry-run")
	assert.Contains(t, out, "'flairgen help <topic>'")

	var empty bytes.Buffer
	New(filesystem.NewMemoryFS(), "help", Options{}).WriteIndex(&empty, "flairgen")
	assert.Equal(t, "No help topics available.\n", empty.String())
}

func TestInitialize(t *testing.T) {
	fs := topicFS(t, map[string]string{"help/option-dry-run.txt": "DRY RUN MODE"})

	root := &cobra.Command{Use: "testapp"}
	root.AddCommand(&cobra.Command{Use: "new", Run: func(cmd *cobra.Command, args []string) {}})

	_, err := Initialize(root, fs, "help", Options{})
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"help", "dry-run"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "DRY RUN MODE", out.String())

	out.Reset()
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "--dry-run")
}
