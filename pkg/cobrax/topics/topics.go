// Package topics adds file-based help topics to a Cobra command tree.
// Topics are read from a types.FS, so they can be embedded in the binary.
package topics

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/flairgen/pkg/logging"
	"github.com/arthur-debert/flairgen/pkg/types"
	"github.com/spf13/cobra"
)

// OptionPrefix marks topics that document a flag
const OptionPrefix = "option-"

// Topic is a single help page
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Renderer formats topic content for display; ext is the topic file extension
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render implements Renderer
func (PlainRenderer) Render(content string, ext string) string {
	return content
}

// MarkdownFunc renders .md topics through f and leaves others untouched
type MarkdownFunc func(string) string

// Render implements Renderer
func (f MarkdownFunc) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}
	return f(content)
}

// Options configures a Manager
type Options struct {
	// Extensions considered as topics, [".txt", ".md"] when empty
	Extensions []string
	// Renderer defaults to PlainRenderer
	Renderer Renderer
}

// Manager holds the topics found under a directory
type Manager struct {
	fs         types.FS
	dir        string
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// New creates a Manager reading topics from dir on fs
func New(fs types.FS, dir string, opts Options) *Manager {
	m := &Manager{
		fs:         fs,
		dir:        dir,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = PlainRenderer{}
	}
	return m
}

// Scan loads every topic file below the directory. A missing directory
// yields no topics.
func (m *Manager) Scan() error {
	if _, err := m.fs.Stat(m.dir); os.IsNotExist(err) {
		return nil
	}

	return m.fs.Walk(m.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if !m.supported(ext) {
			return nil
		}

		content, err := m.fs.ReadFile(path)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(path), ext)
		m.topics[name] = &Topic{Name: name, FilePath: path, Content: string(content)}
		return nil
	})
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Get looks a topic up by name. Flag spellings such as --dry-run resolve
// to the option-dry-run topic.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := m.topics[name]; ok {
		return topic, true
	}
	topic, ok := m.topics[OptionPrefix+name]
	return topic, ok
}

// List returns the topic names in lexical order
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the formatted content of a topic
func (m *Manager) Render(topic *Topic) string {
	return m.renderer.Render(topic.Content, filepath.Ext(topic.FilePath))
}

// WriteIndex prints the available topics, grouping option topics apart
func (m *Manager) WriteIndex(w io.Writer, appName string) {
	names := m.List()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, OptionPrefix) {
			options = append(options, strings.TrimPrefix(name, OptionPrefix))
		} else {
			general = append(general, name)
		}
	}

	_, _ = fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		_, _ = fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			_, _ = fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		_, _ = fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			_, _ = fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	_, _ = fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}

// Initialize scans the topics and replaces the help command of root with
// one that also knows about them.
func Initialize(root *cobra.Command, fs types.FS, dir string, opts Options) (*Manager, error) {
	m := New(fs, dir, opts)
	if err := m.Scan(); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	logger := logging.GetLogger("topics")
	logger.Debug().Int("count", len(m.topics)).Msg("Help topics loaded")

	originalHelp := root.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + root.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + root.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.List()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				originalHelp(root, []string{})
				return
			}
			if args[0] == "topics" {
				m.WriteIndex(cmd.OutOrStdout(), root.Name())
				return
			}
			if topic, ok := m.Get(args[0]); ok {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), m.Render(topic))
				return
			}
			target, _, err := root.Find(args)
			if err != nil || target == nil {
				originalHelp(root, args)
				return
			}
			originalHelp(target, args)
		},
	}

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			root.RemoveCommand(c)
			break
		}
	}
	root.SetHelpCommand(helpCmd)

	return m, nil
}
