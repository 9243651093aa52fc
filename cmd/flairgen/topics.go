package flairgen

import (
	"embed"

	"github.com/arthur-debert/flairgen/pkg/cobrax/topics"
	"github.com/arthur-debert/flairgen/pkg/filesystem"
	"github.com/arthur-debert/flairgen/pkg/logging"
	"github.com/arthur-debert/flairgen/pkg/ui/terminal"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//go:embed topics
var helpTopics embed.FS

// initTopics installs the help command serving the embedded topics
func initTopics(root *cobra.Command) {
	opts := topics.Options{}
	if stdoutIsTerminal() {
		opts.Renderer = topics.MarkdownFunc(terminal.NewMarkdownRenderer().Render)
	}

	fs := filesystem.NewAferoFS(afero.FromIOFS{FS: helpTopics})
	if _, err := topics.Initialize(root, fs, "topics", opts); err != nil {
		logger := logging.GetLogger("cmd")
		logger.Warn().Err(err).Msg("Help topics unavailable")
	}
}
