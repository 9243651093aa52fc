// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/types"
	"github.com/arthur-debert/flairgen/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss styles, pterm
// prefixes and glamour markdown
type Renderer struct {
	output   io.Writer
	markdown *MarkdownRenderer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output:   w,
		markdown: NewMarkdownRenderer(),
	}, nil
}

// RenderResult renders a generation result with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.GenerateResult:
		_, err := io.WriteString(r.output, r.summary(v))
		return err
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) summary(res *types.GenerateResult) string {
	var b strings.Builder

	title := fmt.Sprintf("%s (%s)", res.Identity.ThemeName, res.Identity.ShortName)
	if res.DryRun {
		title = "Dry run: " + title
	}
	b.WriteString(styles.Render("Title", title))
	b.WriteString("\n")

	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", styles.Render("Label", label), styles.Render("Value", value))
	}
	if res.TemplateVersion != "" {
		row("template", "Flair v"+res.TemplateVersion)
	}
	row("output", res.OutputDir)
	row("rewritten", fmt.Sprint(len(res.Written)))
	row("copied", fmt.Sprint(len(res.Copied)))
	row("ignored", fmt.Sprint(len(res.Ignored)))

	renamed := make([]string, 0, len(res.Renamed))
	for src := range res.Renamed {
		renamed = append(renamed, src)
	}
	sort.Strings(renamed)
	for _, src := range renamed {
		fmt.Fprintf(&b, "  %s %s %s\n", styles.Render("Path", src), styles.Render("Muted", "→"), styles.Render("Renamed", res.Renamed[src]))
	}

	if len(res.Failures) > 0 {
		fmt.Fprintf(&b, "\n%s %s\n", pterm.Warning.Prefix.Text, styles.Render("Warning", "Files needing attention"))
		for _, f := range res.Failures {
			fmt.Fprintf(&b, "  %s %s %s\n", styles.Render("Path", f.Path), styles.Render("Muted", "["+f.Stage+"]"), f.Error)
		}
	}

	for _, pa := range res.PostActions {
		cmd := strings.Join(pa.Command, " ")
		if pa.Error != "" {
			fmt.Fprintf(&b, "%s %s %s\n", pterm.Error.Prefix.Text, cmd, styles.Render("Error", pa.Error))
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", pterm.Success.Prefix.Text, cmd)
	}

	if !res.DryRun {
		b.WriteString(r.markdown.Render(NextSteps(res)))
	}
	return b.String()
}

// NextSteps returns markdown telling the user what to do with the theme
func NextSteps(res *types.GenerateResult) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	fmt.Fprintf(&b, "1. `cd %s`\n", res.OutputDir)
	step := 2
	if len(res.PostActions) == 0 || res.HasFailures() {
		fmt.Fprintf(&b, "%d. Run `npm install` and `grunt setup`\n", step)
		step++
	}
	fmt.Fprintf(&b, "%d. Activate **%s** in the WordPress admin\n", step, res.Identity.ThemeName)
	return b.String()
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	if stage := errors.Stage(err); stage != "unknown" {
		msg = fmt.Sprintf("%s failed: %s", stage, err)
	}
	_, werr := fmt.Fprintf(r.output, "%s %s\n", pterm.Error.Prefix.Text, styles.Render("Error", msg))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Greeting", msg))
	return err
}
