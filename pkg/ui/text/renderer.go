// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders a generation result as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.GenerateResult:
		_, err := io.WriteString(r.output, Summary(v))
		return err
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// Summary formats a generation result as plain text lines
func Summary(res *types.GenerateResult) string {
	var b strings.Builder

	verb := "Generated"
	if res.DryRun {
		verb = "Dry run: would generate"
	}
	fmt.Fprintf(&b, "%s %s (%s)", verb, res.Identity.ThemeName, res.Identity.ShortName)
	if res.TemplateVersion != "" {
		fmt.Fprintf(&b, " from Flair v%s", res.TemplateVersion)
	}
	fmt.Fprintf(&b, " in %s\n", res.OutputDir)
	fmt.Fprintf(&b, "  rewritten: %d  copied: %d  ignored: %d\n", len(res.Written), len(res.Copied), len(res.Ignored))

	renamed := make([]string, 0, len(res.Renamed))
	for src := range res.Renamed {
		renamed = append(renamed, src)
	}
	sort.Strings(renamed)
	for _, src := range renamed {
		fmt.Fprintf(&b, "  renamed: %s -> %s\n", src, res.Renamed[src])
	}

	if len(res.Failures) > 0 {
		b.WriteString("Files needing attention:\n")
		for _, f := range res.Failures {
			fmt.Fprintf(&b, "  %s [%s]: %s\n", f.Path, f.Stage, f.Error)
		}
	}

	if len(res.PostActions) > 0 {
		b.WriteString("Post-generation commands:\n")
		for _, pa := range res.PostActions {
			status := "ok"
			if pa.Error != "" {
				status = "failed: " + pa.Error
			}
			fmt.Fprintf(&b, "  %s: %s\n", strings.Join(pa.Command, " "), status)
		}
	}
	return b.String()
}

// RenderError renders an error as plain text, naming the failed stage
func (r *Renderer) RenderError(err error) error {
	if stage := errors.Stage(err); stage != "unknown" {
		_, werr := fmt.Fprintf(r.output, "Error during %s: %v\n", stage, err)
		return werr
	}
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
