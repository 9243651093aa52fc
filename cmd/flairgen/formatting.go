package flairgen

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/flairgen/pkg/ui/styles"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// stdoutIsTerminal reports whether help output goes to a terminal
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatBold returns s in bold when writing to a terminal
func formatBold(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns s uppercased, and bold when writing to a terminal
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// formatStyle renders s with a named style from the ui style registry
func formatStyle(name, s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return styles.Render(name, s)
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
		"style":     formatStyle,
	})
}
