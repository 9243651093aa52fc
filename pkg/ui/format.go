package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how a generation result is shown
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText from the output writer
	FormatAuto Format = iota
	// FormatTerminal styles the summary and renders next steps as markdown
	FormatTerminal
	// FormatText prints the summary as plain lines
	FormatText
	// FormatJSON prints the GenerateResult as JSON
	FormatJSON
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
}

// FormatNames lists the accepted --output values
func FormatNames() []string {
	return []string{"auto", "term", "text", "json"}
}

// String returns the flag spelling of the format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Set implements pflag.Value so a Format can back the --output flag
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value
func (f *Format) Type() string {
	return "format"
}

// ParseFormat parses an --output value, case insensitively
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatAuto, nil
	}
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown output format %q (want one of %s)",
		s, strings.Join(FormatNames(), ", ")).
		WithDetail("value", s)
}

// Resolve turns FormatAuto into the concrete format for w. Other formats
// are returned as they are.
func (f Format) Resolve(w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	return DetectFormat(w)
}

// DetectFormat returns FormatTerminal only for a color capable terminal.
// NO_COLOR, pipes, redirections and writers that are not files get FormatText.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	file, ok := w.(*os.File)
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(file).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
