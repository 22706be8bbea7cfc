package report

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/wort/pkg/errors"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks text, term or markdown from the output's capabilities
	FormatAuto Format = iota
	// FormatText renders plain ASCII tables
	FormatText
	// FormatTerminal renders colored tables
	FormatTerminal
	// FormatMarkdown renders markdown tables, styled when the output is a terminal
	FormatMarkdown
	// FormatHTML renders <table> elements
	FormatHTML
	// FormatJSON renders machine-readable JSON output
	FormatJSON
	// FormatYAML renders the brew log table shape
	FormatYAML
)

var formatNames = []string{"auto", "text", "term", "markdown", "html", "json", "yaml"}

// String returns the string representation of the format
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// Formats lists the accepted format names.
func Formats() []string {
	return append([]string(nil), formatNames...)
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "text", "plain":
		return FormatText, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("valid_keys", Formats())
}

// DetectFormat determines the output format from environment and terminal
// capabilities
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if !isTerminal(output) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
