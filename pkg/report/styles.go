package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529", // Almost black
		Dark:  "#F8F9FA", // Almost white
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#B8860B", // Dark amber
		Dark:  "#FFD54F",
	}

	BorderColor = lipgloss.AdaptiveColor{
		Light: "#DEE2E6",
		Dark:  "#495057",
	}
)

// styles are bound to a lipgloss renderer so color detection follows the
// writer they print to.
type styles struct {
	Caption lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Footer  lipgloss.Style
	Border  lipgloss.Style
	Error   lipgloss.Style
	Code    lipgloss.Style
	Hint    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Caption: r.NewStyle().Foreground(HeadingColor).Bold(true),
		Header:  r.NewStyle().Foreground(HeadingColor).Bold(true).Padding(0, 1),
		Cell:    r.NewStyle().Padding(0, 1),
		Footer:  r.NewStyle().Foreground(MutedColor),
		Border:  r.NewStyle().Foreground(BorderColor),
		Error:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		Code:    r.NewStyle().Foreground(ErrorColor),
		Hint:    r.NewStyle().Foreground(WarningColor),
	}
}
