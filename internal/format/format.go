// Package format provides output formatting utilities for CLI display.
//
// Centralises presentation so command implementations focus on running
// validation while this package handles colour detection and the layout of
// findings and summaries.
package format

import (
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Colour modes accepted by --colour and the output.colour config key.
const (
	ColourAuto   = "auto"
	ColourAlways = "always"
	ColourNever  = "never"
)

// ColourModes lists the valid colour modes.
var ColourModes = []string{ColourAuto, ColourAlways, ColourNever}

// ValidColourMode reports whether mode is one of ColourModes.
func ValidColourMode(mode string) bool {
	return slices.Contains(ColourModes, mode)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Colour resolves a colour mode for writer w. Auto enables colour only when
// w is a terminal, so redirected output stays free of escape codes.
func Colour(mode string, w io.Writer) bool {
	switch mode {
	case ColourAlways:
		return true
	case ColourNever:
		return false
	default:
		return IsTerminal(w)
	}
}

// styles holds the line styles for one output stream.
type styles struct {
	err  lipgloss.Style
	warn lipgloss.Style
	ok   lipgloss.Style
	info lipgloss.Style
}

// newStyles builds styles bound to w. The colour profile is set explicitly
// rather than detected, because the caller has already decided.
func newStyles(w io.Writer, colour bool) styles {
	r := lipgloss.NewRenderer(w)
	if colour {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		err:  r.NewStyle().Foreground(lipgloss.Color("1")),
		warn: r.NewStyle().Foreground(lipgloss.Color("3")),
		ok:   r.NewStyle().Foreground(lipgloss.Color("2")),
		info: r.NewStyle().Foreground(lipgloss.Color("4")),
	}
}
