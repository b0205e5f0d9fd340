package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Styles renders the colored parts of CLI output.
type Styles struct {
	IDPrefix lipgloss.Style
	Overdue  lipgloss.Style
	Done     lipgloss.Style
	Header   lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles returns styles for output written to w. Color is dropped when
// NO_COLOR is set, TERM is dumb, or w is not a terminal.
func NewStyles(w io.Writer) Styles {
	profile := termenv.Ascii
	if ansiEnabled(w) {
		profile = termenv.ANSI
	}
	return StylesWithProfile(profile)
}

// StylesWithProfile returns styles rendered with a fixed color profile.
func StylesWithProfile(profile termenv.Profile) Styles {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(profile)
	return Styles{
		IDPrefix: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Overdue:  renderer.NewStyle().Foreground(lipgloss.Color("1")),
		Done:     renderer.NewStyle().Faint(true),
		Header:   renderer.NewStyle().Bold(true),
		Error:    renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

func ansiEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
