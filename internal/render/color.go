package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/verte-zerg/genpass/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	tierStyles   = map[model.Tier]lipgloss.Style{
		model.TierVeryWeak:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
		model.TierWeak:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FA8C16")),
		model.TierFair:       lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		model.TierStrong:     lipgloss.NewStyle().Foreground(lipgloss.Color("#73D13D")),
		model.TierVeryStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("#36CFC9")).Bold(true),
	}
)

// ShouldUseColor reports whether w is a terminal that accepts ANSI colour.
// NO_COLOR always wins over force.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// TerminalWidth returns the column count of w when it is a terminal,
// DefaultWidth otherwise.
func TerminalWidth(w io.Writer) int {
	if file, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return DefaultWidth
}

// ForceColor makes lipgloss emit ANSI colour even when stdout is not a
// terminal, so that forced output is actually styled.
func ForceColor() {
	if os.Getenv("NO_COLOR") != "" {
		return
	}
	lipgloss.SetColorProfile(termenv.ANSI256)
}

// TierStyle returns the colour style of a tier.
func TierStyle(t model.Tier) lipgloss.Style {
	if s, ok := tierStyles[t]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// TierLabel renders the tier label, coloured when color is set.
func TierLabel(t model.Tier, color bool) string {
	if !color {
		return t.Label()
	}
	return TierStyle(t).Render(t.Label())
}

func heading(s string, color bool) string {
	if !color {
		return s
	}
	return headingStyle.Render(s)
}

func muted(s string, color bool) string {
	if !color {
		return s
	}
	return mutedStyle.Render(s)
}
