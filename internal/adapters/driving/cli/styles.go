package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Palette.
const (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan
	colorMuted     = lipgloss.Color("#6C7086") // Medium gray
)

// outputStyles style headings on a command's output stream. The renderer
// drops colour when the stream is not a terminal.
type outputStyles struct {
	title   lipgloss.Style
	section lipgloss.Style
	muted   lipgloss.Style
}

func stylesFor(cmd *cobra.Command) outputStyles {
	r := lipgloss.NewRenderer(cmd.OutOrStdout())
	return outputStyles{
		title:   r.NewStyle().Bold(true).Foreground(colorPrimary),
		section: r.NewStyle().Bold(true).Foreground(colorSecondary),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}
