package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette shared with the other lu tools
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// deltaStyles renders conf diff output
type deltaStyles struct {
	Header lipgloss.Style
	Path   lipgloss.Style
	Old    lipgloss.Style
	New    lipgloss.Style
	Arrow  lipgloss.Style
}

func newDeltaStyles(color bool) deltaStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return deltaStyles{Header: plain, Path: plain, Old: plain, New: plain, Arrow: plain}
	}
	return deltaStyles{
		Header: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		Path: lipgloss.NewStyle().
			Bold(true),
		Old: lipgloss.NewStyle().
			Foreground(ColorError).
			Strikethrough(true),
		New: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Arrow: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}
