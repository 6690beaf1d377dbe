package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	activeModeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#00d1b2"))
	inactiveModeStyle = lipgloss.NewStyle().Padding(0, 1).Faint(true)

	cursorStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#48c774"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f14668"))
)

// swatch renders a block filled with hex, or a placeholder for invalid colors.
func swatch(hex string, ok bool) string {
	if !ok {
		return dimStyle.Render(" ?? ")
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
