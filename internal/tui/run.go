package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsvensson/colorsift/internal/palette"
)

// Run starts the editor on the terminal and returns the edited collection
// when the user quits.
func Run(records []palette.Record, opts Options) ([]palette.Record, error) {
	p := tea.NewProgram(New(records, opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(Model).Records(), nil
}
