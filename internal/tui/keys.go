package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for every screen.
type KeyMap struct {
	Import ImportKeyMap
	Editor EditorKeyMap
	Input  InputKeyMap
}

// ImportKeyMap defines keybindings for the paste screen.
type ImportKeyMap struct {
	Import key.Binding
	Quit   key.Binding
}

// EditorKeyMap defines keybindings for the color list.
type EditorKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Select       key.Binding
	SortOriginal key.Binding
	SortHue      key.Binding
	SortSelected key.Binding
	Edit         key.Binding
	Brighten     key.Binding
	Darken       key.Binding
	Shift        key.Binding
	Copy         key.Binding
	Quit         key.Binding
}

// InputKeyMap defines keybindings for the color input.
type InputKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Import: ImportKeyMap{
			Import: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "import")),
			Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		},
		Editor: EditorKeyMap{
			Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Select:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
			SortOriginal: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "original order")),
			SortHue:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "by hue")),
			SortSelected: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "similar to selected")),
			Edit:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit color")),
			Brighten:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "brighten")),
			Darken:       key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "darken")),
			Shift:        key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "shift colors away")),
			Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy export")),
			Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		Input: InputKeyMap{
			Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		},
	}
}

// ShortHelp implements help.KeyMap for the editor screen.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.SortOriginal, k.SortHue, k.SortSelected, k.Edit, k.Shift, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap for the editor screen.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.SortOriginal, k.SortHue, k.SortSelected},
		{k.Edit, k.Brighten, k.Darken, k.Shift},
		{k.Copy, k.Quit},
	}
}
