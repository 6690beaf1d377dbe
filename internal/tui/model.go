// Package tui is the interactive color list editor: paste a list, browse it
// in several orders, edit colors and copy the result.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jsvensson/colorsift/internal/color"
	"github.com/jsvensson/colorsift/internal/palette"
)

const lightnessStep = 0.05

type screen int

const (
	screenImport screen = iota
	screenEditor
	screenInput
)

// Options configures a Model.
type Options struct {
	Mode    palette.Mode       // initial sort mode; ModeSelected falls back to original
	Shifter *palette.Shifter   // used by the shift key; nil means step 1
	Copy    func(string) error // clipboard writer; nil uses the system clipboard
}

// Model is the bubbletea model for the editor.
type Model struct {
	keys KeyMap
	help help.Model

	screen   screen
	records  []palette.Record
	view     []palette.Record
	stats    map[int]palette.Stats
	mode     palette.Mode
	selected int // Index of the reference record, or palette.NoSelection
	cursor   int // position in view
	offset   int // first visible row

	importer textarea.Model
	input    textinput.Model

	shifter *palette.Shifter
	copy    func(string) error

	status    string
	statusErr bool
	height    int
}

// New returns a Model for records. An empty list starts on the paste screen.
func New(records []palette.Record, opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "#ff0000\tRed\n#00ff00\tGreen"
	ta.ShowLineNumbers = false
	ta.SetHeight(12)
	ta.Focus()

	ti := textinput.New()
	ti.Prompt = "color: "
	ti.CharLimit = 32

	m := Model{
		keys:     DefaultKeyMap(),
		help:     help.New(),
		screen:   screenImport,
		mode:     palette.ModeOriginal,
		selected: palette.NoSelection,
		importer: ta,
		input:    ti,
		shifter:  opts.Shifter,
		copy:     opts.Copy,
		height:   20,
	}
	if opts.Mode != "" && opts.Mode != palette.ModeSelected {
		m.mode = opts.Mode
	}
	if m.shifter == nil {
		m.shifter = &palette.Shifter{}
	}
	if m.copy == nil {
		m.copy = clipboard.WriteAll
	}
	if len(records) > 0 {
		m.load(records)
	}
	return m
}

// Records returns the current collection in its original order.
func (m Model) Records() []palette.Record {
	return m.records
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenImport {
		return textarea.Blink
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 3)
		m.importer.SetWidth(msg.Width)
		m.help.Width = msg.Width
		m.clampOffset()
		return m, nil
	case tea.KeyMsg:
		switch m.screen {
		case screenImport:
			return m.updateImport(msg)
		case screenInput:
			return m.updateInput(msg)
		default:
			return m.updateEditor(msg)
		}
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenImport:
		m.importer, cmd = m.importer.Update(msg)
	case screenInput:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updateImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Import.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Import.Import):
		records := palette.Parse(m.importer.Value())
		if len(records) == 0 {
			m.setError(fmt.Errorf("nothing to import"))
			return m, nil
		}
		m.load(records)
		return m, nil
	}
	var cmd tea.Cmd
	m.importer, cmd = m.importer.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Input.Cancel):
		m.input.Blur()
		m.screen = screenEditor
		return m, nil
	case key.Matches(msg, m.keys.Input.Confirm):
		r, ok := m.current()
		if ok {
			m.setColor(r.Index, m.input.Value())
		}
		m.input.Blur()
		m.screen = screenEditor
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys.Editor
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Up):
		m.moveCursor(-1)
	case key.Matches(msg, k.Down):
		m.moveCursor(1)
	case key.Matches(msg, k.Select):
		if r, ok := m.current(); ok {
			m.selected = r.Index
			m.setStatus(fmt.Sprintf("selected %s", describe(r)))
			if st, ok := m.stats[r.Index]; ok && st.Nearest != palette.NoSelection {
				nearest := m.records[indexPosition(m.records, st.Nearest)]
				m.setStatus(fmt.Sprintf("selected %s, nearest is %s", describe(r), describe(nearest)))
			}
			if m.mode == palette.ModeSelected {
				m.refresh()
			}
		}
	case key.Matches(msg, k.SortOriginal):
		m.setMode(palette.ModeOriginal)
	case key.Matches(msg, k.SortHue):
		m.setMode(palette.ModeHue)
	case key.Matches(msg, k.SortSelected):
		if m.selected == palette.NoSelection {
			m.setError(fmt.Errorf("select a color first"))
			break
		}
		m.setMode(palette.ModeSelected)
	case key.Matches(msg, k.Edit):
		if r, ok := m.current(); ok {
			m.input.SetValue(r.Color)
			m.input.CursorEnd()
			m.screen = screenInput
			return m, m.input.Focus()
		}
	case key.Matches(msg, k.Brighten):
		m.adjust(color.Brighten)
	case key.Matches(msg, k.Darken):
		m.adjust(color.Darken)
	case key.Matches(msg, k.Shift):
		shifted, err := m.shifter.Shift(m.records)
		if err != nil {
			m.setError(err)
			break
		}
		m.records = shifted
		m.refresh()
		m.setStatus("shifted colors away from their nearest neighbors")
	case key.Matches(msg, k.Copy):
		// Exports keep the original order whatever the view is sorted by.
		if err := m.copy(palette.Export(m.records)); err != nil {
			m.setError(fmt.Errorf("copy failed: %w", err))
			break
		}
		m.setStatus(fmt.Sprintf("copied %d colors to clipboard", len(m.records)))
	}
	return m, nil
}

// load replaces the collection and switches to the editor.
func (m *Model) load(records []palette.Record) {
	m.records = records
	m.selected = palette.NoSelection
	m.cursor, m.offset = 0, 0
	m.screen = screenEditor
	m.importer.Blur()
	m.refresh()
}

// refresh recomputes the sorted view and stats, keeping the cursor on the same record.
func (m *Model) refresh() {
	cur, hadCur := m.current()

	view, err := palette.Sort(m.records, m.mode, m.selected)
	if err != nil {
		m.setError(err)
		m.mode = palette.ModeOriginal
		view, _ = palette.Sort(m.records, m.mode, m.selected)
	}
	m.view = view

	m.stats = make(map[int]palette.Stats, len(m.records))
	if stats, err := palette.Analyze(m.records); err == nil {
		for i, r := range m.records {
			m.stats[r.Index] = stats[i]
		}
	}

	if hadCur {
		for i, r := range m.view {
			if r.Index == cur.Index {
				m.cursor = i
				break
			}
		}
	}
	m.clampOffset()
}

func (m *Model) setMode(mode palette.Mode) {
	m.mode = mode
	m.refresh()
}

func (m *Model) setColor(index int, value string) {
	records, err := palette.SetColor(m.records, index, value)
	if err != nil {
		m.setError(err)
		return
	}
	m.records = records
	m.refresh()
	m.setStatus(fmt.Sprintf("color %d set to %s", index, records[indexPosition(records, index)].Color))
}

func (m *Model) adjust(fn func(color.Color, float64) color.Color) {
	r, ok := m.current()
	if !ok {
		return
	}
	c, err := color.Parse(r.Color)
	if err != nil {
		m.setError(err)
		return
	}
	m.setColor(r.Index, fn(c, lightnessStep).Hex())
}

func (m *Model) current() (palette.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view) {
		return palette.Record{}, false
	}
	return m.view[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	m.cursor = max(0, min(len(m.view)-1, m.cursor+delta))
	m.clampOffset()
}

func (m *Model) clampOffset() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	m.offset = max(0, m.offset)
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(err error) {
	m.status, m.statusErr = err.Error(), true
}

func indexPosition(records []palette.Record, index int) int {
	for i, r := range records {
		if r.Index == index {
			return i
		}
	}
	return 0
}

func describe(r palette.Record) string {
	if r.Label == "" {
		return r.Color
	}
	return fmt.Sprintf("%s (%s)", r.Label, r.Color)
}

func (m Model) View() string {
	var b strings.Builder
	switch m.screen {
	case screenImport:
		b.WriteString(titleStyle.Render("Paste colors, one per line: color, then a tab, comma or space, then a label"))
		b.WriteString("\n")
		b.WriteString(m.importer.View())
		b.WriteString("\n\n")
		b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Import.Import, m.keys.Import.Quit}))
	default:
		b.WriteString(m.modeBar())
		b.WriteString("\n\n")
		b.WriteString(m.listView())
		if m.screen == screenInput {
			b.WriteString("\n")
			b.WriteString(m.input.View())
		}
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys.Editor))
	}
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(m.status))
	}
	return b.String()
}

func (m Model) modeBar() string {
	modes := []struct {
		mode  palette.Mode
		label string
	}{
		{palette.ModeOriginal, "Original order"},
		{palette.ModeHue, "By hue"},
		{palette.ModeSelected, "Similar to selected"},
	}
	parts := make([]string, 0, len(modes))
	for _, md := range modes {
		if md.mode == palette.ModeSelected && m.selected == palette.NoSelection {
			continue
		}
		style := inactiveModeStyle
		if md.mode == m.mode {
			style = activeModeStyle
		}
		parts = append(parts, style.Render(md.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) listView() string {
	end := min(len(m.view), m.offset+m.height)
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		r := m.view[i]
		c, err := color.Parse(r.Color)

		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		label := r.Label
		if r.Index == m.selected {
			label = selectedStyle.Render(label)
		}
		line := fmt.Sprintf("%s%s %s %s", prefix, swatch(c.Hex(), err == nil), label, dimStyle.Render("("+r.Color+")"))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
