package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds every dashboard key binding. It satisfies help.KeyMap.
type keyMap struct {
	Overview    key.Binding
	Geometrical key.Binding
	Physical    key.Binding
	DataDriven  key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Open        key.Binding
	Close       key.Binding
	Theme       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	Overview:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "overview")),
	Geometrical: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "geometrical model")),
	Physical:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "physical model")),
	DataDriven:  key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "data-driven model")),
	NextTab:     key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab/→", "next tab")),
	PrevTab:     key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab/←", "previous tab")),
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "card above")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "card below")),
	Left:        key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "previous card")),
	Right:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "next card")),
	PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show formula")),
	Close:       key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc/x", "close")),
	Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Open, k.Theme, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help overlay, one group per column.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Overview, k.Geometrical, k.Physical, k.DataDriven, k.NextTab, k.PrevTab},
		{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown},
		{k.Open, k.Close, k.Theme, k.Help, k.Quit},
	}
}

// HandleKeyMsg processes keyboard input.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return true, tea.Quit
	}

	// The modal swallows every other key; q closes it rather than quitting.
	if m.state.ModalOpen() {
		if key.Matches(msg, m.keys.Close, m.keys.Quit) {
			m.closeModal()
		}
		return true, nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key.Matches(msg, m.keys.Close) {
		m.showHelp = false
		return true, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keys.Overview):
		m.selectTab(TabOverview)
	case key.Matches(msg, m.keys.Geometrical):
		m.selectTab(TabGeometrical)
	case key.Matches(msg, m.keys.Physical):
		m.selectTab(TabPhysical)
	case key.Matches(msg, m.keys.DataDriven):
		m.selectTab(TabDataDriven)
	case key.Matches(msg, m.keys.NextTab):
		m.selectTab(m.state.ActiveTab.Next())
	case key.Matches(msg, m.keys.PrevTab):
		m.selectTab(m.state.ActiveTab.Prev())

	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-m.cardsPerRow())
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(m.cardsPerRow())
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.pageSize())

	case key.Matches(msg, m.keys.Open):
		if metric, ok := m.focusedMetric(); ok && metric.Clickable() {
			m.openModal(metric.ID)
		}

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()

	default:
		return false, nil
	}

	return true, nil
}
