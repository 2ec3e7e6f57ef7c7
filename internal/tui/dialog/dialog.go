// Package dialog is a modal yes/no confirmation.
package dialog

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F25D94")).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F25D94")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))
)

type keyMap struct {
	confirm key.Binding
	cancel  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		confirm: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "cancel"),
		),
	}
}

// Model shows one question at a time. onYes runs only on a confirmed answer.
type Model struct {
	message string
	onYes   func()
	open    bool
	width   int
	keys    keyMap
}

func New() *Model {
	return &Model{keys: newKeyMap()}
}

func (m *Model) Open(message string, onYes func()) {
	m.message = message
	m.onYes = onYes
	m.open = true
}

func (m *Model) Active() bool { return m.open }

func (m *Model) SetWidth(w int) { m.width = w }

func (m *Model) close() {
	m.open = false
	m.onYes = nil
	m.message = ""
}

// Update swallows every key while open.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, m.keys.confirm):
		onYes := m.onYes
		m.close()
		if onYes != nil {
			onYes()
		}
	case key.Matches(km, m.keys.cancel):
		m.close()
	}
	return nil
}

func (m *Model) View() string {
	if !m.open {
		return ""
	}
	style := boxStyle
	if m.width > 8 {
		style = style.Copy().Width(min(m.width-4, 60))
	}
	return style.Render(fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		titleStyle.Render("Confirm"),
		m.message,
		helpStyle.Render("y confirm • n cancel"),
	))
}
