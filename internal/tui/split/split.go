// Package split renders two regions side by side with a draggable divider.
package split

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/easynote/internal/constants"
)

const step = 5

var (
	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#334455"))

	draggingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF"))
)

type keyMap struct {
	shrink key.Binding
	grow   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		shrink: key.NewBinding(
			key.WithKeys("ctrl+left"),
			key.WithHelp("ctrl+←", "shrink left pane"),
		),
		grow: key.NewBinding(
			key.WithKeys("ctrl+right"),
			key.WithHelp("ctrl+→", "grow left pane"),
		),
	}
}

// Model keeps the left pane width as a percentage of the total width.
type Model struct {
	left     int
	width    int
	height   int
	dragging bool
	keys     keyMap
}

func New(initial int) Model {
	return Model{left: Clamp(initial), keys: newKeyMap()}
}

// Clamp bounds a percentage to [MinSplit, MaxSplit].
func Clamp(p int) int {
	return max(constants.MinSplit, min(constants.MaxSplit, p))
}

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

func (m Model) Left() int      { return m.left }
func (m Model) Dragging() bool { return m.dragging }
func (m Model) Width() int     { return m.width }
func (m Model) Height() int    { return m.height }
func (m Model) KeyBindings() []key.Binding {
	return []key.Binding{m.keys.shrink, m.keys.grow}
}

// Widths returns the column counts of the two regions. One column between
// them belongs to the divider.
func (m Model) Widths() (left, right int) {
	if m.width <= 1 {
		return 0, 0
	}
	left = m.width * m.left / 100
	right = m.width - left - 1
	return left, max(right, 0)
}

func (m Model) onDivider(x int) bool {
	l, _ := m.Widths()
	return x >= l-1 && x <= l+1
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		switch msg.Type {
		case tea.MouseLeft:
			if m.dragging {
				m.drag(msg.X)
			} else if m.onDivider(msg.X) {
				m.dragging = true
			}
		case tea.MouseMotion:
			if m.dragging {
				m.drag(msg.X)
			}
		case tea.MouseRelease:
			m.dragging = false
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.shrink):
			m.left = Clamp(m.left - step)
		case key.Matches(msg, m.keys.grow):
			m.left = Clamp(m.left + step)
		}
	}
	return m, nil
}

func (m *Model) drag(x int) {
	if m.width <= 0 {
		return
	}
	m.left = Clamp(x * 100 / m.width)
}

func (m Model) View(left, right string) string {
	lw, rw := m.Widths()
	if lw == 0 && rw == 0 {
		return ""
	}

	style := dividerStyle
	if m.dragging {
		style = draggingStyle
	}
	h := max(m.height, 1)
	divider := style.Render(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))

	pane := func(w int, s string) string {
		return lipgloss.NewStyle().
			Width(w).
			MaxWidth(w).
			Height(h).
			MaxHeight(h).
			Render(s)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, pane(lw, left), divider, pane(rw, right))
}
