// Package notelist is the searchable list of notes.
package notelist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Paintersrp/easynote/internal/constants"
	"github.com/Paintersrp/easynote/internal/note"
)

// Callbacks are invoked synchronously from Update.
type Callbacks struct {
	Select  func(note.Note)
	Add     func()
	Confirm func(message string, onYes func())
	Delete  func(id int64)
}

type Model struct {
	list       list.Model
	keys       *listKeyMap
	cb         Callbacks
	notes      []note.Note
	boundID    int64
	dateFormat string
	sortField  note.SortField
	sortOrder  note.SortOrder
	width      int
	height     int
}

func New(cb Callbacks, dateFormat string) Model {
	if dateFormat == "" {
		dateFormat = constants.DefaultDateFormat
	}

	lkeys := newListKeyMap()
	dkeys := newDelegateKeyMap()

	l := list.New(nil, newItemDelegate(dkeys, cb), 0, 0)
	l.Styles.Title = titleStyle
	l.Filter = filterNotes
	l.DisableQuitKeybindings()
	l.SetShowHelp(false)
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f")
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{lkeys.openNote, lkeys.create}
	}
	l.AdditionalFullHelpKeys = lkeys.fullHelp

	m := Model{
		list:       l,
		keys:       lkeys,
		cb:         cb,
		dateFormat: dateFormat,
		sortField:  note.SortByCreated,
		sortOrder:  note.Ascending,
	}
	m.list.Title = m.title()
	return m
}

// filterNotes keeps the items whose title or tags contain term. Order is
// left as the list had it.
func filterNotes(term string, targets []string) []list.Rank {
	var ranks []list.Rank
	for i, t := range targets {
		if note.Matches(itemFromFilterValue(t), term) {
			ranks = append(ranks, list.Rank{Index: i})
		}
	}
	return ranks
}

func (m Model) title() string {
	return fmt.Sprintf("Notes · %s %s", m.sortField, m.sortOrder)
}

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.list.SetSize(width, max(height-1, 0))
}

// SetNotes installs a snapshot of the collection and the bound note id. The
// list is only rebuilt when something changed.
func (m *Model) SetNotes(notes []note.Note, boundID int64) tea.Cmd {
	if boundID == m.boundID && sameNotes(notes, m.notes) {
		return nil
	}
	rebind := boundID != m.boundID
	m.notes = notes
	m.boundID = boundID
	return m.refreshItems(rebind)
}

func sameNotes(a, b []note.Note) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (m *Model) refreshItems(followBound bool) tea.Cmd {
	var current int64
	if i, ok := m.list.SelectedItem().(ListItem); ok {
		current = i.note.ID
	}
	if followBound && m.boundID != 0 {
		current = m.boundID
	}

	sorted := note.Sort(m.notes, m.sortField, m.sortOrder)
	items := make([]list.Item, len(sorted))
	at := -1
	for i, n := range sorted {
		items[i] = ListItem{note: n, bound: n.ID == m.boundID, dateFormat: m.dateFormat}
		if n.ID == current {
			at = i
		}
	}

	cmd := m.list.SetItems(items)
	if at >= 0 && m.list.FilterState() == list.Unfiltered {
		m.list.Select(at)
	}
	return cmd
}

func (m *Model) refreshSort() tea.Cmd {
	m.list.Title = m.title()
	return m.refreshItems(false)
}

// Filtering reports whether the filter input has the keyboard.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) FilterTerm() string {
	return m.list.FilterValue()
}

func (m Model) SortField() note.SortField { return m.sortField }
func (m Model) SortOrder() note.SortOrder { return m.sortOrder }

// Highlighted returns the note under the cursor.
func (m Model) Highlighted() (note.Note, bool) {
	i, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return note.Note{}, false
	}
	return i.note, true
}

// Visible returns the notes currently shown, in display order.
func (m Model) Visible() []note.Note {
	var out []note.Note
	for _, it := range m.list.VisibleItems() {
		if i, ok := it.(ListItem); ok {
			out = append(out, i.note)
		}
	}
	return out
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.openNote):
			if n, ok := m.Highlighted(); ok && m.cb.Select != nil {
				m.cb.Select(n)
			}
			return m, nil

		case key.Matches(msg, m.keys.create):
			if m.cb.Add != nil {
				m.cb.Add()
			}
			return m, nil

		case key.Matches(msg, m.keys.sortByTitle):
			m.sortField = note.SortByTitle
			return m, m.refreshSort()

		case key.Matches(msg, m.keys.sortByEdited):
			m.sortField = note.SortByEdited
			return m, m.refreshSort()

		case key.Matches(msg, m.keys.sortByCreated):
			m.sortField = note.SortByCreated
			return m, m.refreshSort()

		case key.Matches(msg, m.keys.sortAscending):
			m.sortOrder = note.Ascending
			return m, m.refreshSort()

		case key.Matches(msg, m.keys.sortDescending):
			m.sortOrder = note.Descending
			return m, m.refreshSort()
		}
	}

	nl, cmd := m.list.Update(msg)
	m.list = nl
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	summary := fmt.Sprintf("%d notes", len(m.notes))
	if term := m.FilterTerm(); term != "" {
		summary += fmt.Sprintf(" · %d matching %q", len(m.list.VisibleItems()), term)
	}
	if m.width > 0 {
		summary = ansi.Truncate(summary, max(m.width-2, 1), "…")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.list.View(),
		summaryStyle.Render(summary),
	)
}
