package notelist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/easynote/internal/constants"
)

func newItemDelegate(keys *delegateKeyMap, cb Callbacks) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetHeight(3)

	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	d.UpdateFunc = func(msg tea.Msg, m *list.Model) tea.Cmd {
		i, ok := m.SelectedItem().(ListItem)
		if !ok {
			return nil
		}

		if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.delete) {
			id := i.note.ID
			title := i.note.Title
			if cb.Confirm == nil {
				return nil
			}
			cb.Confirm(constants.DeleteConfirmation, func() {
				if cb.Delete != nil {
					cb.Delete(id)
				}
			})
			return m.NewStatusMessage(statusStyle("Delete " + title + "?"))
		}

		return nil
	}

	shortHelp := []key.Binding{keys.delete}
	d.ShortHelpFunc = func() []key.Binding {
		return shortHelp
	}
	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{shortHelp}
	}
	return d
}
