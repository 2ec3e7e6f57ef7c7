package notelist

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	openNote       key.Binding
	create         key.Binding
	sortByTitle    key.Binding
	sortByEdited   key.Binding
	sortByCreated  key.Binding
	sortAscending  key.Binding
	sortDescending key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		create: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		sortByTitle: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "sort by title"),
		),
		sortByEdited: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "sort by edited"),
		),
		sortByCreated: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "sort by created"),
		),
		sortAscending: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("f5", "ascending sort"),
		),
		sortDescending: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("f6", "descending sort"),
		),
	}
}

func (m listKeyMap) fullHelp() []key.Binding {
	return []key.Binding{
		m.openNote,
		m.create,
		m.sortByTitle,
		m.sortByEdited,
		m.sortByCreated,
		m.sortAscending,
		m.sortDescending,
	}
}

type delegateKeyMap struct {
	delete key.Binding
}

func newDelegateKeyMap() *delegateKeyMap {
	return &delegateKeyMap{
		delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
	}
}
