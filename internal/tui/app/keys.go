package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	create key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		create: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new note"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
