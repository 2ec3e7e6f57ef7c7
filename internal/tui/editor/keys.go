package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	nextField key.Binding
	prevField key.Binding
	back      key.Binding
	bold      key.Binding
	italic    key.Binding
	underline key.Binding
	color     key.Binding
	link      key.Binding
	markdown  key.Binding
	preview   key.Binding
	copy      key.Binding
	selectAll key.Binding
	submit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		nextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		prevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		bold: key.NewBinding(
			key.WithKeys("alt+b"),
			key.WithHelp("alt+b", "bold"),
		),
		italic: key.NewBinding(
			key.WithKeys("alt+i"),
			key.WithHelp("alt+i", "italic"),
		),
		underline: key.NewBinding(
			key.WithKeys("alt+u"),
			key.WithHelp("alt+u", "underline"),
		),
		color: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("alt+c", "color"),
		),
		link: key.NewBinding(
			key.WithKeys("alt+k"),
			key.WithHelp("alt+k", "link"),
		),
		markdown: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "markdown"),
		),
		preview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "preview"),
		),
		copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		selectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "apply"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.nextField, k.bold, k.italic, k.underline, k.color, k.link, k.markdown, k.back}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.nextField, k.prevField, k.back, k.selectAll},
		{k.bold, k.italic, k.underline, k.color, k.link},
		{k.markdown, k.preview, k.copy},
	}
}
