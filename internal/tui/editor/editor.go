// Package editor edits the bound note: title, tags and a rich-text body.
// Every change is committed as a full note through Callbacks.Update.
package editor

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

	"github.com/Paintersrp/easynote/internal/cache"
	"github.com/Paintersrp/easynote/internal/constants"
	"github.com/Paintersrp/easynote/internal/note"
	"github.com/Paintersrp/easynote/internal/richtext"
	"github.com/Paintersrp/easynote/utils"
)

const (
	TagModeSingle = "single"
	TagModeMulti  = "multi"
)

// DefaultPalette is cycled by the color command. Clearing follows the last
// entry.
var DefaultPalette = []string{"#F25D94", "#0AF", "#50FA7B", "#FFB86C", "#BD93F9"}

type Callbacks struct {
	Update    func(note.Note)
	Back      func()
	FocusList func()
}

type Options struct {
	TagMode string
	Palette []string
}

type previewKey struct {
	content string
	width   int
}

type Model struct {
	bound    bool
	base     note.Note
	title    textinput.Model
	tags     []textinput.Model
	// hidden holds the tags past the first in single-tag mode, as bound.
	hidden   []string
	surface  *richtext.Editor
	md       textarea.Model
	mdHTML   string
	markdown bool
	preview  bool
	linking  bool
	link     textinput.Model
	field    int
	focused  bool
	mobile   bool
	palette  []string
	colorAt  int
	keys     keyMap
	help     help.Model
	cb       Callbacks
	previews *cache.LRUCache[previewKey, string]
	status   string
	width    int
	height   int
}

func newInput(placeholder string) textinput.Model {
	t := textinput.New()
	t.Placeholder = placeholder
	t.Prompt = ""
	t.Cursor.Style = focusedStyle
	t.TextStyle = focusedStyle
	t.PlaceholderStyle = blurredStyle
	return t
}

func New(cb Callbacks, opts Options) Model {
	n := 1
	if opts.TagMode == TagModeMulti {
		n = constants.MaxTags
	}
	tags := make([]textinput.Model, n)
	for i := range tags {
		if n == 1 {
			tags[i] = newInput("Tag")
		} else {
			tags[i] = newInput(fmt.Sprintf("Tag %d", i+1))
		}
	}

	palette := opts.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	md := textarea.New()
	md.CharLimit = 0
	md.MaxHeight = 0
	md.ShowLineNumbers = false
	md.Placeholder = "Write markdown..."

	link := newInput("https://")

	return Model{
		title:    newInput(constants.PlaceholderTitle),
		tags:     tags,
		surface:  richtext.New(""),
		md:       md,
		link:     link,
		palette:  append(append([]string{}, palette...), ""),
		colorAt:  -1,
		keys:     newKeyMap(),
		help:     help.New(),
		cb:       cb,
		previews: cache.NewLRUCache[previewKey, string](32),
	}
}

// Bind shows n. A different id re-seeds the local title and tags; the body is
// reset whenever the stored content differs from what the surface holds.
func (m *Model) Bind(n note.Note) tea.Cmd {
	if !m.bound || n.ID != m.base.ID {
		m.bound = true
		m.base = n.Clone()
		m.seed(n)
		return m.focusField(0)
	}

	m.base = n.Clone()
	if richtext.Normalize(n.Content) != m.surface.HTML() {
		m.surface.SetContent(n.Content)
	}
	return nil
}

func (m *Model) seed(n note.Note) {
	m.title.SetValue(n.Title)
	m.title.CursorEnd()

	tags := note.CapTags(n.Tags)
	for i := range m.tags {
		m.tags[i].SetValue("")
		if i < len(tags) {
			m.tags[i].SetValue(tags[i])
		}
	}
	m.hidden = nil
	if len(m.tags) == 1 && len(tags) > 1 {
		m.hidden = append([]string{}, tags[1:]...)
	}

	m.surface.SetContent(n.Content)
	m.mdHTML = n.Content
	if m.markdown {
		m.md.SetValue(m.surface.Markdown())
	}
	m.linking = false
	m.preview = false
	m.colorAt = -1
	m.status = ""
}

func (m *Model) Unbind() {
	m.bound = false
	m.base = note.Note{}
	m.seed(note.Note{})
	m.blurAll()
}

func (m Model) Bound() (note.Note, bool) {
	return m.base, m.bound
}

func (m Model) Title() string { return m.title.Value() }

func (m Model) Tags() []string {
	values := make([]string, len(m.tags))
	for i, t := range m.tags {
		values[i] = t.Value()
	}
	return note.CompactTags(append(values, m.hidden...))
}

// Content is the HTML the next commit would store.
func (m Model) Content() string {
	if m.markdown {
		return m.mdHTML
	}
	return m.surface.HTML()
}

func (m Model) Surface() *richtext.Editor { return m.surface }
func (m Model) Markdown() bool            { return m.markdown }
func (m Model) Previewing() bool          { return m.preview }
func (m Model) Linking() bool             { return m.linking }
func (m Model) Status() string            { return m.status }

// PlainText is the title followed by the body text.
func (m Model) PlainText() string {
	body := m.surface.Text()
	if m.markdown {
		body = m.md.Value()
	}
	return strings.TrimSpace(m.title.Value() + "\n\n" + body)
}

func (m *Model) commit() {
	if !m.bound {
		return
	}
	n := m.base.Clone()
	n.Title = m.title.Value()
	n.Tags = m.Tags()
	n.Content = m.Content()
	m.base = n
	if m.cb.Update != nil {
		m.cb.Update(n)
	}
}

func (m *Model) SetSize(width, height int) {
	if width != m.width {
		m.previews.Purge()
	}
	m.width, m.height = width, height
	inner := max(width-4, 1)
	m.title.Width = inner
	tagWidth := max((width-len(m.tags)*4)/len(m.tags), 1)
	for i := range m.tags {
		m.tags[i].Width = tagWidth
	}
	m.link.Width = inner
	m.md.SetWidth(max(width, 1))
	m.md.SetHeight(max(m.bodyHeight(), 1))
	m.help.Width = width
}

func (m Model) bodyHeight() int {
	// title box, tag box, toolbar, footer
	return m.height - 3 - 3 - 1 - 1
}

func (m *Model) SetMobile(mobile bool) { m.mobile = mobile }

func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.focusField(m.field)
}

func (m *Model) Blur() {
	m.focused = false
	m.blurAll()
}

func (m Model) Focused() bool { return m.focused }

func (m *Model) blurAll() {
	m.title.Blur()
	for i := range m.tags {
		m.tags[i].Blur()
	}
	m.md.Blur()
	m.link.Blur()
}

func (m Model) bodyField() int { return len(m.tags) + 1 }

func (m Model) onBody() bool { return m.field == m.bodyField() }

func (m *Model) focusField(i int) tea.Cmd {
	fields := m.bodyField() + 1
	m.field = ((i % fields) + fields) % fields
	m.blurAll()
	if !m.focused {
		return nil
	}
	switch {
	case m.field == 0:
		return m.title.Focus()
	case m.onBody():
		if m.markdown {
			return m.md.Focus()
		}
		return nil
	default:
		return m.tags[m.field-1].Focus()
	}
}

func (m *Model) toggleMarkdown() tea.Cmd {
	m.markdown = !m.markdown
	m.preview = false
	if m.markdown {
		m.mdHTML = m.surface.HTML()
		m.md.SetValue(m.surface.Markdown())
	} else {
		m.surface.SetContent(m.base.Content)
	}
	return m.focusField(m.field)
}

func (m *Model) cycleColor() {
	m.colorAt = (m.colorAt + 1) % len(m.palette)
	m.surface.Apply(richtext.Color, m.palette[m.colorAt])
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}
	if !m.bound || !m.focused {
		return m, nil
	}
	m.status = ""

	if m.linking {
		return m.updateLink(km)
	}

	switch {
	case key.Matches(km, m.keys.back):
		if m.preview {
			m.preview = false
			return m, nil
		}
		if m.mobile {
			if m.cb.Back != nil {
				m.cb.Back()
			}
		} else if m.cb.FocusList != nil {
			m.cb.FocusList()
		}
		return m, nil

	case key.Matches(km, m.keys.nextField):
		return m, m.focusField(m.field + 1)

	case key.Matches(km, m.keys.prevField):
		return m, m.focusField(m.field - 1)

	case key.Matches(km, m.keys.markdown):
		return m, m.toggleMarkdown()

	case key.Matches(km, m.keys.preview):
		m.preview = !m.preview
		return m, nil

	case key.Matches(km, m.keys.copy):
		if err := clipboard.WriteAll(m.PlainText()); err != nil {
			m.status = fmt.Sprintf("Copy failed: %v", err)
		} else {
			m.status = "Copied note to clipboard"
		}
		return m, nil
	}

	if m.preview {
		return m, nil
	}

	if !m.markdown {
		switch {
		case key.Matches(km, m.keys.bold):
			m.surface.Apply(richtext.Bold, "")
			m.commit()
			return m, nil
		case key.Matches(km, m.keys.italic):
			m.surface.Apply(richtext.Italic, "")
			m.commit()
			return m, nil
		case key.Matches(km, m.keys.underline):
			m.surface.Apply(richtext.Underline, "")
			m.commit()
			return m, nil
		case key.Matches(km, m.keys.color):
			m.cycleColor()
			m.commit()
			return m, nil
		case key.Matches(km, m.keys.link):
			m.linking = true
			m.link.SetValue(m.surface.Value(richtext.Link))
			m.link.CursorEnd()
			return m, m.link.Focus()
		}
	}

	switch {
	case m.field == 0:
		before := m.title.Value()
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(km)
		if m.title.Value() != before {
			m.commit()
		}
		return m, cmd

	case m.onBody():
		return m.updateBody(km)

	default:
		i := m.field - 1
		before := m.tags[i].Value()
		var cmd tea.Cmd
		m.tags[i], cmd = m.tags[i].Update(km)
		if m.tags[i].Value() != before {
			m.commit()
		}
		return m, cmd
	}
}

func (m Model) updateBody(km tea.KeyMsg) (Model, tea.Cmd) {
	if m.markdown {
		before := m.md.Value()
		var cmd tea.Cmd
		m.md, cmd = m.md.Update(km)
		if m.md.Value() != before {
			html, err := utils.MarkdownToHTML(m.md.Value())
			if err != nil {
				m.status = err.Error()
				return m, cmd
			}
			m.mdHTML = html
			m.commit()
		}
		return m, cmd
	}

	if key.Matches(km, m.keys.selectAll) {
		m.surface.SelectAll()
		return m, nil
	}
	if bodyKey(m.surface, km) {
		m.commit()
	}
	return m, nil
}

func (m Model) updateLink(km tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(km, m.keys.back):
		m.linking = false
		m.link.Blur()
		return m, nil
	case key.Matches(km, m.keys.submit):
		m.linking = false
		m.link.Blur()
		m.surface.Apply(richtext.Link, strings.TrimSpace(m.link.Value()))
		m.commit()
		return m, nil
	}
	var cmd tea.Cmd
	m.link, cmd = m.link.Update(km)
	return m, cmd
}

// forward passes non-key messages, such as cursor blinks, to the inputs.
func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.title, cmd = m.title.Update(msg)
	cmds = append(cmds, cmd)
	for i := range m.tags {
		m.tags[i], cmd = m.tags[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	m.link, cmd = m.link.Update(msg)
	cmds = append(cmds, cmd)
	if m.markdown {
		m.md, cmd = m.md.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) toolbar() string {
	if m.markdown {
		tab := buttonStyle
		if m.preview {
			tab = activeButtonStyle
		}
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			activeButtonStyle.Render("Markdown"),
			tab.Render("Preview"),
		)
	}

	button := func(label string, kind richtext.Kind) string {
		if m.surface.IsActive(kind) {
			return activeButtonStyle.Render(label)
		}
		return buttonStyle.Render(label)
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		button("B", richtext.Bold),
		button("I", richtext.Italic),
		button("U", richtext.Underline),
		button("Color", richtext.Color),
		button("Link", richtext.Link),
	)
}

func (m Model) renderPreview() string {
	src := m.surface.Markdown()
	if m.markdown {
		src = m.md.Value()
	}
	k := previewKey{content: src, width: m.width}
	if out, ok := m.previews.Get(k); ok {
		return out
	}
	out, err := utils.RenderMarkdown(src, m.width)
	if err != nil {
		return err.Error()
	}
	m.previews.Put(k, out)
	return out
}

func (m Model) box(field int, content string) string {
	style := inputStyle
	if m.focused && m.field == field {
		style = focusedInputStyle
	}
	return style.Width(max(m.width-2, 1)).Render(content)
}

func (m Model) View() string {
	if !m.bound {
		return emptyStyle.Render(constants.EmptySelection)
	}

	tagViews := make([]string, len(m.tags))
	for i := range m.tags {
		style := inputStyle
		if m.focused && m.field == i+1 {
			style = focusedInputStyle
		}
		tagViews[i] = style.Width(max(m.width/len(m.tags)-2, 1)).Render(m.tags[i].View())
	}

	var body string
	switch {
	case m.preview:
		body = m.renderPreview()
	case m.markdown:
		body = m.md.View()
	default:
		body = renderBody(m.surface, m.width, m.bodyHeight(), m.focused && m.onBody())
	}
	body = lipgloss.NewStyle().
		Height(max(m.bodyHeight(), 1)).
		MaxHeight(max(m.bodyHeight(), 1)).
		Render(body)

	footer := helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	switch {
	case m.linking:
		footer = titleStyle.Render("Link URL") + " " + m.link.View()
	case m.status != "":
		footer = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.box(0, m.title.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, tagViews...),
		m.toolbar(),
		body,
		footer,
	)
}
