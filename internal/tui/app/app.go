// Package app composes the note list, editor and split panel into the
// running program and routes every mutation through the store.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Paintersrp/easynote/internal/config"
	"github.com/Paintersrp/easynote/internal/constants"
	"github.com/Paintersrp/easynote/internal/note"
	"github.com/Paintersrp/easynote/internal/store"
	"github.com/Paintersrp/easynote/internal/tui/dialog"
	"github.com/Paintersrp/easynote/internal/tui/editor"
	"github.com/Paintersrp/easynote/internal/tui/layout"
	"github.com/Paintersrp/easynote/internal/tui/notelist"
	"github.com/Paintersrp/easynote/internal/tui/split"
	"github.com/Paintersrp/easynote/internal/tui/viewport"
)

type Options struct {
	Breakpoint int
	Split      int
	TagMode    string
	Palette    []string
	DateFormat string
	// Initial selects the note with this id once hydration finishes.
	Initial int64
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Breakpoint: cfg.Layout.Breakpoint,
		Split:      cfg.Layout.Split,
		TagMode:    cfg.Editor.TagMode,
		Palette:    cfg.Editor.Palette,
		DateFormat: cfg.List.DateFormat,
	}
}

type hydratedMsg struct {
	notes []note.Note
	err   error
}

type focus int

const (
	focusList focus = iota
	focusEditor
)

type Model struct {
	store    *store.Store
	log      *slog.Logger
	opts     Options
	keys     keyMap
	viewport viewport.Tracker
	list     notelist.Model
	editor   editor.Model
	split    split.Model
	dialog   *dialog.Model
	focus    focus
	loading  bool
	status   string
	failed   bool
	width    int
	height   int
}

func New(st *store.Store, logger *slog.Logger, opts Options) *Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = constants.DefaultBreakpoint
	}
	if opts.Split == 0 {
		opts.Split = constants.DefaultSplit
	}

	m := &Model{
		store:    st,
		log:      logger,
		opts:     opts,
		keys:     newKeyMap(),
		viewport: viewport.NewTracker(viewport.Query{MinWidth: opts.Breakpoint}),
		split:    split.New(opts.Split),
		dialog:   dialog.New(),
		loading:  true,
	}

	m.list = notelist.New(notelist.Callbacks{
		Select:  m.selectNote,
		Add:     m.addNote,
		Confirm: m.dialog.Open,
		Delete:  m.deleteNote,
	}, opts.DateFormat)

	m.editor = editor.New(editor.Callbacks{
		Update:    m.updateNote,
		Back:      m.back,
		FocusList: func() { m.focus = focusList },
	}, editor.Options{TagMode: opts.TagMode, Palette: opts.Palette})

	return m
}

// MeasureTerminal seeds the viewport from the terminal behind fd so the first
// frame can skip the waiting room.
func (m *Model) MeasureTerminal(fd int) {
	if err := m.viewport.Measure(fd); err != nil {
		m.log.Debug("viewport measure skipped", "err", err)
		return
	}
	m.resize(m.viewport.Width(), m.viewport.Height())
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.hydrate, m.editor.Init())
}

// hydrate only reads; the result is installed from Update.
func (m *Model) hydrate() tea.Msg {
	notes, err := m.store.Load()
	return hydratedMsg{notes: notes, err: err}
}

func (m *Model) Layout() layout.Kind {
	return layout.Select(m.viewport.Matches(), m.viewport.Determining() || m.loading)
}

func (m *Model) Status() string { return m.status }

func (m *Model) setStatus(msg string, failed bool) {
	m.status = msg
	m.failed = failed
}

func (m *Model) report(action string, err error) {
	if err == nil {
		return
	}
	m.log.Error(action+" failed", "err", err)
	m.setStatus(fmt.Sprintf("Could not %s: %v", action, err), true)
}

func (m *Model) selectNote(n note.Note) {
	m.store.Select(&n)
	m.focus = focusEditor
}

func (m *Model) addNote() {
	_, err := m.store.Create()
	m.report("save new note", err)
	m.focus = focusEditor
}

func (m *Model) deleteNote(id int64) {
	err := m.store.Delete(id)
	m.report("delete note", err)
	if err == nil {
		m.setStatus("Deleted note", false)
	}
	m.focus = focusList
}

func (m *Model) updateNote(n note.Note) {
	m.report("save note", m.store.Update(n))
}

func (m *Model) back() {
	m.store.Select(nil)
	m.focus = focusList
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	body := max(h-1, 1)
	m.dialog.SetWidth(min(w-4, 60))
	m.split.SetSize(w, body)

	if m.viewport.Matches() {
		lw, rw := m.split.Widths()
		m.list.SetSize(lw, body)
		m.editor.SetSize(rw, body)
		m.editor.SetMobile(false)
		return
	}
	m.list.SetSize(w, body)
	m.editor.SetSize(w, body)
	m.editor.SetMobile(true)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, tea.Batch(cmd, m.sync())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Update(msg)
		m.resize(msg.Width, msg.Height)
		return nil

	case hydratedMsg:
		return m.hydrated(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (m *Model) hydrated(msg hydratedMsg) tea.Cmd {
	m.loading = false
	if msg.err != nil {
		m.log.Warn("starting with an empty collection", "err", msg.err)
		m.setStatus(fmt.Sprintf("Could not load notes: %v", msg.err), true)
		msg.notes = nil
	}
	m.store.Replace(msg.notes)

	if m.opts.Initial != 0 {
		if n, ok := m.store.Find(m.opts.Initial); ok {
			m.selectNote(n)
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.quit) {
		return tea.Quit
	}
	if m.loading {
		return nil
	}
	if m.dialog.Active() {
		return m.dialog.Update(msg)
	}

	kind := m.Layout()
	if kind == layout.Desktop {
		var cmd tea.Cmd
		before := m.split.Left()
		m.split, cmd = m.split.Update(msg)
		if m.split.Left() != before {
			m.resize(m.width, m.height)
			return cmd
		}
	}

	if key.Matches(msg, m.keys.create) && !m.list.Filtering() {
		m.addNote()
		return nil
	}

	m.setStatus("", false)

	var cmd tea.Cmd
	if m.focus == focusEditor && m.editorVisible(kind) {
		m.editor, cmd = m.editor.Update(msg)
		return cmd
	}
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.Layout() != layout.Desktop || m.dialog.Active() {
		return nil
	}

	wasDragging := m.split.Dragging()
	before := m.split.Left()
	m.split, _ = m.split.Update(msg)
	if m.split.Left() != before {
		m.resize(m.width, m.height)
	}
	if wasDragging || m.split.Dragging() || msg.Type != tea.MouseLeft {
		return nil
	}

	lw, _ := m.split.Widths()
	if msg.X < lw {
		m.focus = focusList
	} else if _, ok := m.store.Selected(); ok {
		m.focus = focusEditor
	}
	return nil
}

func (m *Model) editorVisible(kind layout.Kind) bool {
	_, ok := m.store.Selected()
	return ok && kind != layout.Loading
}

// sync pushes the store's current state into the list and editor.
func (m *Model) sync() tea.Cmd {
	var cmds []tea.Cmd

	selected, ok := m.store.Selected()
	var boundID int64
	if ok {
		boundID = selected.ID
		cmds = append(cmds, m.editor.Bind(selected))
		if m.Layout() == layout.Mobile {
			m.focus = focusEditor
		}
	} else {
		m.editor.Unbind()
		m.focus = focusList
	}
	cmds = append(cmds, m.list.SetNotes(m.store.Notes(), boundID))

	if m.focus == focusEditor {
		if !m.editor.Focused() {
			cmds = append(cmds, m.editor.Focus())
		}
	} else if m.editor.Focused() {
		m.editor.Blur()
	}

	return tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	var body string
	switch kind := m.Layout(); kind {
	case layout.Loading:
		body = lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center,
			waitingStyle.Render("Loading notes..."))
	case layout.Desktop:
		body = m.split.View(m.list.View(), m.rightPane())
	default:
		if _, ok := m.store.Selected(); ok {
			body = m.editor.View()
		} else {
			body = m.list.View()
		}
	}

	if m.dialog.Active() {
		body = lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center,
			m.dialog.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine())
}

func (m *Model) rightPane() string {
	if _, ok := m.store.Selected(); ok {
		return m.editor.View()
	}
	_, rw := m.split.Widths()
	return lipgloss.Place(rw, max(m.height-1, 1), lipgloss.Center, lipgloss.Center,
		placeholderStyle.Render(constants.EmptySelection))
}

func (m *Model) statusLine() string {
	line := m.status
	if line == "" {
		line = m.editor.Status()
	}
	if line == "" {
		return ""
	}
	line = ansi.Truncate(line, max(m.width-1, 1), "…")
	if m.failed {
		return errorStyle.Render(line)
	}
	return statusStyle.Render(line)
}

// Run starts the program on the alternate screen with mouse motion enabled.
func Run(st *store.Store, logger *slog.Logger, opts Options) error {
	m := New(st, logger, opts)
	m.MeasureTerminal(int(os.Stdout.Fd()))

	p := tea.NewProgram(m,
		tea.WithInput(os.Stdin),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
