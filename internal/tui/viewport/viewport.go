// Package viewport answers "is the terminal at least this wide" and whether
// that answer is still being determined.
package viewport

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("not a terminal")

// Query matches terminals at least MinWidth columns wide.
type Query struct {
	MinWidth int
}

func (q Query) Matches(width int) bool {
	return width >= q.MinWidth
}

func (q Query) String() string {
	return fmt.Sprintf("(min-width: %d)", q.MinWidth)
}

// Tracker holds the current answer for a Query. It starts out determining
// until the first size is observed.
type Tracker struct {
	query       Query
	width       int
	height      int
	matches     bool
	determining bool
}

func NewTracker(q Query) Tracker {
	return Tracker{query: q, determining: true}
}

// Measure reads the initial size of the terminal behind fd.
func (t *Tracker) Measure(fd int) error {
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("measure terminal size: %w", err)
	}
	t.set(w, h)
	return nil
}

func (t *Tracker) Update(msg tea.WindowSizeMsg) {
	t.set(msg.Width, msg.Height)
}

func (t *Tracker) set(w, h int) {
	t.width, t.height = w, h
	t.matches = t.query.Matches(w)
	t.determining = false
}

func (t Tracker) Matches() bool     { return t.matches }
func (t Tracker) Determining() bool { return t.determining }
func (t Tracker) Width() int        { return t.width }
func (t Tracker) Height() int       { return t.height }
func (t Tracker) Query() Query      { return t.query }
