package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/easynote/internal/richtext"
)

// bodyKey applies an editing key to the surface and reports whether the
// document changed.
func bodyKey(s *richtext.Editor, msg tea.KeyMsg) bool {
	before := s.HTML()
	switch msg.Type {
	case tea.KeyRunes:
		s.InsertText(string(msg.Runes))
	case tea.KeySpace:
		s.Insert(' ')
	case tea.KeyEnter:
		s.Newline()
	case tea.KeyBackspace:
		s.Backspace()
	case tea.KeyDelete:
		s.Delete()
	case tea.KeyLeft:
		if msg.Alt {
			s.Move(richtext.WordLeft, false)
		} else {
			s.Move(richtext.Left, false)
		}
	case tea.KeyRight:
		if msg.Alt {
			s.Move(richtext.WordRight, false)
		} else {
			s.Move(richtext.Right, false)
		}
	case tea.KeyUp:
		s.Move(richtext.Up, false)
	case tea.KeyDown:
		s.Move(richtext.Down, false)
	case tea.KeyHome:
		s.Move(richtext.Home, false)
	case tea.KeyEnd:
		s.Move(richtext.End, false)
	case tea.KeyShiftLeft:
		s.Move(richtext.Left, true)
	case tea.KeyShiftRight:
		s.Move(richtext.Right, true)
	case tea.KeyShiftUp:
		s.Move(richtext.Up, true)
	case tea.KeyShiftDown:
		s.Move(richtext.Down, true)
	case tea.KeyShiftHome:
		s.Move(richtext.Home, true)
	case tea.KeyShiftEnd:
		s.Move(richtext.End, true)
	}
	return s.HTML() != before
}

func markStyle(m richtext.Marks) lipgloss.Style {
	st := lipgloss.NewStyle().
		Bold(m.Bold).
		Italic(m.Italic).
		Underline(m.Underline || m.Link != "")
	switch {
	case m.Color != "":
		st = st.Foreground(lipgloss.Color(m.Color))
	case m.Link != "":
		st = st.Foreground(linkColor)
	}
	return st
}

type segment struct {
	text     strings.Builder
	marks    richtext.Marks
	selected bool
	cursor   bool
}

func (s *segment) render() string {
	st := markStyle(s.marks)
	if s.selected {
		st = st.Inherit(selectionStyle)
	}
	if s.cursor {
		st = st.Inherit(cursorStyle)
	}
	return st.Render(s.text.String())
}

// renderParagraph styles one paragraph. The cursor is drawn only when
// showCursor is set.
func renderParagraph(s *richtext.Editor, doc richtext.Document, i int, showCursor bool) string {
	para := doc.Paragraphs[i]
	cur := s.Cursor()

	var out strings.Builder
	var seg *segment
	flush := func() {
		if seg != nil {
			out.WriteString(seg.render())
			seg = nil
		}
	}

	for j, c := range para {
		pos := richtext.Pos{Para: i, Offset: j}
		sel := s.Selected(pos)
		isCursor := showCursor && cur == pos
		if seg == nil || isCursor || seg.cursor || seg.marks != c.Marks || seg.selected != sel {
			flush()
			seg = &segment{marks: c.Marks, selected: sel, cursor: isCursor}
		}
		seg.text.WriteRune(c.R)
	}
	flush()

	if showCursor && cur.Para == i && cur.Offset == len(para) {
		out.WriteString(cursorStyle.Render(" "))
	}
	return out.String()
}

// renderBody wraps the document to w columns and returns at most h lines,
// scrolled so the cursor stays visible.
func renderBody(s *richtext.Editor, w, h int, showCursor bool) string {
	doc := s.Document()
	w = max(w, 1)
	wrap := lipgloss.NewStyle().Width(w)

	var lines []string
	cursorLine := 0
	for i := range doc.Paragraphs {
		if i == s.Cursor().Para {
			cursorLine = len(lines) + s.Cursor().Offset/w
		}
		rendered := wrap.Render(renderParagraph(s, doc, i, showCursor))
		lines = append(lines, strings.Split(rendered, "\n")...)
	}

	if h <= 0 || len(lines) <= h {
		return strings.Join(lines, "\n")
	}
	start := 0
	if cursorLine >= h {
		start = min(cursorLine-h+1, len(lines)-h)
	}
	return strings.Join(lines[start:start+h], "\n")
}
