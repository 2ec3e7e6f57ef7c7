package richtext

import "unicode"

// Pos addresses a gap between runes: Offset 0 is before the first rune of
// paragraph Para.
type Pos struct {
	Para   int
	Offset int
}

func (p Pos) Before(o Pos) bool {
	if p.Para != o.Para {
		return p.Para < o.Para
	}
	return p.Offset < o.Offset
}

// Direction is a cursor movement.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	Home
	End
	WordLeft
	WordRight
)

// Editor is an editable Document with a cursor, an optional selection and the
// pending marks applied to newly typed text.
type Editor struct {
	doc     Document
	cursor  Pos
	anchor  *Pos
	pending Marks
}

func New(src string) *Editor {
	e := &Editor{}
	e.SetContent(src)
	return e
}

// SetContent replaces the document and puts the cursor at its end.
func (e *Editor) SetContent(src string) {
	e.doc = Parse(src)
	last := len(e.doc.Paragraphs) - 1
	e.cursor = Pos{Para: last, Offset: len(e.doc.Paragraphs[last])}
	e.anchor = nil
	e.syncPending()
}

func (e *Editor) HTML() string     { return e.doc.HTML() }
func (e *Editor) Text() string     { return e.doc.Text() }
func (e *Editor) Markdown() string { return e.doc.Markdown() }
func (e *Editor) Cursor() Pos      { return e.cursor }
func (e *Editor) Pending() Marks   { return e.pending }

// Document returns a copy of the current document.
func (e *Editor) Document() Document { return e.doc.clone() }

// Selection returns the ordered bounds of the selection, if any.
func (e *Editor) Selection() (start, end Pos, ok bool) {
	if e.anchor == nil || *e.anchor == e.cursor {
		return Pos{}, Pos{}, false
	}
	if e.anchor.Before(e.cursor) {
		return *e.anchor, e.cursor, true
	}
	return e.cursor, *e.anchor, true
}

func (e *Editor) Selected(p Pos) bool {
	start, end, ok := e.Selection()
	if !ok {
		return false
	}
	return !p.Before(start) && p.Before(end)
}

func (e *Editor) SelectAll() {
	e.anchor = &Pos{}
	last := len(e.doc.Paragraphs) - 1
	e.cursor = Pos{Para: last, Offset: len(e.doc.Paragraphs[last])}
}

func (e *Editor) ClearSelection() { e.anchor = nil }

// Insert types r at the cursor, replacing the selection.
func (e *Editor) Insert(r rune) {
	switch r {
	case '\n', '\r':
		e.Newline()
		return
	case 0:
		return
	}
	e.deleteSelection()
	para := e.doc.Paragraphs[e.cursor.Para]
	para = append(para, Cell{})
	copy(para[e.cursor.Offset+1:], para[e.cursor.Offset:])
	para[e.cursor.Offset] = Cell{R: r, Marks: e.pending}
	e.doc.Paragraphs[e.cursor.Para] = para
	e.cursor.Offset++
}

func (e *Editor) InsertText(s string) {
	for _, r := range s {
		e.Insert(r)
	}
}

// Newline splits the paragraph at the cursor. Pending marks carry over.
func (e *Editor) Newline() {
	e.deleteSelection()
	i, off := e.cursor.Para, e.cursor.Offset
	para := e.doc.Paragraphs[i]
	head := append(Paragraph{}, para[:off]...)
	tail := append(Paragraph{}, para[off:]...)

	paras := make([]Paragraph, 0, len(e.doc.Paragraphs)+1)
	paras = append(paras, e.doc.Paragraphs[:i]...)
	paras = append(paras, head, tail)
	paras = append(paras, e.doc.Paragraphs[i+1:]...)
	e.doc.Paragraphs = paras
	e.cursor = Pos{Para: i + 1}
}

func (e *Editor) Backspace() {
	if e.deleteSelection() {
		return
	}
	switch {
	case e.cursor.Offset > 0:
		e.deleteRange(Pos{e.cursor.Para, e.cursor.Offset - 1}, e.cursor)
	case e.cursor.Para > 0:
		prev := e.cursor.Para - 1
		e.deleteRange(Pos{prev, len(e.doc.Paragraphs[prev])}, e.cursor)
	default:
		return
	}
	e.syncPending()
}

func (e *Editor) Delete() {
	if e.deleteSelection() {
		return
	}
	para := e.doc.Paragraphs[e.cursor.Para]
	switch {
	case e.cursor.Offset < len(para):
		e.deleteRange(e.cursor, Pos{e.cursor.Para, e.cursor.Offset + 1})
	case e.cursor.Para < len(e.doc.Paragraphs)-1:
		e.deleteRange(e.cursor, Pos{e.cursor.Para + 1, 0})
	}
}

func (e *Editor) deleteSelection() bool {
	start, end, ok := e.Selection()
	e.anchor = nil
	if !ok {
		return false
	}
	e.deleteRange(start, end)
	return true
}

// deleteRange removes [start, end) and leaves the cursor at start.
func (e *Editor) deleteRange(start, end Pos) {
	head := e.doc.Paragraphs[start.Para][:start.Offset]
	tail := e.doc.Paragraphs[end.Para][end.Offset:]
	merged := append(append(Paragraph{}, head...), tail...)

	paras := make([]Paragraph, 0, len(e.doc.Paragraphs))
	paras = append(paras, e.doc.Paragraphs[:start.Para]...)
	paras = append(paras, merged)
	paras = append(paras, e.doc.Paragraphs[end.Para+1:]...)
	e.doc.Paragraphs = paras
	e.cursor = start
}

// Move moves the cursor. With extend the selection grows from where it
// started, otherwise it is dropped.
func (e *Editor) Move(dir Direction, extend bool) {
	if extend {
		if e.anchor == nil {
			anchor := e.cursor
			e.anchor = &anchor
		}
	} else if start, end, ok := e.Selection(); ok && (dir == Left || dir == Right) {
		e.anchor = nil
		if dir == Left {
			e.cursor = start
		} else {
			e.cursor = end
		}
		e.syncPending()
		return
	} else {
		e.anchor = nil
	}

	c := e.cursor
	paraLen := func(i int) int { return len(e.doc.Paragraphs[i]) }
	switch dir {
	case Left:
		if c.Offset > 0 {
			c.Offset--
		} else if c.Para > 0 {
			c.Para--
			c.Offset = paraLen(c.Para)
		}
	case Right:
		if c.Offset < paraLen(c.Para) {
			c.Offset++
		} else if c.Para < len(e.doc.Paragraphs)-1 {
			c.Para++
			c.Offset = 0
		}
	case Up:
		if c.Para > 0 {
			c.Para--
			c.Offset = min(c.Offset, paraLen(c.Para))
		} else {
			c.Offset = 0
		}
	case Down:
		if c.Para < len(e.doc.Paragraphs)-1 {
			c.Para++
			c.Offset = min(c.Offset, paraLen(c.Para))
		} else {
			c.Offset = paraLen(c.Para)
		}
	case Home:
		c.Offset = 0
	case End:
		c.Offset = paraLen(c.Para)
	case WordLeft:
		para := e.doc.Paragraphs[c.Para]
		for c.Offset > 0 && unicode.IsSpace(para[c.Offset-1].R) {
			c.Offset--
		}
		for c.Offset > 0 && !unicode.IsSpace(para[c.Offset-1].R) {
			c.Offset--
		}
	case WordRight:
		para := e.doc.Paragraphs[c.Para]
		for c.Offset < len(para) && unicode.IsSpace(para[c.Offset].R) {
			c.Offset++
		}
		for c.Offset < len(para) && !unicode.IsSpace(para[c.Offset].R) {
			c.Offset++
		}
	}
	e.cursor = c
	e.syncPending()
}

// syncPending makes the pending marks follow the rune before the cursor, or
// the first rune of the paragraph when the cursor is at its start.
func (e *Editor) syncPending() {
	para := e.doc.Paragraphs[e.cursor.Para]
	switch {
	case e.cursor.Offset > 0:
		e.pending = para[e.cursor.Offset-1].Marks
	case len(para) > 0:
		e.pending = para[0].Marks
	default:
		e.pending = Marks{}
	}
}

// Apply runs a formatting command. Boolean kinds toggle; Color and Link set
// value, and an empty value removes the mark. With a selection the range is
// changed, otherwise the pending marks are. Link without a selection extends
// to the link run around the cursor.
func (e *Editor) Apply(kind Kind, value string) {
	if start, end, ok := e.Selection(); ok {
		e.applyRange(start, end, kind, value)
		return
	}
	if kind == Link && e.pending.Link != "" {
		if start, end, ok := e.linkRun(); ok {
			e.applyRange(start, end, kind, value)
			e.pending = e.pending.With(Link, value)
			return
		}
	}
	switch kind {
	case Bold, Italic, Underline:
		e.pending = e.pending.With(kind, onOff(!e.pending.Has(kind)))
	default:
		e.pending = e.pending.With(kind, value)
	}
}

func (e *Editor) applyRange(start, end Pos, kind Kind, value string) {
	if kind == Bold || kind == Italic || kind == Underline {
		value = onOff(!e.rangeHas(start, end, kind))
	}
	e.eachCell(start, end, func(c *Cell) {
		c.Marks = c.Marks.With(kind, value)
	})
}

// linkRun finds the stretch of runes sharing the link under the cursor.
func (e *Editor) linkRun() (Pos, Pos, bool) {
	para := e.doc.Paragraphs[e.cursor.Para]
	href := e.pending.Link
	i := e.cursor.Offset
	if i > 0 && para[i-1].Marks.Link == href {
		i--
	} else if i >= len(para) || para[i].Marks.Link != href {
		return Pos{}, Pos{}, false
	}
	lo, hi := i, i+1
	for lo > 0 && para[lo-1].Marks.Link == href {
		lo--
	}
	for hi < len(para) && para[hi].Marks.Link == href {
		hi++
	}
	return Pos{e.cursor.Para, lo}, Pos{e.cursor.Para, hi}, true
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return ""
}

func (e *Editor) eachCell(start, end Pos, fn func(*Cell)) {
	for i := start.Para; i <= end.Para; i++ {
		para := e.doc.Paragraphs[i]
		lo, hi := 0, len(para)
		if i == start.Para {
			lo = start.Offset
		}
		if i == end.Para {
			hi = end.Offset
		}
		for j := lo; j < hi; j++ {
			fn(&para[j])
		}
	}
}

func (e *Editor) rangeHas(start, end Pos, kind Kind) bool {
	all, seen := true, false
	e.eachCell(start, end, func(c *Cell) {
		seen = true
		if !c.Marks.Has(kind) {
			all = false
		}
	})
	return seen && all
}

// IsActive reports whether kind is on for the whole selection, or in the
// pending marks when nothing is selected.
func (e *Editor) IsActive(kind Kind) bool {
	if start, end, ok := e.Selection(); ok {
		return e.rangeHas(start, end, kind)
	}
	return e.pending.Has(kind)
}

// Value returns the color or link at the selection start or in the pending
// marks.
func (e *Editor) Value(kind Kind) string {
	if start, end, ok := e.Selection(); ok {
		var v string
		found := false
		e.eachCell(start, end, func(c *Cell) {
			if !found {
				v, found = c.Marks.Value(kind), true
			}
		})
		return v
	}
	return e.pending.Value(kind)
}
