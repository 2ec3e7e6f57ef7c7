// Package richtext is the rich-text surface behind the note editor: a
// paragraph/rune document with inline marks, HTML parsing and serialization,
// and an editing cursor with formatting commands.
package richtext

import "strings"

// Kind identifies an inline formatting mark.
type Kind int

const (
	Bold Kind = iota
	Italic
	Underline
	Color
	Link
)

func (k Kind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Color:
		return "color"
	case Link:
		return "link"
	}
	return "unknown"
}

// Marks is the set of marks carried by one rune.
type Marks struct {
	Bold      bool
	Italic    bool
	Underline bool
	Color     string
	Link      string
}

func (m Marks) Has(k Kind) bool {
	switch k {
	case Bold:
		return m.Bold
	case Italic:
		return m.Italic
	case Underline:
		return m.Underline
	case Color:
		return m.Color != ""
	case Link:
		return m.Link != ""
	}
	return false
}

// With returns m with k set to value. Boolean kinds treat any non-empty value
// as on.
func (m Marks) With(k Kind, value string) Marks {
	switch k {
	case Bold:
		m.Bold = value != ""
	case Italic:
		m.Italic = value != ""
	case Underline:
		m.Underline = value != ""
	case Color:
		m.Color = value
	case Link:
		m.Link = value
	}
	return m
}

func (m Marks) Value(k Kind) string {
	switch k {
	case Color:
		return m.Color
	case Link:
		return m.Link
	}
	if m.Has(k) {
		return "on"
	}
	return ""
}

// Cell is one rune and its marks.
type Cell struct {
	R     rune
	Marks Marks
}

type Paragraph []Cell

func (p Paragraph) Text() string {
	var b strings.Builder
	for _, c := range p {
		b.WriteRune(c.R)
	}
	return b.String()
}

// Run is a maximal stretch of cells sharing the same marks.
type Run struct {
	Text  string
	Marks Marks
}

func (p Paragraph) Runs() []Run {
	var runs []Run
	var b strings.Builder
	for i, c := range p {
		if i > 0 && c.Marks != p[i-1].Marks {
			runs = append(runs, Run{Text: b.String(), Marks: p[i-1].Marks})
			b.Reset()
		}
		b.WriteRune(c.R)
	}
	if len(p) > 0 {
		runs = append(runs, Run{Text: b.String(), Marks: p[len(p)-1].Marks})
	}
	return runs
}

// Document always holds at least one paragraph.
type Document struct {
	Paragraphs []Paragraph
}

func NewDocument() Document {
	return Document{Paragraphs: []Paragraph{{}}}
}

func (d Document) IsEmpty() bool {
	return len(d.Paragraphs) == 0 || (len(d.Paragraphs) == 1 && len(d.Paragraphs[0]) == 0)
}

// Text joins the paragraphs with newlines.
func (d Document) Text() string {
	parts := make([]string, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

// Markdown is a best-effort conversion: bold, italic and links survive,
// underline and color do not.
func (d Document) Markdown() string {
	parts := make([]string, 0, len(d.Paragraphs))
	for _, p := range d.Paragraphs {
		var b strings.Builder
		for _, r := range p.Runs() {
			text := r.Text
			if r.Marks.Italic {
				text = "*" + text + "*"
			}
			if r.Marks.Bold {
				text = "**" + text + "**"
			}
			if r.Marks.Link != "" {
				text = "[" + text + "](" + r.Marks.Link + ")"
			}
			b.WriteString(text)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}

func (d Document) clone() Document {
	out := Document{Paragraphs: make([]Paragraph, len(d.Paragraphs))}
	for i, p := range d.Paragraphs {
		out.Paragraphs[i] = append(Paragraph{}, p...)
	}
	return out
}
