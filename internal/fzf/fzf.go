package fzf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/easynote/internal/note"
	"github.com/Paintersrp/easynote/internal/richtext"
	"github.com/Paintersrp/easynote/utils"
)

var ErrNoSelection = errors.New("no note selected")

// FuzzyFinder picks a note by title and tags with a rendered preview.
type FuzzyFinder struct {
	Header string
	notes  []note.Note
}

func NewFuzzyFinder(notes []note.Note, header string) *FuzzyFinder {
	return &FuzzyFinder{notes: notes, Header: header}
}

func (f *FuzzyFinder) Run(query string) (note.Note, error) {
	if len(f.notes) == 0 {
		return note.Note{}, ErrNoSelection
	}

	idx, err := fuzzyfinder.Find(f.notes, func(i int) string {
		return Label(f.notes[i])
	}, f.options(query)...)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return note.Note{}, ErrNoSelection
	}
	if err != nil {
		return note.Note{}, fmt.Errorf("error selecting note: %w", err)
	}

	return f.notes[idx], nil
}

func (f *FuzzyFinder) options(query string) []fuzzyfinder.Option {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	return options
}

// Label is the line shown for n in the finder.
func Label(n note.Note) string {
	if len(n.Tags) == 0 {
		return fmt.Sprintf("%s [No tags]", n.Title)
	}
	return fmt.Sprintf("%s [Tags: %s]", n.Title, strings.Join(n.Tags, ", "))
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i < 0 || i >= len(f.notes) {
		return ""
	}

	out, err := utils.RenderMarkdown(NoteMarkdown(f.notes[i]), w)
	if err != nil {
		return "Error rendering markdown"
	}
	return out
}

// NoteMarkdown renders n as a markdown document headed by its title.
func NoteMarkdown(n note.Note) string {
	var b strings.Builder
	b.WriteString("# " + n.Title + "\n\n")
	for _, t := range n.Tags {
		b.WriteString("`#" + t + "` ")
	}
	if len(n.Tags) > 0 {
		b.WriteString("\n\n")
	}
	b.WriteString(richtext.Parse(n.Content).Markdown())
	return b.String()
}
