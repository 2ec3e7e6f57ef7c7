package notelist

import (
	"strings"

	"github.com/Paintersrp/easynote/internal/note"
)

// fieldSep separates title and tags inside FilterValue.
const fieldSep = "\x1f"

type ListItem struct {
	note       note.Note
	bound      bool
	dateFormat string
}

func (i ListItem) Note() note.Note { return i.note }

func (i ListItem) Title() string {
	if i.bound {
		return "● " + i.note.Title
	}
	return i.note.Title
}

func (i ListItem) Description() string {
	var parts []string
	for _, tag := range i.note.Tags {
		if tag != "" {
			parts = append(parts, "#"+tag)
		}
	}
	if edited := i.note.Edited(); !edited.IsZero() {
		parts = append(parts, edited.Format(i.dateFormat))
	}

	meta := strings.Join(parts, "  ")
	if meta == "" {
		meta = "No tags"
	}
	return meta + "\n" + note.Preview(i.note.Content)
}

// FilterValue carries the title and tags so the filter can match either
// field on its own.
func (i ListItem) FilterValue() string {
	return strings.Join(append([]string{i.note.Title}, i.note.Tags...), fieldSep)
}

func itemFromFilterValue(v string) note.Note {
	parts := strings.Split(v, fieldSep)
	return note.Note{Title: parts[0], Tags: parts[1:]}
}
