package fzf

import (
	"strings"
	"testing"

	"github.com/Paintersrp/easynote/internal/note"
)

func TestLabel(t *testing.T) {
	if got := Label(note.Note{Title: "Plain"}); got != "Plain [No tags]" {
		t.Fatalf("unexpected label %q", got)
	}
	got := Label(note.Note{Title: "Work", Tags: []string{"work", "q3"}})
	if got != "Work [Tags: work, q3]" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestNoteMarkdown(t *testing.T) {
	md := NoteMarkdown(note.Note{
		Title:   "Groceries",
		Content: "<p><strong>milk</strong></p><p>eggs</p>",
		Tags:    []string{"home"},
	})

	for _, want := range []string{"# Groceries", "`#home`", "**milk**", "eggs"} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in %q", want, md)
		}
	}
}

func TestRunWithoutNotes(t *testing.T) {
	if _, err := NewFuzzyFinder(nil, "").Run(""); err != ErrNoSelection {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}
