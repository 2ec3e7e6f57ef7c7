package notelist

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/easynote/internal/constants"
	"github.com/Paintersrp/easynote/internal/note"
)

type recorder struct {
	selected  []note.Note
	added     int
	confirmed []string
	onYes     func()
	deleted   []int64
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		Select: func(n note.Note) { r.selected = append(r.selected, n) },
		Add:    func() { r.added++ },
		Confirm: func(message string, onYes func()) {
			r.confirmed = append(r.confirmed, message)
			r.onYes = onYes
		},
		Delete: func(id int64) { r.deleted = append(r.deleted, id) },
	}
}

func sampleNotes() []note.Note {
	return []note.Note{
		{ID: 1, Title: "Meeting", Content: "<p>agenda</p>", Tags: []string{"work"}, LastEdited: 300},
		{ID: 2, Title: "Grocery List", Content: "<p>milk</p>", Tags: []string{}, LastEdited: 100},
		{ID: 3, Title: "Books", Content: "", Tags: []string{"reading", "fun"}, LastEdited: 200},
	}
}

func newTestModel(r *recorder) Model {
	m := New(r.callbacks(), "")
	m.SetSize(80, 30)
	m.SetNotes(sampleNotes(), 0)
	return m
}

func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "f2":
		return tea.KeyMsg{Type: tea.KeyF2}
	case "f6":
		return tea.KeyMsg{Type: tea.KeyF6}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func titles(notes []note.Note) string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return strings.Join(out, ",")
}

func TestListItemFilterValueCarriesTitleAndTags(t *testing.T) {
	t.Parallel()

	item := ListItem{note: note.Note{Title: "Meeting", Tags: []string{"work", "q3"}}}
	got := itemFromFilterValue(item.FilterValue())
	if got.Title != "Meeting" || strings.Join(got.Tags, ",") != "work,q3" {
		t.Fatalf("round trip through FilterValue gave %+v", got)
	}
}

func TestListItemDescription(t *testing.T) {
	t.Parallel()

	edited := time.Date(2024, 3, 5, 14, 30, 0, 0, time.Local)
	item := ListItem{
		note: note.Note{
			Title:      "Books",
			Content:    "<p>" + strings.Repeat("a", 120) + "</p>",
			Tags:       []string{"reading"},
			LastEdited: edited.UnixMilli(),
		},
		dateFormat: constants.DefaultDateFormat,
	}

	lines := strings.Split(item.Description(), "\n")
	if len(lines) != 2 {
		t.Fatalf("Description() has %d lines, want 2", len(lines))
	}
	if want := "#reading  Mar 5, 2024 2:30 PM"; lines[0] != want {
		t.Fatalf("meta line = %q, want %q", lines[0], want)
	}
	if want := strings.Repeat("a", 100) + "..."; lines[1] != want {
		t.Fatalf("preview line = %q, want %q", lines[1], want)
	}
}

func TestListItemTitleMarksBoundNote(t *testing.T) {
	t.Parallel()

	item := ListItem{note: note.Note{Title: "Books"}, bound: true}
	if !strings.HasSuffix(item.Title(), "Books") || item.Title() == "Books" {
		t.Fatalf("bound title = %q", item.Title())
	}
}

func TestFilterNotesMatchesTitleOrTag(t *testing.T) {
	t.Parallel()

	notes := sampleNotes()
	targets := make([]string, len(notes))
	for i, n := range notes {
		targets[i] = ListItem{note: n}.FilterValue()
	}

	tests := []struct {
		term string
		want []int
	}{
		{"ORK", []int{0}},
		{"grocery", []int{1}},
		{"", []int{0, 1, 2}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		ranks := filterNotes(tt.term, targets)
		var got []int
		for _, r := range ranks {
			got = append(got, r.Index)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("filter %q matched %v, want %v", tt.term, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("filter %q matched %v, want %v", tt.term, got, tt.want)
			}
		}
	}
}

func TestEnterSelectsHighlightedNote(t *testing.T) {
	r := &recorder{}
	m := newTestModel(r)

	m, _ = m.Update(press("down"))
	m, _ = m.Update(press("enter"))

	if len(r.selected) != 1 {
		t.Fatalf("Select called %d times, want 1", len(r.selected))
	}
	if !r.selected[0].Equal(sampleNotes()[1]) {
		t.Fatalf("selected %+v, want the full second note", r.selected[0])
	}
}

func TestDeleteAsksBeforeDeleting(t *testing.T) {
	for _, k := range []string{"d", "delete"} {
		r := &recorder{}
		m := newTestModel(r)

		m, _ = m.Update(press(k))

		if len(r.confirmed) != 1 || r.confirmed[0] != constants.DeleteConfirmation {
			t.Fatalf("%s: confirm messages = %v", k, r.confirmed)
		}
		if len(r.deleted) != 0 {
			t.Fatalf("%s: deleted before confirmation", k)
		}
		if len(r.selected) != 0 {
			t.Fatalf("%s: delete key must not select", k)
		}

		r.onYes()
		if len(r.deleted) != 1 || r.deleted[0] != 1 {
			t.Fatalf("%s: deleted = %v, want [1]", k, r.deleted)
		}
	}
}

func TestAddKey(t *testing.T) {
	r := &recorder{}
	m := newTestModel(r)
	m, _ = m.Update(press("n"))
	if r.added != 1 {
		t.Fatalf("Add called %d times, want 1", r.added)
	}
}

func TestSortKeys(t *testing.T) {
	r := &recorder{}
	m := newTestModel(r)

	if got := titles(m.Visible()); got != "Meeting,Grocery List,Books" {
		t.Fatalf("default order = %s", got)
	}

	m, _ = m.Update(press("f1"))
	if got := titles(m.Visible()); got != "Books,Grocery List,Meeting" {
		t.Fatalf("title order = %s", got)
	}

	m, _ = m.Update(press("f2"))
	m, _ = m.Update(press("f6"))
	if got := titles(m.Visible()); got != "Meeting,Books,Grocery List" {
		t.Fatalf("edited descending order = %s", got)
	}
	if m.SortField() != note.SortByEdited || m.SortOrder() != note.Descending {
		t.Fatalf("sort = %s %s", m.SortField(), m.SortOrder())
	}
}

func TestSetNotesFollowsBoundNote(t *testing.T) {
	r := &recorder{}
	m := newTestModel(r)

	m.SetNotes(sampleNotes(), 3)
	n, ok := m.Highlighted()
	if !ok || n.ID != 3 {
		t.Fatalf("highlighted %+v, want note 3", n)
	}

	m.SetNotes(sampleNotes()[:2], 0)
	if got := titles(m.Visible()); got != "Meeting,Grocery List" {
		t.Fatalf("after removal = %s", got)
	}
}
