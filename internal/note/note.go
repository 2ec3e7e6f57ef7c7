// Package note defines the persisted note record and the pure helpers the
// list and editor views derive from it.
package note

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Paintersrp/easynote/internal/constants"
)

// Note is the sole persisted entity.
type Note struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	LastEdited int64    `json:"lastEdited"`
}

// wireNote accepts both the single-tag and the multi-tag layouts.
type wireNote struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tag        *string   `json:"tag,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	LastEdited int64     `json:"lastEdited"`
}

// New returns a note with the placeholder title and empty content and tags.
func New(id int64, edited time.Time) Note {
	return Note{
		ID:         id,
		Title:      constants.PlaceholderTitle,
		Content:    "",
		Tags:       []string{},
		LastEdited: edited.UnixMilli(),
	}
}

func (n *Note) UnmarshalJSON(data []byte) error {
	var w wireNote
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	n.ID = w.ID
	n.Title = w.Title
	n.Content = w.Content
	n.LastEdited = w.LastEdited

	switch {
	case w.Tags != nil:
		n.Tags = CapTags(*w.Tags)
	case w.Tag != nil && *w.Tag != "":
		n.Tags = []string{*w.Tag}
	default:
		n.Tags = []string{}
	}

	return nil
}

func (n Note) MarshalJSON() ([]byte, error) {
	type plain Note
	p := plain(n)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return json.Marshal(p)
}

// Tag is the single-tag view of the record.
func (n Note) Tag() string {
	if len(n.Tags) == 0 {
		return ""
	}
	return n.Tags[0]
}

// Edited returns LastEdited as a local time, or the zero time when unset.
func (n Note) Edited() time.Time {
	if n.LastEdited == 0 {
		return time.Time{}
	}
	return time.UnixMilli(n.LastEdited)
}

// Clone returns a copy that shares no backing arrays with n.
func (n Note) Clone() Note {
	c := n
	c.Tags = append([]string{}, n.Tags...)
	return c
}

// CapTags drops entries beyond constants.MaxTags.
func CapTags(tags []string) []string {
	if len(tags) > constants.MaxTags {
		tags = tags[:constants.MaxTags]
	}
	return append([]string{}, tags...)
}

// CompactTags trims whitespace, removes empty entries and caps the result.
func CompactTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return CapTags(out)
}

// Decode parses a serialized collection.
func Decode(data []byte) ([]Note, error) {
	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}

// Encode serializes the whole collection as one blob.
func Encode(notes []Note) ([]byte, error) {
	if notes == nil {
		notes = []Note{}
	}
	return json.Marshal(notes)
}

// Equal compares every field, treating nil and empty tag slices alike.
func (n Note) Equal(o Note) bool {
	if n.ID != o.ID || n.Title != o.Title || n.Content != o.Content || n.LastEdited != o.LastEdited {
		return false
	}
	if len(n.Tags) != len(o.Tags) {
		return false
	}
	for i := range n.Tags {
		if n.Tags[i] != o.Tags[i] {
			return false
		}
	}
	return true
}
