package note

import (
	"fmt"
	"sort"
	"strings"
)

type SortField int

const (
	SortByCreated SortField = iota
	SortByTitle
	SortByEdited
)

type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (f SortField) String() string {
	switch f {
	case SortByTitle:
		return "title"
	case SortByEdited:
		return "edited"
	default:
		return "created"
	}
}

func (o SortOrder) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// ParseSortField accepts the names produced by SortField.String.
func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "created":
		return SortByCreated, nil
	case "title":
		return SortByTitle, nil
	case "edited", "modified":
		return SortByEdited, nil
	}
	return SortByCreated, fmt.Errorf("invalid sort field %q: choose 'created', 'title' or 'edited'", s)
}

// Sort returns a sorted copy. SortByCreated in ascending order is the
// insertion order of the input and is returned unchanged.
func Sort(notes []Note, field SortField, order SortOrder) []Note {
	sorted := make([]Note, len(notes))
	copy(sorted, notes)

	if field == SortByCreated {
		if order == Descending {
			for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		var less, greater bool
		switch field {
		case SortByTitle:
			c := strings.Compare(strings.ToLower(sorted[i].Title), strings.ToLower(sorted[j].Title))
			less, greater = c < 0, c > 0
		case SortByEdited:
			less = sorted[i].LastEdited < sorted[j].LastEdited
			greater = sorted[i].LastEdited > sorted[j].LastEdited
		}
		if order == Ascending {
			return less
		}
		return greater
	})

	return sorted
}
