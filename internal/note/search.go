package note

import "strings"

// Matches reports whether term is a case-insensitive substring of the title or
// of any tag. The empty term matches everything.
func Matches(n Note, term string) bool {
	if term == "" {
		return true
	}

	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(n.Title), needle) {
		return true
	}
	for _, tag := range n.Tags {
		if tag != "" && strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// Filter returns the notes matching term, preserving order.
func Filter(notes []Note, term string) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if Matches(n, term) {
			out = append(out, n)
		}
	}
	return out
}
