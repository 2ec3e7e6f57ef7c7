package utils

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
)

const (
	defaultWrapWidth       = 80
	previewHorizontalSpace = 4
)

var validTag = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

func AppendIfNotExists(slice []string, value string) []string {
	for _, v := range slice {
		if v == value {
			return slice
		}
	}
	return append(slice, value)
}

// ValidateTags rejects tags that are not made of letters, digits, hyphens and
// underscores, and drops duplicates.
func ValidateTags(tags []string) ([]string, error) {
	out := []string{}
	for _, tag := range tags {
		if !validTag.MatchString(tag) {
			return nil, fmt.Errorf(
				"invalid tag '%s': tags must only contain alphanumeric characters, hyphens, and underscores",
				tag,
			)
		}
		out = AppendIfNotExists(out, tag)
	}
	return out, nil
}

// RenderMarkdown styles markdown for a pane w columns wide.
func RenderMarkdown(content string, w int) (string, error) {
	wrap := w - previewHorizontalSpace
	if wrap <= 0 {
		wrap = defaultWrapWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(wrap),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// MarkdownToHTML converts markdown to an HTML fragment.
func MarkdownToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
