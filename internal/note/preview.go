package note

import (
	"regexp"

	"github.com/Paintersrp/easynote/internal/constants"
)

var markupPattern = regexp.MustCompile(`<[^>]+>`)

// StripTags removes every markup tag from content. Entities are left as-is.
func StripTags(content string) string {
	return markupPattern.ReplaceAllString(content, "")
}

// Preview strips markup and truncates to constants.PreviewLimit characters,
// appending an ellipsis when anything was cut.
func Preview(content string) string {
	return truncate(StripTags(content), constants.PreviewLimit)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
