package cleaner

import (
	"regexp"
	"strings"

	"github.com/gnzdotmx/ytscribe/internal/services/transcript"
)

// bracketed matches non-speech markers such as [Music] or [Applause]
var bracketed = regexp.MustCompile(`\[[^\]]+\]`)

// Clean flattens a transcript into plain text: entry texts are joined
// with newlines in spoken order, the result is trimmed, and bracketed
// markers are stripped in place without re-joining the surrounding lines.
// An empty or absent transcript cleans to the empty string.
func Clean(entries []transcript.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, entry.Text)
	}

	text := strings.TrimSpace(strings.Join(parts, "\n"))
	return bracketed.ReplaceAllString(text, "")
}
