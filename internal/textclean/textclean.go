// Package textclean normalizes raw transcript text before it is handed to the
// summarization and question-answering models.
package textclean

import (
	"regexp"
	"strings"
)

var (
	speakerLabel = regexp.MustCompile(`(?m)^\w+:\s*`)
	whitespace   = regexp.MustCompile(`\s+`)
	unsupported  = regexp.MustCompile(`[^a-zA-Z0-9.,!?'" ]`)
	periodRuns   = regexp.MustCompile(`\.{2,}`)
)

// Clean normalizes a raw transcript. Steps run in a fixed order: speaker
// labels are stripped while line boundaries still exist, then whitespace is
// collapsed to single spaces, characters outside ASCII letters, digits and
// basic punctuation are dropped, runs of periods are collapsed, and the result
// is trimmed. Clean is idempotent and maps the empty string to itself.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = speakerLabel.ReplaceAllString(text, "")
	text = whitespace.ReplaceAllString(text, " ")
	text = unsupported.ReplaceAllString(text, "")
	// Dropping characters can leave double spaces behind; collapse once more
	// so cleaning a cleaned transcript is a no-op.
	text = whitespace.ReplaceAllString(text, " ")
	text = periodRuns.ReplaceAllString(text, ".")
	return strings.TrimSpace(text)
}
