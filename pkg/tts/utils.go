package tts

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeText collapses runs of whitespace and trims the prompt before it
// is handed to an engine. Engines choke on embedded newlines in SSML text.
func NormalizeText(text string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}
