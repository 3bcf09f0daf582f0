package domain

import (
	"strings"
	"unicode"
)

// CleanText tidies model-produced text for display:
//   - trims leading/trailing whitespace
//   - collapses any run of whitespace (including newlines) into one space
//
// Case is preserved: German nouns are capitalized.
func CleanText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
