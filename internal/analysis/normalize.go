// Package analysis turns raw document text into the terms the similarity metrics consume.
package analysis

import (
	"strings"
	"unicode"
)

// Normalize lower-cases text, replaces every rune that is not a word character
// (letter, digit, underscore) or whitespace with a space, collapses whitespace
// runs to a single space and trims both ends.
func Normalize(text string) string {
	text = strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		if !isWordRune(r) {
			// Punctuation and whitespace both become separators.
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeContent normalizes optional content; absent content yields "".
func NormalizeContent(content *string) string {
	if content == nil {
		return ""
	}
	return Normalize(*content)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
