package matcher

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a free-text name for comparison: lowercase,
// letters/digits/spaces only, runs of whitespace collapsed to a single
// space, leading and trailing space trimmed. Accented characters are kept
// as-is; transliteration is a known limitation.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingSpace := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}

	return b.String()
}
