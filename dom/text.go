package dom

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	retainedChars   = map[rune]bool{
		'\t': true,
		'\n': true,
		'\r': true,
		'\f': true,
	}
)

// NormalizeText strips control characters, applies NFKC normalization and
// collapses whitespace runs to single spaces, trimming the result.
func NormalizeText(text string) string {
	text = stripControlChars(text)
	text = norm.NFKC.String(text)
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(text), " ")
}

// stripControlChars removes Unicode control characters while retaining the
// whitespace characters the normalizer collapses afterwards.
func stripControlChars(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !unicode.IsControl(r) || retainedChars[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}
