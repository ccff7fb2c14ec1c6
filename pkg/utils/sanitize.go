package utils

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const maxSanitizePasses = 8

var (
	textPolicy = bluemonday.StrictPolicy()

	// a "<" only opens markup when a complete tag, comment or directive follows
	markupStart = regexp.MustCompile(`^<(?:/?[A-Za-z][^<>]*>|!--[\s\S]*?-->|[!?][^<>]*>)`)
)

// SanitizeText strips every HTML element from user text and returns it as plain text.
// Entity-encoded markup is decoded and stripped again until nothing changes,
// so the result never decodes into a tag. A bare "<" in prose is kept.
func SanitizeText(input string) string {
	text := input
	for range maxSanitizePasses {
		next := html.UnescapeString(textPolicy.Sanitize(escapeStrayBrackets(text)))
		if next == text {
			return strings.TrimSpace(text)
		}
		text = next
	}

	// still decoding into markup after every pass; drop the brackets outright
	return strings.TrimSpace(strings.NewReplacer("<", "", ">", "").Replace(text))
}

// escapeStrayBrackets encodes each "<" that does not start markup so the
// tokenizer reads it as text instead of swallowing what follows.
func escapeStrayBrackets(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for {
		i := strings.IndexByte(s, '<')
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		s = s[i:]

		if loc := markupStart.FindStringIndex(s); loc != nil {
			b.WriteString(s[:loc[1]])
			s = s[loc[1]:]
			continue
		}
		b.WriteString("&lt;")
		s = s[1:]
	}
}
