package head

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes every tag; element content of script/style is dropped.
var stripPolicy = bluemonday.StrictPolicy()

// plain strips HTML tags from s and returns unescaped text, so the result can
// be escaped exactly once on render.
func plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}

// limit cuts s to max runes, trims trailing whitespace and appends "..." when
// something was cut.
func limit(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max]), " \t\n\r") + "..."
}
