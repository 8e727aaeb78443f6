package sanitize

import (
	"html"
	"strings"
)

// Clean normalizes a raw user query: trims surrounding whitespace, collapses
// internal whitespace runs to a single space, and HTML-escapes special
// characters so the query is safe to echo into rendered output.
//
// Clean is idempotent: text that already carries escaped entities is not
// escaped a second time.
func Clean(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	if s == "" {
		return s
	}
	// Escape only when the string is not already in escaped form, otherwise
	// re-sanitizing would turn &amp; into &amp;amp;.
	if html.EscapeString(html.UnescapeString(s)) != s {
		s = html.EscapeString(s)
	}
	return s
}
