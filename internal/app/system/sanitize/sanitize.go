// Package sanitize strips markup from user-supplied free text before it
// is stored. Campaign descriptions, donor messages, and admin notes are
// rendered by browser clients, so script content must never reach the
// database.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes every HTML element and attribute from s, unescapes the
// surviving entities back to plain text, and trims whitespace.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}

// TextSlice applies Text to every element, dropping entries that end up
// empty (e.g. tag-only input).
func TextSlice(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if cleaned := Text(s); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
