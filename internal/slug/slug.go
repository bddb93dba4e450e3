// Package slug converts shop names and incoming path segments into the
// canonical SEO slug form used across the catalog.
package slug

import "strings"

// Normalize canonicalizes an incoming path segment before any comparison.
// Normalize is idempotent.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Slugify converts any string into a clean SEO-safe slug using the same
// rules under which canonical slugs were originally assigned:
// lowercase, "&" becomes "and", quotes are dropped, and every remaining
// run of non-alphanumeric characters collapses to a single hyphen.
// Example: " Paws & Claws!! " -> "paws-and-claws".
func Slugify(s string) string {
	s = Normalize(s)
	s = strings.ReplaceAll(s, "&", "and")

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '\'' || r == '"' || r == '`':
			// Quotes vanish without splitting the word.
		default:
			pendingHyphen = true
		}
	}

	return b.String()
}
