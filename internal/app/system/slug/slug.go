// Package slug derives unique, URL-safe campaign slugs from titles.
package slug

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphens  = regexp.MustCompile(`-+`)
)

// MaxLen caps generated slugs. Matches the title length limit so a
// maximal title still yields a usable slug with room for a suffix.
const MaxLen = 100

// Make normalizes a title into a slug: lowercase ASCII with diacritics
// stripped, runs of non-alphanumerics collapsed to single hyphens,
// trimmed, and capped at MaxLen. Empty input yields "campaign".
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))

	// Strip combining marks so "Café" becomes "cafe".
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	s = reNonAlnum.ReplaceAllString(b.String(), "-")
	s = reHyphens.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > MaxLen {
		s = strings.Trim(s[:MaxLen], "-")
	}
	if s == "" {
		s = "campaign"
	}
	return s
}

// ExistsFunc reports whether a candidate slug is already taken.
// Implementations must exclude the campaign being updated so a title
// edit can keep its own slug.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// maxProbes bounds the suffix search; the unique index on the slug
// column is the final arbiter if probing is ever exhausted by a race.
const maxProbes = 100

// Unique returns base if free, otherwise base-1, base-2, ... probing
// successive integers until an unused slug is found.
func Unique(ctx context.Context, base string, exists ExistsFunc) (string, error) {
	candidate := base
	for i := 0; i < maxProbes; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i+1)
	}
	return "", fmt.Errorf("no free slug found for %q after %d probes", base, maxProbes)
}
