package menu

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fallbackSlug is used when a category name strips down to nothing
// (e.g. a name made entirely of punctuation or symbols).
const fallbackSlug = "category"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9_-]+`)
	hyphenRun     = regexp.MustCompile(`--+`)

	// stripMarks decomposes accented letters and drops the combining marks,
	// so "Cà phê" becomes "Ca phe" before lowercasing.
	stripMarks = transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
	)
)

// Slugify derives an identifier-safe slug from a category display name:
// decompose accents, drop combining marks, lowercase, trim, whitespace runs
// to single hyphens, strip everything outside [a-z0-9_-], collapse hyphen
// runs. Returns "category" when nothing survives.
func Slugify(name string) string {
	s, _, err := transform.String(stripMarks, name)
	if err != nil {
		s = name
	}

	s = strings.TrimSpace(strings.ToLower(s))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")

	if s == "" {
		return fallbackSlug
	}
	return s
}
