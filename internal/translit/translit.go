// Package translit folds arbitrary (mostly German) text down to the ASCII
// forms used for slugs and placeholder keys.
package translit

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// markStripper decomposes to NFD, drops combining marks, recomposes.
var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldReplacer handles letters NFD decomposition cannot reduce to ASCII.
var foldReplacer = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ł", "l", "Ł", "L",
	"þ", "th", "Þ", "Th",
)

// StripDiacritics returns s with diacritical marks removed and common
// non-decomposable letters folded to ASCII ("Café Müller" → "Cafe Muller").
func StripDiacritics(s string) string {
	s = foldReplacer.Replace(s)
	out, _, err := transform.String(markStripper, s)
	if err != nil {
		return s
	}
	return out
}

var (
	slugDropRe     = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s_-]+`)
)

// Slugify derives a filesystem/URL-safe identifier from a company name:
// diacritics stripped, non-word characters dropped, whitespace and
// underscore runs collapsed to single hyphens, lowercased. An empty or
// unresolvable name yields "company".
func Slugify(s string) string {
	s = StripDiacritics(s)
	s = strings.TrimSpace(s)
	s = slugDropRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	s = strings.ToLower(s)
	if s == "" {
		return "company"
	}
	return s
}

var keyNonAlnumRe = regexp.MustCompile(`[^A-Z0-9]+`)

// NormalizeKey converts a column header into its canonical placeholder key:
// ASCII-folded, uppercased, with runs of non-alphanumerics collapsed to a
// single underscore ("Ihr Name" → "IHR_NAME").
func NormalizeKey(s string) string {
	s = strings.ToUpper(StripDiacritics(s))
	s = keyNonAlnumRe.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// Title word-capitalizes s ("IHR NAME" → "Ihr Name").
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}
