package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SanitizeName trims and collapses internal whitespace runs to single spaces.
func SanitizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// NormalizeName lowers a sanitized name and strips combining marks so that
// accented variants collide for uniqueness checks.
func NormalizeName(name string) string {
	s := SanitizeName(name)
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
