// Package matching scores job titles against the user's alert keywords.
//
// All comparisons run over a normalized form: lowercased, punctuation
// collapsed to single spaces, with a few well-known abbreviations expanded
// to their full phrasing so that "SWE Intern" and "Software Engineering
// Internship" land on the same tokens.
package matching

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Token-boundary only. "swell" must never become "software engineerll".
var abbreviations = []struct {
	re   *regexp.Regexp
	full string
}{
	{regexp.MustCompile(`\bswe\b`), "software engineer"},
	{regexp.MustCompile(`\bsde\b`), "software engineer"},
	{regexp.MustCompile(`\bml\b`), "machine learning"},
}

// Normalize lowercases s, replaces every run of non-alphanumeric characters
// with a single space and trims the result. Idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ExpandAbbreviations rewrites standalone abbreviation tokens in an
// already-normalized string into their expanded phrases.
func ExpandAbbreviations(normalized string) string {
	for _, a := range abbreviations {
		normalized = a.re.ReplaceAllString(normalized, a.full)
	}
	return normalized
}

// Expand is the canonical preprocessing for both titles and queries.
func Expand(s string) string {
	return ExpandAbbreviations(Normalize(s))
}

// Tokenize splits the expanded form of s on whitespace, dropping empties.
func Tokenize(s string) []string {
	return strings.Fields(Expand(s))
}
