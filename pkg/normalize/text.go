// Package normalize converts raw source records into canonical venue
// records: unicode and punctuation cleanup, plus typed parsing of price,
// capacity, address, and phone fields out of free text.
//
// The normalizer never fails a record. Any field that cannot be parsed is
// left empty and its name recorded in the review list; guessing is not
// allowed.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// punctReplacer unifies smart quotes and long dashes to their ASCII
// equivalents.
var punctReplacer = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"—", "-", // em dash
	"–", "-", // en dash
	" ", " ", // non-breaking space
)

var titleCaser = cases.Title(language.English)

// Text canonicalizes free text: unicode NFKC composition, smart quote and
// dash unification, and whitespace collapsing.
func Text(s string) string {
	if s == "" {
		return ""
	}

	s = norm.NFKC.String(s)
	s = punctReplacer.Replace(s)
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Name canonicalizes a display name: Text normalization plus title casing.
func Name(s string) string {
	s = Text(s)
	if s == "" {
		return ""
	}
	return titleCaser.String(s)
}
