package normalize

import (
	"regexp"

	"github.com/venuehq/venuemap/pkg/venues"
)

// postalCode matches a 6-digit postal code, optionally prefixed with "S" or
// "Singapore".
var postalCode = regexp.MustCompile(`(?i)\b(?:S|Singapore)?\s*(\d{6})\b`)

// streetAbbrev expands common street-name abbreviations so addresses from
// different sources tokenize the same way.
var streetAbbrevs = []struct {
	pattern *regexp.Regexp
	full    string
}{
	{regexp.MustCompile(`(?i)\bRd\b`), "Road"},
	{regexp.MustCompile(`(?i)\bSt\b`), "Street"},
	{regexp.MustCompile(`(?i)\bAve\b`), "Avenue"},
	{regexp.MustCompile(`(?i)\bBlvd\b`), "Boulevard"},
	{regexp.MustCompile(`(?i)\bDr\b`), "Drive"},
	{regexp.MustCompile(`(?i)\bLn\b`), "Lane"},
	{regexp.MustCompile(`(?i)\bCl\b`), "Close"},
	{regexp.MustCompile(`(?i)\bCres\b`), "Crescent"},
	{regexp.MustCompile(`(?i)\bTer\b`), "Terrace"},
}

// Address parses a raw address into typed location fields: normalized
// address text, an extracted 6-digit postal code, and a zone.
//
// Zone priority is strict: a postal-derived zone always wins; the district
// keyword path is consulted only when no postal code is found.
func Address(raw string) (venues.Location, []string) {
	location := venues.Location{Zone: venues.ZoneUnknown}
	if raw == "" {
		return location, nil
	}

	addr := Text(raw)
	for _, ab := range streetAbbrevs {
		addr = ab.pattern.ReplaceAllString(addr, ab.full)
	}
	location.Address = addr

	if m := postalCode.FindStringSubmatch(addr); m != nil {
		location.PostalCode = m[1]
		location.Zone = venues.ZoneFromPostal(m[1])
	}

	if location.Zone == venues.ZoneUnknown {
		location.Zone = venues.ZoneFromKeyword(addr)
	}

	var review []string
	if location.Zone == venues.ZoneUnknown {
		review = append(review, venues.FieldZone)
	}
	return location, review
}
