package venues

import (
	"strconv"
	"strings"

	"github.com/venuehq/venuemap/pkg/errors"
)

// Zone partitions the island into four broad regions.
type Zone string

const (
	// ZoneCentral covers the central postal districts.
	ZoneCentral Zone = "central"
	// ZoneEast covers the eastern postal districts.
	ZoneEast Zone = "east"
	// ZoneNorth covers the northern postal districts.
	ZoneNorth Zone = "north"
	// ZoneWest covers the western postal districts.
	ZoneWest Zone = "west"
	// ZoneUnknown is used when neither postal code nor district keyword
	// resolves a zone.
	ZoneUnknown Zone = "unknown"
)

// String returns the string representation of a Zone.
func (z Zone) String() string {
	return string(z)
}

// IsValid checks if the zone is a member of the closed set.
func (z Zone) IsValid() bool {
	switch z {
	case ZoneCentral, ZoneEast, ZoneNorth, ZoneWest, ZoneUnknown:
		return true
	default:
		return false
	}
}

// ParseZone parses a string into a Zone, failing closed on unknown values.
func ParseZone(s string) (Zone, error) {
	z := Zone(s)
	if !z.IsValid() {
		return ZoneUnknown, errors.NewValidationError("zone", s, "not a valid zone")
	}
	return z, nil
}

// ZoneFromPostal derives a zone from the first two digits of a 6-digit
// postal code. Postal district ranges:
//
//	01-28, 78  -> central
//	29-48      -> east
//	49-55, 79, 80 -> north
//	60-77      -> west
func ZoneFromPostal(postal string) Zone {
	if len(postal) != 6 {
		return ZoneUnknown
	}

	district, err := strconv.Atoi(postal[:2])
	if err != nil {
		return ZoneUnknown
	}

	switch {
	case (district >= 1 && district <= 28) || district == 78:
		return ZoneCentral
	case district >= 29 && district <= 48:
		return ZoneEast
	case (district >= 49 && district <= 55) || district == 79 || district == 80:
		return ZoneNorth
	case district >= 60 && district <= 77:
		return ZoneWest
	default:
		return ZoneUnknown
	}
}

// zoneKeyword pairs a district name with its zone.
type zoneKeyword struct {
	keyword string
	zone    Zone
}

// zoneKeywords lists well-known district names in match order. Keyword
// derivation has strictly lower priority than postal derivation and must
// never overwrite a postal-derived zone.
var zoneKeywords = []zoneKeyword{
	{"orchard", ZoneCentral},
	{"marina bay", ZoneCentral},
	{"city hall", ZoneCentral},
	{"raffles", ZoneCentral},
	{"bugis", ZoneCentral},
	{"clarke quay", ZoneCentral},
	{"sentosa", ZoneCentral},
	{"tanjong pagar", ZoneCentral},
	{"changi", ZoneEast},
	{"tampines", ZoneEast},
	{"katong", ZoneEast},
	{"bedok", ZoneEast},
	{"pasir ris", ZoneEast},
	{"woodlands", ZoneNorth},
	{"yishun", ZoneNorth},
	{"sembawang", ZoneNorth},
	{"punggol", ZoneNorth},
	{"seletar", ZoneNorth},
	{"jurong", ZoneWest},
	{"clementi", ZoneWest},
	{"bukit timah", ZoneWest},
	{"choa chu kang", ZoneWest},
	{"tuas", ZoneWest},
}

// ZoneFromKeyword derives a zone from the first district keyword found in
// the address text, or ZoneUnknown when nothing matches.
func ZoneFromKeyword(address string) Zone {
	lower := strings.ToLower(address)
	for _, zk := range zoneKeywords {
		if strings.Contains(lower, zk.keyword) {
			return zk.zone
		}
	}
	return ZoneUnknown
}

// Location holds the typed location fields.
type Location struct {
	Address    string `json:"address,omitempty"`
	PostalCode string `json:"postal_code,omitempty"` // 6-digit postal code
	Zone       Zone   `json:"zone,omitempty"`
}

// IsZero reports whether no location information is present.
func (l Location) IsZero() bool {
	return l.Address == "" && l.PostalCode == "" &&
		(l.Zone == "" || l.Zone == ZoneUnknown)
}
