package venues

import (
	"github.com/venuehq/venuemap/pkg/errors"
)

// VenueType categorizes a venue. The set is closed; values outside it are
// rejected rather than coerced.
type VenueType string

const (
	// VenueTypeHotel is a hotel or resort venue.
	VenueTypeHotel VenueType = "hotel"
	// VenueTypeRestaurant is a standalone restaurant venue.
	VenueTypeRestaurant VenueType = "restaurant"
	// VenueTypeBanquetHall is a dedicated banquet or function hall.
	VenueTypeBanquetHall VenueType = "banquet_hall"
	// VenueTypeClub is a country, golf, yacht, or recreation club.
	VenueTypeClub VenueType = "club"
	// VenueTypeUnique is a non-traditional space (garden, museum, loft).
	VenueTypeUnique VenueType = "unique"
	// VenueTypeUnknown is the fallback for ambiguous or unclassified venues.
	VenueTypeUnknown VenueType = "unknown"
)

// String returns the string representation of a VenueType.
func (t VenueType) String() string {
	return string(t)
}

// IsValid checks if the venue type is a member of the closed set.
func (t VenueType) IsValid() bool {
	switch t {
	case VenueTypeHotel, VenueTypeRestaurant, VenueTypeBanquetHall,
		VenueTypeClub, VenueTypeUnique, VenueTypeUnknown:
		return true
	default:
		return false
	}
}

// ParseVenueType parses a string into a VenueType, failing closed on
// unknown values.
func ParseVenueType(s string) (VenueType, error) {
	t := VenueType(s)
	if !t.IsValid() {
		return VenueTypeUnknown, errors.NewValidationError("venue_type", s, "not a valid venue type")
	}
	return t, nil
}
