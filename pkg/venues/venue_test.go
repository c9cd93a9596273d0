package venues

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVenueActive(t *testing.T) {
	v := Venue{ID: "venue-a"}
	assert.True(t, v.Active())

	v.DuplicateOf = "venue-b"
	assert.False(t, v.Active())
}

func TestTouchBumpsLastUpdated(t *testing.T) {
	var v Venue
	assert.True(t, v.LastUpdated.IsZero())

	v.Touch()
	assert.False(t, v.LastUpdated.IsZero())
}

func TestParseVenueType(t *testing.T) {
	tests := []struct {
		input   string
		want    VenueType
		wantErr bool
	}{
		{"hotel", VenueTypeHotel, false},
		{"banquet_hall", VenueTypeBanquetHall, false},
		{"unknown", VenueTypeUnknown, false},
		{"castle", VenueTypeUnknown, true},
		{"Hotel", VenueTypeUnknown, true},
		{"", VenueTypeUnknown, true},
	}

	for _, tt := range tests {
		got, err := ParseVenueType(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			assert.NoError(t, err, "input %q", tt.input)
		}
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParsePricingType(t *testing.T) {
	got, err := ParsePricingType("flat-plus-surcharge")
	assert.NoError(t, err)
	assert.Equal(t, PricingTypeFlatPlusSurcharge, got)

	got, err = ParsePricingType("plusplus")
	assert.Error(t, err)
	assert.Equal(t, PricingTypeUnknown, got)
}

func TestParseZone(t *testing.T) {
	got, err := ParseZone("central")
	assert.NoError(t, err)
	assert.Equal(t, ZoneCentral, got)

	got, err = ParseZone("downtown")
	assert.Error(t, err)
	assert.Equal(t, ZoneUnknown, got)
}

func TestZoneFromPostal(t *testing.T) {
	tests := []struct {
		postal string
		want   Zone
	}{
		{"049213", ZoneCentral},
		{"189560", ZoneCentral},
		{"288001", ZoneCentral},
		{"780123", ZoneCentral},
		{"299999", ZoneEast},
		{"469332", ZoneEast},
		{"508502", ZoneNorth},
		{"550000", ZoneNorth},
		{"790123", ZoneNorth},
		{"800321", ZoneNorth},
		{"609601", ZoneWest},
		{"778899", ZoneWest},
		{"560000", ZoneUnknown},
		{"12345", ZoneUnknown},
		{"abc123", ZoneUnknown},
		{"", ZoneUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ZoneFromPostal(tt.postal), "postal %q", tt.postal)
	}
}

func TestZoneFromKeyword(t *testing.T) {
	tests := []struct {
		address string
		want    Zone
	}{
		{"10 Orchard Road", ZoneCentral},
		{"Marina Bay Sands Tower 1", ZoneCentral},
		{"Changi Village Hotel", ZoneEast},
		{"Woodlands Ave 9", ZoneNorth},
		{"Jurong East Street 13", ZoneWest},
		{"1 Unnamed Street", ZoneUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ZoneFromKeyword(tt.address), "address %q", tt.address)
	}
}

func TestMakeID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Grand Hyatt Singapore", "venue-grand-hyatt-singapore"},
		{"  The  Fullerton  ", "venue-the-fullerton"},
		{"Peony-Jade @ Clarke Quay", "venue-peony-jade-clarke-quay"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MakeID(tt.name))
	}
}

func TestMakeIDEmptyNameGetsSyntheticID(t *testing.T) {
	id := MakeID("")
	assert.True(t, strings.HasPrefix(id, "venue-"))
	assert.Greater(t, len(id), len("venue-"))

	other := MakeID("")
	assert.NotEqual(t, id, other, "synthetic ids must be unique")
}

func TestFilterAmenities(t *testing.T) {
	accepted, rejected := FilterAmenities(map[string]bool{
		"parking":       true,
		"dance_floor":   true,
		"petting_zoo":   true,
		"helipad":       true,
		"bridal_suite":  false,
		"halal_certified": true,
	})

	assert.Equal(t, map[string]bool{
		"parking":         true,
		"dance_floor":     true,
		"bridal_suite":    false,
		"halal_certified": true,
	}, accepted)
	assert.Equal(t, []string{"helipad", "petting_zoo"}, rejected)
}

func TestFilterAmenitiesEmpty(t *testing.T) {
	accepted, rejected := FilterAmenities(nil)
	assert.Nil(t, accepted)
	assert.Nil(t, rejected)
}
