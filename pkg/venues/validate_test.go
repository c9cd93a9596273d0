package venues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuehq/venuemap/pkg/errors"
)

func validVenue() Venue {
	price := 1500
	capacity := 500
	tables := 10
	rating := 4.2
	return Venue{
		ID:        "venue-test",
		Name:      "Test Venue",
		VenueType: VenueTypeHotel,
		Pricing: Pricing{
			PricePerTable: &price,
			PricingType:   PricingTypeFlatPlusSurcharge,
		},
		Capacity: Capacity{
			MaxCapacity: &capacity,
			MinTables:   &tables,
		},
		Location: Location{
			Address:    "1 Test Road",
			PostalCode: "189560",
			Zone:       ZoneCentral,
		},
		Rating:    &rating,
		Amenities: map[string]bool{"parking": true},
	}
}

func TestValidateCleanRecord(t *testing.T) {
	v := validVenue()
	assert.Empty(t, v.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Venue)
		field  string
	}{
		{
			name:   "missing id",
			mutate: func(v *Venue) { v.ID = "" },
			field:  "id",
		},
		{
			name:   "missing name",
			mutate: func(v *Venue) { v.Name = "" },
			field:  "name",
		},
		{
			name:   "invalid venue type",
			mutate: func(v *Venue) { v.VenueType = "castle" },
			field:  FieldVenueType,
		},
		{
			name:   "invalid pricing type",
			mutate: func(v *Venue) { v.Pricing.PricingType = "plusplus" },
			field:  FieldPricingType,
		},
		{
			name:   "invalid zone",
			mutate: func(v *Venue) { v.Location.Zone = "downtown" },
			field:  FieldZone,
		},
		{
			name: "price below band",
			mutate: func(v *Venue) {
				p := 300
				v.Pricing.PricePerTable = &p
			},
			field: FieldPricePerTable,
		},
		{
			name: "price above band",
			mutate: func(v *Venue) {
				p := 9000
				v.Pricing.PricePerTable = &p
			},
			field: FieldPricePerTable,
		},
		{
			name: "capacity above band",
			mutate: func(v *Venue) {
				c := 5000
				v.Capacity.MaxCapacity = &c
			},
			field: FieldMaxCapacity,
		},
		{
			name: "min tables zero",
			mutate: func(v *Venue) {
				n := 0
				v.Capacity.MinTables = &n
			},
			field: FieldMinTables,
		},
		{
			name: "rating above band",
			mutate: func(v *Venue) {
				r := 5.5
				v.Rating = &r
			},
			field: FieldRating,
		},
		{
			name:   "postal code wrong length",
			mutate: func(v *Venue) { v.Location.PostalCode = "1234" },
			field:  FieldPostalCode,
		},
		{
			name:   "unknown amenity key",
			mutate: func(v *Venue) { v.Amenities["petting_zoo"] = true },
			field:  FieldAmenities,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validVenue()
			tt.mutate(&v)

			errs := v.Validate()
			require.Len(t, errs, 1)

			var verr *errors.ValidationError
			require.ErrorAs(t, errs[0], &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	v := validVenue()
	v.ID = ""
	v.Name = ""
	v.Location.PostalCode = "12"

	assert.Len(t, v.Validate(), 3)
}

func TestValidateAbsentOptionalFieldsSkipped(t *testing.T) {
	v := Venue{ID: "venue-min", Name: "Minimal"}
	assert.Empty(t, v.Validate())
}
