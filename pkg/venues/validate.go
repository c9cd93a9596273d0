package venues

import (
	"github.com/venuehq/venuemap/pkg/errors"
)

// Numeric sanity bands enforced at the catalog boundary.
const (
	MinPricePerTable = 500
	MaxPricePerTable = 5000
	MinTablesBound   = 1
	MaxTablesBound   = 200
	MinCapacityBound = 10
	MaxCapacityBound = 2000
	MinRating        = 0.0
	MaxRating        = 5.0
)

// Validate checks the venue against the hard schema constraints enforced at
// the catalog boundary. It returns every violation found, not just the
// first. Optional fields that are absent are skipped; present fields must
// pass their band or enum check.
func (v *Venue) Validate() []error {
	var errs []error

	if v.ID == "" {
		errs = append(errs, errors.NewValidationError("id", "", "missing required field"))
	}
	if v.Name == "" {
		errs = append(errs, errors.NewValidationError("name", "", "missing required field"))
	}

	if v.VenueType != "" && !v.VenueType.IsValid() {
		errs = append(errs, errors.NewValidationError(FieldVenueType, string(v.VenueType),
			"must be hotel, restaurant, banquet_hall, club, unique, or unknown"))
	}
	if v.Pricing.PricingType != "" && !v.Pricing.PricingType.IsValid() {
		errs = append(errs, errors.NewValidationError(FieldPricingType, string(v.Pricing.PricingType),
			"must be flat-plus-surcharge, all-inclusive, or unknown"))
	}
	if v.Location.Zone != "" && !v.Location.Zone.IsValid() {
		errs = append(errs, errors.NewValidationError(FieldZone, string(v.Location.Zone),
			"must be central, east, north, west, or unknown"))
	}

	if p := v.Pricing.PricePerTable; p != nil && (*p < MinPricePerTable || *p > MaxPricePerTable) {
		errs = append(errs, errors.NewValidationError(FieldPricePerTable, *p,
			"price per table should be S$500-5000"))
	}
	if t := v.Capacity.MinTables; t != nil && (*t < MinTablesBound || *t > MaxTablesBound) {
		errs = append(errs, errors.NewValidationError(FieldMinTables, *t,
			"min tables should be 1-200"))
	}
	if c := v.Capacity.MaxCapacity; c != nil && (*c < MinCapacityBound || *c > MaxCapacityBound) {
		errs = append(errs, errors.NewValidationError(FieldMaxCapacity, *c,
			"max capacity should be 10-2000 guests"))
	}
	if r := v.Rating; r != nil && (*r < MinRating || *r > MaxRating) {
		errs = append(errs, errors.NewValidationError(FieldRating, *r,
			"rating should be 0-5"))
	}
	if v.Location.PostalCode != "" && len(v.Location.PostalCode) != 6 {
		errs = append(errs, errors.NewValidationError(FieldPostalCode, v.Location.PostalCode,
			"postal code must be 6 digits"))
	}

	for key := range v.Amenities {
		if !KnownAmenity(key) {
			errs = append(errs, errors.NewValidationError(FieldAmenities, key,
				"unknown amenity key"))
		}
	}

	return errs
}
