package venues

import (
	"github.com/venuehq/venuemap/pkg/errors"
)

// PricingType distinguishes how quoted prices accrue taxes and service
// charges.
type PricingType string

const (
	// PricingTypeFlatPlusSurcharge marks "++" pricing: service charge and
	// taxes are added on top of the quoted figure.
	PricingTypeFlatPlusSurcharge PricingType = "flat-plus-surcharge"
	// PricingTypeAllInclusive marks "nett" pricing: the quoted figure is
	// final.
	PricingTypeAllInclusive PricingType = "all-inclusive"
	// PricingTypeUnknown is used when the source text carries no marker.
	PricingTypeUnknown PricingType = "unknown"
)

// String returns the string representation of a PricingType.
func (t PricingType) String() string {
	return string(t)
}

// IsValid checks if the pricing type is a member of the closed set.
func (t PricingType) IsValid() bool {
	switch t {
	case PricingTypeFlatPlusSurcharge, PricingTypeAllInclusive, PricingTypeUnknown:
		return true
	default:
		return false
	}
}

// ParsePricingType parses a string into a PricingType, failing closed on
// unknown values.
func ParsePricingType(s string) (PricingType, error) {
	t := PricingType(s)
	if !t.IsValid() {
		return PricingTypeUnknown, errors.NewValidationError("pricing_type", s, "not a valid pricing type")
	}
	return t, nil
}

// Pricing holds the typed price fields parsed out of free text.
// All amounts are whole Singapore dollars. Per-person quotes are never
// conflated with per-table quotes; when only a per-pax figure is available
// PricePerTable stays nil.
type Pricing struct {
	PricePerTable *int        `json:"price_per_table,omitempty"` // Lower bound of a quoted per-table range
	WeekdayPrice  *int        `json:"weekday_price,omitempty"`
	WeekendPrice  *int        `json:"weekend_price,omitempty"`
	PricingType   PricingType `json:"pricing_type,omitempty"`
	MinSpend      *int        `json:"min_spend,omitempty"`
}

// IsZero reports whether no pricing information is present.
func (p Pricing) IsZero() bool {
	return p.PricePerTable == nil && p.WeekdayPrice == nil && p.WeekendPrice == nil &&
		p.MinSpend == nil && (p.PricingType == "" || p.PricingType == PricingTypeUnknown)
}
