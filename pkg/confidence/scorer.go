// Package confidence computes a weighted completeness score per venue
// record from field presence across four fixed priority tiers.
package confidence

import (
	"math"

	"github.com/venuehq/venuemap/pkg/venues"
)

// Tier weights. The four tiers always sum to 1.0.
const (
	CriticalWeight = 0.4
	HighWeight     = 0.3
	MediumWeight   = 0.2
	LowWeight      = 0.1
)

// Tier field declarations. Order within a tier is the declaration order
// used to break ties when building the review list.
var (
	criticalFields = []string{
		venues.FieldName,
		venues.FieldVenueType,
		venues.FieldPricePerTable,
		venues.FieldPricingType,
		venues.FieldMaxCapacity,
	}
	highFields = []string{
		venues.FieldAddress,
		venues.FieldZone,
		venues.FieldMinSpend,
		venues.FieldPhone,
		venues.FieldEmail,
	}
	mediumFields = []string{
		venues.FieldPostalCode,
		venues.FieldRating,
		venues.FieldReviewCount,
		venues.FieldAmenities,
	}
	lowFields = []string{
		venues.FieldWebsite,
		venues.FieldWeekdayPrice,
		venues.FieldWeekendPrice,
	}
)

// Score computes the completeness score for a venue: the sum over tiers of
// tier weight times the fraction of tier fields present. A field counts as
// present only when non-empty and valid.
//
// Scoring is a pure function of field state: no randomness, no external
// calls. Scoring the same record twice yields identical results.
func Score(v *venues.Venue) float64 {
	score := tierScore(v, criticalFields, CriticalWeight) +
		tierScore(v, highFields, HighWeight) +
		tierScore(v, mediumFields, MediumWeight) +
		tierScore(v, lowFields, LowWeight)

	return math.Round(score*100) / 100
}

// Review derives the review list: every absent critical or high-priority
// field, in tier-priority order, declaration order within the tier.
func Review(v *venues.Venue) []string {
	var review []string
	for _, field := range criticalFields {
		if !v.FieldPresent(field) {
			review = append(review, field)
		}
	}
	for _, field := range highFields {
		if !v.FieldPresent(field) {
			review = append(review, field)
		}
	}
	return review
}

// Apply recomputes the venue's confidence score and review list in place.
// The review list is re-derived from current field state, not appended to.
func Apply(v *venues.Venue) {
	v.ConfidenceScore = Score(v)
	v.NeedsReview = Review(v)
}

// ScoredFields returns every field the scorer considers, in tier-priority
// order. Completeness reporting iterates this list.
func ScoredFields() []string {
	fields := make([]string, 0, len(criticalFields)+len(highFields)+len(mediumFields)+len(lowFields))
	fields = append(fields, criticalFields...)
	fields = append(fields, highFields...)
	fields = append(fields, mediumFields...)
	fields = append(fields, lowFields...)
	return fields
}

// tierScore returns the tier weight scaled by the fraction of tier fields
// present on the venue.
func tierScore(v *venues.Venue, fields []string, weight float64) float64 {
	if len(fields) == 0 {
		return 0
	}

	present := 0
	for _, field := range fields {
		if v.FieldPresent(field) {
			present++
		}
	}
	return weight * float64(present) / float64(len(fields))
}
