package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/venuehq/venuemap/pkg/venues"
)

var (
	dollarAmounts = regexp.MustCompile(`\$\s*(\d+(?:,\d{3})*)`)
	nettWord      = regexp.MustCompile(`\bnett?\b`)
)

// perPaxMarkers identify per-person quotes, which must never be conflated
// with per-table quotes.
var perPaxMarkers = []string{"/pax", "per pax", "per person", "/person", "per head"}

// minSpendMarkers identify minimum spend quotes.
var minSpendMarkers = []string{"min spend", "minimum spend", "min. spend"}

// Price decomposes a free-text price quote into typed pricing fields.
//
//	"$1500-$2000++/table"  -> price_per_table 1500, weekday 1500, weekend 2000
//	"$1588++Mon-Fri"       -> weekday_price 1588, flat-plus-surcharge
//	"$888 nett per table"  -> price_per_table 888, all-inclusive
//	"$238-$298++/pax"      -> per-pax only: price_per_table stays empty
//
// The second return value lists fields that could not be derived.
func Price(raw string) (venues.Pricing, []string) {
	pricing := venues.Pricing{PricingType: venues.PricingTypeUnknown}
	if strings.TrimSpace(raw) == "" {
		return pricing, nil
	}

	lower := strings.ToLower(raw)
	var review []string

	switch {
	case strings.Contains(raw, "++") || strings.Contains(lower, "plus plus"):
		pricing.PricingType = venues.PricingTypeFlatPlusSurcharge
	case nettWord.MatchString(lower):
		pricing.PricingType = venues.PricingTypeAllInclusive
	}

	amounts := parseAmounts(raw)
	if len(amounts) == 0 {
		return pricing, append(review, venues.FieldPricePerTable)
	}

	if containsAny(lower, minSpendMarkers) {
		pricing.MinSpend = &amounts[0]
		return pricing, review
	}

	// A per-pax quote cannot be converted to per-table without a party-size
	// assumption, so the per-table fields stay empty and get flagged.
	if containsAny(lower, perPaxMarkers) {
		return pricing, append(review, venues.FieldPricePerTable)
	}

	// Lower bound of the quoted range.
	pricing.PricePerTable = &amounts[0]

	hasWeekday := strings.Contains(lower, "weekday") ||
		strings.Contains(lower, "mon-fri") || strings.Contains(lower, "mon - fri") ||
		strings.Contains(lower, "mon to fri")
	hasWeekend := strings.Contains(lower, "weekend") ||
		strings.Contains(lower, "sat") || strings.Contains(lower, "sun")

	switch {
	case len(amounts) >= 2 && hasWeekday && hasWeekend:
		pricing.WeekdayPrice = &amounts[0]
		pricing.WeekendPrice = &amounts[1]
	case hasWeekday:
		pricing.WeekdayPrice = &amounts[0]
	case hasWeekend:
		pricing.WeekendPrice = &amounts[0]
	case len(amounts) >= 2:
		// Unqualified ranges follow the dominant quoting convention: the
		// lower figure is the weekday rate, the higher the weekend rate.
		pricing.WeekdayPrice = &amounts[0]
		pricing.WeekendPrice = &amounts[1]
	}

	return pricing, review
}

// parseAmounts extracts all dollar amounts from raw text.
func parseAmounts(raw string) []int {
	matches := dollarAmounts.FindAllStringSubmatch(raw, -1)
	amounts := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		amounts = append(amounts, n)
	}
	return amounts
}

// containsAny reports whether s contains any of the markers.
func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
