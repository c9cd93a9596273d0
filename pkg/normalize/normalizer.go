package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/agentstation/utc"

	"github.com/venuehq/venuemap/pkg/venues"
)

// RawRecord is an untyped key/value bag handed over by a source adapter.
// Key names vary by source; the normalizer resolves them through alias
// lists. Raw records are ephemeral and discarded once consumed.
type RawRecord map[string]string

// Key aliases by canonical field. The first populated alias wins.
var rawKeyAliases = map[string][]string{
	"name":      {"name", "venue_name", "title"},
	"address":   {"address", "raw_address", "location"},
	"price":     {"price", "raw_price", "pricing"},
	"capacity":  {"capacity", "raw_capacity"},
	"phone":     {"phone", "raw_phone", "contact_phone"},
	"email":     {"email", "raw_email", "contact_email"},
	"website":   {"website", "raw_website", "url"},
	"rating":    {"rating", "raw_rating"},
	"reviews":   {"review_count", "raw_reviews", "reviews"},
	"amenities": {"amenities", "raw_amenities", "facilities"},
	"source":    {"source", "data_source"},
}

var ratingNumber = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithGuestsPerTable overrides the guest-to-table conversion ratio.
func WithGuestsPerTable(n int) Option {
	return func(nm *Normalizer) {
		if n > 0 {
			nm.guestsPerTable = n
		}
	}
}

// Normalizer converts raw records into canonical venue records.
type Normalizer struct {
	guestsPerTable int
}

// New creates a Normalizer with default settings.
func New(opts ...Option) *Normalizer {
	nm := &Normalizer{
		guestsPerTable: venues.DefaultGuestsPerTable,
	}
	for _, opt := range opts {
		opt(nm)
	}
	return nm
}

// Record converts one raw record into a best-effort canonical venue.
// It never fails: fields that cannot be parsed stay empty and are named in
// the record's review list.
func (nm *Normalizer) Record(raw RawRecord) venues.Venue {
	var review []string

	name := Name(rawValue(raw, "name"))

	venue := venues.Venue{
		ID:          venues.MakeID(name),
		Name:        name,
		VenueType:   venues.VenueTypeUnknown,
		DataSource:  Text(rawValue(raw, "source")),
		LastUpdated: utc.Now(),
	}
	if name == "" {
		review = append(review, venues.FieldName)
	}

	pricing, priceReview := Price(rawValue(raw, "price"))
	venue.Pricing = pricing
	review = append(review, priceReview...)

	capacity, capReview := Capacity(rawValue(raw, "capacity"), nm.guestsPerTable)
	venue.Capacity = capacity
	review = append(review, capReview...)

	location, locReview := Address(rawValue(raw, "address"))
	venue.Location = location
	review = append(review, locReview...)

	phone, phoneReview := Phone(rawValue(raw, "phone"))
	venue.Contact.Phone = phone
	review = append(review, phoneReview...)

	venue.Contact.Email = Text(rawValue(raw, "email"))
	venue.Contact.Website = Text(rawValue(raw, "website"))

	if rating, ok := parseRating(rawValue(raw, "rating")); ok {
		venue.Rating = &rating
	} else if rawValue(raw, "rating") != "" {
		review = append(review, venues.FieldRating)
	}

	if count, ok := parseReviewCount(rawValue(raw, "reviews")); ok {
		venue.ReviewCount = &count
	}

	amenities, rejected := venues.FilterAmenities(parseAmenities(rawValue(raw, "amenities")))
	venue.Amenities = amenities
	if len(rejected) > 0 {
		review = append(review, venues.FieldAmenities)
	}

	venue.NeedsReview = review
	return venue
}

// rawValue resolves a canonical field to the first populated alias key.
func rawValue(raw RawRecord, field string) string {
	for _, key := range rawKeyAliases[field] {
		if v, ok := raw[key]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// parseRating extracts the first decimal number from raw rating text.
// Ratings outside [0, 5] are rejected rather than clamped.
func parseRating(raw string) (float64, bool) {
	m := ratingNumber.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	rating, err := strconv.ParseFloat(m[1], 64)
	if err != nil || rating < venues.MinRating || rating > venues.MaxRating {
		return 0, false
	}
	return rating, true
}

// parseReviewCount extracts the first integer from raw review count text.
func parseReviewCount(raw string) (int, bool) {
	numbers := parseNumbers(raw)
	if len(numbers) == 0 || numbers[0] < 0 {
		return 0, false
	}
	return numbers[0], true
}

// parseAmenities splits comma- or semicolon-separated amenity text into
// candidate flag keys.
func parseAmenities(raw string) map[string]bool {
	raw = Text(raw)
	if raw == "" {
		return nil
	}

	flags := make(map[string]bool)
	for _, token := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		key := strings.ToLower(strings.TrimSpace(token))
		key = strings.ReplaceAll(key, " ", "_")
		if key != "" {
			flags[key] = true
		}
	}
	return flags
}
