package venues

// Field names used by the confidence scorer, the review list, and the
// completeness report. Names are the leaf field identifiers from the
// canonical schema.
const (
	FieldName          = "name"
	FieldVenueType     = "venue_type"
	FieldPricePerTable = "price_per_table"
	FieldPricingType   = "pricing_type"
	FieldMaxCapacity   = "max_capacity"
	FieldMinTables     = "min_tables"
	FieldAddress       = "address"
	FieldZone          = "zone"
	FieldPostalCode    = "postal_code"
	FieldMinSpend      = "min_spend"
	FieldWeekdayPrice  = "weekday_price"
	FieldWeekendPrice  = "weekend_price"
	FieldPhone         = "phone"
	FieldEmail         = "email"
	FieldWebsite       = "website"
	FieldRating        = "rating"
	FieldReviewCount   = "review_count"
	FieldAmenities     = "amenities"
	FieldCapacity      = "capacity"
)

// FieldPresent reports whether the named field is populated with a value
// that passes its own validation. A field counts as present only when
// non-empty and valid; enum fields set to their unknown member are absent.
func (v *Venue) FieldPresent(field string) bool {
	switch field {
	case FieldName:
		return v.Name != ""
	case FieldVenueType:
		return v.VenueType.IsValid() && v.VenueType != VenueTypeUnknown
	case FieldPricePerTable:
		return v.Pricing.PricePerTable != nil
	case FieldPricingType:
		return v.Pricing.PricingType.IsValid() && v.Pricing.PricingType != PricingTypeUnknown
	case FieldMaxCapacity:
		return v.Capacity.MaxCapacity != nil
	case FieldMinTables:
		return v.Capacity.MinTables != nil
	case FieldAddress:
		return v.Location.Address != ""
	case FieldZone:
		return v.Location.Zone.IsValid() && v.Location.Zone != ZoneUnknown
	case FieldPostalCode:
		return len(v.Location.PostalCode) == 6
	case FieldMinSpend:
		return v.Pricing.MinSpend != nil
	case FieldWeekdayPrice:
		return v.Pricing.WeekdayPrice != nil
	case FieldWeekendPrice:
		return v.Pricing.WeekendPrice != nil
	case FieldPhone:
		return v.Contact.Phone != ""
	case FieldEmail:
		return v.Contact.Email != ""
	case FieldWebsite:
		return v.Contact.Website != ""
	case FieldRating:
		return v.Rating != nil && *v.Rating >= 0 && *v.Rating <= 5
	case FieldReviewCount:
		return v.ReviewCount != nil && *v.ReviewCount >= 0
	case FieldAmenities:
		return len(v.Amenities) > 0
	default:
		return false
	}
}
