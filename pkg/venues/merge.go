package venues

// FillMissingFrom copies field values from other into v for every field
// that is empty on v and populated on other. Populated fields on v are
// never overwritten, which is what makes both the cluster merge and the
// catalog "existing wins" merge safe to re-run.
//
// It reports whether any field changed. Derived fields (confidence score,
// review list) are not touched; callers rescore after merging.
func (v *Venue) FillMissingFrom(other *Venue) bool {
	changed := false

	if v.Name == "" && other.Name != "" {
		v.Name = other.Name
		changed = true
	}
	if !v.FieldPresent(FieldVenueType) && other.FieldPresent(FieldVenueType) {
		v.VenueType = other.VenueType
		changed = true
	}

	if !other.Pricing.IsZero() {
		changed = v.fillPricing(&other.Pricing) || changed
	}
	if !other.Capacity.IsZero() {
		changed = v.fillCapacity(&other.Capacity) || changed
	}
	if !other.Location.IsZero() {
		changed = v.fillLocation(&other.Location) || changed
	}
	if !other.Contact.IsZero() {
		changed = v.fillContact(&other.Contact) || changed
	}

	for key, val := range other.Amenities {
		if _, ok := v.Amenities[key]; !ok {
			if v.Amenities == nil {
				v.Amenities = make(map[string]bool)
			}
			v.Amenities[key] = val
			changed = true
		}
	}

	if v.Rating == nil && other.Rating != nil {
		r := *other.Rating
		v.Rating = &r
		changed = true
	}
	if v.ReviewCount == nil && other.ReviewCount != nil {
		n := *other.ReviewCount
		v.ReviewCount = &n
		changed = true
	}
	if v.DataSource == "" && other.DataSource != "" {
		v.DataSource = other.DataSource
		changed = true
	}

	return changed
}

func (v *Venue) fillPricing(other *Pricing) bool {
	changed := false
	if v.Pricing.PricePerTable == nil && other.PricePerTable != nil {
		n := *other.PricePerTable
		v.Pricing.PricePerTable = &n
		changed = true
	}
	if v.Pricing.WeekdayPrice == nil && other.WeekdayPrice != nil {
		n := *other.WeekdayPrice
		v.Pricing.WeekdayPrice = &n
		changed = true
	}
	if v.Pricing.WeekendPrice == nil && other.WeekendPrice != nil {
		n := *other.WeekendPrice
		v.Pricing.WeekendPrice = &n
		changed = true
	}
	if v.Pricing.MinSpend == nil && other.MinSpend != nil {
		n := *other.MinSpend
		v.Pricing.MinSpend = &n
		changed = true
	}
	if !v.FieldPresent(FieldPricingType) && other.PricingType.IsValid() &&
		other.PricingType != PricingTypeUnknown {
		v.Pricing.PricingType = other.PricingType
		changed = true
	}
	return changed
}

func (v *Venue) fillCapacity(other *Capacity) bool {
	changed := false
	if v.Capacity.MaxCapacity == nil && other.MaxCapacity != nil {
		n := *other.MaxCapacity
		v.Capacity.MaxCapacity = &n
		changed = true
	}
	if v.Capacity.MinTables == nil && other.MinTables != nil {
		n := *other.MinTables
		v.Capacity.MinTables = &n
		changed = true
	}
	if v.Capacity.MaxTables == nil && other.MaxTables != nil {
		n := *other.MaxTables
		v.Capacity.MaxTables = &n
		changed = true
	}
	return changed
}

func (v *Venue) fillLocation(other *Location) bool {
	changed := false
	if v.Location.Address == "" && other.Address != "" {
		v.Location.Address = other.Address
		changed = true
	}
	if v.Location.PostalCode == "" && other.PostalCode != "" {
		v.Location.PostalCode = other.PostalCode
		changed = true
	}
	if !v.FieldPresent(FieldZone) && other.Zone.IsValid() && other.Zone != ZoneUnknown {
		v.Location.Zone = other.Zone
		changed = true
	}
	return changed
}

func (v *Venue) fillContact(other *Contact) bool {
	changed := false
	if v.Contact.Phone == "" && other.Phone != "" {
		v.Contact.Phone = other.Phone
		changed = true
	}
	if v.Contact.Email == "" && other.Email != "" {
		v.Contact.Email = other.Email
		changed = true
	}
	if v.Contact.Website == "" && other.Website != "" {
		v.Contact.Website = other.Website
		changed = true
	}
	return changed
}
