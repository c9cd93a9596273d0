package venues

import "sort"

// knownAmenities is the set of amenity keys the pipeline accepts. Keys are
// open-ended at the source but validated against this set; unknown keys are
// dropped and flagged for review rather than stored.
var knownAmenities = map[string]bool{
	"bridal_suite":        true,
	"in_house_catering":   true,
	"outside_catering":    true,
	"halal_certified":     true,
	"parking":             true,
	"av_system":           true,
	"dance_floor":         true,
	"stage":               true,
	"alcohol_license":     true,
	"wheelchair_access":   true,
	"outdoor_space":       true,
	"accommodation_block": true,
}

// KnownAmenity reports whether key is an accepted amenity flag.
func KnownAmenity(key string) bool {
	return knownAmenities[key]
}

// FilterAmenities splits an amenity map into accepted flags and the list of
// rejected unknown keys.
func FilterAmenities(raw map[string]bool) (map[string]bool, []string) {
	if len(raw) == 0 {
		return nil, nil
	}

	var accepted map[string]bool
	var rejected []string
	for key, val := range raw {
		if KnownAmenity(key) {
			if accepted == nil {
				accepted = make(map[string]bool)
			}
			accepted[key] = val
		} else {
			rejected = append(rejected, key)
		}
	}
	sort.Strings(rejected)
	return accepted, rejected
}
