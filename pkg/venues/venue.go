// Package venues defines the canonical venue record and its typed sub-fields.
// All enum fields fail closed: unknown values are rejected at parse time
// rather than silently coerced.
package venues

import (
	"github.com/agentstation/utc"
)

// Venue represents a canonical venue record.
type Venue struct {
	// Core identity
	ID        string    `json:"id"`                   // Stable identifier, assigned once, never reused
	Name      string    `json:"name"`                 // Display name, normalized
	VenueType VenueType `json:"venue_type,omitempty"` // Closed enum, unknown when ambiguous

	// Typed sub-fields
	Pricing  Pricing  `json:"pricing"`
	Capacity Capacity `json:"capacity"`
	Location Location `json:"location"`
	Contact  Contact  `json:"contact"`

	// Amenities are open-ended boolean flags validated against a known key set.
	Amenities map[string]bool `json:"amenities,omitempty"`

	// Review signals
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"review_count,omitempty"`

	// DataSource records the adapter that produced the raw record.
	DataSource string `json:"data_source,omitempty"`

	// Derived fields. ConfidenceScore is always recomputed from current field
	// state and never set directly by a producer.
	ConfidenceScore float64  `json:"confidence_score"`
	NeedsReview     []string `json:"needs_review,omitempty"`

	// DuplicateOf is a lookup back-reference set only by the canonicalizer.
	// A record with DuplicateOf set is excluded from the active view but
	// retained for audit.
	DuplicateOf string `json:"duplicate_of,omitempty"`

	// LastUpdated is bumped on every mutation.
	LastUpdated utc.Time `json:"last_updated"`
}

// Active reports whether the venue belongs to the catalog's active view.
func (v *Venue) Active() bool {
	return v.DuplicateOf == ""
}

// Touch updates the LastUpdated timestamp.
func (v *Venue) Touch() {
	v.LastUpdated = utc.Now()
}

// Document is the JSON envelope persisted by the catalog store.
type Document struct {
	Venues []Venue `json:"venues"`
}
