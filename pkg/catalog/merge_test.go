package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuehq/venuemap/pkg/confidence"
	"github.com/venuehq/venuemap/pkg/venues"
)

func intPtr(n int) *int { return &n }

func TestMerge(t *testing.T) {
	t.Run("new ids are appended", func(t *testing.T) {
		existing := []venues.Venue{{ID: "venue-a", Name: "Alpha"}}
		incoming := []venues.Venue{{ID: "venue-b", Name: "Beta"}}

		merged, result := Merge(existing, incoming)
		assert.Equal(t, 1, result.Added)
		assert.Len(t, merged, 2)
	})

	t.Run("existing wins on populated fields", func(t *testing.T) {
		existing := []venues.Venue{{
			ID:      "venue-a",
			Name:    "Alpha",
			Pricing: venues.Pricing{PricePerTable: intPtr(1500)},
		}}
		incoming := []venues.Venue{{
			ID:      "venue-a",
			Name:    "Alpha Renamed",
			Pricing: venues.Pricing{PricePerTable: intPtr(1800)},
			Contact: venues.Contact{Phone: "+65 6339 7777"},
		}}

		merged, result := Merge(existing, incoming)
		require.Len(t, merged, 1)
		assert.Equal(t, 1, result.Enriched)

		assert.Equal(t, "Alpha", merged[0].Name)
		assert.Equal(t, 1500, *merged[0].Pricing.PricePerTable)
		// The gap was filled from the incoming record.
		assert.Equal(t, "+65 6339 7777", merged[0].Contact.Phone)
	})

	t.Run("enrichment rescores the record", func(t *testing.T) {
		existing := []venues.Venue{{ID: "venue-a", Name: "Alpha"}}
		confidence.Apply(&existing[0])
		before := existing[0].ConfidenceScore

		incoming := []venues.Venue{{
			ID:        "venue-a",
			Name:      "Alpha",
			VenueType: venues.VenueTypeHotel,
			Pricing: venues.Pricing{
				PricePerTable: intPtr(1500),
				PricingType:   venues.PricingTypeAllInclusive,
			},
			Contact: venues.Contact{Phone: "+65 6339 7777", Email: "events@alpha.sg"},
		}}

		merged, result := Merge(existing, incoming)
		require.Len(t, merged, 1)
		assert.Equal(t, 1, result.Enriched)

		// The stored score must reflect the post-merge field state, not the
		// snapshot taken before the gaps were filled.
		assert.Greater(t, merged[0].ConfidenceScore, before)
		assert.Equal(t, confidence.Score(&merged[0]), merged[0].ConfidenceScore)
		assert.NotContains(t, merged[0].NeedsReview, venues.FieldPhone)
	})

	t.Run("identical incoming counts unchanged", func(t *testing.T) {
		existing := []venues.Venue{{ID: "venue-a", Name: "Alpha"}}
		incoming := []venues.Venue{{ID: "venue-a", Name: "Alpha"}}

		_, result := Merge(existing, incoming)
		assert.Equal(t, 1, result.Unchanged)
		assert.Zero(t, result.Added)
		assert.Zero(t, result.Enriched)
	})

	t.Run("postal disagreement is a conflict", func(t *testing.T) {
		existing := []venues.Venue{{
			ID:       "venue-a",
			Name:     "Alpha",
			Location: venues.Location{PostalCode: "189560"},
		}}
		incoming := []venues.Venue{{
			ID:       "venue-a",
			Name:     "Alpha",
			Location: venues.Location{PostalCode: "098297"},
			Contact:  venues.Contact{Phone: "+65 6339 7777"},
		}}

		merged, result := Merge(existing, incoming)
		require.Len(t, result.Conflicts, 1)

		conflict := result.Conflicts[0]
		assert.Equal(t, "venue-a", conflict.ID)
		assert.Equal(t, venues.FieldPostalCode, conflict.Field)
		assert.Equal(t, "189560", conflict.Existing)
		assert.Equal(t, "098297", conflict.Incoming)

		// The existing record is untouched; the conflict is not auto-resolved.
		assert.Equal(t, "189560", merged[0].Location.PostalCode)
		assert.Empty(t, merged[0].Contact.Phone)
	})

	t.Run("missing postal on either side is not a conflict", func(t *testing.T) {
		existing := []venues.Venue{{ID: "venue-a", Name: "Alpha"}}
		incoming := []venues.Venue{{
			ID:       "venue-a",
			Name:     "Alpha",
			Location: venues.Location{PostalCode: "098297"},
		}}

		merged, result := Merge(existing, incoming)
		assert.Empty(t, result.Conflicts)
		assert.Equal(t, "098297", merged[0].Location.PostalCode)
	})

	t.Run("output sorted by id", func(t *testing.T) {
		existing := []venues.Venue{{ID: "venue-c"}, {ID: "venue-a"}}
		incoming := []venues.Venue{{ID: "venue-b"}}

		merged, _ := Merge(existing, incoming)
		require.Len(t, merged, 3)
		assert.Equal(t, "venue-a", merged[0].ID)
		assert.Equal(t, "venue-b", merged[1].ID)
		assert.Equal(t, "venue-c", merged[2].ID)
	})

	t.Run("input slices are not mutated", func(t *testing.T) {
		existing := []venues.Venue{{ID: "venue-a", Name: "Alpha"}}
		incoming := []venues.Venue{{ID: "venue-a", Contact: venues.Contact{Phone: "+65 6339 7777"}}}

		_, _ = Merge(existing, incoming)
		assert.Empty(t, existing[0].Contact.Phone)
	})
}
