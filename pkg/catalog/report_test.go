package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuehq/venuemap/pkg/venues"
)

func TestCompleteness(t *testing.T) {
	records := []venues.Venue{
		{
			ID:              "venue-a",
			Name:            "Alpha",
			VenueType:       venues.VenueTypeHotel,
			ConfidenceScore: 0.8,
		},
		{
			ID:              "venue-b",
			Name:            "Beta",
			VenueType:       venues.VenueTypeHotel,
			ConfidenceScore: 0.6,
			NeedsReview:     []string{venues.FieldPhone},
		},
		{
			ID:              "venue-c",
			Name:            "Gamma",
			VenueType:       venues.VenueTypeClub,
			ConfidenceScore: 0.4,
			Contact:         venues.Contact{Phone: "+65 6339 7777"},
		},
	}

	report := Completeness(records)

	assert.Equal(t, 3, report.Total)
	assert.InDelta(t, 0.6, report.AvgConfidence, 1e-9)
	assert.Equal(t, 1, report.NeedsReview)
	assert.Equal(t, map[string]int{"hotel": 2, "club": 1}, report.TypeCounts)

	byField := make(map[string]FieldCompleteness)
	for _, fc := range report.Fields {
		byField[fc.Field] = fc
	}

	name := byField[venues.FieldName]
	assert.Equal(t, 3, name.Present)
	assert.InDelta(t, 100.0, name.Percent, 1e-9)

	phone := byField[venues.FieldPhone]
	assert.Equal(t, 1, phone.Present)
	assert.InDelta(t, 100.0/3, phone.Percent, 1e-9)

	price := byField[venues.FieldPricePerTable]
	assert.Zero(t, price.Present)
}

func TestCompletenessEmpty(t *testing.T) {
	report := Completeness(nil)
	assert.Zero(t, report.Total)
	assert.Zero(t, report.AvgConfidence)
	assert.Empty(t, report.Fields)
	require.NotNil(t, report.TypeCounts)
	assert.Empty(t, report.TypeCounts)
}
