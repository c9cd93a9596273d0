package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuehq/venuemap/pkg/venues"
)

func TestScreen(t *testing.T) {
	price := 99999
	records := []venues.Venue{
		{ID: "venue-a", Name: "Alpha"},
		{ID: "venue-b", Name: "Beta", Pricing: venues.Pricing{PricePerTable: &price}},
		{ID: "", Name: ""},
	}

	accepted, rejects := Screen(context.Background(), records)

	require.Len(t, accepted, 1)
	assert.Equal(t, "venue-a", accepted[0].ID)

	require.Len(t, rejects, 2)
	assert.Equal(t, "venue-b", rejects[0].Venue.ID)
	require.Len(t, rejects[0].Errors, 1)
	assert.Contains(t, rejects[0].Errors[0], "price per table")

	// The empty record carries both missing-field violations.
	assert.Len(t, rejects[1].Errors, 2)
}

func TestScreenAllValid(t *testing.T) {
	records := []venues.Venue{{ID: "venue-a", Name: "Alpha"}}

	accepted, rejects := Screen(context.Background(), records)
	assert.Len(t, accepted, 1)
	assert.Empty(t, rejects)
}

func TestScreenEmpty(t *testing.T) {
	accepted, rejects := Screen(context.Background(), nil)
	assert.Empty(t, accepted)
	assert.Empty(t, rejects)
}
