package dedupe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuehq/venuemap/pkg/venues"
)

func fairmontPair() []venues.Venue {
	return []venues.Venue{
		{
			ID:   "venue-fairmont-singapore",
			Name: "Fairmont Singapore",
			Location: venues.Location{
				Address:    "80 Bras Basah Road",
				PostalCode: "189560",
			},
			Contact: venues.Contact{Phone: "+65 6339 7777"},
		},
		{
			ID:   "venue-the-fairmont-hotel",
			Name: "The Fairmont Hotel",
			Location: venues.Location{
				Address:    "80 Bras Basah Rd",
				PostalCode: "189560",
			},
			Contact: venues.Contact{Phone: "6339 7777"},
		},
	}
}

func TestResolverOptions(t *testing.T) {
	r := New()
	assert.Equal(t, DefaultThreshold, r.Threshold())

	r = New(WithThreshold(0.9))
	assert.Equal(t, 0.9, r.Threshold())

	// Out-of-range thresholds are ignored.
	r = New(WithThreshold(1.5))
	assert.Equal(t, DefaultThreshold, r.Threshold())
	r = New(WithThreshold(0))
	assert.Equal(t, DefaultThreshold, r.Threshold())
}

func TestFindEdges(t *testing.T) {
	t.Run("matching pair produces an edge", func(t *testing.T) {
		records := fairmontPair()

		edges := New().FindEdges(context.Background(), records)
		require.Len(t, edges, 1)
		assert.Equal(t, 0, edges[0].I)
		assert.Equal(t, 1, edges[0].J)
		assert.GreaterOrEqual(t, edges[0].Score, DefaultThreshold)
		assert.NotEmpty(t, edges[0].Reasons)
	})

	t.Run("distinct venues produce no edges", func(t *testing.T) {
		records := []venues.Venue{
			{ID: "venue-a", Name: "Capella Singapore", Location: venues.Location{PostalCode: "098297"}},
			{ID: "venue-b", Name: "Fullerton Bay", Location: venues.Location{PostalCode: "049326"}},
		}

		edges := New().FindEdges(context.Background(), records)
		assert.Empty(t, edges)
	})

	t.Run("raising the threshold prunes edges", func(t *testing.T) {
		records := fairmontPair()
		// The pair scores below a maximally strict threshold once any
		// sub-signal disagrees.
		records[1].Contact.Phone = "+65 6339 0000"

		loose := New(WithThreshold(0.6)).FindEdges(context.Background(), records)
		strict := New(WithThreshold(0.99)).FindEdges(context.Background(), records)
		require.Len(t, loose, 1)
		assert.Empty(t, strict)
	})

	t.Run("worker cap does not change results", func(t *testing.T) {
		records := fairmontPair()

		serial := New(WithWorkers(1)).FindEdges(context.Background(), records)
		parallel := New(WithWorkers(8)).FindEdges(context.Background(), records)
		assert.Equal(t, serial, parallel)
	})
}

func TestClusters(t *testing.T) {
	t.Run("transitive closure", func(t *testing.T) {
		// A-B and B-C matched; A-C did not. All three must cluster.
		edges := []Edge{
			{I: 0, J: 1, Score: 0.9},
			{I: 1, J: 2, Score: 0.8},
		}

		clusters := Clusters(edges, 4)
		require.Len(t, clusters, 1)
		assert.Equal(t, []int{0, 1, 2}, clusters[0])
	})

	t.Run("independent clusters kept apart", func(t *testing.T) {
		edges := []Edge{
			{I: 0, J: 1, Score: 0.9},
			{I: 2, J: 3, Score: 0.8},
		}

		clusters := Clusters(edges, 5)
		require.Len(t, clusters, 2)
		assert.Equal(t, []int{0, 1}, clusters[0])
		assert.Equal(t, []int{2, 3}, clusters[1])
	})

	t.Run("no edges means no clusters", func(t *testing.T) {
		assert.Empty(t, Clusters(nil, 10))
	})
}
