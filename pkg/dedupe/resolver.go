package dedupe

import (
	"context"
	"sort"

	"github.com/sourcegraph/conc/iter"

	"github.com/venuehq/venuemap/pkg/logging"
	"github.com/venuehq/venuemap/pkg/venues"
)

// DefaultThreshold is the similarity score at or above which a pair is
// considered a match.
const DefaultThreshold = 0.75

// Edge is a match decision between two records, identified by their indices
// into the resolved slice.
type Edge struct {
	I, J    int
	Score   float64
	Reasons []string
}

// Resolver finds duplicate clusters in a batch of venue records.
type Resolver struct {
	threshold float64
	workers   int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithThreshold overrides the match threshold.
func WithThreshold(t float64) Option {
	return func(r *Resolver) {
		if t > 0 && t <= 1 {
			r.threshold = t
		}
	}
}

// WithWorkers caps the number of concurrent pair comparisons.
func WithWorkers(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.workers = n
		}
	}
}

// New creates a Resolver with the default threshold.
func New(opts ...Option) *Resolver {
	r := &Resolver{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Threshold returns the configured match threshold.
func (r *Resolver) Threshold() float64 {
	return r.threshold
}

// FindEdges blocks the records and scores every within-block candidate
// pair, returning the edges at or above the threshold. Pair comparisons are
// independent and run concurrently; the result order is deterministic.
func (r *Resolver) FindEdges(ctx context.Context, records []venues.Venue) []Edge {
	log := logging.Ctx(ctx)

	blocks := Blocks(records)
	pairs := CandidatePairs(blocks)

	log.Debug().
		Int("blocks", len(blocks)).
		Int("candidate_pairs", len(pairs)).
		Msg("Blocking complete")

	mapper := iter.Mapper[[2]int, Edge]{MaxGoroutines: r.workers}
	scored := mapper.Map(pairs, func(pair *[2]int) Edge {
		score, reasons := Similarity(&records[pair[0]], &records[pair[1]])
		return Edge{I: pair[0], J: pair[1], Score: score, Reasons: reasons}
	})

	var edges []Edge
	for _, edge := range scored {
		if edge.Score >= r.threshold {
			edges = append(edges, edge)
		}
	}

	log.Info().
		Int("comparisons", len(pairs)).
		Int("matches", len(edges)).
		Float64("threshold", r.threshold).
		Msg("Pairwise comparison complete")

	return edges
}

// Clusters closes the match edges transitively: if A matches B and B
// matches C, then A, B, and C form one cluster even when A and C score
// below the threshold. Returned clusters have at least two members and are
// sorted for determinism.
func Clusters(edges []Edge, n int) [][]int {
	uf := newUnionFind(n)
	for _, edge := range edges {
		uf.union(edge.I, edge.J)
	}

	members := make(map[int][]int)
	for i := 0; i < n; i++ {
		root := uf.find(i)
		members[root] = append(members[root], i)
	}

	var clusters [][]int
	for _, cluster := range members {
		if len(cluster) > 1 {
			sort.Ints(cluster)
			clusters = append(clusters, cluster)
		}
	}
	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i][0] < clusters[j][0]
	})

	return clusters
}
