package dedupe

import (
	"sort"

	"github.com/venuehq/venuemap/pkg/confidence"
	"github.com/venuehq/venuemap/pkg/venues"
)

// DuplicateGroup reports one resolved cluster: the surviving record and the
// records marked as its duplicates.
type DuplicateGroup struct {
	Kept       string   `json:"kept"`
	Removed    []string `json:"removed"`
	Similarity float64  `json:"similarity"`
	Reasons    []string `json:"reasons,omitempty"`
}

// Report is the duplicate report envelope written alongside the catalog.
type Report struct {
	Threshold  float64          `json:"threshold"`
	Duplicates []DuplicateGroup `json:"duplicates"`
}

// Canonicalize collapses each match cluster into one survivor record,
// merging missing fields from the duplicates and marking them with a
// back-reference to the survivor. Records are mutated in place; duplicates
// are retained for audit, not deleted.
//
// Survivor selection is deterministic: highest confidence score, ties
// broken by most recent update, then by lowest id.
func Canonicalize(records []venues.Venue, edges []Edge) []DuplicateGroup {
	clusters := Clusters(edges, len(records))

	var groups []DuplicateGroup
	for _, cluster := range clusters {
		groups = append(groups, canonicalizeCluster(records, cluster, edges))
	}
	return groups
}

// canonicalizeCluster merges one cluster and returns its report entry.
func canonicalizeCluster(records []venues.Venue, cluster []int, edges []Edge) DuplicateGroup {
	ordered := make([]int, len(cluster))
	copy(ordered, cluster)
	sort.SliceStable(ordered, func(a, b int) bool {
		return moreAuthoritative(&records[ordered[a]], &records[ordered[b]])
	})

	survivorIdx := ordered[0]
	survivor := &records[survivorIdx]

	group := DuplicateGroup{
		Kept:       survivor.ID,
		Similarity: clusterSimilarity(cluster, edges),
	}

	// Fill survivor gaps from duplicates in descending authority order, so a
	// non-empty survivor field is never overwritten and gaps are filled from
	// the most trusted member that has a value.
	for _, idx := range ordered[1:] {
		dup := &records[idx]
		survivor.FillMissingFrom(dup)

		dup.DuplicateOf = survivor.ID
		dup.Touch()
		group.Removed = append(group.Removed, dup.ID)
	}

	reasons := make(map[string]bool)
	for _, edge := range edges {
		if inCluster(cluster, edge.I) && inCluster(cluster, edge.J) {
			for _, reason := range edge.Reasons {
				reasons[reason] = true
			}
		}
	}
	for reason := range reasons {
		group.Reasons = append(group.Reasons, reason)
	}
	sort.Strings(group.Reasons)

	confidence.Apply(survivor)
	survivor.Touch()

	return group
}

// moreAuthoritative orders records for survivor selection: highest
// confidence first, then most recently updated, then lowest id.
func moreAuthoritative(a, b *venues.Venue) bool {
	if a.ConfidenceScore != b.ConfidenceScore {
		return a.ConfidenceScore > b.ConfidenceScore
	}
	if !a.LastUpdated.Equal(b.LastUpdated) {
		return a.LastUpdated.After(b.LastUpdated)
	}
	return a.ID < b.ID
}

// clusterSimilarity averages the scores of the match edges inside a
// cluster.
func clusterSimilarity(cluster []int, edges []Edge) float64 {
	var sum float64
	count := 0
	for _, edge := range edges {
		if inCluster(cluster, edge.I) && inCluster(cluster, edge.J) {
			sum += edge.Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// inCluster reports whether idx is a member of the sorted cluster.
func inCluster(cluster []int, idx int) bool {
	i := sort.SearchInts(cluster, idx)
	return i < len(cluster) && cluster[i] == idx
}
