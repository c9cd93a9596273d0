package catalog

import (
	"sort"

	"github.com/venuehq/venuemap/pkg/confidence"
	"github.com/venuehq/venuemap/pkg/errors"
	"github.com/venuehq/venuemap/pkg/venues"
)

// MergeResult summarizes an incremental merge into the catalog.
type MergeResult struct {
	Added     int `json:"added"`
	Enriched  int `json:"enriched"`
	Unchanged int `json:"unchanged"`

	// Conflicts are incoming records whose values disagree with the catalog
	// on identity-bearing fields. The catalog value is kept; conflicts are
	// surfaced for manual review, never auto-resolved.
	Conflicts []*errors.MergeConflictError `json:"conflicts,omitempty"`
}

// Merge folds incoming records into the existing catalog by id. Existing
// records win: an incoming duplicate may only fill fields the catalog record
// is missing, never overwrite a populated one. New ids are appended.
//
// When both sides carry a postal code and they disagree, the records likely
// describe different venues sharing an id; the merge keeps the existing
// record untouched and reports a conflict instead.
func Merge(existing, incoming []venues.Venue) ([]venues.Venue, MergeResult) {
	merged := make([]venues.Venue, len(existing))
	copy(merged, existing)

	index := make(map[string]int, len(merged))
	for i, v := range merged {
		index[v.ID] = i
	}

	var result MergeResult
	for _, in := range incoming {
		i, ok := index[in.ID]
		if !ok {
			index[in.ID] = len(merged)
			merged = append(merged, in)
			result.Added++
			continue
		}

		current := &merged[i]
		if conflict := identityConflict(current, &in); conflict != nil {
			result.Conflicts = append(result.Conflicts, conflict)
			continue
		}

		if current.FillMissingFrom(&in) {
			// The field state changed, so the stored score and review list
			// are stale; recompute both before the record is persisted.
			confidence.Apply(current)
			current.Touch()
			result.Enriched++
		} else {
			result.Unchanged++
		}
	}

	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].ID < merged[b].ID
	})
	return merged, result
}

// identityConflict reports a disagreement on an identity-bearing field
// between a catalog record and an incoming record with the same id.
func identityConflict(existing, incoming *venues.Venue) *errors.MergeConflictError {
	ep := existing.Location.PostalCode
	ip := incoming.Location.PostalCode
	if ep != "" && ip != "" && ep != ip {
		return errors.NewMergeConflictError(existing.ID, venues.FieldPostalCode, ep, ip)
	}
	return nil
}
