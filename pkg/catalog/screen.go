package catalog

import (
	"context"

	"github.com/venuehq/venuemap/pkg/logging"
	"github.com/venuehq/venuemap/pkg/venues"
)

// Reject is a record turned away at the catalog boundary, paired with the
// constraint violations that disqualified it.
type Reject struct {
	Venue  venues.Venue `json:"venue"`
	Errors []string     `json:"errors"`
}

// Screen partitions records into those admissible to the catalog and those
// violating hard schema constraints. Rejects carry their violations so a run
// can report them; they are never silently dropped.
func Screen(ctx context.Context, records []venues.Venue) (accepted []venues.Venue, rejects []Reject) {
	for _, v := range records {
		errs := v.Validate()
		if len(errs) == 0 {
			accepted = append(accepted, v)
			continue
		}

		messages := make([]string, len(errs))
		for i, err := range errs {
			messages[i] = err.Error()
		}
		logging.Ctx(logging.WithVenue(ctx, v.ID)).Warn().
			Strs("violations", messages).
			Msg("Record rejected at catalog boundary")
		rejects = append(rejects, Reject{Venue: v, Errors: messages})
	}
	return accepted, rejects
}
