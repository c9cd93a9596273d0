package catalog

import (
	"github.com/venuehq/venuemap/pkg/confidence"
	"github.com/venuehq/venuemap/pkg/venues"
)

// FieldCompleteness reports how well one field is populated across the
// active catalog.
type FieldCompleteness struct {
	Field   string  `json:"field"`
	Present int     `json:"present"`
	Percent float64 `json:"percent"`
}

// CompletenessReport summarizes catalog data quality: per-field fill rates
// over the scored field tiers, plus the confidence distribution.
type CompletenessReport struct {
	Total         int                 `json:"total"`
	AvgConfidence float64             `json:"avg_confidence"`
	NeedsReview   int                 `json:"needs_review"`
	Fields        []FieldCompleteness `json:"fields"`
	TypeCounts    map[string]int      `json:"type_counts"`
}

// Completeness computes the data-quality report over the given records,
// typically the catalog's active view.
func Completeness(records []venues.Venue) CompletenessReport {
	report := CompletenessReport{
		Total:      len(records),
		TypeCounts: make(map[string]int),
	}
	if len(records) == 0 {
		return report
	}

	var confidenceSum float64
	for _, v := range records {
		confidenceSum += v.ConfidenceScore
		report.TypeCounts[v.VenueType.String()]++
		if len(v.NeedsReview) > 0 {
			report.NeedsReview++
		}
	}
	report.AvgConfidence = confidenceSum / float64(len(records))

	for _, field := range confidence.ScoredFields() {
		present := 0
		for i := range records {
			if records[i].FieldPresent(field) {
				present++
			}
		}
		report.Fields = append(report.Fields, FieldCompleteness{
			Field:   field,
			Present: present,
			Percent: float64(present) / float64(len(records)) * 100,
		})
	}
	return report
}
