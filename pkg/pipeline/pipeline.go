// Package pipeline orchestrates the venue ETL stages: transform raw source
// records into canonical venues, resolve duplicates within the batch, and
// load the result into the catalog. Each stage is also callable on its own
// for partial runs.
package pipeline

import (
	"context"

	"github.com/sourcegraph/conc/iter"

	"github.com/venuehq/venuemap/pkg/catalog"
	"github.com/venuehq/venuemap/pkg/classify"
	"github.com/venuehq/venuemap/pkg/confidence"
	"github.com/venuehq/venuemap/pkg/dedupe"
	"github.com/venuehq/venuemap/pkg/logging"
	"github.com/venuehq/venuemap/pkg/normalize"
	"github.com/venuehq/venuemap/pkg/venues"
)

// Pipeline wires the ETL stages together over a shared configuration.
type Pipeline struct {
	normalizer *normalize.Normalizer
	classifier *classify.Classifier
	resolver   *dedupe.Resolver
	store      *catalog.Store
	workers    int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithNormalizer replaces the default normalizer.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(p *Pipeline) {
		if n != nil {
			p.normalizer = n
		}
	}
}

// WithClassifier replaces the default classifier.
func WithClassifier(c *classify.Classifier) Option {
	return func(p *Pipeline) {
		if c != nil {
			p.classifier = c
		}
	}
}

// WithResolver replaces the default duplicate resolver.
func WithResolver(r *dedupe.Resolver) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.resolver = r
		}
	}
}

// WithStore sets the catalog store. Without one, Load and Run refuse to
// persist.
func WithStore(s *catalog.Store) Option {
	return func(p *Pipeline) {
		p.store = s
	}
}

// WithWorkers caps transform-stage concurrency.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// New creates a Pipeline with default stage components.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		normalizer: normalize.New(),
		classifier: classify.New(),
		resolver:   dedupe.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Transform converts raw source records into canonical venue records:
// normalization, type classification, then confidence scoring. Records are
// independent, so the stage fans out across workers; output order matches
// input order.
func (p *Pipeline) Transform(ctx context.Context, raws []normalize.RawRecord) []venues.Venue {
	ctx = logging.WithStage(ctx, "transform")
	log := logging.Ctx(ctx)

	mapper := iter.Mapper[normalize.RawRecord, venues.Venue]{MaxGoroutines: p.workers}
	records := mapper.Map(raws, func(raw *normalize.RawRecord) venues.Venue {
		venue := p.normalizer.Record(*raw)
		p.classifier.Apply(&venue)
		confidence.Apply(&venue)
		return venue
	})

	log.Info().
		Int("records", len(records)).
		Msg("Transform stage complete")
	return records
}

// Resolve finds and collapses duplicates within a batch, mutating the
// records in place. It returns the duplicate report for the run.
func (p *Pipeline) Resolve(ctx context.Context, records []venues.Venue) dedupe.Report {
	ctx = logging.WithStage(ctx, "resolve")
	edges := p.resolver.FindEdges(ctx, records)
	groups := dedupe.Canonicalize(records, edges)

	logging.Ctx(ctx).Info().
		Int("clusters", len(groups)).
		Msg("Resolve stage complete")

	return dedupe.Report{
		Threshold:  p.resolver.Threshold(),
		Duplicates: groups,
	}
}

// LoadResult reports the outcome of a catalog load.
type LoadResult struct {
	Merge   catalog.MergeResult `json:"merge"`
	Rejects []catalog.Reject    `json:"rejects,omitempty"`
}

// Load screens records against hard schema constraints and merges the
// admissible ones into the stored catalog. The write is read-merge-replace:
// existing catalog records win conflicts, and the file is replaced
// atomically after a backup snapshot.
func (p *Pipeline) Load(ctx context.Context, records []venues.Venue) (LoadResult, error) {
	ctx = logging.WithStage(ctx, "load")
	log := logging.Ctx(ctx)

	accepted, rejects := catalog.Screen(ctx, records)
	result := LoadResult{Rejects: rejects}

	if p.store == nil {
		log.Warn().Msg("No catalog store configured; skipping persist")
		return result, nil
	}

	existing, err := p.store.Load()
	if err != nil {
		return result, err
	}

	merged, mergeResult := catalog.Merge(existing, accepted)
	result.Merge = mergeResult

	if err := p.store.Write(merged); err != nil {
		return result, err
	}

	log.Info().
		Int("added", mergeResult.Added).
		Int("enriched", mergeResult.Enriched).
		Int("conflicts", len(mergeResult.Conflicts)).
		Int("rejected", len(rejects)).
		Str("catalog", p.store.Path()).
		Msg("Load stage complete")
	return result, nil
}

// Summary aggregates the outcome of a full pipeline run.
type Summary struct {
	Parsed        int            `json:"parsed"`
	Flagged       int            `json:"flagged"`
	Duplicates    int            `json:"duplicates"`
	Rejected      int            `json:"rejected"`
	Added         int            `json:"added"`
	Enriched      int            `json:"enriched"`
	Conflicts     int            `json:"conflicts"`
	AvgConfidence float64        `json:"avg_confidence"`
	TypeCounts    map[string]int `json:"type_counts"`

	DuplicateReport dedupe.Report    `json:"duplicate_report"`
	Rejects         []catalog.Reject `json:"rejects,omitempty"`
	Venues          []venues.Venue   `json:"-"`
}

// Run executes the full pipeline: transform, resolve, load.
func (p *Pipeline) Run(ctx context.Context, raws []normalize.RawRecord) (*Summary, error) {
	records := p.Transform(ctx, raws)
	report := p.Resolve(ctx, records)

	loadResult, err := p.Load(ctx, records)
	if err != nil {
		return nil, err
	}

	summary := summarize(records, report, loadResult)
	logging.Ctx(ctx).Info().
		Int("parsed", summary.Parsed).
		Int("duplicates", summary.Duplicates).
		Int("rejected", summary.Rejected).
		Float64("avg_confidence", summary.AvgConfidence).
		Msg("Pipeline run complete")
	return summary, nil
}

// summarize computes run statistics over the resolved batch.
func summarize(records []venues.Venue, report dedupe.Report, loadResult LoadResult) *Summary {
	summary := &Summary{
		Parsed:          len(records),
		Rejected:        len(loadResult.Rejects),
		Added:           loadResult.Merge.Added,
		Enriched:        loadResult.Merge.Enriched,
		Conflicts:       len(loadResult.Merge.Conflicts),
		TypeCounts:      make(map[string]int),
		DuplicateReport: report,
		Rejects:         loadResult.Rejects,
		Venues:          records,
	}

	var confidenceSum float64
	active := 0
	for _, v := range records {
		if !v.Active() {
			summary.Duplicates++
			continue
		}
		active++
		confidenceSum += v.ConfidenceScore
		summary.TypeCounts[v.VenueType.String()]++
		if len(v.NeedsReview) > 0 {
			summary.Flagged++
		}
	}
	if active > 0 {
		summary.AvgConfidence = confidenceSum / float64(active)
	}
	return summary
}
