package app

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/venuehq/venuemap/pkg/errors"
	"github.com/venuehq/venuemap/pkg/venues"
)

// NewDedupeCommand creates the dedupe command: resolve duplicates within a
// file of canonical records.
func (a *App) NewDedupeCommand() *cobra.Command {
	var (
		input      string
		output     string
		reportPath string
		threshold  float64
	)

	cmd := &cobra.Command{
		Use:   "dedupe",
		Short: "Resolve duplicate venue records within a batch",
		Long: `Dedupe blocks canonical venue records by postal code and phonetic name,
scores candidate pairs on weighted name, address, phone, website, and postal
similarity, and collapses clusters at or above the threshold into one
survivor record each. Duplicates are marked, not deleted.

Examples:
  venuemap dedupe --input venues.json --output resolved.json
  venuemap dedupe --input venues.json --threshold 0.8 --report dupes.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if threshold > 0 {
				a.config.Threshold = threshold
			}

			records, err := readVenueDocument(input)
			if err != nil {
				return err
			}

			p, err := a.Pipeline()
			if err != nil {
				return err
			}

			report := p.Resolve(cmd.Context(), records)

			if reportPath != "" {
				if err := writeJSON(reportPath, report); err != nil {
					return err
				}
			}
			return writeJSON(output, venues.Document{Venues: records})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "canonical venue records file (JSON)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&reportPath, "report", "", "write the duplicate report to this file")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "similarity match threshold in (0, 1]")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// readVenueDocument loads canonical venue records from a JSON document.
func readVenueDocument(path string) ([]venues.Venue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var doc venues.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return doc.Venues, nil
}
