package app

import (
	"github.com/spf13/cobra"

	"github.com/venuehq/venuemap/pkg/catalog"
	"github.com/venuehq/venuemap/pkg/pipeline"
	"github.com/venuehq/venuemap/pkg/venues"
)

// NewTransformCommand creates the transform command: normalize, classify,
// and score raw listings without touching the catalog.
func (a *App) NewTransformCommand() *cobra.Command {
	var (
		input        string
		output       string
		validateOnly bool
	)

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Normalize raw venue listings into canonical records",
		Long: `Transform reads raw venue listings from a JSON or CSV file and emits
canonical venue records: text and field normalization, venue type
classification, and confidence scoring. The catalog is not read or written.

Examples:
  venuemap transform --input listings.json
  venuemap transform --input listings.csv --output venues.json
  venuemap transform --input listings.json --validate-only`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raws, err := pipeline.ReadRawRecords(input)
			if err != nil {
				return err
			}

			p, err := a.Pipeline()
			if err != nil {
				return err
			}

			records := p.Transform(cmd.Context(), raws)

			if validateOnly {
				_, rejects := catalog.Screen(cmd.Context(), records)
				return writeJSON(output, struct {
					Total   int              `json:"total"`
					Valid   int              `json:"valid"`
					Rejects []catalog.Reject `json:"rejects,omitempty"`
				}{
					Total:   len(records),
					Valid:   len(records) - len(rejects),
					Rejects: rejects,
				})
			}

			return writeJSON(output, venues.Document{Venues: records})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "raw listings file (JSON or CSV)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&validateOnly, "validate-only", false, "report validation results without emitting records")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
