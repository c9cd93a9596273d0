package app

import (
	"github.com/spf13/cobra"

	"github.com/venuehq/venuemap/pkg/catalog"
)

// NewLoadCommand creates the load command: merge canonical records into the
// catalog file.
func (a *App) NewLoadCommand() *cobra.Command {
	var (
		input        string
		output       string
		validateOnly bool
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Merge canonical venue records into the catalog",
		Long: `Load screens canonical venue records against hard schema constraints and
merges the admissible ones into the catalog file. Existing catalog records
win conflicts: an incoming duplicate only fills fields the catalog record is
missing. The catalog file is snapshotted before being replaced atomically.

Examples:
  venuemap load --input resolved.json
  venuemap load --input resolved.json --catalog data/venues.json
  venuemap load --input resolved.json --validate-only`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := readVenueDocument(input)
			if err != nil {
				return err
			}

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

			p, err := a.Pipeline()
			if err != nil {
				return err
			}

			result, err := p.Load(cmd.Context(), records)
			if err != nil {
				return err
			}
			return writeJSON(output, result)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "canonical venue records file (JSON)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "result output file (default stdout)")
	cmd.Flags().BoolVar(&validateOnly, "validate-only", false, "screen records without writing the catalog")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
