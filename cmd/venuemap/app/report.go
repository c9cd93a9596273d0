package app

import (
	"github.com/spf13/cobra"

	"github.com/venuehq/venuemap/pkg/catalog"
)

// NewReportCommand creates the report command: data-quality reporting over
// the stored catalog.
func (a *App) NewReportCommand() *cobra.Command {
	var (
		output     string
		includeAll bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report catalog completeness and data quality",
		Long: `Report computes per-field fill rates, the confidence distribution, and
venue type counts over the catalog's active view. Records marked as
duplicates are excluded unless --all is given.

Examples:
  venuemap report
  venuemap report --catalog data/venues.json --output quality.json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			records, err := a.Store().Load()
			if err != nil {
				return err
			}

			if !includeAll {
				records = catalog.Active(records)
			}
			return writeJSON(output, catalog.Completeness(records))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "report output file (default stdout)")
	cmd.Flags().BoolVar(&includeAll, "all", false, "include records marked as duplicates")

	return cmd
}
