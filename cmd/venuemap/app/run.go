package app

import (
	"github.com/spf13/cobra"

	"github.com/venuehq/venuemap/pkg/logging"
	"github.com/venuehq/venuemap/pkg/pipeline"
)

// NewRunCommand creates the run command: the full pipeline end to end.
func (a *App) NewRunCommand() *cobra.Command {
	var (
		input      string
		output     string
		reportPath string
		threshold  float64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline: transform, dedupe, load",
		Long: `Run executes the full pipeline over a raw listings file: transform into
canonical records, resolve duplicates within the batch, and merge into the
catalog. The run summary reports parse, duplicate, conflict, and rejection
counts plus the confidence distribution.

Examples:
  venuemap run --input listings.json
  venuemap run --input listings.csv --threshold 0.8 --report dupes.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if threshold > 0 {
				a.config.Threshold = threshold
			}

			raws, err := pipeline.ReadRawRecords(input)
			if err != nil {
				return err
			}

			p, err := a.Pipeline()
			if err != nil {
				return err
			}

			ctx := logging.WithSource(cmd.Context(), input)
			summary, err := p.Run(ctx, raws)
			if err != nil {
				return err
			}

			if reportPath != "" {
				if err := writeJSON(reportPath, summary.DuplicateReport); err != nil {
					return err
				}
			}
			return writeJSON(output, summary)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "raw listings file (JSON or CSV)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "summary output file (default stdout)")
	cmd.Flags().StringVar(&reportPath, "report", "", "write the duplicate report to this file")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "similarity match threshold in (0, 1]")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
