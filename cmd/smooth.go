package cmd

import (
	"github.com/spiroflow/vo2peak/core"
	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/internal/dataset"

	"github.com/spf13/cobra"
)

// smoothCmd prints the smoothed sample table.
var smoothCmd = &cobra.Command{
	Use:   "smooth <dataset>",
	Short: "Show the smoothed and derived sample table.",
	Long: `Normalize the dataset and print every sample row with the smoothed
and derived columns appended: the trailing-window mean of each gas-exchange
channel, oxygen uptake per kilogram and the respiratory exchange ratio.

Rows inside the warm-up of the window, and rows next to recording gaps,
have no smoothed value and render as N/A.

Examples:
  # Inspect the first 25 smoothed rows
  vo2peak smooth test.xlsx

  # Dump every row to CSV for plotting
  vo2peak smooth test.xlsx --limit 0 --output csv --output-file smoothed.csv

  # Columnar parquet for downstream analytics
  vo2peak smooth test.xlsx --output parquet --output-file smoothed.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSmooth(cfg, dataset.NewReader(cfg)); err != nil {
			contract.LogFatal("Cannot run smoothing", err)
		}
	},
}
