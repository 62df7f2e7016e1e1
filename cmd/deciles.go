package cmd

import (
	"github.com/spiroflow/vo2peak/core"
	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/internal/dataset"

	"github.com/spf13/cobra"
)

// decilesCmd prints the percentage-of-peak table.
var decilesCmd = &cobra.Command{
	Use:   "deciles <dataset>",
	Short: "Show when each percentage of VO2peak was first reached.",
	Long: `Print the percentage-of-peak table: for each 10% threshold of peak
oxygen uptake, the first sample row whose smoothed VO2 reached it, with the
elapsed time and the actual value at that row.

Thresholds the test never reached are omitted, so a test that ends below
its own plateau may show fewer than ten rows.

Examples:
  # Terminal table
  vo2peak deciles test.xlsx

  # Machine-readable thresholds
  vo2peak deciles test.xlsx --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDeciles(cfg, dataset.NewReader(cfg)); err != nil {
			contract.LogFatal("Cannot run decile analysis", err)
		}
	},
}
