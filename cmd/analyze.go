package cmd

import (
	"github.com/spiroflow/vo2peak/core"
	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/internal/dataset"

	"github.com/spf13/cobra"
)

// analyzeCmd runs the full analysis and prints the metrics summary.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <dataset>",
	Short: "Determine VO2peak and the plateau verdict for one test.",
	Long: `Run the full analysis on one exported test: normalize column labels,
smooth the gas-exchange channels over a trailing window, then report:

- Peak oxygen uptake, absolute and per kilogram of body mass
- Whether a terminal VO2 plateau was reached
- Maximum minute ventilation and heart rate
- Terminal respiratory exchange ratio and the effort classification
- The percentage-of-peak table showing when each decile was first reached

Examples:
  # Analyze a MetaLyzer export with default smoothing
  vo2peak analyze test.xlsx

  # Breath-by-breath data averaged every 5 seconds, 15 second window
  vo2peak analyze test.csv --sampling-interval 5 --window 15

  # Stricter plateau criterion
  vo2peak analyze test.xlsx --plateau-threshold 0.05

  # Export the summary for tracking
  vo2peak analyze test.xlsx --output csv --output-file summary.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(cfg, dataset.NewReader(cfg)); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
