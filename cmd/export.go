package cmd

import (
	"github.com/spiroflow/vo2peak/core"
	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/internal/dataset"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportCmd writes the full analysis as a multi-sheet workbook.
var exportCmd = &cobra.Command{
	Use:   "export <dataset>",
	Short: "Write the full analysis as an xlsx workbook.",
	Long: `Run the full analysis and write all three artifacts as one workbook:

- Smoothed_Data: every sample row with smoothed and derived columns
- Metrics_Summary: the peak metrics and plateau verdict
- VO2_Deciles: the percentage-of-peak table

The workbook is the hand-off artifact for exercise physiologists who
continue in a spreadsheet.

Examples:
  # Default workbook name in the working directory
  vo2peak export test.xlsx

  # Explicit destination
  vo2peak export test.xlsx --export-file results/athlete42.xlsx`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		outPath := viper.GetString("export-file")
		if err := core.ExecuteExport(cfg, dataset.NewReader(cfg), outPath); err != nil {
			contract.LogFatal("Cannot export workbook", err)
		}
	},
}
