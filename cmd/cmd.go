// Package cmd defines the command-line interface for vo2peak.
package cmd

import (
	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/schema"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(smoothCmd)
	rootCmd.AddCommand(decilesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(channelsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Float64("sampling-interval", contract.DefaultSamplingInterval, "Seconds between sample rows, used when the dataset has no time column")
	rootCmd.PersistentFlags().Float64P("window", "w", contract.DefaultWindowDuration, "Smoothing window in seconds (must be a multiple of sampling-interval)")
	rootCmd.PersistentFlags().Float64("plateau-threshold", contract.DefaultPlateauThreshold, "VO2 increment in L/min below which uptake counts as flat")
	rootCmd.PersistentFlags().Float64("body-mass", contract.DefaultBodyMass, "Fallback body mass in kg when the dataset has no mass column")
	rootCmd.PersistentFlags().String("units-row", "yes", "Treat the first data row as a units sub-header and drop it (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("input-format", string(schema.AutoIn), "Input format: auto or xlsx or csv")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of sample rows to display (0 = all)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().String("export-file", "vo2peak_analysis.xlsx", "Path of the workbook to write")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}
}
