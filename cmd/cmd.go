// Package cmd defines the command-line interface for transitscope.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/transitlab/transitscope/internal/contract"
	"github.com/transitlab/transitscope/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(lightcurveCmd)
	rootCmd.AddCommand(periodogramCmd)
	rootCmd.AddCommand(foldCmd)
	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Float64("depth", 0, "Transit depth override as a brightness fraction (0 = derive from profile)")
	rootCmd.PersistentFlags().Bool("detail", false, "Print extended columns and trial history")
	rootCmd.PersistentFlags().Float64("duration", 0, "Transit duration override in hours (0 = derive from profile)")
	rootCmd.PersistentFlags().Float64("epoch", -1.0, "Transit epoch override in hours (negative = derive from profile)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Float64("noise", -1.0, "Noise amplitude for the brightness series (negative = default)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Float64("period", 0, "Transit period override in days (0 = derive from profile)")
	rootCmd.PersistentFlags().Int("points", contract.DefaultSamplePoints, "Number of series rows shown in text previews")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("samples", 0, "Brightness series sample count (0 = default)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Float64("window", 0, "Observation window in days (0 = default)")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers for batch runs")
	rootCmd.PersistentFlags().String("catalog-dir", "", "Directory of per-system catalog JSON files (default: built-in snapshot)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of fitCmd to Viper
	fitCmd.Flags().String("curve-file", "", "CSV of time_hours,brightness samples to fit instead of the synthetic curve")
	fitCmd.Flags().Int("iterations", 0, "Number of search iterations (0 = default)")
	if err := viper.BindPFlags(fitCmd.Flags()); err != nil {
		contract.LogFatal("Error binding fit flags", err)
	}
}
