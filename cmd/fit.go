package cmd

import (
	"github.com/spf13/cobra"
	"github.com/transitlab/transitscope/core"
	"github.com/transitlab/transitscope/internal/contract"
)

// fitCmd runs the stochastic transit parameter search.
var fitCmd = &cobra.Command{
	Use:   "fit <identifier>",
	Short: "Search transit parameters against an observed curve.",
	Long: `Run the stochastic parameter search against an observed brightness
series.

By default the observed series is synthesized from the fused profile;
pass --curve-file to fit recorded samples instead. The search:
- Scores candidates by inverse sum of squared residuals
- Explores the parameter space before exploiting the best candidate
- Keeps the full trial history for inspection
- Reports improvement of the best fit over the initial parameters

Examples:
  # Fit the synthetic curve for a system
  transitscope fit TRAPPIST-1

  # Fit recorded samples from a CSV file
  transitscope fit TRAPPIST-1 --curve-file observed.csv

  # Longer search with the trial history shown
  transitscope fit "HD 209458" --iterations 100 --detail

  # Export the trial history for analysis
  transitscope fit TOI-700 --output parquet --output-file trials.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFit(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot run transit fit", err)
		}
	},
}
