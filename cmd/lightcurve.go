package cmd

import (
	"github.com/spf13/cobra"
	"github.com/transitlab/transitscope/core"
	"github.com/transitlab/transitscope/internal/contract"
)

// lightcurveCmd generates the synthetic brightness series.
var lightcurveCmd = &cobra.Command{
	Use:   "lightcurve <identifier>",
	Short: "Generate a synthetic brightness series for one system.",
	Long: `Generate a deterministic synthetic brightness series with periodic
transit dips.

Transit parameters derive from the fused profile unless overridden, and
the noise stream is seeded from the identifier, so the same system always
produces the same curve. Use it to:
- Produce repeatable fixtures for downstream fitting
- Preview the transit shape and depth for a system
- Export a full series for plotting elsewhere

Examples:
  # Preview the curve for a system
  transitscope lightcurve TRAPPIST-1

  # Override the transit parameters
  transitscope lightcurve TRAPPIST-1 --period 2.5 --depth 0.012

  # Full series as CSV for plotting
  transitscope lightcurve "HD 209458" --output csv --output-file curve.csv

  # Columnar export for notebook analysis
  transitscope lightcurve TOI-700 --output parquet --output-file curve.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLightCurve(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot run lightcurve generation", err)
		}
	},
}
