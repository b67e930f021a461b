package cmd

import (
	"github.com/spf13/cobra"
	"github.com/transitlab/transitscope/core"
	"github.com/transitlab/transitscope/internal/contract"
)

// periodogramCmd generates the synthetic period-power spectrum.
var periodogramCmd = &cobra.Command{
	Use:   "periodogram <identifier>",
	Short: "Generate a synthetic period-power spectrum for one system.",
	Long: `Generate a synthetic periodogram with a power peak at the transit
period.

Scans trial periods over a fixed range and reports the response at each,
helping you:
- Confirm where the injected period lands in the spectrum
- Produce spectrum fixtures with a known answer
- Export period/power pairs for plotting

Examples:
  # Spectrum summary with the peak period
  transitscope periodogram "Proxima Cen"

  # Full spectrum as JSON
  transitscope periodogram TRAPPIST-1 --output json

  # Columnar export of every trial period
  transitscope periodogram TOI-700 --output parquet --output-file spectrum.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePeriodogram(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot run periodogram generation", err)
		}
	},
}
