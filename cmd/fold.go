package cmd

import (
	"github.com/spf13/cobra"
	"github.com/transitlab/transitscope/core"
	"github.com/transitlab/transitscope/internal/contract"
)

// foldCmd phase-folds the synthetic curve at the transit period.
var foldCmd = &cobra.Command{
	Use:   "fold <identifier>",
	Short: "Phase-fold the synthetic curve and overlay the box model.",
	Long: `Phase-fold the synthetic brightness series at the transit period.

Maps every sample onto phase [-0.5, 0.5) around the transit and pairs it
with a noise-free box model, so you can:
- Check that the transit lands at phase zero
- Compare scattered samples against the ideal shape
- Export folded and model series for overlay plots

Examples:
  # Folded summary for a system
  transitscope fold TRAPPIST-1

  # Both series as CSV
  transitscope fold TRAPPIST-1 --output csv --output-file fold.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFold(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot run fold generation", err)
		}
	},
}
