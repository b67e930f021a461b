package cmd

import (
	"github.com/spf13/cobra"
	"github.com/transitlab/transitscope/core"
	"github.com/transitlab/transitscope/internal/contract"
)

// batchCmd runs the full pipeline for many systems at once.
var batchCmd = &cobra.Command{
	Use:   "batch [identifiers...]",
	Short: "Rank many systems by transit fit score.",
	Long: `Run the full fusion, generation and fit pipeline for many systems and
rank them by best fit score.

With no arguments every system in the catalog is processed. Systems run
concurrently on a worker pool, helping you:
- Rank an entire catalog by fit quality in one pass
- Spot systems whose profiles are too sparse to fit well
- Export a scored summary for reporting

Examples:
  # Rank the whole built-in catalog
  transitscope batch

  # Rank selected systems with extended columns
  transitscope batch TRAPPIST-1 "HD 209458" --detail

  # Top five as JSON
  transitscope batch --limit 5 --output json

  # Push a large external catalog through more workers
  transitscope batch --catalog-dir ./catalog --workers 8`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBatch(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot run batch survey", err)
		}
	},
}
