package cmd

import (
	"github.com/spf13/cobra"
	"github.com/transitlab/transitscope/core"
	"github.com/transitlab/transitscope/internal/contract"
)

// profileCmd resolves one system into a fused stellar profile.
var profileCmd = &cobra.Command{
	Use:   "profile <identifier>",
	Short: "Show the fused stellar profile for one system.",
	Long: `Fuse every catalog source into a single stellar profile with provenance.

Resolves each field through a fixed source priority, so you can:
- See which catalog supplied every value
- Check the parallax-derived distance in light years
- Spot fields that no source could provide
- Gauge how complete the fused profile is

Unknown identifiers produce a placeholder profile instead of an error,
so scripted lookups never abort halfway through a list.

Examples:
  # Look up a well-known system
  transitscope profile TRAPPIST-1

  # Machine-readable profile with provenance
  transitscope profile "HD 209458" --output json

  # Read catalog records from a directory of JSON files
  transitscope profile Vega --catalog-dir ./catalog`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProfile(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot run profile lookup", err)
		}
	},
}
