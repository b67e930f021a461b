package cmd

import (
	"github.com/spf13/cobra"
	"github.com/transitlab/transitscope/core"
	"github.com/transitlab/transitscope/internal/contract"
)

// sourcesCmd dumps the raw per-source records before fusion.
var sourcesCmd = &cobra.Command{
	Use:   "sources <identifier>",
	Short: "Show the raw per-source catalog records for one system.",
	Long: `Dump every catalog source record before fusion.

Shows the raw key/value pairs returned by each source, helping you:
- Verify which sources recognize an identifier
- Compare conflicting values before priority resolution
- Trace a fused field back to the record that supplied it

Examples:
  # Inspect all sources for a system
  transitscope sources TRAPPIST-1

  # Export the raw records for diffing
  transitscope sources "Proxima Cen" --output csv --output-file sources.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSources(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot run sources lookup", err)
		}
	},
}
