// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/transitlab/transitscope/internal/contract"
	"golang.org/x/term"
)

// getMaxTableNameWidth calculates the maximum width for system identifiers in
// table output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 45 // Rank + Star + Planet + Period + Score + Label

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 35 // Distance + Depth + Improvement + Completeness
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 20

	// Calculate available space for the identifier
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable identifier width
		return 15
	}
	if available > 40 {
		// Catalog designations rarely run longer than this
		return 40
	}
	return available
}
