//go:build integration

package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/transitlab/transitscope/internal/catalog"
	"github.com/transitlab/transitscope/internal/contract"
	"github.com/transitlab/transitscope/schema"
)

// Per-system catalog files for a small external survey directory.
const (
	auroraOneJSON = `{
  "identifier": "Aurora-1",
  "gaia": {"parallax_mas": 95.5},
  "simbad": {"ra_deg": 101.28, "dec_deg": -16.71, "magnitude": 11.2},
  "tic": {"star_name": "Aurora-1", "temperature_k": 3350, "radius_sun": 0.31, "mass_sun": 0.26},
  "exoarchive": {"planet_name": "Aurora-1 b", "period_days": 1.8, "planet_radius_earth": 1.4}
}`

	auroraTwoJSON = `{
  "identifier": "Aurora-2",
  "gaia": {"parallax_mas": 41.2},
  "simbad": {"ra_deg": 219.9, "dec_deg": -60.83, "magnitude": 9.8},
  "tic": {"star_name": "Aurora-2", "temperature_k": 4900, "radius_sun": 0.78, "mass_sun": 0.8},
  "exoarchive": {"planet_name": "Aurora-2 b", "period_days": 4.6, "planet_radius_earth": 2.3}
}`

	// Aurora-3 has no stellar or planet records, so the pipeline falls back
	// to default transit parameters.
	auroraThreeJSON = `{
  "identifier": "Aurora-3",
  "gaia": {"parallax_mas": 12.75},
  "simbad": {"ra_deg": 88.79, "dec_deg": 7.41, "magnitude": 13.1}
}`
)

// writeCatalogFile writes one per-system catalog file into dir.
func writeCatalogFile(t *testing.T, dir, identifier, content string) {
	t.Helper()
	path := filepath.Join(dir, catalog.CatalogFileName(identifier))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// baseConfig returns a validated-shape config with generation and search defaults.
func baseConfig() *contract.Config {
	return &contract.Config{
		ResultLimit:  contract.DefaultResultLimit,
		Workers:      2,
		Precision:    contract.DefaultPrecision,
		Output:       schema.TextOut,
		SamplePoints: contract.DefaultSamplePoints,
		EpochHours:   -1,
		Generation:   schema.DefaultGenerationParams(),
		Optimizer:    schema.DefaultOptimizerParams(),
	}
}
