package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transitlab/transitscope/schema"
)

const testCatalogJSON = `{
  "identifier": "Vega",
  "gaia": {"parallax_mas": 130.23},
  "simbad": {"ra_deg": 279.2347, "dec_deg": 38.7837, "magnitude": 0.03},
  "tic": {"star_name": "Vega", "temperature_k": 9602, "radius_sun": 2.362, "mass_sun": 2.135}
}`

func writeCatalogFile(t *testing.T, dir, identifier, content string) {
	t.Helper()
	path := filepath.Join(dir, CatalogFileName(identifier))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDirClientLookup(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "Vega", testCatalogJSON)
	client := NewDirClient(dir)
	ctx := context.Background()

	parallax, err := client.ParallaxRecord(ctx, "vega")
	require.NoError(t, err)
	require.False(t, parallax.Invalid)
	plx, ok := parallax.Number(schema.KeyParallaxMas)
	require.True(t, ok)
	assert.Equal(t, 130.23, plx)

	stellar, err := client.StellarRecord(ctx, "Vega")
	require.NoError(t, err)
	require.False(t, stellar.Invalid)
	name, ok := stellar.Text(schema.KeyStarName)
	require.True(t, ok)
	assert.Equal(t, "Vega", name)

	// JSON integers come back as float64 and must still read as numbers.
	temp, ok := stellar.Number(schema.KeyTemperatureK)
	require.True(t, ok)
	assert.Equal(t, 9602.0, temp)

	// No exoarchive object in the file means the source is unrecognized.
	planet, err := client.PlanetRecord(ctx, "Vega")
	require.NoError(t, err)
	assert.True(t, planet.Invalid)
	assert.Equal(t, schema.ExoArchiveSource, planet.Source)
}

func TestDirClientMissingFile(t *testing.T) {
	client := NewDirClient(t.TempDir())

	record, err := client.ParallaxRecord(context.Background(), "NOT-A-STAR")
	require.NoError(t, err)
	assert.True(t, record.Invalid)
	assert.Equal(t, schema.GaiaSource, record.Source)
}

func TestDirClientMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "Vega", "{not json")
	client := NewDirClient(dir)

	_, err := client.ParallaxRecord(context.Background(), "Vega")
	assert.ErrorContains(t, err, "parsing catalog file")
}

func TestDirClientIdentifiers(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "Vega", testCatalogJSON)
	writeCatalogFile(t, dir, "Altair", `{"identifier": "Altair", "gaia": {"parallax_mas": 194.95}}`)
	// Broken and unrelated files are skipped, not fatal.
	writeCatalogFile(t, dir, "Broken", "{not json")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	client := NewDirClient(dir)
	ids, err := client.Identifiers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Altair", "Vega"}, ids)
}

func TestDirClientIdentifiersMissingDir(t *testing.T) {
	client := NewDirClient(filepath.Join(t.TempDir(), "nope"))
	_, err := client.Identifiers(context.Background())
	assert.Error(t, err)
}
