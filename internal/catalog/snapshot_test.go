package catalog

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transitlab/transitscope/schema"
)

func TestSnapshotLookup(t *testing.T) {
	client := NewSnapshotClient()
	ctx := context.Background()

	parallax, err := client.ParallaxRecord(ctx, "TRAPPIST-1")
	require.NoError(t, err)
	require.False(t, parallax.Invalid)
	assert.Equal(t, schema.GaiaSource, parallax.Source)
	plx, ok := parallax.Number(schema.KeyParallaxMas)
	require.True(t, ok)
	assert.Equal(t, 80.4512, plx)

	stellar, err := client.StellarRecord(ctx, "TRAPPIST-1")
	require.NoError(t, err)
	require.False(t, stellar.Invalid)
	name, ok := stellar.Text(schema.KeyStarName)
	require.True(t, ok)
	assert.Equal(t, "TRAPPIST-1", name)

	planet, err := client.PlanetRecord(ctx, "TRAPPIST-1")
	require.NoError(t, err)
	require.False(t, planet.Invalid)
	period, ok := planet.Number(schema.KeyPeriodDays)
	require.True(t, ok)
	assert.Equal(t, 1.51088, period)
}

func TestSnapshotCaseAndSpacingInsensitive(t *testing.T) {
	client := NewSnapshotClient()
	ctx := context.Background()

	for _, id := range []string{"trappist-1", "TRAPPIST-1", "  proxima   cen  ", "hd  209458"} {
		record, err := client.ParallaxRecord(ctx, id)
		require.NoError(t, err)
		assert.False(t, record.Invalid, "identifier %q should resolve", id)
	}
}

func TestSnapshotUnknownIdentifier(t *testing.T) {
	client := NewSnapshotClient()
	ctx := context.Background()

	parallax, err := client.ParallaxRecord(ctx, "NOT-A-STAR")
	require.NoError(t, err)
	assert.True(t, parallax.Invalid)
	assert.Equal(t, schema.GaiaSource, parallax.Source)

	astrometry, err := client.AstrometryRecord(ctx, "NOT-A-STAR")
	require.NoError(t, err)
	assert.True(t, astrometry.Invalid)
}

func TestSnapshotDeliberateGaps(t *testing.T) {
	client := NewSnapshotClient()
	ctx := context.Background()

	// KIC 8462852 has no confirmed planet.
	planet, err := client.PlanetRecord(ctx, "KIC 8462852")
	require.NoError(t, err)
	assert.True(t, planet.Invalid)

	stellar, err := client.StellarRecord(ctx, "KIC 8462852")
	require.NoError(t, err)
	require.False(t, stellar.Invalid)
	_, ok := stellar.Number(schema.KeyMetallicity)
	assert.False(t, ok, "metallicity gap should survive lookup")

	// LHS 3844 b has no measured mass.
	planet, err = client.PlanetRecord(ctx, "LHS 3844")
	require.NoError(t, err)
	require.False(t, planet.Invalid)
	_, ok = planet.Number(schema.KeyPlanetMassEarth)
	assert.False(t, ok)
}

func TestSnapshotIdentifiers(t *testing.T) {
	client := NewSnapshotClient()

	ids, err := client.Identifiers(context.Background())
	require.NoError(t, err)
	assert.Len(t, ids, len(snapshotSystems))
	assert.True(t, sort.StringsAreSorted(ids))
	assert.Contains(t, ids, "TRAPPIST-1")
	assert.Contains(t, ids, "Proxima Cen")
}

func TestSnapshotRecordsAreIsolated(t *testing.T) {
	client := NewSnapshotClient()
	ctx := context.Background()

	first, err := client.ParallaxRecord(ctx, "TRAPPIST-1")
	require.NoError(t, err)
	first.Values[schema.KeyParallaxMas] = -1.0

	second, err := client.ParallaxRecord(ctx, "TRAPPIST-1")
	require.NoError(t, err)
	plx, ok := second.Number(schema.KeyParallaxMas)
	require.True(t, ok)
	assert.Equal(t, 80.4512, plx, "callers must not be able to corrupt the snapshot")
}

func TestSnapshotEntriesAreComplete(t *testing.T) {
	// Every system must at least support the invalid-identifier check, which
	// needs parallax and astrometry records.
	for _, e := range snapshotSystems {
		assert.NotEmpty(t, e.identifier)
		assert.Contains(t, e.gaia, schema.KeyParallaxMas, e.identifier)
		assert.Contains(t, e.simbad, schema.KeyRADeg, e.identifier)
		assert.Contains(t, e.simbad, schema.KeyDecDeg, e.identifier)
	}
}
