package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transitlab/transitscope/schema"
)

func trappistRecords() schema.SourceRecords {
	return schema.SourceRecords{
		Identifier: "TRAPPIST-1",
		Parallax: schema.RawSourceRecord{
			Source: schema.GaiaSource,
			Values: map[string]any{schema.KeyParallaxMas: 80.4512},
		},
		Astrometry: schema.RawSourceRecord{
			Source: schema.SimbadSource,
			Values: map[string]any{
				schema.KeyRADeg:     346.6224,
				schema.KeyDecDeg:    -5.0414,
				schema.KeyMagnitude: 18.8,
			},
		},
		Stellar: schema.RawSourceRecord{
			Source: schema.TICSource,
			Values: map[string]any{
				schema.KeyStarName:       "TRAPPIST-1",
				schema.KeyTemperatureK:   2566.0,
				schema.KeyRadiusSun:      0.119,
				schema.KeyMassSun:        0.089,
				schema.KeyLuminositySun:  0.000553,
				schema.KeySurfaceGravity: 5.24,
				schema.KeyMetallicity:    0.04,
			},
		},
		Planet: schema.RawSourceRecord{
			Source: schema.ExoArchiveSource,
			Values: map[string]any{
				schema.KeyPlanetName:        "TRAPPIST-1 b",
				schema.KeyPeriodDays:        1.51088,
				schema.KeyPlanetRadiusEarth: 1.116,
				schema.KeyPlanetMassEarth:   1.374,
				schema.KeyEquilibriumTempK:  400.0,
			},
		},
	}
}

func TestResolveProfileFull(t *testing.T) {
	profile := ResolveProfile(trappistRecords())

	assert.Equal(t, "TRAPPIST-1", profile.Identifier)
	assert.False(t, profile.IsInvalid())

	assert.Equal(t, schema.NumberField(40.54, schema.GaiaSource), profile.DistanceLY)
	assert.Equal(t, schema.TextField("346.6224, -5.0414", schema.SimbadSource), profile.Coordinates)
	assert.Equal(t, schema.NumberField(18.8, schema.SimbadSource), profile.Magnitude)

	assert.Equal(t, schema.TextField("TRAPPIST-1", schema.TICSource), profile.StarName)
	assert.Equal(t, schema.NumberField(2566.0, schema.TICSource), profile.TemperatureK)
	assert.Equal(t, schema.NumberField(0.119, schema.TICSource), profile.RadiusSun)
	assert.Equal(t, schema.NumberField(0.089, schema.TICSource), profile.MassSun)
	assert.Equal(t, schema.NumberField(0.000553, schema.TICSource), profile.LuminositySun)
	assert.Equal(t, schema.NumberField(5.24, schema.TICSource), profile.SurfaceGravity)
	assert.Equal(t, schema.NumberField(0.04, schema.TICSource), profile.Metallicity)

	assert.Equal(t, schema.TextField("TRAPPIST-1 b", schema.ExoArchiveSource), profile.PlanetName)
	assert.Equal(t, schema.NumberField(1.51088, schema.ExoArchiveSource), profile.PeriodDays)
	assert.Equal(t, schema.NumberField(1.116, schema.ExoArchiveSource), profile.PlanetRadiusEarth)
	assert.Equal(t, schema.NumberField(1.374, schema.ExoArchiveSource), profile.PlanetMassEarth)
	assert.Equal(t, schema.NumberField(400.0, schema.ExoArchiveSource), profile.EquilibriumTempK)

	available, total, pct := profile.Completeness()
	assert.Equal(t, 15, available)
	assert.Equal(t, 15, total)
	assert.Equal(t, 100.0, pct)
}

func TestResolveProfilePlanetPrecedence(t *testing.T) {
	t.Run("confirmed planet source wins", func(t *testing.T) {
		records := trappistRecords()
		records.Stellar.Values[schema.KeyPeriodDays] = 999.0
		records.Stellar.Values[schema.KeyPlanetName] = "TRAPPIST-1 candidate"

		profile := ResolveProfile(records)
		assert.Equal(t, schema.NumberField(1.51088, schema.ExoArchiveSource), profile.PeriodDays)
		assert.Equal(t, schema.TextField("TRAPPIST-1 b", schema.ExoArchiveSource), profile.PlanetName)
	})

	t.Run("stellar catalog fills planet gaps", func(t *testing.T) {
		records := trappistRecords()
		delete(records.Planet.Values, schema.KeyPlanetMassEarth)
		records.Stellar.Values[schema.KeyPlanetMassEarth] = 1.4

		profile := ResolveProfile(records)
		assert.Equal(t, schema.NumberField(1.4, schema.TICSource), profile.PlanetMassEarth)
	})

	t.Run("unrecognized planet source falls through", func(t *testing.T) {
		records := trappistRecords()
		records.Planet.Invalid = true
		records.Stellar.Values[schema.KeyPeriodDays] = 2.2

		profile := ResolveProfile(records)
		assert.Equal(t, schema.NumberField(2.2, schema.TICSource), profile.PeriodDays)
		assert.False(t, profile.PlanetName.Available())
	})
}

func TestResolveProfileDistanceFromParallaxOnly(t *testing.T) {
	records := trappistRecords()
	delete(records.Parallax.Values, schema.KeyParallaxMas)

	// Distance-like values in other sources must never leak into the profile.
	records.Astrometry.Values[schema.KeyDistanceLY] = 12.0
	records.Stellar.Values[schema.KeyDistanceLY] = 40.66

	profile := ResolveProfile(records)
	assert.False(t, profile.DistanceLY.Available())
	assert.Equal(t, schema.NoSource, profile.DistanceLY.Source)
}

func TestResolveProfileStarNameFallbacks(t *testing.T) {
	t.Run("planet name minus designator", func(t *testing.T) {
		records := trappistRecords()
		delete(records.Stellar.Values, schema.KeyStarName)

		profile := ResolveProfile(records)
		assert.Equal(t, schema.TextField("TRAPPIST-1", schema.DerivedSource), profile.StarName)
	})

	t.Run("identifier when designator cannot be stripped", func(t *testing.T) {
		records := trappistRecords()
		delete(records.Stellar.Values, schema.KeyStarName)
		records.Planet.Values[schema.KeyPlanetName] = "Kepler-452b"

		profile := ResolveProfile(records)
		assert.Equal(t, schema.TextField("Star TRAPPIST-1", schema.DerivedSource), profile.StarName)
	})

	t.Run("identifier when no planet either", func(t *testing.T) {
		records := trappistRecords()
		delete(records.Stellar.Values, schema.KeyStarName)
		records.Planet.Invalid = true

		profile := ResolveProfile(records)
		assert.Equal(t, schema.TextField("Star TRAPPIST-1", schema.DerivedSource), profile.StarName)
	})
}

func TestResolveProfileInvalidIdentifier(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*schema.SourceRecords)
	}{
		{name: "parallax unrecognized", mutate: func(r *schema.SourceRecords) { r.Parallax.Invalid = true }},
		{name: "astrometry unrecognized", mutate: func(r *schema.SourceRecords) { r.Astrometry.Invalid = true }},
		{name: "both unrecognized", mutate: func(r *schema.SourceRecords) {
			r.Parallax.Invalid = true
			r.Astrometry.Invalid = true
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := trappistRecords()
			tt.mutate(&records)

			profile := ResolveProfile(records)
			require.True(t, profile.IsInvalid())
			assert.Equal(t, "TRAPPIST-1", profile.Identifier)
			assert.Equal(t, schema.InvalidIdentifierName, profile.StarName.Text)

			// Every other field is the sentinel.
			available, _, _ := profile.Completeness()
			assert.Equal(t, 1, available)
		})
	}
}

func TestResolveProfileSparseRecords(t *testing.T) {
	records := schema.SourceRecords{
		Identifier: "KIC 8462852",
		Parallax: schema.RawSourceRecord{
			Source: schema.GaiaSource,
			Values: map[string]any{schema.KeyParallaxMas: 2.231},
		},
		Astrometry: schema.RawSourceRecord{
			Source: schema.SimbadSource,
			Values: map[string]any{schema.KeyRADeg: 301.5644, schema.KeyDecDeg: 44.4569},
		},
		Stellar: schema.RawSourceRecord{Source: schema.TICSource, Invalid: true},
		Planet:  schema.RawSourceRecord{Source: schema.ExoArchiveSource, Invalid: true},
	}

	profile := ResolveProfile(records)
	assert.False(t, profile.IsInvalid())
	assert.True(t, profile.DistanceLY.Available())
	assert.True(t, profile.Coordinates.Available())
	assert.Equal(t, schema.TextField("Star KIC 8462852", schema.DerivedSource), profile.StarName)
	assert.False(t, profile.TemperatureK.Available())
	assert.False(t, profile.PeriodDays.Available())

	// Provenance stays consistent: a source only when a value is present.
	for _, row := range profile.Rows() {
		if row.Field.Available() {
			assert.NotEqual(t, schema.NoSource, row.Field.Source, row.Label)
		} else {
			assert.Equal(t, schema.NoSource, row.Field.Source, row.Label)
		}
	}
}

func TestResolveCoordinatesRequiresBothAngles(t *testing.T) {
	records := trappistRecords()
	delete(records.Astrometry.Values, schema.KeyDecDeg)

	profile := ResolveProfile(records)
	assert.False(t, profile.Coordinates.Available())
	assert.Equal(t, schema.NumberField(18.8, schema.SimbadSource), profile.Magnitude)
}

func TestStripPlanetDesignator(t *testing.T) {
	tests := []struct {
		planet string
		want   string
	}{
		{planet: "TRAPPIST-1 b", want: "TRAPPIST-1"},
		{planet: "55 Cnc e", want: "55 Cnc"},
		{planet: "Proxima Cen b", want: "Proxima Cen"},
		{planet: "Kepler-452b", want: ""},
		{planet: "HD 209458 B", want: ""},
		{planet: "b", want: ""},
		{planet: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.planet, func(t *testing.T) {
			assert.Equal(t, tt.want, stripPlanetDesignator(tt.planet))
		})
	}
}
