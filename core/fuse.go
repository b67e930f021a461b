package core

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/transitlab/transitscope/schema"
)

// sourceKey names one record entry a fusion rule may draw from.
type sourceKey struct {
	source schema.SourceName
	key    string
}

// fusionRule binds one profile field to the sources allowed to supply it, in
// precedence order. The first recognized source carrying the key wins; any
// value for the same field in a later source is ignored.
type fusionRule struct {
	assign     func(*schema.VerifiedProfile, schema.Field)
	numeric    bool
	candidates []sourceKey
}

// fusionRules is the fixed priority table for all directly copied fields.
// Distance, coordinates and the star name are resolved separately because
// they are computed rather than copied. Planet entries list the confirmed
// planet source first so it overrides anything the stellar source carries.
var fusionRules = []fusionRule{
	{
		assign:     func(p *schema.VerifiedProfile, f schema.Field) { p.Magnitude = f },
		numeric:    true,
		candidates: []sourceKey{{schema.SimbadSource, schema.KeyMagnitude}},
	},
	{
		assign:     func(p *schema.VerifiedProfile, f schema.Field) { p.TemperatureK = f },
		numeric:    true,
		candidates: []sourceKey{{schema.TICSource, schema.KeyTemperatureK}},
	},
	{
		assign:     func(p *schema.VerifiedProfile, f schema.Field) { p.RadiusSun = f },
		numeric:    true,
		candidates: []sourceKey{{schema.TICSource, schema.KeyRadiusSun}},
	},
	{
		assign:     func(p *schema.VerifiedProfile, f schema.Field) { p.MassSun = f },
		numeric:    true,
		candidates: []sourceKey{{schema.TICSource, schema.KeyMassSun}},
	},
	{
		assign:     func(p *schema.VerifiedProfile, f schema.Field) { p.LuminositySun = f },
		numeric:    true,
		candidates: []sourceKey{{schema.TICSource, schema.KeyLuminositySun}},
	},
	{
		assign:     func(p *schema.VerifiedProfile, f schema.Field) { p.SurfaceGravity = f },
		numeric:    true,
		candidates: []sourceKey{{schema.TICSource, schema.KeySurfaceGravity}},
	},
	{
		assign:     func(p *schema.VerifiedProfile, f schema.Field) { p.Metallicity = f },
		numeric:    true,
		candidates: []sourceKey{{schema.TICSource, schema.KeyMetallicity}},
	},
	{
		assign:  func(p *schema.VerifiedProfile, f schema.Field) { p.PlanetName = f },
		numeric: false,
		candidates: []sourceKey{
			{schema.ExoArchiveSource, schema.KeyPlanetName},
			{schema.TICSource, schema.KeyPlanetName},
		},
	},
	{
		assign:  func(p *schema.VerifiedProfile, f schema.Field) { p.PeriodDays = f },
		numeric: true,
		candidates: []sourceKey{
			{schema.ExoArchiveSource, schema.KeyPeriodDays},
			{schema.TICSource, schema.KeyPeriodDays},
		},
	},
	{
		assign:  func(p *schema.VerifiedProfile, f schema.Field) { p.PlanetRadiusEarth = f },
		numeric: true,
		candidates: []sourceKey{
			{schema.ExoArchiveSource, schema.KeyPlanetRadiusEarth},
			{schema.TICSource, schema.KeyPlanetRadiusEarth},
		},
	},
	{
		assign:  func(p *schema.VerifiedProfile, f schema.Field) { p.PlanetMassEarth = f },
		numeric: true,
		candidates: []sourceKey{
			{schema.ExoArchiveSource, schema.KeyPlanetMassEarth},
			{schema.TICSource, schema.KeyPlanetMassEarth},
		},
	},
	{
		assign:  func(p *schema.VerifiedProfile, f schema.Field) { p.EquilibriumTempK = f },
		numeric: true,
		candidates: []sourceKey{
			{schema.ExoArchiveSource, schema.KeyEquilibriumTempK},
			{schema.TICSource, schema.KeyEquilibriumTempK},
		},
	},
}

// ResolveProfile fuses the per-source records into one verified profile with
// per-field provenance. When the astrometry or parallax source does not
// recognize the identifier at all, the whole profile collapses to the
// invalid-identifier sentinel so downstream rendering needs no failure path.
func ResolveProfile(records schema.SourceRecords) schema.VerifiedProfile {
	if records.Parallax.Invalid || records.Astrometry.Invalid {
		return schema.InvalidProfile(records.Identifier)
	}

	profile := schema.VerifiedProfile{Identifier: records.Identifier}

	// Distance comes from the parallax conversion only. Distance-like values
	// in other sources never participate.
	if plx, ok := records.Parallax.Number(schema.KeyParallaxMas); ok {
		profile.DistanceLY = DistanceFromParallax(plx)
	}

	profile.Coordinates = resolveCoordinates(records.Astrometry)

	for _, rule := range fusionRules {
		rule.assign(&profile, resolveRule(records, rule))
	}

	profile.StarName = resolveStarName(&profile, records)
	return profile
}

// resolveRule walks the rule's candidates and returns the first value found,
// or the sentinel when no source carries the key.
func resolveRule(records schema.SourceRecords, rule fusionRule) schema.Field {
	for _, c := range rule.candidates {
		rec := records.BySource(c.source)
		if rec.Invalid {
			continue
		}
		if rule.numeric {
			if v, ok := rec.Number(c.key); ok {
				return schema.NumberField(v, c.source)
			}
		} else {
			if v, ok := rec.Text(c.key); ok {
				return schema.TextField(v, c.source)
			}
		}
	}
	return schema.UnavailableField()
}

// resolveCoordinates composes the astrometry source's right ascension and
// declination into a single display field. Both angles must be present.
func resolveCoordinates(astrometry schema.RawSourceRecord) schema.Field {
	ra, okRA := astrometry.Number(schema.KeyRADeg)
	dec, okDec := astrometry.Number(schema.KeyDecDeg)
	if !okRA || !okDec {
		return schema.UnavailableField()
	}
	return schema.TextField(fmt.Sprintf("%.4f, %+.4f", ra, dec), schema.SimbadSource)
}

// resolveStarName picks the display name for the host star. The stellar
// source's name wins; otherwise the planet name with its designator stripped;
// otherwise a name synthesized from the identifier, so the profile always has
// something to show.
func resolveStarName(profile *schema.VerifiedProfile, records schema.SourceRecords) schema.Field {
	stellar := records.Stellar
	if !stellar.Invalid {
		if name, ok := stellar.Text(schema.KeyStarName); ok {
			return schema.TextField(name, schema.TICSource)
		}
	}
	if profile.PlanetName.Available() {
		if host := stripPlanetDesignator(profile.PlanetName.Text); host != "" {
			return schema.TextField(host, schema.DerivedSource)
		}
	}
	return schema.TextField("Star "+records.Identifier, schema.DerivedSource)
}

// stripPlanetDesignator removes a trailing single-letter planet designator
// ("TRAPPIST-1 b" -> "TRAPPIST-1"). Names without one yield the empty string.
func stripPlanetDesignator(planetName string) string {
	fields := strings.Fields(planetName)
	if len(fields) < 2 {
		return ""
	}
	last := fields[len(fields)-1]
	runes := []rune(last)
	if len(runes) != 1 || !unicode.IsLower(runes[0]) {
		return ""
	}
	return strings.Join(fields[:len(fields)-1], " ")
}
