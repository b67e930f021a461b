package core

import (
	"math"

	"github.com/transitlab/transitscope/schema"
)

// Radius scale in kilometers, for the depth estimate.
const (
	earthRadiusKm = 6371.0
	sunRadiusKm   = 695700.0
)

// Fallbacks and bounds keeping derived signals plausible and renderable.
// Catalog periods below minPeriodDays are treated as noise; durations are
// kept between minDurationHours and maxDurationFrac of the period so the box
// stays visible in a folded plot.
const (
	defaultPeriodDays = 3.5
	defaultDepth      = 0.01
	minPeriodDays     = 0.15
	minDepth          = 1e-5
	maxDepth          = 0.25
	minDurationHours  = 0.5
	maxDurationFrac   = 0.2

	durationScale  = 2.5
	minScaleRadius = 0.25
)

// DeriveTransitParameters turns a fused profile into the scalar transit
// parameters the generator needs. Missing fields fall back to defaults, the
// period comes straight from the confirmed planet data when present, the
// depth follows from the planet-to-star radius ratio, and the epoch is drawn
// from an identifier-seeded stream so it stays stable between runs. The
// result is always plausible in the Valid sense.
func DeriveTransitParameters(profile *schema.VerifiedProfile) schema.TransitParameters {
	period := defaultPeriodDays
	if v, ok := profile.PeriodDays.Number(); ok && v >= minPeriodDays {
		period = v
	}

	depth := defaultDepth
	if rp, ok := profile.PlanetRadiusEarth.Number(); ok && rp > 0 {
		if rs, ok := profile.RadiusSun.Number(); ok && rs > 0 {
			ratio := rp * earthRadiusKm / (rs * sunRadiusKm)
			depth = clamp(ratio*ratio, minDepth, maxDepth)
		}
	}

	radius := 1.0
	if rs, ok := profile.RadiusSun.Number(); ok && rs > 0 {
		radius = rs
	}
	duration := durationScale * math.Cbrt(period) * math.Sqrt(math.Max(radius, minScaleRadius))
	duration = clamp(duration, minDurationHours, maxDurationFrac*period*24)

	rng := NewStream(profile.Identifier)
	epoch := rng.Range(0, period*24)

	return schema.TransitParameters{
		PeriodDays:    period,
		Depth:         depth,
		DurationHours: duration,
		EpochHours:    epoch,
	}
}
