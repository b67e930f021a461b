package core

import (
	"math"

	"github.com/transitlab/transitscope/schema"
)

// Generator produces the synthetic display artifacts for one system. All
// randomness comes from a single identifier-seeded stream consumed in a fixed
// order, so generating twice for the same identifier and parameters yields
// byte-identical series.
type Generator struct {
	identifier string
	params     schema.TransitParameters
	gen        schema.GenerationParams
	rng        *Stream
}

// NewGenerator builds a generator for the identifier with a freshly seeded
// stream.
func NewGenerator(identifier string, params schema.TransitParameters, gen schema.GenerationParams) *Generator {
	return &Generator{
		identifier: identifier,
		params:     params,
		gen:        gen,
		rng:        NewStream(identifier),
	}
}

// Generate produces the full bundle: brightness series, periodogram, folded
// scatter and clean model curve, in that order. Implausible transit
// parameters yield a bundle of empty artifacts rather than an error.
func (g *Generator) Generate() schema.SignalBundle {
	return schema.SignalBundle{
		Identifier:  g.identifier,
		Params:      g.params,
		LightCurve:  g.brightnessSeries(),
		Periodogram: g.periodogram(),
		Folded:      g.foldedCurve(),
		Model:       g.modelCurve(),
	}
}

// brightnessSeries samples a box transit signal plus uniform noise over the
// observing window. Samples within half a duration of a transit center are
// dimmed by the full depth.
func (g *Generator) brightnessSeries() []schema.LightCurvePoint {
	n := g.gen.CurveSamples
	if n <= 0 || !g.params.Valid() {
		return []schema.LightCurvePoint{}
	}

	windowHours := g.gen.WindowDays * 24
	step := windowHours / float64(n)
	periodHours := g.params.PeriodHours()
	halfHours := g.params.DurationHours / 2

	points := make([]schema.LightCurvePoint, 0, n)
	for i := range n {
		t := float64(i) * step
		brightness := 1.0 + (g.rng.Next()-0.5)*2*g.gen.NoiseAmplitude
		if inTransit(t, periodHours, g.params.EpochHours, halfHours) {
			brightness -= g.params.Depth
		}
		points = append(points, schema.LightCurvePoint{TimeHours: t, Brightness: brightness})
	}
	return points
}

// periodogram renders a Gaussian power peak at the true period over a low
// noise floor. The fixed search range widens when the true period sits within
// five peak widths of an edge, so the dominant peak always lands inside the
// spectrum.
func (g *Generator) periodogram() []schema.PeriodPowerPoint {
	m := g.gen.SpectrumSamples
	if m <= 1 || !g.params.Valid() {
		return []schema.PeriodPowerPoint{}
	}

	period := g.params.PeriodDays
	width := g.gen.PeakWidthDays
	lo, hi := g.gen.PeriodMinDays, g.gen.PeriodMaxDays
	if period-5*width < lo {
		lo = math.Max(0.05, period-5*width)
	}
	if period+5*width > hi {
		hi = period + 5*width
	}

	step := (hi - lo) / float64(m-1)
	points := make([]schema.PeriodPowerPoint, 0, m)
	for i := range m {
		candidate := lo + float64(i)*step
		delta := candidate - period
		power := math.Exp(-delta*delta/(2*width*width)) + g.rng.Next()*g.gen.NoiseFloor
		points = append(points, schema.PeriodPowerPoint{PeriodDays: candidate, Power: power})
	}
	return points
}

// foldedCurve scatters samples across phase with the transit dip at phase
// zero. In-transit depth jitters by a bounded fraction to mimic real folded
// photometry.
func (g *Generator) foldedCurve() []schema.PhasePoint {
	n := g.gen.FoldedSamples
	if n <= 0 || !g.params.Valid() {
		return []schema.PhasePoint{}
	}

	halfWidth := g.params.PhaseWidth() / 2
	points := make([]schema.PhasePoint, 0, n)
	for range n {
		phase := g.rng.Next() - 0.5
		brightness := 1.0 + (g.rng.Next()-0.5)*2*g.gen.NoiseAmplitude
		if math.Abs(phase) < halfWidth {
			brightness -= g.params.Depth * (1 + (g.rng.Next()-0.5)*2*g.gen.DepthJitter)
		}
		points = append(points, schema.PhasePoint{Phase: phase, Brightness: brightness})
	}
	return points
}

// modelCurve renders the noise-free box model at fixed phase steps, sorted by
// ascending phase. This is the "fit line" drawn over the folded scatter.
func (g *Generator) modelCurve() []schema.PhasePoint {
	n := g.gen.ModelSamples
	if n <= 1 || !g.params.Valid() {
		return []schema.PhasePoint{}
	}

	halfWidth := g.params.PhaseWidth() / 2
	step := 1.0 / float64(n)
	points := make([]schema.PhasePoint, 0, n)
	for i := range n {
		phase := -0.5 + float64(i)*step
		brightness := 1.0
		if math.Abs(phase) < halfWidth {
			brightness = 1.0 - g.params.Depth
		}
		points = append(points, schema.PhasePoint{Phase: phase, Brightness: brightness})
	}
	return points
}

// inTransit reports whether t falls within halfHours of the nearest transit
// center.
func inTransit(tHours, periodHours, epochHours, halfHours float64) bool {
	d := math.Mod(tHours-epochHours, periodHours)
	if d < 0 {
		d += periodHours
	}
	if d > periodHours/2 {
		d = periodHours - d
	}
	return d < halfHours
}
