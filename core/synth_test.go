package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transitlab/transitscope/schema"
)

var synthParams = schema.TransitParameters{
	PeriodDays:    3.5,
	Depth:         0.01,
	DurationHours: 2.8,
	EpochHours:    12,
}

func TestGenerateDeterminism(t *testing.T) {
	gen := schema.DefaultGenerationParams()

	first := NewGenerator("TRAPPIST-1", synthParams, gen).Generate()
	second := NewGenerator("TRAPPIST-1", synthParams, gen).Generate()

	// Same identifier and parameters reproduce the bundle exactly.
	assert.Equal(t, first, second)

	other := NewGenerator("TRAPPIST-2", synthParams, gen).Generate()
	assert.NotEqual(t, first.LightCurve, other.LightCurve)
}

func TestGenerateArtifactSizes(t *testing.T) {
	gen := schema.DefaultGenerationParams()
	bundle := NewGenerator("TOI-700", synthParams, gen).Generate()

	assert.Len(t, bundle.LightCurve, gen.CurveSamples)
	assert.Len(t, bundle.Periodogram, gen.SpectrumSamples)
	assert.Len(t, bundle.Folded, gen.FoldedSamples)
	assert.Len(t, bundle.Model, gen.ModelSamples)
	assert.Equal(t, "TOI-700", bundle.Identifier)
	assert.Equal(t, synthParams, bundle.Params)
}

func TestBrightnessSeries(t *testing.T) {
	gen := schema.DefaultGenerationParams()
	bundle := NewGenerator("HD 209458", synthParams, gen).Generate()
	require.Len(t, bundle.LightCurve, gen.CurveSamples)

	windowHours := gen.WindowDays * 24
	periodHours := synthParams.PeriodHours()
	half := synthParams.DurationHours / 2

	inCount := 0
	for i, pt := range bundle.LightCurve {
		require.GreaterOrEqual(t, pt.TimeHours, 0.0)
		require.Less(t, pt.TimeHours, windowHours)
		if i > 0 {
			require.Greater(t, pt.TimeHours, bundle.LightCurve[i-1].TimeHours, "times must ascend")
		}

		if inTransit(pt.TimeHours, periodHours, synthParams.EpochHours, half) {
			inCount++
			require.InDelta(t, 1.0-synthParams.Depth, pt.Brightness, gen.NoiseAmplitude+1e-12)
		} else {
			require.InDelta(t, 1.0, pt.Brightness, gen.NoiseAmplitude+1e-12)
		}
	}

	// A 3.5 day period inside a 27 day window must show several transits.
	assert.Greater(t, inCount, 0)
	assert.Less(t, inCount, gen.CurveSamples/10)
}

func TestPeriodogramPeak(t *testing.T) {
	tests := []struct {
		name       string
		periodDays float64
	}{
		{name: "mid range", periodDays: 3.5},
		{name: "near lower edge", periodDays: 0.8},
		{name: "near upper edge", periodDays: 28.0},
		{name: "beyond default range", periodDays: 45.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := schema.DefaultGenerationParams()
			params := synthParams
			params.PeriodDays = tt.periodDays

			bundle := NewGenerator("Kepler-452", params, gen).Generate()
			require.Len(t, bundle.Periodogram, gen.SpectrumSamples)

			best := bundle.Periodogram[0]
			for _, pt := range bundle.Periodogram {
				require.GreaterOrEqual(t, pt.Power, 0.0, "power must be non-negative")
				require.Positive(t, pt.PeriodDays)
				if pt.Power > best.Power {
					best = pt
				}
			}

			// The dominant peak must sit within one peak width of the true
			// period even when the range had to widen around it.
			assert.InDelta(t, params.PeriodDays, best.PeriodDays, gen.PeakWidthDays)
		})
	}
}

func TestFoldedCurve(t *testing.T) {
	gen := schema.DefaultGenerationParams()
	bundle := NewGenerator("WASP-12", synthParams, gen).Generate()
	require.Len(t, bundle.Folded, gen.FoldedSamples)

	halfWidth := synthParams.PhaseWidth() / 2
	maxDip := synthParams.Depth * (1 + gen.DepthJitter)

	for _, pt := range bundle.Folded {
		require.GreaterOrEqual(t, pt.Phase, -0.5)
		require.Less(t, pt.Phase, 0.5)

		if math.Abs(pt.Phase) < halfWidth {
			require.GreaterOrEqual(t, pt.Brightness, 1.0-maxDip-gen.NoiseAmplitude-1e-12)
		} else {
			require.InDelta(t, 1.0, pt.Brightness, gen.NoiseAmplitude+1e-12)
		}
	}
}

func TestModelCurve(t *testing.T) {
	gen := schema.DefaultGenerationParams()
	bundle := NewGenerator("55 Cnc", synthParams, gen).Generate()
	require.Len(t, bundle.Model, gen.ModelSamples)

	halfWidth := synthParams.PhaseWidth() / 2
	sawDip := false
	for i, pt := range bundle.Model {
		require.GreaterOrEqual(t, pt.Phase, -0.5)
		require.Less(t, pt.Phase, 0.5)
		if i > 0 {
			require.Greater(t, pt.Phase, bundle.Model[i-1].Phase, "model must ascend in phase")
		}

		// The model is noise-free: exactly two brightness levels.
		if math.Abs(pt.Phase) < halfWidth {
			require.Equal(t, 1.0-synthParams.Depth, pt.Brightness)
			sawDip = true
		} else {
			require.Equal(t, 1.0, pt.Brightness)
		}
	}
	assert.True(t, sawDip, "model must include the transit floor")
}

func TestGenerateDegenerateParams(t *testing.T) {
	gen := schema.DefaultGenerationParams()

	tests := []struct {
		name   string
		params schema.TransitParameters
	}{
		{name: "zero period", params: schema.TransitParameters{PeriodDays: 0, Depth: 0.01, DurationHours: 2.8}},
		{name: "negative period", params: schema.TransitParameters{PeriodDays: -3.5, Depth: 0.01, DurationHours: 2.8}},
		{name: "zero depth", params: schema.TransitParameters{PeriodDays: 3.5, Depth: 0, DurationHours: 2.8}},
		{name: "duration exceeds period", params: schema.TransitParameters{PeriodDays: 0.05, Depth: 0.01, DurationHours: 2.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := NewGenerator("NOT-A-STAR", tt.params, gen).Generate()

			// Degenerate parameters mean empty artifacts, never an error.
			assert.Empty(t, bundle.LightCurve)
			assert.Empty(t, bundle.Periodogram)
			assert.Empty(t, bundle.Folded)
			assert.Empty(t, bundle.Model)
		})
	}
}

func TestGenerateZeroSamples(t *testing.T) {
	gen := schema.DefaultGenerationParams()
	gen.CurveSamples = 0
	gen.SpectrumSamples = 0
	gen.FoldedSamples = 0
	gen.ModelSamples = 0

	bundle := NewGenerator("TRAPPIST-1", synthParams, gen).Generate()
	assert.Empty(t, bundle.LightCurve)
	assert.Empty(t, bundle.Periodogram)
	assert.Empty(t, bundle.Folded)
	assert.Empty(t, bundle.Model)
}

func BenchmarkGenerate(b *testing.B) {
	gen := schema.DefaultGenerationParams()
	for b.Loop() {
		NewGenerator("TRAPPIST-1", synthParams, gen).Generate()
	}
}
