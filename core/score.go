package core

import (
	"math"

	"github.com/transitlab/transitscope/schema"
)

const (
	// ScoreCeiling caps the fit score once residuals become numerically
	// negligible, so a perfect fit never divides by zero.
	ScoreCeiling = 1e9

	// residualFloor is the sum-of-squares below which a fit counts as perfect.
	residualFloor = 1e-9
)

// ScoreTransitFit measures how well a box transit model with the given
// parameters explains an observed brightness series. The series is folded at
// the candidate period, compared against the box model, and scored as the
// inverse of the sum of squared residuals. Higher is better. Implausible
// parameters and empty series score zero rather than erroring, so optimizer
// candidates that wander out of bounds are simply never selected.
func ScoreTransitFit(params schema.TransitParameters, observed []schema.LightCurvePoint) float64 {
	if !params.Valid() || len(observed) == 0 {
		return 0
	}

	folded := FoldSeries(observed, params.PeriodDays, params.EpochHours)
	halfWidth := params.PhaseWidth() / 2

	var ssr float64
	for _, pt := range folded {
		model := 1.0
		if math.Abs(pt.Phase) < halfWidth {
			model = 1.0 - params.Depth
		}
		residual := pt.Brightness - model
		ssr += residual * residual
	}

	if ssr < residualFloor {
		return ScoreCeiling
	}
	return 1.0 / ssr
}
