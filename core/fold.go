package core

import (
	"math"

	"github.com/transitlab/transitscope/schema"
)

// FoldSeries maps absolute-time samples onto orbital phase in [-0.5, 0.5)
// relative to the given period and epoch, with the transit centered at phase
// zero. Sample order is preserved and brightness values pass through
// untouched. A non-positive period has no phase meaning and yields nil.
func FoldSeries(points []schema.LightCurvePoint, periodDays, epochHours float64) []schema.PhasePoint {
	if periodDays <= 0 || len(points) == 0 {
		return nil
	}
	periodHours := periodDays * 24
	folded := make([]schema.PhasePoint, 0, len(points))
	for _, pt := range points {
		phase := math.Mod(pt.TimeHours-epochHours, periodHours) / periodHours
		if phase < 0 {
			phase++
		}
		if phase >= 0.5 {
			phase--
		}
		folded = append(folded, schema.PhasePoint{Phase: phase, Brightness: pt.Brightness})
	}
	return folded
}
