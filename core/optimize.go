package core

import (
	"math"

	"github.com/google/uuid"
	"github.com/transitlab/transitscope/schema"
)

// Optimizer runs the two-phase stochastic search for transit parameters that
// better fit an observed series. Early iterations explore the full search
// window around the initial guess; the rest exploit the best candidate found
// so far with a step size that shrinks as iterations progress. Epoch is held
// fixed throughout; only period, depth and duration are searched.
//
// Like Generator, an optimizer owns one seeded stream and is meant for a
// single Run.
type Optimizer struct {
	identifier string
	opt        schema.OptimizerParams
	rng        *Stream
}

// NewOptimizer builds an optimizer for the identifier with a freshly seeded
// stream.
func NewOptimizer(identifier string, opt schema.OptimizerParams) *Optimizer {
	return &Optimizer{
		identifier: identifier,
		opt:        opt,
		rng:        NewStream(identifier),
	}
}

// searchWindow is the absolute half-extent searched around one initial value.
type searchWindow struct {
	center, span float64
}

func (w searchWindow) lo() float64 { return w.center - w.span }
func (w searchWindow) hi() float64 { return w.center + w.span }

// Run scores the initial parameters, then iterates candidates and keeps the
// best. Ties keep the earlier candidate, so a flat landscape returns the
// initial parameters unchanged. An empty observed series is not an error: all
// scores are zero and the initial parameters win by default.
func (o *Optimizer) Run(initial schema.TransitParameters, observed []schema.LightCurvePoint) schema.FitResult {
	initialScore := ScoreTransitFit(initial, observed)
	best, bestScore := initial, initialScore

	period := searchWindow{center: initial.PeriodDays, span: initial.PeriodDays * o.opt.PeriodWindow}
	duration := searchWindow{center: initial.DurationHours, span: initial.DurationHours * o.opt.DurationWindow}
	depth := searchWindow{center: initial.Depth, span: initial.Depth * o.opt.DepthWindow}

	trials := make([]schema.OptimizationTrial, 0, o.opt.Iterations)
	for i := range o.opt.Iterations {
		var candidate schema.TransitParameters
		phase := schema.ExplorePhase
		if i < o.opt.ExploreIterations {
			candidate = schema.TransitParameters{
				PeriodDays:    o.rng.Range(period.lo(), period.hi()),
				Depth:         o.rng.Range(depth.lo(), depth.hi()),
				DurationHours: o.rng.Range(duration.lo(), duration.hi()),
				EpochHours:    initial.EpochHours,
			}
		} else {
			phase = schema.ExploitPhase
			factor := math.Max(o.opt.MinExploitFactor, 1.0-float64(i)/float64(o.opt.Iterations))
			candidate = schema.TransitParameters{
				PeriodDays:    o.step(best.PeriodDays, period, factor),
				Depth:         o.step(best.Depth, depth, factor),
				DurationHours: o.step(best.DurationHours, duration, factor),
				EpochHours:    initial.EpochHours,
			}
		}

		score := ScoreTransitFit(candidate, observed)
		if score > bestScore {
			best, bestScore = candidate, score
		}
		trials = append(trials, schema.OptimizationTrial{
			Iteration: i + 1,
			Phase:     phase,
			Params:    candidate,
			Score:     score,
			BestScore: bestScore,
		})
	}

	improvement := 0.0
	if initialScore > 0 {
		improvement = (bestScore/initialScore - 1) * 100
	}

	return schema.FitResult{
		RunID:        uuid.NewString(),
		Identifier:   o.identifier,
		Initial:      initial,
		InitialScore: initialScore,
		Best:         best,
		BestScore:    bestScore,
		Improvement:  improvement,
		Trials:       trials,
	}
}

// step perturbs the current best value by a shrinking random offset, clamped
// back into the original search window.
func (o *Optimizer) step(current float64, w searchWindow, factor float64) float64 {
	offset := o.rng.Range(-w.span*factor, w.span*factor)
	return clamp(current+offset, w.lo(), w.hi())
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
