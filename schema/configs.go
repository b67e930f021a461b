package schema

// Generation defaults. The window and sampling density roughly follow one
// sector of a space-telescope observing campaign.
const (
	DefaultCurveSamples    = 2000
	DefaultWindowDays      = 27.0
	DefaultNoiseAmplitude  = 0.0005
	DefaultSpectrumSamples = 200
	DefaultPeriodMinDays   = 0.5
	DefaultPeriodMaxDays   = 30.0
	DefaultPeakWidthDays   = 1.5
	DefaultNoiseFloor      = 0.05
	DefaultFoldedSamples   = 500
	DefaultDepthJitter     = 0.15
	DefaultModelSamples    = 201
)

// Optimizer defaults. The first iterations sample the full search window, the
// rest contract around the best candidate found so far.
const (
	DefaultIterations        = 30
	DefaultExploreIterations = 5
	DefaultPeriodWindow      = 0.05
	DefaultDurationWindow    = 0.30
	DefaultDepthWindow       = 0.30
	DefaultMinExploitFactor  = 0.05
)

// GenerationParams are the tunable knobs for synthetic signal generation.
type GenerationParams struct {
	CurveSamples    int     `json:"curve_samples"`    // Samples in the brightness series
	WindowDays      float64 `json:"window_days"`      // Observing window length in days
	NoiseAmplitude  float64 `json:"noise_amplitude"`  // Symmetric brightness noise amplitude
	SpectrumSamples int     `json:"spectrum_samples"` // Samples in the periodogram
	PeriodMinDays   float64 `json:"period_min_days"`  // Periodogram search range lower bound
	PeriodMaxDays   float64 `json:"period_max_days"`  // Periodogram search range upper bound
	PeakWidthDays   float64 `json:"peak_width_days"`  // Gaussian peak width around the true period
	NoiseFloor      float64 `json:"noise_floor"`      // Periodogram additive noise ceiling
	FoldedSamples   int     `json:"folded_samples"`   // Samples in the folded scatter
	DepthJitter     float64 `json:"depth_jitter"`     // Fractional in-transit depth jitter
	ModelSamples    int     `json:"model_samples"`    // Samples in the clean model curve
}

// DefaultGenerationParams returns the generation knobs at their defaults.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		CurveSamples:    DefaultCurveSamples,
		WindowDays:      DefaultWindowDays,
		NoiseAmplitude:  DefaultNoiseAmplitude,
		SpectrumSamples: DefaultSpectrumSamples,
		PeriodMinDays:   DefaultPeriodMinDays,
		PeriodMaxDays:   DefaultPeriodMaxDays,
		PeakWidthDays:   DefaultPeakWidthDays,
		NoiseFloor:      DefaultNoiseFloor,
		FoldedSamples:   DefaultFoldedSamples,
		DepthJitter:     DefaultDepthJitter,
		ModelSamples:    DefaultModelSamples,
	}
}

// OptimizerParams bound the stochastic parameter search. Window values are
// fractions of the initial parameter values, not absolute amounts.
type OptimizerParams struct {
	Iterations        int     `json:"iterations"`         // Total search iterations
	ExploreIterations int     `json:"explore_iterations"` // Leading full-window iterations
	PeriodWindow      float64 `json:"period_window"`      // Fractional period search window
	DurationWindow    float64 `json:"duration_window"`    // Fractional duration search window
	DepthWindow       float64 `json:"depth_window"`       // Fractional depth search window
	MinExploitFactor  float64 `json:"min_exploit_factor"` // Floor for the shrinking exploit step
}

// DefaultOptimizerParams returns the optimizer knobs at their defaults.
func DefaultOptimizerParams() OptimizerParams {
	return OptimizerParams{
		Iterations:        DefaultIterations,
		ExploreIterations: DefaultExploreIterations,
		PeriodWindow:      DefaultPeriodWindow,
		DurationWindow:    DefaultDurationWindow,
		DepthWindow:       DefaultDepthWindow,
		MinExploitFactor:  DefaultMinExploitFactor,
	}
}
