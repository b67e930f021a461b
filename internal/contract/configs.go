package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/transitlab/transitscope/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit  = 25
	MaxResultLimit      = 1000
	DefaultPrecision    = 2
	MaxPrecision        = 6
	DefaultSamplePoints = 10
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for one command run.
// This struct remains the "final, validated" config.
type Config struct {
	Identifier  string   // Single-system commands read this
	Identifiers []string // Batch positional args; empty means the whole catalog
	CatalogDir  string   // External catalog directory ("" = built-in snapshot)
	ResultLimit int
	Workers     int
	Detail      bool
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	SamplePoints int    // Series rows shown in text previews
	CurveFile    string // Observed series for fitting, replacing the synthetic one

	// Explicit transit parameter overrides. Zero or negative means unset,
	// except the epoch where only negative values mean unset.
	PeriodDays    float64
	Depth         float64
	DurationHours float64
	EpochHours    float64

	Generation schema.GenerationParams
	Optimizer  schema.OptimizerParams

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// GenerationRawInput holds signal generation overrides from the YAML config
// file. Only fields that might be customized are included. Use pointers so
// absent values fall back to defaults.
type GenerationRawInput struct {
	CurveSamples    *int     `mapstructure:"curve_samples"`
	WindowDays      *float64 `mapstructure:"window_days"`
	NoiseAmplitude  *float64 `mapstructure:"noise_amplitude"`
	SpectrumSamples *int     `mapstructure:"spectrum_samples"`
	PeriodMinDays   *float64 `mapstructure:"period_min_days"`
	PeriodMaxDays   *float64 `mapstructure:"period_max_days"`
	PeakWidthDays   *float64 `mapstructure:"peak_width_days"`
	NoiseFloor      *float64 `mapstructure:"noise_floor"`
	FoldedSamples   *int     `mapstructure:"folded_samples"`
	DepthJitter     *float64 `mapstructure:"depth_jitter"`
	ModelSamples    *int     `mapstructure:"model_samples"`
}

// OptimizerRawInput holds parameter search overrides from the YAML config file.
type OptimizerRawInput struct {
	Iterations        *int     `mapstructure:"iterations"`
	ExploreIterations *int     `mapstructure:"explore_iterations"`
	PeriodWindow      *float64 `mapstructure:"period_window"`
	DurationWindow    *float64 `mapstructure:"duration_window"`
	DepthWindow       *float64 `mapstructure:"depth_window"`
	MinExploitFactor  *float64 `mapstructure:"min_exploit_factor"`
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	IdentifierArgs []string

	// --- Fields from rootCmd.PersistentFlags() ---
	CatalogDir string `mapstructure:"catalog-dir"`
	OutputFile string `mapstructure:"output-file"`
	Limit      int    `mapstructure:"limit"`
	Workers    int    `mapstructure:"workers"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	Detail     bool   `mapstructure:"detail"`
	Width      int    `mapstructure:"width"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`

	// --- Fields from the signal command flags ---
	Samples int     `mapstructure:"samples"`
	Window  float64 `mapstructure:"window"`
	Noise   float64 `mapstructure:"noise"`
	Points  int     `mapstructure:"points"`

	// --- Fields from fitCmd.Flags() ---
	CurveFile  string  `mapstructure:"curve-file"`
	Period     float64 `mapstructure:"period"`
	Depth      float64 `mapstructure:"depth"`
	Duration   float64 `mapstructure:"duration"`
	Epoch      float64 `mapstructure:"epoch"`
	Iterations int     `mapstructure:"iterations"`

	// --- Generation overrides from config file ---
	Generation GenerationRawInput `mapstructure:"generation"`

	// --- Optimizer overrides from config file ---
	Optimizer OptimizerRawInput `mapstructure:"optimizer"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Identifiers != nil {
		clone.Identifiers = make([]string, len(c.Identifiers))
		copy(clone.Identifiers, c.Identifiers)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	processIdentifiers(cfg, input)
	if err := processGeneration(cfg, input); err != nil {
		return err
	}
	if err := processOptimizer(cfg, input); err != nil {
		return err
	}
	processFitInputs(cfg, input)
	return resolveCatalogDir(cfg, input)
}

// validateSimpleInputs processes and validates all non-domain fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 4. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	// --- 5. Sample Points Validation ---
	if input.Points <= 0 {
		return fmt.Errorf("points must be greater than 0 (received %d)", input.Points)
	}
	cfg.SamplePoints = input.Points

	return nil
}

// processIdentifiers trims the positional identifiers. Argument count rules
// are enforced per command by cobra, not here.
func processIdentifiers(cfg *Config, input *ConfigRawInput) {
	ids := make([]string, 0, len(input.IdentifierArgs))
	for _, arg := range input.IdentifierArgs {
		if trimmed := strings.TrimSpace(arg); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	cfg.Identifiers = ids
	if len(ids) > 0 {
		cfg.Identifier = ids[0]
	}
}

// processGeneration layers config file values and then flag values over the
// generation defaults, and validates the merged result.
func processGeneration(cfg *Config, input *ConfigRawInput) error {
	gen := schema.DefaultGenerationParams()

	raw := input.Generation
	if raw.CurveSamples != nil {
		gen.CurveSamples = *raw.CurveSamples
	}
	if raw.WindowDays != nil {
		gen.WindowDays = *raw.WindowDays
	}
	if raw.NoiseAmplitude != nil {
		gen.NoiseAmplitude = *raw.NoiseAmplitude
	}
	if raw.SpectrumSamples != nil {
		gen.SpectrumSamples = *raw.SpectrumSamples
	}
	if raw.PeriodMinDays != nil {
		gen.PeriodMinDays = *raw.PeriodMinDays
	}
	if raw.PeriodMaxDays != nil {
		gen.PeriodMaxDays = *raw.PeriodMaxDays
	}
	if raw.PeakWidthDays != nil {
		gen.PeakWidthDays = *raw.PeakWidthDays
	}
	if raw.NoiseFloor != nil {
		gen.NoiseFloor = *raw.NoiseFloor
	}
	if raw.FoldedSamples != nil {
		gen.FoldedSamples = *raw.FoldedSamples
	}
	if raw.DepthJitter != nil {
		gen.DepthJitter = *raw.DepthJitter
	}
	if raw.ModelSamples != nil {
		gen.ModelSamples = *raw.ModelSamples
	}

	// Flags take precedence over the config file. The noise flag default is
	// negative so an explicit zero still means noise-free.
	if input.Samples > 0 {
		gen.CurveSamples = input.Samples
	}
	if input.Window > 0 {
		gen.WindowDays = input.Window
	}
	if input.Noise >= 0 {
		gen.NoiseAmplitude = input.Noise
	}

	if gen.CurveSamples <= 0 {
		return fmt.Errorf("curve samples must be greater than 0 (received %d)", gen.CurveSamples)
	}
	if gen.SpectrumSamples < 2 {
		return fmt.Errorf("spectrum samples must be at least 2 (received %d)", gen.SpectrumSamples)
	}
	if gen.FoldedSamples <= 0 {
		return fmt.Errorf("folded samples must be greater than 0 (received %d)", gen.FoldedSamples)
	}
	if gen.ModelSamples < 2 {
		return fmt.Errorf("model samples must be at least 2 (received %d)", gen.ModelSamples)
	}
	if gen.WindowDays <= 0 {
		return fmt.Errorf("window days must be greater than 0 (received %g)", gen.WindowDays)
	}
	if gen.NoiseAmplitude < 0 {
		return fmt.Errorf("noise amplitude cannot be negative (received %g)", gen.NoiseAmplitude)
	}
	if gen.PeriodMinDays <= 0 || gen.PeriodMaxDays <= gen.PeriodMinDays {
		return fmt.Errorf("period range must satisfy 0 < min < max (received %g..%g)", gen.PeriodMinDays, gen.PeriodMaxDays)
	}
	if gen.PeakWidthDays <= 0 {
		return fmt.Errorf("peak width must be greater than 0 (received %g)", gen.PeakWidthDays)
	}
	if gen.NoiseFloor < 0 {
		return fmt.Errorf("noise floor cannot be negative (received %g)", gen.NoiseFloor)
	}
	if gen.DepthJitter < 0 {
		return fmt.Errorf("depth jitter cannot be negative (received %g)", gen.DepthJitter)
	}

	cfg.Generation = gen
	return nil
}

// processOptimizer layers config file values and the iterations flag over the
// search defaults. A lower iteration count wins over the default explore
// share, so "--iterations 3" works without also lowering explore_iterations.
func processOptimizer(cfg *Config, input *ConfigRawInput) error {
	opt := schema.DefaultOptimizerParams()

	raw := input.Optimizer
	if raw.Iterations != nil {
		opt.Iterations = *raw.Iterations
	}
	if raw.ExploreIterations != nil {
		opt.ExploreIterations = *raw.ExploreIterations
	}
	if raw.PeriodWindow != nil {
		opt.PeriodWindow = *raw.PeriodWindow
	}
	if raw.DurationWindow != nil {
		opt.DurationWindow = *raw.DurationWindow
	}
	if raw.DepthWindow != nil {
		opt.DepthWindow = *raw.DepthWindow
	}
	if raw.MinExploitFactor != nil {
		opt.MinExploitFactor = *raw.MinExploitFactor
	}

	if input.Iterations > 0 {
		opt.Iterations = input.Iterations
	}

	if opt.Iterations <= 0 {
		return fmt.Errorf("iterations must be greater than 0 (received %d)", opt.Iterations)
	}
	if opt.ExploreIterations < 0 {
		return fmt.Errorf("explore iterations cannot be negative (received %d)", opt.ExploreIterations)
	}
	if opt.ExploreIterations > opt.Iterations {
		opt.ExploreIterations = opt.Iterations
	}
	if opt.PeriodWindow <= 0 || opt.DurationWindow <= 0 || opt.DepthWindow <= 0 {
		return fmt.Errorf("search windows must be greater than 0 (received period=%g duration=%g depth=%g)",
			opt.PeriodWindow, opt.DurationWindow, opt.DepthWindow)
	}
	if opt.MinExploitFactor <= 0 || opt.MinExploitFactor > 1 {
		return fmt.Errorf("min exploit factor must be in (0, 1] (received %g)", opt.MinExploitFactor)
	}

	cfg.Optimizer = opt
	return nil
}

// processFitInputs transfers the explicit transit overrides. They are not
// plausibility-checked here; an implausible override flows through and the
// pipeline degrades to empty artifacts and zero scores.
func processFitInputs(cfg *Config, input *ConfigRawInput) {
	cfg.CurveFile = strings.TrimSpace(input.CurveFile)
	cfg.PeriodDays = input.Period
	cfg.Depth = input.Depth
	cfg.DurationHours = input.Duration
	cfg.EpochHours = input.Epoch
}

// resolveCatalogDir validates the external catalog directory when one is set.
func resolveCatalogDir(cfg *Config, input *ConfigRawInput) error {
	dir := strings.TrimSpace(input.CatalogDir)
	if dir == "" {
		cfg.CatalogDir = ""
		return nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	abs = filepath.Clean(abs)

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("catalog directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("catalog path is not a directory: %s", abs)
	}

	cfg.CatalogDir = abs
	return nil
}
