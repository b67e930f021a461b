// Package core has core logic for source fusion, signal synthesis and fitting.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/transitlab/transitscope/internal/catalog"
	"github.com/transitlab/transitscope/internal/contract"
	"github.com/transitlab/transitscope/internal/outwriter"
	"github.com/transitlab/transitscope/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, client contract.CatalogClient) error

// FetchSourceRecords collects the four per-source records for one identifier.
// An identifier unknown to a source is not an error; the source flags its
// record invalid and fusion decides what that means. Errors here are real
// lookup failures, like an unreadable catalog directory.
func FetchSourceRecords(ctx context.Context, client contract.CatalogClient, identifier string) (schema.SourceRecords, error) {
	records := schema.SourceRecords{Identifier: identifier}
	var err error
	if records.Parallax, err = client.ParallaxRecord(ctx, identifier); err != nil {
		return records, fmt.Errorf("parallax lookup failed: %w", err)
	}
	if records.Astrometry, err = client.AstrometryRecord(ctx, identifier); err != nil {
		return records, fmt.Errorf("astrometry lookup failed: %w", err)
	}
	if records.Stellar, err = client.StellarRecord(ctx, identifier); err != nil {
		return records, fmt.Errorf("stellar lookup failed: %w", err)
	}
	if records.Planet, err = client.PlanetRecord(ctx, identifier); err != nil {
		return records, fmt.Errorf("planet lookup failed: %w", err)
	}
	return records, nil
}

// applyOverrides layers explicit flag values over derived parameters. An
// override that makes the set implausible is allowed through; generation and
// scoring degrade to empty artifacts and zero scores rather than erroring.
func applyOverrides(cfg *contract.Config, params schema.TransitParameters) schema.TransitParameters {
	if cfg.PeriodDays > 0 {
		params.PeriodDays = cfg.PeriodDays
	}
	if cfg.Depth > 0 {
		params.Depth = cfg.Depth
	}
	if cfg.DurationHours > 0 {
		params.DurationHours = cfg.DurationHours
	}
	if cfg.EpochHours >= 0 {
		params.EpochHours = cfg.EpochHours
	}
	return params
}

// GetProfileResult fetches and fuses the source records for the configured
// identifier. This is the data half of ExecuteProfile, exposed for the MCP
// server.
func GetProfileResult(ctx context.Context, cfg *contract.Config, client contract.CatalogClient) (*schema.VerifiedProfile, time.Duration, error) {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		contract.LogLookupHeader(cfg)
	}
	records, err := FetchSourceRecords(ctx, client, cfg.Identifier)
	if err != nil {
		return nil, 0, err
	}
	profile := ResolveProfile(records)
	return &profile, time.Since(start), nil
}

// ExecuteProfile resolves one identifier into a verified profile and prints
// it. It serves as the main entry point for the 'profile' command.
func ExecuteProfile(ctx context.Context, cfg *contract.Config, client contract.CatalogClient) error {
	profile, duration, err := GetProfileResult(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.WriteProfileResult(profile, cfg, duration)
}

// ExecuteSources prints the raw per-source records before fusion, which is
// the fastest way to see where a fused value came from or why it is missing.
func ExecuteSources(ctx context.Context, cfg *contract.Config, client contract.CatalogClient) error {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		contract.LogLookupHeader(cfg)
	}
	records, err := FetchSourceRecords(ctx, client, cfg.Identifier)
	if err != nil {
		return err
	}
	return outwriter.WriteSourceRecords(&records, cfg, time.Since(start))
}

// GetSignalBundle resolves the identifier, derives transit parameters with
// any flag overrides applied, and generates the full synthetic bundle.
func GetSignalBundle(ctx context.Context, cfg *contract.Config, client contract.CatalogClient) (*schema.SignalBundle, time.Duration, error) {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		contract.LogGenerateHeader(cfg)
	}
	records, err := FetchSourceRecords(ctx, client, cfg.Identifier)
	if err != nil {
		return nil, 0, err
	}
	profile := ResolveProfile(records)
	params := applyOverrides(cfg, DeriveTransitParameters(&profile))
	bundle := NewGenerator(profile.Identifier, params, cfg.Generation).Generate()
	return &bundle, time.Since(start), nil
}

// ExecuteLightCurve generates and prints the time-domain brightness series.
func ExecuteLightCurve(ctx context.Context, cfg *contract.Config, client contract.CatalogClient) error {
	bundle, duration, err := GetSignalBundle(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.WriteLightCurveResult(bundle, cfg, duration)
}

// ExecutePeriodogram generates and prints the period-power spectrum.
func ExecutePeriodogram(ctx context.Context, cfg *contract.Config, client contract.CatalogClient) error {
	bundle, duration, err := GetSignalBundle(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.WritePeriodogramResult(bundle, cfg, duration)
}

// ExecuteFold generates and prints the phase-folded scatter together with the
// clean model curve drawn over it.
func ExecuteFold(ctx context.Context, cfg *contract.Config, client contract.CatalogClient) error {
	bundle, duration, err := GetSignalBundle(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.WriteFoldResult(bundle, cfg, duration)
}

// GetFitResult runs the stochastic parameter search for the configured
// identifier. The observed series comes from a curve file when one is
// configured, otherwise from the synthetic generator.
func GetFitResult(ctx context.Context, cfg *contract.Config, client contract.CatalogClient) (*schema.FitResult, time.Duration, error) {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		contract.LogFitHeader(cfg)
	}
	records, err := FetchSourceRecords(ctx, client, cfg.Identifier)
	if err != nil {
		return nil, 0, err
	}
	profile := ResolveProfile(records)
	params := applyOverrides(cfg, DeriveTransitParameters(&profile))

	var observed []schema.LightCurvePoint
	if cfg.CurveFile != "" {
		observed, err = catalog.ReadCurveFile(cfg.CurveFile)
		if err != nil {
			return nil, 0, err
		}
	} else {
		observed = NewGenerator(profile.Identifier, params, cfg.Generation).Generate().LightCurve
	}

	fit := NewOptimizer(profile.Identifier, cfg.Optimizer).Run(params, observed)
	return &fit, time.Since(start), nil
}

// ExecuteFit runs the parameter search and prints the result.
func ExecuteFit(ctx context.Context, cfg *contract.Config, client contract.CatalogClient) error {
	fit, duration, err := GetFitResult(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.WriteFitResult(fit, cfg, duration)
}

// GetBatchResults analyzes a set of identifiers in parallel and returns the
// top systems ranked by best fit score. With no explicit identifiers the
// whole catalog is analyzed.
func GetBatchResults(ctx context.Context, cfg *contract.Config, client contract.CatalogClient) ([]schema.SystemSummary, time.Duration, error) {
	start := time.Now()

	identifiers := cfg.Identifiers
	if len(identifiers) == 0 {
		var err error
		identifiers, err = client.Identifiers(ctx)
		if err != nil {
			return nil, 0, err
		}
	}
	if len(identifiers) == 0 {
		return nil, 0, errors.New("no systems found")
	}

	if !shouldSuppressHeader(ctx) {
		contract.LogBatchHeader(cfg, len(identifiers))
	}

	summaries := AnalyzeSystems(ctx, cfg, client, identifiers)
	ranked := RankSystems(summaries, cfg.ResultLimit)
	return ranked, time.Since(start), nil
}

// ExecuteBatch runs the batch analysis and prints the ranked summary table.
func ExecuteBatch(ctx context.Context, cfg *contract.Config, client contract.CatalogClient) error {
	ranked, duration, err := GetBatchResults(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.WriteBatchResults(ranked, cfg, duration)
}
