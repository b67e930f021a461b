package core

import (
	"context"
	"sync"

	"github.com/transitlab/transitscope/internal/contract"
	"github.com/transitlab/transitscope/schema"
)

// AnalyzeSystems runs the fusion, derivation, generation and fit pipeline for
// each identifier in parallel. It spawns cfg.Workers goroutines and collects
// one summary per system; systems whose catalog lookups fail are logged and
// skipped rather than aborting the whole batch.
func AnalyzeSystems(ctx context.Context, cfg *contract.Config, client contract.CatalogClient, identifiers []string) []schema.SystemSummary {
	idCh := make(chan string, len(identifiers))
	summaryCh := make(chan schema.SystemSummary, len(identifiers))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for id := range idCh {
				summary, err := analyzeSystem(ctx, cfg, client, id)
				if err != nil {
					contract.LogWarn("Skipping "+id, err)
					continue
				}
				summaryCh <- summary
			}
		})
	}

	for _, id := range identifiers {
		idCh <- id
	}
	close(idCh)

	wg.Wait()
	close(summaryCh)

	summaries := make([]schema.SystemSummary, 0, len(identifiers))
	for s := range summaryCh {
		summaries = append(summaries, s)
	}
	return summaries
}

// analyzeSystem builds one batch row. Unknown identifiers still produce a row
// carrying the sentinel profile, which keeps explicit batch arguments honest
// about what the catalogs could not resolve.
func analyzeSystem(ctx context.Context, cfg *contract.Config, client contract.CatalogClient, identifier string) (schema.SystemSummary, error) {
	records, err := FetchSourceRecords(ctx, client, identifier)
	if err != nil {
		return schema.SystemSummary{}, err
	}

	profile := ResolveProfile(records)
	params := DeriveTransitParameters(&profile)
	bundle := NewGenerator(profile.Identifier, params, cfg.Generation).Generate()
	fit := NewOptimizer(profile.Identifier, cfg.Optimizer).Run(params, bundle.LightCurve)
	_, _, completeness := profile.Completeness()

	starName := schema.NotAvailable
	if profile.StarName.Available() {
		starName = profile.StarName.Text
	}
	planetName := schema.NotAvailable
	if profile.PlanetName.Available() {
		planetName = profile.PlanetName.Text
	}

	return schema.SystemSummary{
		Identifier:   profile.Identifier,
		StarName:     starName,
		PlanetName:   planetName,
		DistanceLY:   profile.DistanceLY,
		PeriodDays:   params.PeriodDays,
		Depth:        params.Depth,
		BestScore:    fit.BestScore,
		Improvement:  fit.Improvement,
		Completeness: completeness,
	}, nil
}
