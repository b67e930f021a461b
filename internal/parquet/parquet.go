// Package parquet provides data structures and functions for exporting
// synthetic signal series and optimization trials to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/transitlab/transitscope/schema"
)

// Series labels distinguishing the two phase-domain curves in one export.
const (
	FoldedSeries = "folded"
	ModelSeries  = "model"
)

// LightCurveRow is one time-domain brightness sample in an export.
type LightCurveRow struct {
	// Identifier is the system the series was generated for
	Identifier string `parquet:"identifier,snappy"`

	// TimeHours is the sample time offset from the window start
	TimeHours float64 `parquet:"time_hours,snappy"`

	// Brightness is the normalized flux at this sample
	Brightness float64 `parquet:"brightness,snappy"`
}

// PeriodogramRow is one period-power sample in an export.
type PeriodogramRow struct {
	// Identifier is the system the spectrum was generated for
	Identifier string `parquet:"identifier,snappy"`

	// PeriodDays is the trial period of this sample
	PeriodDays float64 `parquet:"period_days,snappy"`

	// Power is the detection response at this trial period
	Power float64 `parquet:"power,snappy"`
}

// PhaseRow is one phase-domain sample in an export. The folded scatter and
// the clean model curve share a schema and are told apart by Series.
type PhaseRow struct {
	// Identifier is the system the curves were generated for
	Identifier string `parquet:"identifier,snappy"`

	// Series is FoldedSeries or ModelSeries
	Series string `parquet:"series,snappy"`

	// Phase is the orbital phase in [-0.5, 0.5)
	Phase float64 `parquet:"phase,snappy"`

	// Brightness is the normalized flux at this phase
	Brightness float64 `parquet:"brightness,snappy"`
}

// TrialRow is one optimizer iteration in an export.
type TrialRow struct {
	// RunID is the unique identifier of the parameter search run
	RunID string `parquet:"run_id,snappy"`

	// Identifier is the system the search ran against
	Identifier string `parquet:"identifier,snappy"`

	// Iteration is the 1-based trial number within the run
	Iteration int32 `parquet:"iteration,snappy"`

	// SearchPhase is the strategy that produced the candidate (explore or exploit)
	SearchPhase string `parquet:"search_phase,snappy"`

	// PeriodDays is the candidate orbital period
	PeriodDays float64 `parquet:"period_days,snappy"`

	// Depth is the candidate fractional transit depth
	Depth float64 `parquet:"depth,snappy"`

	// DurationHours is the candidate transit duration
	DurationHours float64 `parquet:"duration_hours,snappy"`

	// EpochHours is the mid-transit reference time, fixed across the run
	EpochHours float64 `parquet:"epoch_hours,snappy"`

	// Score is the fit score of this candidate
	Score float64 `parquet:"score,snappy"`

	// BestScore is the best score seen up to and including this trial
	BestScore float64 `parquet:"best_score,snappy"`
}

// LightCurveRows flattens a bundle's time-domain series into export rows.
func LightCurveRows(bundle *schema.SignalBundle) []LightCurveRow {
	rows := make([]LightCurveRow, len(bundle.LightCurve))
	for i, pt := range bundle.LightCurve {
		rows[i] = LightCurveRow{
			Identifier: bundle.Identifier,
			TimeHours:  pt.TimeHours,
			Brightness: pt.Brightness,
		}
	}
	return rows
}

// PeriodogramRows flattens a bundle's spectrum into export rows.
func PeriodogramRows(bundle *schema.SignalBundle) []PeriodogramRow {
	rows := make([]PeriodogramRow, len(bundle.Periodogram))
	for i, pt := range bundle.Periodogram {
		rows[i] = PeriodogramRow{
			Identifier: bundle.Identifier,
			PeriodDays: pt.PeriodDays,
			Power:      pt.Power,
		}
	}
	return rows
}

// PhaseRows flattens a bundle's folded scatter and model curve into one
// export, folded rows first.
func PhaseRows(bundle *schema.SignalBundle) []PhaseRow {
	rows := make([]PhaseRow, 0, len(bundle.Folded)+len(bundle.Model))
	for _, pt := range bundle.Folded {
		rows = append(rows, PhaseRow{
			Identifier: bundle.Identifier,
			Series:     FoldedSeries,
			Phase:      pt.Phase,
			Brightness: pt.Brightness,
		})
	}
	for _, pt := range bundle.Model {
		rows = append(rows, PhaseRow{
			Identifier: bundle.Identifier,
			Series:     ModelSeries,
			Phase:      pt.Phase,
			Brightness: pt.Brightness,
		})
	}
	return rows
}

// TrialRows flattens a fit result's trial history into export rows.
func TrialRows(fit *schema.FitResult) []TrialRow {
	rows := make([]TrialRow, len(fit.Trials))
	for i, trial := range fit.Trials {
		rows[i] = TrialRow{
			RunID:         fit.RunID,
			Identifier:    fit.Identifier,
			Iteration:     int32(trial.Iteration),
			SearchPhase:   string(trial.Phase),
			PeriodDays:    trial.Params.PeriodDays,
			Depth:         trial.Params.Depth,
			DurationHours: trial.Params.DurationHours,
			EpochHours:    trial.Params.EpochHours,
			Score:         trial.Score,
			BestScore:     trial.BestScore,
		}
	}
	return rows
}

// writeParquet writes rows to a new Parquet file at outputPath. The schema
// is inferred from T's struct tags.
func writeParquet[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WriteLightCurveParquet writes a slice of LightCurveRow structs to a Parquet file.
func WriteLightCurveParquet(rows []LightCurveRow, outputPath string) error {
	return writeParquet(rows, outputPath)
}

// WritePeriodogramParquet writes a slice of PeriodogramRow structs to a Parquet file.
func WritePeriodogramParquet(rows []PeriodogramRow, outputPath string) error {
	return writeParquet(rows, outputPath)
}

// WritePhaseParquet writes a slice of PhaseRow structs to a Parquet file.
func WritePhaseParquet(rows []PhaseRow, outputPath string) error {
	return writeParquet(rows, outputPath)
}

// WriteTrialsParquet writes a slice of TrialRow structs to a Parquet file.
func WriteTrialsParquet(rows []TrialRow, outputPath string) error {
	return writeParquet(rows, outputPath)
}
