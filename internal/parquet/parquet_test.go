package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transitlab/transitscope/schema"
)

func testBundle() *schema.SignalBundle {
	return &schema.SignalBundle{
		Identifier: "TRAPPIST-1",
		Params:     schema.TransitParameters{PeriodDays: 1.51, Depth: 0.007, DurationHours: 1.4, EpochHours: 12},
		LightCurve: []schema.LightCurvePoint{
			{TimeHours: 0, Brightness: 1.0001},
			{TimeHours: 0.5, Brightness: 0.9931},
		},
		Periodogram: []schema.PeriodPowerPoint{
			{PeriodDays: 1.0, Power: 0.12},
			{PeriodDays: 1.51, Power: 0.98},
		},
		Folded: []schema.PhasePoint{{Phase: -0.25, Brightness: 1.0002}},
		Model:  []schema.PhasePoint{{Phase: -0.5, Brightness: 1.0}, {Phase: 0, Brightness: 0.993}},
	}
}

func testFit() *schema.FitResult {
	return &schema.FitResult{
		RunID:      "0c2c7f3e-8f3b-4a38-9f0e-1d86f31a4f11",
		Identifier: "TRAPPIST-1",
		Trials: []schema.OptimizationTrial{
			{
				Iteration: 1,
				Phase:     schema.ExplorePhase,
				Params:    schema.TransitParameters{PeriodDays: 1.49, Depth: 0.0071, DurationHours: 1.38, EpochHours: 12},
				Score:     140.2,
				BestScore: 140.2,
			},
			{
				Iteration: 2,
				Phase:     schema.ExploitPhase,
				Params:    schema.TransitParameters{PeriodDays: 1.51, Depth: 0.007, DurationHours: 1.4, EpochHours: 12},
				Score:     188.9,
				BestScore: 188.9,
			},
		},
	}
}

func TestRowStructTags(t *testing.T) {
	tests := []struct {
		name    string
		schema  *parquet.Schema
		columns []string
	}{
		{
			name:    "light curve",
			schema:  parquet.SchemaOf(new(LightCurveRow)),
			columns: []string{"identifier", "time_hours", "brightness"},
		},
		{
			name:    "periodogram",
			schema:  parquet.SchemaOf(new(PeriodogramRow)),
			columns: []string{"identifier", "period_days", "power"},
		},
		{
			name:    "phase",
			schema:  parquet.SchemaOf(new(PhaseRow)),
			columns: []string{"identifier", "series", "phase", "brightness"},
		},
		{
			name:   "trial",
			schema: parquet.SchemaOf(new(TrialRow)),
			columns: []string{
				"run_id", "identifier", "iteration", "search_phase",
				"period_days", "depth", "duration_hours", "epoch_hours",
				"score", "best_score",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NotNil(t, tc.schema)
			for _, colName := range tc.columns {
				_, ok := tc.schema.Lookup(colName)
				require.True(t, ok, "Column %s should exist in schema", colName)
			}
		})
	}
}

func TestPhaseRowsInterleavesSeries(t *testing.T) {
	rows := PhaseRows(testBundle())
	require.Len(t, rows, 3)

	assert.Equal(t, FoldedSeries, rows[0].Series)
	assert.Equal(t, ModelSeries, rows[1].Series)
	assert.Equal(t, ModelSeries, rows[2].Series)
	assert.Equal(t, -0.25, rows[0].Phase)
	assert.Equal(t, "TRAPPIST-1", rows[0].Identifier)
}

func TestTrialRowsCarryRunID(t *testing.T) {
	fit := testFit()
	rows := TrialRows(fit)
	require.Len(t, rows, 2)

	assert.Equal(t, fit.RunID, rows[0].RunID)
	assert.Equal(t, fit.RunID, rows[1].RunID)
	assert.Equal(t, int32(1), rows[0].Iteration)
	assert.Equal(t, string(schema.ExploitPhase), rows[1].SearchPhase)
	assert.Equal(t, 1.51, rows[1].PeriodDays)
}

func TestWriteLightCurveParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "lightcurve.parquet")
	data := LightCurveRows(testBundle())

	err := WriteLightCurveParquet(data, outputPath)
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[LightCurveRow](file)
	defer reader.Close()

	readData := make([]LightCurveRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)

	for i := range data {
		assert.Equal(t, data[i].Identifier, readData[i].Identifier)
		assert.Equal(t, data[i].TimeHours, readData[i].TimeHours)
		assert.Equal(t, data[i].Brightness, readData[i].Brightness)
	}
}

func TestWriteTrialsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "trials.parquet")
	data := TrialRows(testFit())

	err := WriteTrialsParquet(data, outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[TrialRow](file)
	defer reader.Close()

	readData := make([]TrialRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)

	for i := range data {
		assert.Equal(t, data[i].RunID, readData[i].RunID)
		assert.Equal(t, data[i].Iteration, readData[i].Iteration)
		assert.Equal(t, data[i].SearchPhase, readData[i].SearchPhase)
		assert.Equal(t, data[i].Score, readData[i].Score)
	}
}

func TestWritePhaseParquetEmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty_phase.parquet")

	err := WritePhaseParquet([]PhaseRow{}, outputPath)
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWritePeriodogramParquetInvalidPath(t *testing.T) {
	data := PeriodogramRows(testBundle())
	err := WritePeriodogramParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err)
}
