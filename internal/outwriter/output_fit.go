package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/transitlab/transitscope/internal/contract"
	"github.com/transitlab/transitscope/internal/parquet"
	"github.com/transitlab/transitscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteFitResult outputs a parameter search result, dispatching based on the
// output format configured.
func WriteFitResult(fit *schema.FitResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := floatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, fit)
		}, "Wrote JSON")
		if err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"run_id", "iteration", "search_phase", "period_days", "depth", "duration_hours", "epoch_hours", "score", "best_score"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				return writeCSVRowsForTrials(csvWriter, fit, fmtFloat)
			})
		}, "Wrote CSV")
		if err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, func() error {
			return parquet.WriteTrialsParquet(parquet.TrialRows(fit), cfg.OutputFile)
		})
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFitTable(fit, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeFitTable renders the before/after summary and, in detail mode, the
// full trial history.
func writeFitTable(fit *schema.FitResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Stage", "Period (d)", "Depth", "Duration (h)", "Epoch (h)", "Score"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{
			"Initial",
			fmtSeries(fit.Initial.PeriodDays),
			fmtSeries(fit.Initial.Depth),
			fmtSeries(fit.Initial.DurationHours),
			fmtSeries(fit.Initial.EpochHours),
			fmtFloat(fit.InitialScore),
		},
		{
			"Best",
			fmtSeries(fit.Best.PeriodDays),
			fmtSeries(fit.Best.Depth),
			fmtSeries(fit.Best.DurationHours),
			fmtSeries(fit.Best.EpochHours),
			fmtFloat(fit.BestScore),
		},
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if cfg.Detail {
		if err := writeTrialsTable(fit, fmtFloat, writer); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Fit for %s: %+.1f%% improvement over %d trials (run %s)\n", fit.Identifier, fit.Improvement, len(fit.Trials), fit.RunID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Search completed in %v.\n", duration); err != nil {
		return err
	}
	return nil
}

// writeTrialsTable renders the per-iteration search history.
func writeTrialsTable(fit *schema.FitResult, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Iter", "Phase", "Period (d)", "Depth", "Duration (h)", "Score", "Best"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, trial := range fit.Trials {
		data = append(data, []string{
			strconv.Itoa(trial.Iteration),
			string(trial.Phase),
			fmtSeries(trial.Params.PeriodDays),
			fmtSeries(trial.Params.Depth),
			fmtSeries(trial.Params.DurationHours),
			fmtFloat(trial.Score),
			fmtFloat(trial.BestScore),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVRowsForTrials writes one CSV row per optimizer iteration.
func writeCSVRowsForTrials(w *csv.Writer, fit *schema.FitResult, fmtFloat func(float64) string) error {
	for _, trial := range fit.Trials {
		rec := []string{
			fit.RunID,
			strconv.Itoa(trial.Iteration),
			string(trial.Phase),
			fmtSeries(trial.Params.PeriodDays),
			fmtSeries(trial.Params.Depth),
			fmtSeries(trial.Params.DurationHours),
			fmtSeries(trial.Params.EpochHours),
			fmtFloat(trial.Score),
			fmtFloat(trial.BestScore),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
