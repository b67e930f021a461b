package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/transitlab/transitscope/internal/contract"
	"github.com/transitlab/transitscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteBatchResults outputs the ranked batch summaries, dispatching based on
// the output format configured.
func WriteBatchResults(systems []schema.SystemSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := floatFormatter(cfg.Precision)
	enriched := schema.EnrichSystems(systems)

	switch cfg.Output {
	case schema.JSONOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, enriched)
		}, "Wrote JSON")
		if err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{
				"rank", "identifier", "star_name", "planet_name", "distance_ly",
				"period_days", "depth", "best_score", "improvement_pct",
				"completeness", "label",
			}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				return writeCSVRowsForBatch(csvWriter, enriched, fmtFloat)
			})
		}, "Wrote CSV")
		if err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for batch summaries")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchTable(enriched, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeBatchTable renders the ranked summary table.
func writeBatchTable(systems []schema.EnrichedSystemSummary, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "System", "Star", "Planet", "Period (d)", "Score", "Label"}
	if cfg.Detail {
		headers = append(headers, "Distance (ly)", "Depth", "Improv %", "Complete %")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range systems {
		label := s.Label
		if cfg.UseColors {
			label = contract.GetColorLabel(s.Completeness)
		}
		row := []string{
			strconv.Itoa(s.Rank),
			contract.TruncateText(s.Identifier, getMaxTableNameWidth(cfg)),
			s.StarName,
			s.PlanetName,
			fmtFloat(s.PeriodDays),
			fmtFloat(s.BestScore),
			label,
		}
		if cfg.Detail {
			row = append(row,
				s.DistanceLY.Display(fmtFloat),
				fmtSeries(s.Depth),
				fmtFloat(s.Improvement),
				fmtFloat(s.Completeness),
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing top %d systems by fit score\n", len(systems)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Batch completed in %v with %d workers.\n", duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeCSVRowsForBatch writes one CSV row per ranked system.
func writeCSVRowsForBatch(w *csv.Writer, systems []schema.EnrichedSystemSummary, fmtFloat func(float64) string) error {
	for _, s := range systems {
		rec := []string{
			strconv.Itoa(s.Rank),
			s.Identifier,
			s.StarName,
			s.PlanetName,
			s.DistanceLY.Display(fmtFloat),
			fmtSeries(s.PeriodDays),
			fmtSeries(s.Depth),
			fmtFloat(s.BestScore),
			fmtFloat(s.Improvement),
			fmtFloat(s.Completeness),
			s.Label,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
