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

// WriteLightCurveResult outputs the time-domain brightness series,
// dispatching based on the output format configured.
func WriteLightCurveResult(bundle *schema.SignalBundle, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			output := struct {
				Identifier string                   `json:"identifier"`
				Params     schema.TransitParameters `json:"params"`
				LightCurve []schema.LightCurvePoint `json:"light_curve"`
			}{bundle.Identifier, bundle.Params, bundle.LightCurve}
			return writeJSON(w, output)
		}, "Wrote JSON")
		if err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"time_hours", "brightness"}, func(csvWriter *csv.Writer) error {
				for _, pt := range bundle.LightCurve {
					if err := csvWriter.Write([]string{fmtSeries(pt.TimeHours), fmtSeries(pt.Brightness)}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
		if err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, func() error {
			return parquet.WriteLightCurveParquet(parquet.LightCurveRows(bundle), cfg.OutputFile)
		})
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLightCurveTable(bundle, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// WritePeriodogramResult outputs the period-power spectrum, dispatching based
// on the output format configured.
func WritePeriodogramResult(bundle *schema.SignalBundle, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			output := struct {
				Identifier  string                    `json:"identifier"`
				Params      schema.TransitParameters  `json:"params"`
				Periodogram []schema.PeriodPowerPoint `json:"periodogram"`
			}{bundle.Identifier, bundle.Params, bundle.Periodogram}
			return writeJSON(w, output)
		}, "Wrote JSON")
		if err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"period_days", "power"}, func(csvWriter *csv.Writer) error {
				for _, pt := range bundle.Periodogram {
					if err := csvWriter.Write([]string{fmtSeries(pt.PeriodDays), fmtSeries(pt.Power)}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
		if err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, func() error {
			return parquet.WritePeriodogramParquet(parquet.PeriodogramRows(bundle), cfg.OutputFile)
		})
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePeriodogramTable(bundle, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// WriteFoldResult outputs the phase-folded scatter and the clean model curve,
// dispatching based on the output format configured.
func WriteFoldResult(bundle *schema.SignalBundle, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			output := struct {
				Identifier string                   `json:"identifier"`
				Params     schema.TransitParameters `json:"params"`
				Folded     []schema.PhasePoint      `json:"folded"`
				Model      []schema.PhasePoint      `json:"model"`
			}{bundle.Identifier, bundle.Params, bundle.Folded, bundle.Model}
			return writeJSON(w, output)
		}, "Wrote JSON")
		if err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"series", "phase", "brightness"}, func(csvWriter *csv.Writer) error {
				return writeCSVRowsForFold(csvWriter, bundle)
			})
		}, "Wrote CSV")
		if err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, func() error {
			return parquet.WritePhaseParquet(parquet.PhaseRows(bundle), cfg.OutputFile)
		})
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFoldTable(bundle, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeSeriesParamsLine prints the parameter set a bundle was generated from.
func writeSeriesParamsLine(w io.Writer, params schema.TransitParameters) error {
	_, err := fmt.Fprintf(w, "Params: period %s d, depth %s, duration %s h, epoch %s h\n",
		fmtSeries(params.PeriodDays), fmtSeries(params.Depth),
		fmtSeries(params.DurationHours), fmtSeries(params.EpochHours))
	return err
}

// writeLightCurveTable renders a preview of the brightness series.
func writeLightCurveTable(bundle *schema.SignalBundle, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"#", "Time (h)", "Brightness"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	preview := min(cfg.SamplePoints, len(bundle.LightCurve))
	var data [][]string
	for i, pt := range bundle.LightCurve[:preview] {
		data = append(data, []string{strconv.Itoa(i + 1), fmtSeries(pt.TimeHours), fmtSeries(pt.Brightness)})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if err := writeSeriesParamsLine(writer, bundle.Params); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing first %d of %d samples for %s\n", preview, len(bundle.LightCurve), bundle.Identifier); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Generation completed in %v.\n", duration); err != nil {
		return err
	}
	return nil
}

// writePeriodogramTable renders a preview of the spectrum plus its peak.
func writePeriodogramTable(bundle *schema.SignalBundle, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"#", "Period (d)", "Power"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	preview := min(cfg.SamplePoints, len(bundle.Periodogram))
	var data [][]string
	for i, pt := range bundle.Periodogram[:preview] {
		data = append(data, []string{strconv.Itoa(i + 1), fmtSeries(pt.PeriodDays), fmtSeries(pt.Power)})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if err := writeSeriesParamsLine(writer, bundle.Params); err != nil {
		return err
	}
	if peak, ok := peakPoint(bundle.Periodogram); ok {
		if _, err := fmt.Fprintf(writer, "Peak response at %s d (power %s) out of %d trial periods\n", fmtSeries(peak.PeriodDays), fmtSeries(peak.Power), len(bundle.Periodogram)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Generation completed in %v.\n", duration); err != nil {
		return err
	}
	return nil
}

// writeFoldTable renders a preview of the folded scatter.
func writeFoldTable(bundle *schema.SignalBundle, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"#", "Phase", "Brightness"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	preview := min(cfg.SamplePoints, len(bundle.Folded))
	var data [][]string
	for i, pt := range bundle.Folded[:preview] {
		data = append(data, []string{strconv.Itoa(i + 1), fmtSeries(pt.Phase), fmtSeries(pt.Brightness)})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if err := writeSeriesParamsLine(writer, bundle.Params); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Folded %d samples for %s; model curve has %d points\n", len(bundle.Folded), bundle.Identifier, len(bundle.Model)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Generation completed in %v.\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVRowsForFold writes the folded scatter and model curve into one CSV,
// folded rows first.
func writeCSVRowsForFold(w *csv.Writer, bundle *schema.SignalBundle) error {
	for _, pt := range bundle.Folded {
		if err := w.Write([]string{parquet.FoldedSeries, fmtSeries(pt.Phase), fmtSeries(pt.Brightness)}); err != nil {
			return err
		}
	}
	for _, pt := range bundle.Model {
		if err := w.Write([]string{parquet.ModelSeries, fmtSeries(pt.Phase), fmtSeries(pt.Brightness)}); err != nil {
			return err
		}
	}
	return nil
}

// peakPoint returns the spectrum sample with the highest power.
func peakPoint(spectrum []schema.PeriodPowerPoint) (schema.PeriodPowerPoint, bool) {
	if len(spectrum) == 0 {
		return schema.PeriodPowerPoint{}, false
	}
	peak := spectrum[0]
	for _, pt := range spectrum[1:] {
		if pt.Power > peak.Power {
			peak = pt
		}
	}
	return peak, true
}
