package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/transitlab/transitscope/internal/contract"
	"github.com/transitlab/transitscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSourceRecords outputs the raw per-source records before fusion,
// dispatching based on the output format configured.
func WriteSourceRecords(records *schema.SourceRecords, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := floatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeSourcesJSONResult(records, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeSourcesCSVResult(records, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for source records")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSourcesTable(records, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeSourcesJSONResult handles opening the file and calling the JSON writer.
func writeSourcesJSONResult(records *schema.SourceRecords, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, records)
	}, "Wrote JSON")
}

// writeSourcesCSVResult handles opening the file and calling the CSV writer.
func writeSourcesCSVResult(records *schema.SourceRecords, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"identifier", "source", "recognized", "key", "value"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVRowsForSources(csvWriter, records, fmtFloat)
		})
	}, "Wrote CSV")
}

// sortedKeys returns a record's value keys in a stable order.
func sortedKeys(record schema.RawSourceRecord) []string {
	keys := make([]string, 0, len(record.Values))
	for k := range record.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// writeSourcesTable renders one table spanning all four sources.
func writeSourcesTable(records *schema.SourceRecords, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Source", "Key", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	valueCount := 0
	for _, name := range schema.AllFetchSources {
		record := records.BySource(name)
		if record.Invalid {
			data = append(data, []string{string(name), "-", "unrecognized identifier"})
			continue
		}
		for _, key := range sortedKeys(record) {
			data = append(data, []string{string(name), key, fmtValue(record.Values[key], fmtFloat)})
			valueCount++
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Raw records for %s: %d values across %d sources\n", records.Identifier, valueCount, len(schema.AllFetchSources)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Lookup completed in %v.\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVRowsForSources writes one CSV row per source value, with a single
// marker row for sources that did not recognize the identifier.
func writeCSVRowsForSources(w *csv.Writer, records *schema.SourceRecords, fmtFloat func(float64) string) error {
	for _, name := range schema.AllFetchSources {
		record := records.BySource(name)
		if record.Invalid {
			if err := w.Write([]string{records.Identifier, string(name), "false", "", ""}); err != nil {
				return err
			}
			continue
		}
		for _, key := range sortedKeys(record) {
			rec := []string{records.Identifier, string(name), "true", key, fmtValue(record.Values[key], fmtFloat)}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	return nil
}
