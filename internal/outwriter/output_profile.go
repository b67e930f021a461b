package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/transitlab/transitscope/internal/contract"
	"github.com/transitlab/transitscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteProfileResult outputs a fused profile, dispatching based on the output format configured.
func WriteProfileResult(profile *schema.VerifiedProfile, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := floatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeProfileJSONResult(profile, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeProfileCSVResult(profile, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for profiles")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileTable(profile, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeProfileJSONResult handles opening the file and calling the JSON writer.
func writeProfileJSONResult(profile *schema.VerifiedProfile, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONProfile(w, profile)
	}, "Wrote JSON")
}

// writeProfileCSVResult handles opening the file and calling the CSV writer.
func writeProfileCSVResult(profile *schema.VerifiedProfile, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"identifier", "field", "value", "unit", "source"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVRowsForProfile(csvWriter, profile, fmtFloat)
		})
	}, "Wrote CSV")
}

// writeProfileTable generates and writes the human-readable provenance card.
func writeProfileTable(profile *schema.VerifiedProfile, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Field", "Value", "Unit", "Source"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range profile.Rows() {
		data = append(data, []string{
			r.Label,
			r.Field.Display(fmtFloat),
			r.Unit,
			r.Field.SourceLabel(),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	available, total, pct := profile.Completeness()
	label := schema.GetPlainLabel(pct)
	if cfg.UseColors {
		label = contract.GetColorLabel(pct)
	}
	if _, err := fmt.Fprintf(writer, "Profile for %s: %d/%d fields resolved (%.1f%%) %s\n", profile.Identifier, available, total, pct, label); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Lookup completed in %v.\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVRowsForProfile writes one CSV row per profile field.
func writeCSVRowsForProfile(w *csv.Writer, profile *schema.VerifiedProfile, fmtFloat func(float64) string) error {
	for _, r := range profile.Rows() {
		rec := []string{
			profile.Identifier,
			r.Label,
			r.Field.Display(fmtFloat),
			r.Unit,
			r.Field.SourceLabel(),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONProfile writes the profile in JSON format with the completeness
// summary folded in.
func writeJSONProfile(w io.Writer, profile *schema.VerifiedProfile) error {
	available, total, pct := profile.Completeness()

	type JSONProfile struct {
		Label        string  `json:"label"`
		Available    int     `json:"available"`
		Total        int     `json:"total"`
		Completeness float64 `json:"completeness"`
		schema.VerifiedProfile
	}

	output := JSONProfile{
		Label:           schema.GetPlainLabel(pct),
		Available:       available,
		Total:           total,
		Completeness:    pct,
		VerifiedProfile: *profile,
	}
	return writeJSON(w, output)
}
