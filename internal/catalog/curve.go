package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/transitlab/transitscope/schema"
)

// ReadCurveFile loads an observed brightness series from a CSV file with
// time_hours,brightness rows. A leading header row is detected and skipped.
func ReadCurveFile(path string) ([]schema.LightCurvePoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading curve file %s: %w", path, err)
	}

	points := make([]schema.LightCurvePoint, 0, len(rows))
	for i, row := range rows {
		t, terr := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		b, berr := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if terr != nil || berr != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("curve file %s row %d: cannot parse %q,%q", path, i+1, row[0], row[1])
		}
		points = append(points, schema.LightCurvePoint{TimeHours: t, Brightness: b})
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("curve file %s has no data rows", path)
	}
	return points, nil
}
