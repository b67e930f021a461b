package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transitlab/transitscope/schema"
)

func writeCurveFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curve.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCurveFile(t *testing.T) {
	path := writeCurveFile(t, "time_hours,brightness\n0.0,1.0002\n0.5,0.9898\n1.0, 1.0001\n")

	points, err := ReadCurveFile(path)
	require.NoError(t, err)
	assert.Equal(t, []schema.LightCurvePoint{
		{TimeHours: 0.0, Brightness: 1.0002},
		{TimeHours: 0.5, Brightness: 0.9898},
		{TimeHours: 1.0, Brightness: 1.0001},
	}, points)
}

func TestReadCurveFileWithoutHeader(t *testing.T) {
	path := writeCurveFile(t, "0.0,1.0\n0.5,0.99\n")

	points, err := ReadCurveFile(path)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 0.99, points[1].Brightness)
}

func TestReadCurveFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"malformed data row", "0.0,1.0\n0.5,oops\n", "cannot parse"},
		{"header only", "time_hours,brightness\n", "no data rows"},
		{"empty file", "", "no data rows"},
		{"wrong column count", "0.0,1.0,extra\n", "reading curve file"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCurveFile(t, tc.content)
			_, err := ReadCurveFile(path)
			assert.ErrorContains(t, err, tc.errText)
		})
	}
}

func TestReadCurveFileMissing(t *testing.T) {
	_, err := ReadCurveFile(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
