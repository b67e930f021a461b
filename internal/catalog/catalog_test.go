package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/transitlab/transitscope/internal/contract"
)

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already canonical", input: "TRAPPIST-1", expected: "TRAPPIST-1"},
		{name: "lowercase", input: "trappist-1", expected: "TRAPPIST-1"},
		{name: "extra whitespace", input: "  proxima   cen ", expected: "PROXIMA CEN"},
		{name: "tabs collapse", input: "kic\t8462852", expected: "KIC 8462852"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdentifier(tt.input))
		})
	}
}

func TestCatalogFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "TRAPPIST-1", expected: "trappist-1.json"},
		{input: "Proxima Cen", expected: "proxima_cen.json"},
		{input: "  55   cnc ", expected: "55_cnc.json"},
		{input: "KIC 8462852", expected: "kic_8462852.json"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CatalogFileName(tt.input))
		})
	}
}

func TestNewClientSelection(t *testing.T) {
	cfg := &contract.Config{}
	assert.IsType(t, &SnapshotClient{}, NewClient(cfg))

	cfg.CatalogDir = t.TempDir()
	assert.IsType(t, &DirClient{}, NewClient(cfg))
}
