package schema

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldConstructors(t *testing.T) {
	num := NumberField(40.54, GaiaSource)
	assert.Equal(t, NumberKind, num.Kind)
	assert.Equal(t, GaiaSource, num.Source)
	v, ok := num.Number()
	require.True(t, ok)
	assert.InDelta(t, 40.54, v, 1e-12)

	text := TextField("TRAPPIST-1", TICSource)
	assert.Equal(t, TextKind, text.Kind)
	assert.Equal(t, "TRAPPIST-1", text.Text)
	_, ok = text.Number()
	assert.False(t, ok, "text field should not resolve as a number")

	missing := UnavailableField()
	assert.False(t, missing.Available())
	assert.Equal(t, NoSource, missing.Source, "sentinel must not carry a source")
}

func TestFieldDisplay(t *testing.T) {
	fmtFloat := func(v float64) string { return fmt.Sprintf("%.2f", v) }

	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{name: "number", field: NumberField(40.545, GaiaSource), want: "40.55"},
		{name: "text", field: TextField("TRAPPIST-1 b", ExoArchiveSource), want: "TRAPPIST-1 b"},
		{name: "unavailable", field: UnavailableField(), want: NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.Display(fmtFloat))
		})
	}
}

func TestFieldSourceLabel(t *testing.T) {
	assert.Equal(t, "gaia", NumberField(1, GaiaSource).SourceLabel())
	assert.Equal(t, "-", UnavailableField().SourceLabel())
}

func TestInvalidProfile(t *testing.T) {
	p := InvalidProfile("NOT-A-STAR")
	assert.True(t, p.IsInvalid())
	assert.Equal(t, "NOT-A-STAR", p.Identifier)
	assert.Equal(t, InvalidIdentifierName, p.StarName.Text)

	// Every data field except the sentinel name is unavailable.
	available, total, pct := p.Completeness()
	assert.Equal(t, 1, available)
	assert.Equal(t, 15, total)
	assert.InDelta(t, 100.0/15.0, pct, 1e-9)

	regular := VerifiedProfile{StarName: TextField("Proxima Cen", TICSource)}
	assert.False(t, regular.IsInvalid())
}

func TestProfileRowsOrder(t *testing.T) {
	p := VerifiedProfile{Identifier: "TRAPPIST-1"}
	rows := p.Rows()
	require.Len(t, rows, 15)
	assert.Equal(t, "Star Name", rows[0].Label)
	assert.Equal(t, "Planet Name", rows[1].Label)
	assert.Equal(t, "Distance", rows[2].Label)
	assert.Equal(t, "ly", rows[2].Unit)
	assert.Equal(t, "Equilibrium Temp", rows[len(rows)-1].Label)
}

func TestProfileCompleteness(t *testing.T) {
	p := VerifiedProfile{
		Identifier: "TRAPPIST-1",
		StarName:   TextField("TRAPPIST-1", TICSource),
		DistanceLY: NumberField(40.54, GaiaSource),
		Magnitude:  NumberField(18.8, SimbadSource),
	}

	available, total, pct := p.Completeness()
	assert.Equal(t, 3, available)
	assert.Equal(t, 15, total)
	assert.InDelta(t, 20.0, pct, 1e-9)
}
