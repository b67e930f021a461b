package schema

// NumberField builds a numeric field attributed to the given source.
func NumberField(v float64, source SourceName) Field {
	return Field{Kind: NumberKind, Num: v, Source: source}
}

// TextField builds a textual field attributed to the given source.
func TextField(s string, source SourceName) Field {
	return Field{Kind: TextKind, Text: s, Source: source}
}

// UnavailableField returns the "not available" sentinel.
func UnavailableField() Field {
	return Field{}
}

// Available reports whether the field holds a real value.
func (f Field) Available() bool {
	return f.Kind != NoKind
}

// Number returns the numeric value when the field is numeric.
func (f Field) Number() (float64, bool) {
	if f.Kind != NumberKind {
		return 0, false
	}
	return f.Num, true
}

// Display renders the field for human-readable output. Numeric values go
// through fmtFloat so table precision stays consistent across columns.
func (f Field) Display(fmtFloat func(float64) string) string {
	switch f.Kind {
	case NumberKind:
		return fmtFloat(f.Num)
	case TextKind:
		return f.Text
	default:
		return NotAvailable
	}
}

// SourceLabel renders the field's provenance for human-readable output.
func (f Field) SourceLabel() string {
	if f.Source == NoSource {
		return "-"
	}
	return string(f.Source)
}

// InvalidProfile returns the sentinel profile for an identifier the upstream
// sources do not recognize. Every data field holds the sentinel value, so
// rendering needs no special failure path.
func InvalidProfile(identifier string) VerifiedProfile {
	return VerifiedProfile{
		Identifier: identifier,
		StarName:   TextField(InvalidIdentifierName, NoSource),
	}
}

// IsInvalid reports whether the profile is the unknown-identifier sentinel.
func (p *VerifiedProfile) IsInvalid() bool {
	return p.StarName.Kind == TextKind && p.StarName.Text == InvalidIdentifierName
}

// Rows returns the profile's data fields in display order.
func (p *VerifiedProfile) Rows() []ProfileRow {
	return []ProfileRow{
		{Label: "Star Name", Unit: "", Field: p.StarName},
		{Label: "Planet Name", Unit: "", Field: p.PlanetName},
		{Label: "Distance", Unit: "ly", Field: p.DistanceLY},
		{Label: "Coordinates", Unit: "deg", Field: p.Coordinates},
		{Label: "Magnitude", Unit: "mag", Field: p.Magnitude},
		{Label: "Temperature", Unit: "K", Field: p.TemperatureK},
		{Label: "Radius", Unit: "R_sun", Field: p.RadiusSun},
		{Label: "Mass", Unit: "M_sun", Field: p.MassSun},
		{Label: "Luminosity", Unit: "L_sun", Field: p.LuminositySun},
		{Label: "Surface Gravity", Unit: "log g", Field: p.SurfaceGravity},
		{Label: "Metallicity", Unit: "dex", Field: p.Metallicity},
		{Label: "Orbital Period", Unit: "days", Field: p.PeriodDays},
		{Label: "Planet Radius", Unit: "R_earth", Field: p.PlanetRadiusEarth},
		{Label: "Planet Mass", Unit: "M_earth", Field: p.PlanetMassEarth},
		{Label: "Equilibrium Temp", Unit: "K", Field: p.EquilibriumTempK},
	}
}

// Completeness returns how many profile fields hold real values out of the
// total, as counts and as a percentage.
func (p *VerifiedProfile) Completeness() (available, total int, pct float64) {
	rows := p.Rows()
	total = len(rows)
	for _, r := range rows {
		if r.Field.Available() {
			available++
		}
	}
	if total > 0 {
		pct = float64(available) / float64(total) * 100
	}
	return available, total, pct
}
