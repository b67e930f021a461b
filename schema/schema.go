// Package schema has configs, models and shared constants for all parts of transitscope.
package schema

// Field is one fused profile entry: a numeric or textual value plus the source
// that supplied it. The zero value is the "not available" sentinel, which
// carries no source.
type Field struct {
	Kind   FieldKind  `json:"kind,omitempty"`
	Num    float64    `json:"num,omitempty"`
	Text   string     `json:"text,omitempty"`
	Source SourceName `json:"source,omitempty"`
}

// VerifiedProfile is the single consistent view of a system assembled from all
// catalog sources. Every field records its own provenance; fields no source
// could supply hold the sentinel value.
type VerifiedProfile struct {
	Identifier        string `json:"identifier"`
	StarName          Field  `json:"star_name"`
	PlanetName        Field  `json:"planet_name"`
	DistanceLY        Field  `json:"distance_ly"`
	Coordinates       Field  `json:"coordinates"`
	Magnitude         Field  `json:"magnitude"`
	TemperatureK      Field  `json:"temperature_k"`
	RadiusSun         Field  `json:"radius_sun"`
	MassSun           Field  `json:"mass_sun"`
	LuminositySun     Field  `json:"luminosity_sun"`
	SurfaceGravity    Field  `json:"surface_gravity"`
	Metallicity       Field  `json:"metallicity"`
	PeriodDays        Field  `json:"period_days"`
	PlanetRadiusEarth Field  `json:"planet_radius_earth"`
	PlanetMassEarth   Field  `json:"planet_mass_earth"`
	EquilibriumTempK  Field  `json:"equilibrium_temp_k"`
}

// ProfileRow pairs a profile field with its display label and unit for rendering.
type ProfileRow struct {
	Label string
	Unit  string
	Field Field
}

// RawSourceRecord is a single source's sparse view of one system. Values holds
// numeric and textual entries keyed by the record key constants. Invalid marks
// an identifier the source does not recognize at all, which is different from
// a recognized identifier with missing entries.
type RawSourceRecord struct {
	Source  SourceName     `json:"source"`
	Values  map[string]any `json:"values,omitempty"`
	Invalid bool           `json:"invalid,omitempty"`
}

// Number returns the numeric entry for key when present.
func (r RawSourceRecord) Number(key string) (float64, bool) {
	switch v := r.Values[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Text returns the non-empty string entry for key when present.
func (r RawSourceRecord) Text(key string) (string, bool) {
	v, ok := r.Values[key].(string)
	return v, ok && v != ""
}

// SourceRecords bundles the per-source catalog records fetched for one identifier.
type SourceRecords struct {
	Identifier string          `json:"identifier"`
	Parallax   RawSourceRecord `json:"parallax"`
	Astrometry RawSourceRecord `json:"astrometry"`
	Stellar    RawSourceRecord `json:"stellar"`
	Planet     RawSourceRecord `json:"planet"`
}

// BySource returns the record fetched from the named source.
func (s *SourceRecords) BySource(name SourceName) RawSourceRecord {
	switch name {
	case GaiaSource:
		return s.Parallax
	case SimbadSource:
		return s.Astrometry
	case TICSource:
		return s.Stellar
	case ExoArchiveSource:
		return s.Planet
	}
	return RawSourceRecord{}
}

// TransitParameters describes one box-shaped transit signal.
type TransitParameters struct {
	PeriodDays    float64 `json:"period_days"`    // Orbital period in days
	Depth         float64 `json:"depth"`          // Fractional brightness drop in transit (0-1)
	DurationHours float64 `json:"duration_hours"` // Transit duration in hours
	EpochHours    float64 `json:"epoch_hours"`    // Time of first transit center in hours
}

// Valid reports whether the parameters describe a physically plausible signal.
// Invalid parameters never produce an error downstream; generation yields empty
// series and scoring yields zero.
func (p TransitParameters) Valid() bool {
	return p.PeriodDays > 0 &&
		p.DurationHours > 0 &&
		p.Depth > 0 && p.Depth < 1 &&
		p.DurationHours < p.PeriodDays*24
}

// PeriodHours returns the orbital period in hours.
func (p TransitParameters) PeriodHours() float64 {
	return p.PeriodDays * 24
}

// PhaseWidth returns the transit duration as a fraction of the period.
func (p TransitParameters) PhaseWidth() float64 {
	if p.PeriodDays <= 0 {
		return 0
	}
	return p.DurationHours / p.PeriodHours()
}

// LightCurvePoint is one sample of a time-domain brightness series.
type LightCurvePoint struct {
	TimeHours  float64 `json:"time_hours"`
	Brightness float64 `json:"brightness"`
}

// PeriodPowerPoint is one sample of a periodogram spectrum.
type PeriodPowerPoint struct {
	PeriodDays float64 `json:"period_days"`
	Power      float64 `json:"power"`
}

// PhasePoint is one sample of a phase-folded series. Phase is always in
// [-0.5, 0.5) with the transit centered at zero.
type PhasePoint struct {
	Phase      float64 `json:"phase"`
	Brightness float64 `json:"brightness"`
}

// SignalBundle holds the four generated display artifacts for one system.
// All four come from a single seeded stream consumed in a fixed order, so a
// bundle is fully reproducible from the identifier and parameters alone.
type SignalBundle struct {
	Identifier  string             `json:"identifier"`
	Params      TransitParameters  `json:"params"`
	LightCurve  []LightCurvePoint  `json:"light_curve"`
	Periodogram []PeriodPowerPoint `json:"periodogram"`
	Folded      []PhasePoint       `json:"folded"`
	Model       []PhasePoint       `json:"model"`
}

// OptimizationTrial records one optimizer iteration. Iteration numbering
// starts at 1; the initial parameters are scored outside the trial history.
type OptimizationTrial struct {
	Iteration int               `json:"iteration"`
	Phase     SearchPhase       `json:"phase"`
	Params    TransitParameters `json:"params"`
	Score     float64           `json:"score"`
	BestScore float64           `json:"best_score"`
}

// FitResult is the outcome of one stochastic parameter search.
type FitResult struct {
	RunID        string              `json:"run_id"`
	Identifier   string              `json:"identifier"`
	Initial      TransitParameters   `json:"initial"`
	InitialScore float64             `json:"initial_score"`
	Best         TransitParameters   `json:"best"`
	BestScore    float64             `json:"best_score"`
	Improvement  float64             `json:"improvement_pct"`
	Trials       []OptimizationTrial `json:"trials"`
}

// SystemSummary is one row of a batch analysis: the fused identity of a system
// plus the outcome of its signal fit.
type SystemSummary struct {
	Identifier   string  `json:"identifier"`
	StarName     string  `json:"star_name"`
	PlanetName   string  `json:"planet_name"`
	DistanceLY   Field   `json:"distance_ly"`
	PeriodDays   float64 `json:"period_days"`
	Depth        float64 `json:"depth"`
	BestScore    float64 `json:"best_score"`
	Improvement  float64 `json:"improvement_pct"`
	Completeness float64 `json:"completeness"` // Percent of profile fields resolved (0-100)
}
