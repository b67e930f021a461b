package schema

// Custom string types for type safety.
type (
	// SourceName identifies an upstream catalog source.
	SourceName string

	// OutputMode represents the format of the output.
	OutputMode string

	// FieldKind distinguishes numeric, textual and unavailable profile fields.
	FieldKind string

	// SearchPhase labels an optimizer iteration as exploration or exploitation.
	SearchPhase string
)

// All catalog sources consulted during fusion.
const (
	GaiaSource       SourceName = "gaia"       // parallax for distance
	SimbadSource     SourceName = "simbad"     // astrometry and apparent brightness
	TICSource        SourceName = "tic"        // stellar parameters and display name
	ExoArchiveSource SourceName = "exoarchive" // confirmed planet parameters
	DerivedSource    SourceName = "derived"    // computed locally, never fetched
	NoSource         SourceName = ""
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All field kinds. The zero kind marks the "not available" sentinel.
const (
	NumberKind FieldKind = "number"
	TextKind   FieldKind = "text"
	NoKind     FieldKind = ""
)

// All optimizer search phases.
const (
	ExplorePhase SearchPhase = "explore"
	ExploitPhase SearchPhase = "exploit"
)

// NotAvailable is the display sentinel for fields no source could supply.
const NotAvailable = "N/A"

// InvalidIdentifierName is the display name carried by the sentinel profile
// returned when an identifier is unknown to the astrometry or parallax source.
const InvalidIdentifierName = "Invalid Identifier"

// Raw record keys shared by catalog clients and fusion rules.
const (
	KeyParallaxMas       = "parallax_mas"
	KeyRADeg             = "ra_deg"
	KeyDecDeg            = "dec_deg"
	KeyMagnitude         = "magnitude"
	KeyStarName          = "star_name"
	KeyTemperatureK      = "temperature_k"
	KeyRadiusSun         = "radius_sun"
	KeyMassSun           = "mass_sun"
	KeyLuminositySun     = "luminosity_sun"
	KeySurfaceGravity    = "surface_gravity"
	KeyMetallicity       = "metallicity"
	KeyPlanetName        = "planet_name"
	KeyPeriodDays        = "period_days"
	KeyPlanetRadiusEarth = "planet_radius_earth"
	KeyPlanetMassEarth   = "planet_mass_earth"
	KeyEquilibriumTempK  = "equilibrium_temp_k"

	// KeyDistanceLY appears in some source records but is never fused.
	// Distance always comes from the parallax conversion.
	KeyDistanceLY = "distance_ly"
)

// AllFetchSources lists the sources every catalog client must serve.
var AllFetchSources = []SourceName{GaiaSource, SimbadSource, TICSource, ExoArchiveSource}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidSourceNames lists all fetchable source names.
var ValidSourceNames = map[SourceName]struct{}{
	GaiaSource:       {},
	SimbadSource:     {},
	TICSource:        {},
	ExoArchiveSource: {},
}
