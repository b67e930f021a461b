// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/transitlab/transitscope/schema"
)

// CatalogClient defines the lookups the fusion pipeline needs from the archive
// catalogs. This allows the core logic to be tested without real catalog data,
// and keeps the built-in snapshot and the directory-backed client swappable.
//
// Implementations must be safe for concurrent use; batch analysis calls these
// methods from multiple workers.
type CatalogClient interface {
	// --- Per-source record lookups ---

	// ParallaxRecord returns the astrometric parallax record for the identifier.
	ParallaxRecord(ctx context.Context, identifier string) (schema.RawSourceRecord, error)

	// AstrometryRecord returns the sky position and brightness record.
	AstrometryRecord(ctx context.Context, identifier string) (schema.RawSourceRecord, error)

	// StellarRecord returns the stellar parameter record.
	StellarRecord(ctx context.Context, identifier string) (schema.RawSourceRecord, error)

	// PlanetRecord returns the confirmed planet record.
	PlanetRecord(ctx context.Context, identifier string) (schema.RawSourceRecord, error)

	// --- Catalog enumeration ---

	// Identifiers lists every identifier the catalog can resolve, for batch
	// runs invoked without explicit arguments.
	Identifiers(ctx context.Context) ([]string, error)
}
