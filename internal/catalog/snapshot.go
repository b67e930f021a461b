package catalog

import (
	"context"
	"maps"
	"sort"

	"github.com/transitlab/transitscope/internal/contract"
	"github.com/transitlab/transitscope/schema"
)

// SnapshotClient serves records from the built-in catalog snapshot, so every
// command works offline and deterministically without any setup.
type SnapshotClient struct{}

var _ contract.CatalogClient = (*SnapshotClient)(nil)

// NewSnapshotClient returns a client over the built-in snapshot.
func NewSnapshotClient() *SnapshotClient {
	return &SnapshotClient{}
}

// ParallaxRecord returns the astrometric parallax record for the identifier.
func (c *SnapshotClient) ParallaxRecord(_ context.Context, identifier string) (schema.RawSourceRecord, error) {
	return snapshotRecord(schema.GaiaSource, identifier), nil
}

// AstrometryRecord returns the sky position and brightness record.
func (c *SnapshotClient) AstrometryRecord(_ context.Context, identifier string) (schema.RawSourceRecord, error) {
	return snapshotRecord(schema.SimbadSource, identifier), nil
}

// StellarRecord returns the stellar parameter record.
func (c *SnapshotClient) StellarRecord(_ context.Context, identifier string) (schema.RawSourceRecord, error) {
	return snapshotRecord(schema.TICSource, identifier), nil
}

// PlanetRecord returns the confirmed planet record.
func (c *SnapshotClient) PlanetRecord(_ context.Context, identifier string) (schema.RawSourceRecord, error) {
	return snapshotRecord(schema.ExoArchiveSource, identifier), nil
}

// Identifiers lists every system in the snapshot, sorted.
func (c *SnapshotClient) Identifiers(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(snapshotSystems))
	for _, e := range snapshotSystems {
		ids = append(ids, e.identifier)
	}
	sort.Strings(ids)
	return ids, nil
}

// snapshotEntry carries the four per-source value maps for one system. A nil
// map means that source does not know the identifier.
type snapshotEntry struct {
	identifier string
	gaia       map[string]any
	simbad     map[string]any
	tic        map[string]any
	exoarchive map[string]any
}

func (e snapshotEntry) values(source schema.SourceName) map[string]any {
	switch source {
	case schema.GaiaSource:
		return e.gaia
	case schema.SimbadSource:
		return e.simbad
	case schema.TICSource:
		return e.tic
	case schema.ExoArchiveSource:
		return e.exoarchive
	}
	return nil
}

var snapshotIndex = buildSnapshotIndex()

func buildSnapshotIndex() map[string]snapshotEntry {
	index := make(map[string]snapshotEntry, len(snapshotSystems))
	for _, e := range snapshotSystems {
		index[NormalizeIdentifier(e.identifier)] = e
	}
	return index
}

// snapshotRecord builds the record one source returns for an identifier.
// Values are cloned so callers can never corrupt the snapshot.
func snapshotRecord(source schema.SourceName, identifier string) schema.RawSourceRecord {
	entry, ok := snapshotIndex[NormalizeIdentifier(identifier)]
	if !ok {
		return schema.RawSourceRecord{Source: source, Invalid: true}
	}
	values := entry.values(source)
	if values == nil {
		return schema.RawSourceRecord{Source: source, Invalid: true}
	}
	return schema.RawSourceRecord{Source: source, Values: maps.Clone(values)}
}
