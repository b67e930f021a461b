package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/transitlab/transitscope/internal/contract"
	"github.com/transitlab/transitscope/schema"
)

// DirClient serves catalog records from a directory of per-system JSON files
// named per CatalogFileName. Each file carries one object per source; a
// missing object means that source does not know the system, and a missing
// file means no source does.
type DirClient struct {
	dir string
}

var _ contract.CatalogClient = (*DirClient)(nil)

// NewDirClient returns a client over the given catalog directory.
func NewDirClient(dir string) *DirClient {
	return &DirClient{dir: dir}
}

// catalogFile is the on-disk shape of one system's records.
type catalogFile struct {
	Identifier string         `json:"identifier"`
	Gaia       map[string]any `json:"gaia"`
	Simbad     map[string]any `json:"simbad"`
	TIC        map[string]any `json:"tic"`
	ExoArchive map[string]any `json:"exoarchive"`
}

func (f *catalogFile) values(source schema.SourceName) map[string]any {
	switch source {
	case schema.GaiaSource:
		return f.Gaia
	case schema.SimbadSource:
		return f.Simbad
	case schema.TICSource:
		return f.TIC
	case schema.ExoArchiveSource:
		return f.ExoArchive
	}
	return nil
}

// ParallaxRecord returns the astrometric parallax record for the identifier.
func (c *DirClient) ParallaxRecord(_ context.Context, identifier string) (schema.RawSourceRecord, error) {
	return c.record(schema.GaiaSource, identifier)
}

// AstrometryRecord returns the sky position and brightness record.
func (c *DirClient) AstrometryRecord(_ context.Context, identifier string) (schema.RawSourceRecord, error) {
	return c.record(schema.SimbadSource, identifier)
}

// StellarRecord returns the stellar parameter record.
func (c *DirClient) StellarRecord(_ context.Context, identifier string) (schema.RawSourceRecord, error) {
	return c.record(schema.TICSource, identifier)
}

// PlanetRecord returns the confirmed planet record.
func (c *DirClient) PlanetRecord(_ context.Context, identifier string) (schema.RawSourceRecord, error) {
	return c.record(schema.ExoArchiveSource, identifier)
}

// Identifiers lists the systems in the catalog directory, sorted. Files that
// cannot be parsed are skipped with a warning so one broken file does not
// block a batch run.
func (c *DirClient) Identifiers(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(c.dir, entry.Name()))
		if err != nil {
			contract.LogWarn("Skipping "+entry.Name(), err)
			continue
		}
		var file catalogFile
		if err := json.Unmarshal(data, &file); err != nil {
			contract.LogWarn("Skipping "+entry.Name(), err)
			continue
		}
		if file.Identifier != "" {
			ids = append(ids, file.Identifier)
		}
	}

	sort.Strings(ids)
	return ids, nil
}

func (c *DirClient) record(source schema.SourceName, identifier string) (schema.RawSourceRecord, error) {
	file, err := c.load(identifier)
	if err != nil {
		return schema.RawSourceRecord{}, err
	}
	if file == nil {
		return schema.RawSourceRecord{Source: source, Invalid: true}, nil
	}
	values := file.values(source)
	if values == nil {
		return schema.RawSourceRecord{Source: source, Invalid: true}, nil
	}
	return schema.RawSourceRecord{Source: source, Values: values}, nil
}

// load reads the catalog file for the identifier. A missing file is not an
// error; every source just reports the identifier as unrecognized.
func (c *DirClient) load(identifier string) (*catalogFile, error) {
	path := filepath.Join(c.dir, CatalogFileName(identifier))
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	return &file, nil
}
