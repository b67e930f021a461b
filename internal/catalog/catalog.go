// Package catalog provides the archive catalog clients behind the fusion
// pipeline: a built-in snapshot of well studied systems, and a directory
// client for user-maintained catalog files.
package catalog

import (
	"strings"

	"github.com/transitlab/transitscope/internal/contract"
)

// NewClient returns the catalog client for the configured data source: the
// directory client when a catalog directory is set, otherwise the built-in
// snapshot.
func NewClient(cfg *contract.Config) contract.CatalogClient {
	if cfg.CatalogDir != "" {
		return NewDirClient(cfg.CatalogDir)
	}
	return NewSnapshotClient()
}

// NormalizeIdentifier canonicalizes an identifier for catalog lookups:
// uppercase, with runs of whitespace collapsed to single spaces. Lookups are
// therefore case and spacing insensitive ("trappist-1" finds TRAPPIST-1).
func NormalizeIdentifier(identifier string) string {
	return strings.ToUpper(strings.Join(strings.Fields(identifier), " "))
}

// CatalogFileName maps an identifier to its file name in a catalog directory:
// the normalized identifier, lowercased, with spaces as underscores
// ("Proxima Cen" -> "proxima_cen.json").
func CatalogFileName(identifier string) string {
	name := strings.ToLower(NormalizeIdentifier(identifier))
	return strings.ReplaceAll(name, " ", "_") + ".json"
}
