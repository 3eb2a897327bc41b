// Package cache stores rendered course-map artifacts.
//
// A [Cache] is a byte-oriented key/value store with optional expiry. The
// CLI uses [FileCache] under the XDG cache directory, the preview server can
// share a [RedisCache] between instances, and [NullCache] disables caching.
//
// Keys are built by a [Keyer] from the content hash of the catalog and the
// render options, so editing a catalog file never serves a stale graph.
package cache

import (
	"context"
	"time"
)

// Cache is implemented by every backend. Get reports a miss as (nil, false,
// nil); errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}

// Default time-to-live values. Artifacts are keyed by content hash, so they
// only expire to bound disk and memory use.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLReport   = 24 * time.Hour
)

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format           string `json:"format"`
	Focus            string `json:"focus,omitempty"`
	Detailed         bool   `json:"detailed,omitempty"`
	ClusterByTerm    bool   `json:"cluster_by_term,omitempty"`
	ShowCorequisites bool   `json:"show_corequisites,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key for a rendered artifact of the catalog
	// with the given content hash.
	ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string

	// ReportKey returns the key for a lint report of the catalog with the
	// given content hash.
	ReportKey(catalogHash string) string
}

// DefaultKeyer produces "<kind>:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey hashes the catalog hash together with opts.
func (DefaultKeyer) ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", catalogHash, opts)
}

// ReportKey hashes the catalog hash.
func (DefaultKeyer) ReportKey(catalogHash string) string {
	return hashKey("report", catalogHash)
}
