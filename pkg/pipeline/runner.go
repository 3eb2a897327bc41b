package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/coursemap/pkg/cache"
	"github.com/matzehuels/coursemap/pkg/catalog"
	"github.com/matzehuels/coursemap/pkg/lint"
	"github.com/matzehuels/coursemap/pkg/observability"
)

// Runner encapsulates rendering with caching.
// Both the CLI and the preview server use it to avoid duplicating caching
// logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// CatalogHash returns the content hash used in cache keys for reg.
func CatalogHash(reg *catalog.Registry) (string, error) {
	return cache.HashJSON(reg.All())
}

// Render classifies, builds and renders reg, serving artifacts from the
// cache when every requested format is cached.
func (r *Runner) Render(ctx context.Context, reg *catalog.Registry, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}

	highlights, err := Highlights(reg, opts.Focus)
	if err != nil {
		return nil, err
	}

	hash, err := CatalogHash(reg)
	if err != nil {
		return nil, fmt.Errorf("hash catalog: %w", err)
	}

	result := &Result{
		CatalogHash: hash,
		Highlights:  highlights,
	}

	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)

	dot, stats := BuildDOT(reg, highlights, opts)
	result.Stats = stats

	artifacts, hit, err := r.renderWithCache(ctx, hash, dot, opts)
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheHit = hit

	r.Logger.Debug("rendered course map",
		"formats", opts.Formats,
		"focus", opts.Focus,
		"cached", hit,
		"stats", result.Stats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderWithCache returns cached artifacts when all formats hit, otherwise
// renders every format and stores each one.
func (r *Runner) renderWithCache(ctx context.Context, hash, dot string, opts Options) (map[string][]byte, bool, error) {
	ch := observability.Cache()
	artifacts := make(map[string][]byte, len(opts.Formats))

	if !opts.Refresh {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				r.Logger.Warn("cache read failed", "format", format, "err", err)
			}
			if err != nil || !hit {
				ch.OnCacheMiss(ctx, "artifact")
				break
			}
			ch.OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := RenderDOT(ctx, dot, opts.Formats)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		ch.OnCacheSet(ctx, "artifact", len(data))
	}
	return rendered, false, nil
}

// Check runs the catalog lint rules, caching the report under the catalog
// hash.
func (r *Runner) Check(ctx context.Context, reg *catalog.Registry) (lint.Report, error) {
	hash, err := CatalogHash(reg)
	if err != nil {
		return lint.Report{}, fmt.Errorf("hash catalog: %w", err)
	}
	key := r.Keyer.ReportKey(hash)
	ch := observability.Cache()

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		if report, err := lint.Unmarshal(data); err == nil {
			ch.OnCacheHit(ctx, "report")
			return report, nil
		}
	}
	ch.OnCacheMiss(ctx, "report")

	report := lint.Check(reg)
	if data, err := lint.Marshal(report); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLReport); err == nil {
			ch.OnCacheSet(ctx, "report", len(data))
		}
	}
	return report, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
