// Package studio provides the cached render pipeline for sketchwire.
//
// Both the CLI and the HTTP API go through a [Runner] so they share one code
// path: validate → cache lookup → render → cache store. Because rendering is
// deterministic, serving a cached document is indistinguishable from
// re-rendering, and every entry point is guaranteed to produce byte-identical
// output for identical parameters.
package studio

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sketchwire/sketchwire/pkg/cache"
	"github.com/sketchwire/sketchwire/pkg/errors"
	"github.com/sketchwire/sketchwire/pkg/observability"
	"github.com/sketchwire/sketchwire/pkg/sketch"
)

// Runner encapsulates render execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// render results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
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

// Result contains the outputs of one render.
type Result struct {
	// SVG is the complete rendered document.
	SVG []byte

	// CacheHit reports whether the document came from cache.
	CacheHit bool

	// RenderTime is the time spent rendering (zero on a cache hit).
	RenderTime time.Duration
}

// Render validates opts, consults the cache, and renders on a miss.
//
// The only rejected input is a missing prompt; everything else (unknown
// themes, degenerate dimensions) renders permissively, matching the core's
// always-succeed contract.
func (r *Runner) Render(ctx context.Context, opts sketch.Options) (*Result, error) {
	if err := errors.ValidatePrompt(opts.Prompt); err != nil {
		return nil, err
	}
	opts.SetDefaults()

	key := r.Keyer.SketchKey(cache.SketchKeyOpts{
		Prompt: opts.Prompt,
		Width:  opts.Width,
		Height: opts.Height,
		Seed:   opts.Seed,
		Theme:  opts.Theme,
	})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "sketch")
		r.Logger.Debug("sketch served from cache", "bytes", len(data))
		return &Result{SVG: data, CacheHit: true}, nil
	}
	observability.Cache().OnCacheMiss(ctx, "sketch")

	observability.Render().OnRenderStart(ctx, opts.Theme)
	start := time.Now()
	svg := []byte(sketch.Render(opts))
	elapsed := time.Since(start)
	observability.Render().OnRenderComplete(ctx, opts.Theme, len(svg), elapsed)

	if err := r.Cache.Set(ctx, key, svg, cache.TTLSketch); err != nil {
		// Cache failures never fail the render
		r.Logger.Warn("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "sketch", len(svg))
	}

	r.Logger.Debug("rendered sketch",
		"theme", opts.Theme,
		"bytes", len(svg),
		"duration", elapsed)

	return &Result{SVG: svg, RenderTime: elapsed}, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
