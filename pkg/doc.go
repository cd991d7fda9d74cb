// Package pkg provides the core libraries for Sketchwire wireframe rendering.
//
// # Overview
//
// Sketchwire turns short text prompts into rough, hand-drawn wireframe
// sketches. Rendering is fully deterministic: every wobble in every line comes
// from a seeded random stream, so identical inputs always produce identical
// documents. The pkg directory is organized into:
//
//  1. [sketch] - Domain logic (seeded jitter, rough primitives, prompt
//     classification, layout composition, themes)
//  2. [studio] - Orchestration (validate → cache lookup → render → cache store)
//  3. [cache] - Cache backends (file, Redis, null) and key derivation
//  4. [errors] - Structured errors with machine-readable codes
//  5. [observability] - Optional hooks for metrics and tracing
//  6. [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow through Sketchwire:
//
//	Text Prompt
//	     ↓
//	[sketch.Classify] (keywords → wireframe blocks)
//	     ↓
//	[sketch.Render] (seeded jitter + rough primitives → SVG)
//	     ↓
//	[studio.Runner] (caching, logging)
//	     ↓
//	CLI file output / HTTP API response
//
// # Quick Start
//
// Render a sketch directly:
//
//	svg := sketch.Render(sketch.Options{Prompt: "a login form with a chart"})
//
// Or through the cached pipeline shared by the CLI and the API:
//
//	runner := studio.NewRunner(nil, nil, nil)
//	res, err := runner.Render(ctx, sketch.Options{Prompt: "dashboard with cards"})
//
// [sketch]: https://pkg.go.dev/github.com/sketchwire/sketchwire/pkg/sketch
// [studio]: https://pkg.go.dev/github.com/sketchwire/sketchwire/pkg/studio
// [cache]: https://pkg.go.dev/github.com/sketchwire/sketchwire/pkg/cache
// [errors]: https://pkg.go.dev/github.com/sketchwire/sketchwire/pkg/errors
// [observability]: https://pkg.go.dev/github.com/sketchwire/sketchwire/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/sketchwire/sketchwire/pkg/buildinfo
// [sketch.Classify]: https://pkg.go.dev/github.com/sketchwire/sketchwire/pkg/sketch#Classify
// [sketch.Render]: https://pkg.go.dev/github.com/sketchwire/sketchwire/pkg/sketch#Render
// [studio.Runner]: https://pkg.go.dev/github.com/sketchwire/sketchwire/pkg/studio#Runner
package pkg
