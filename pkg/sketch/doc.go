// Package sketch renders hand-drawn-style SVG wireframes from text prompts.
//
// # Overview
//
// A render takes a short natural-language prompt plus dimensions, an optional
// seed, and a theme name, and produces a complete SVG document depicting a UI
// wireframe. Which blocks appear (header, list, form, cards, chart, avatar)
// is decided by substring matching against the prompt; the blocks are stacked
// vertically in a fixed order.
//
// # Reproducible Randomness
//
// The sketchy look comes from jittering every primitive with a seeded
// pseudo-random stream:
//
//	svg := sketch.Render(sketch.Options{Prompt: "login form", Seed: sketch.Seed(42)})
//
// The same options always produce byte-identical output. When no seed is
// given, one is derived from the prompt text with a stable FNV-1a hash, so
// identical prompts render identically across processes and hosts.
//
// # Concurrency
//
// Render is a pure function. Each call owns its own RNG stream and fragment
// list; the only shared state is the immutable theme and keyword tables, so
// concurrent renders need no locking.
package sketch
