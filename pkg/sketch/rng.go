package sketch

import (
	"hash/fnv"
	"math/rand/v2"
)

// rng is the pseudo-random stream owned by a single render call.
// It is seeded once at render start and consumed sequentially by every
// primitive; it must never be reseeded mid-render or shared across renders.
type rng struct {
	r *rand.Rand
}

// newRNG creates a deterministic stream for the given seed.
// The same seed produces an identical sequence of draws on every platform.
func newRNG(seed uint64) *rng {
	return &rng{r: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

// next returns a uniform draw in [0, 1).
func (g *rng) next() float64 {
	return g.r.Float64()
}

// intBetween returns a uniform integer in [lo, hi], inclusive on both ends.
// Returns lo when the range is empty or inverted.
func (g *rng) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.IntN(hi-lo+1)
}

// jitter perturbs v by a uniform offset centered at zero with half-width
// scale/2. Consumes exactly one draw.
func (g *rng) jitter(v, scale float64) float64 {
	return v + (g.next()-0.5)*scale
}

// SeedFromPrompt derives a 32-bit seed from prompt text using the FNV-1a
// hash. FNV is fixed-polynomial and platform-independent, so the derived
// seed is stable across restarts and across implementations.
func SeedFromPrompt(prompt string) uint64 {
	h := fnv.New32a()
	h.Write([]byte(prompt))
	return uint64(h.Sum32())
}

// Seed returns a pointer to v, for filling Options.Seed inline.
func Seed(v int64) *int64 {
	return &v
}
