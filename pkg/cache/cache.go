// Package cache provides byte-level caching for rendered sketches.
//
// Rendering is deterministic, so a cached document is always identical to a
// fresh render of the same parameters. That makes caching purely an
// optimization: backends may drop entries at any time without affecting
// correctness.
//
// Three backends are provided:
//   - FileCache: directory-backed, for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// TTLSketch is the retention for rendered sketch documents. Entries never go
// stale (output is deterministic); the TTL only bounds disk and memory use.
const TTLSketch = 7 * 24 * time.Hour

// Cache stores rendered documents keyed by render parameters.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live. A ttl of 0 means no
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for render parameters.
type Keyer interface {
	// SketchKey returns the key for one render, covering every parameter
	// that influences the output bytes.
	SketchKey(opts SketchKeyOpts) string
}

// SketchKeyOpts are the render parameters folded into a sketch cache key.
type SketchKeyOpts struct {
	Prompt string `json:"prompt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Seed   *int64 `json:"seed"`
	Theme  string `json:"theme"`
}

// DefaultKeyer hashes parameters into fixed-width keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SketchKey generates a key of the form "sketch:<sha256>".
func (k *DefaultKeyer) SketchKey(opts SketchKeyOpts) string {
	return hashKey("sketch", opts)
}

// ScopedKeyer wraps a Keyer with a prefix, giving callers separate cache
// namespaces over a shared backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// SketchKey generates a prefixed sketch key.
func (k *ScopedKeyer) SketchKey(opts SketchKeyOpts) string {
	return k.prefix + k.inner.SketchKey(opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
