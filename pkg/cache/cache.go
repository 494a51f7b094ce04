// Package cache provides artifact caching for rendered diagrams.
//
// Rendering a braid is cheap; rasterizing and converting are not always,
// and the preview server re-serves identical requests often. The cache
// stores finished artifacts (SVG/PNG/PDF bytes) keyed by a hash of the
// word and render options.
//
// Two implementations are provided: [FileCache] for the CLI and preview
// server, and [NullCache] to disable caching without branching at call
// sites.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts by key.
type Cache interface {
	// Get retrieves a value. The second result reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}
