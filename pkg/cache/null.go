package cache

import (
	"context"
	"time"
)

// NullCache satisfies Cache without storing anything: every Get is a
// miss, every Set is discarded. It backs --no-cache runs, where each
// diagram must be re-parsed and re-rendered from source.
type NullCache struct{}

// NewNullCache returns the shared no-op cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always misses.
func (*NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the entry.
func (*NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete is a no-op.
func (*NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close is a no-op.
func (*NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
