// Package cache provides caching for parsed diagrams and rendered
// artifacts. A file-based backend serves CLI usage; NullCache disables
// caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means the entry
	// never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DiagramKeyOpts captures the parse settings that affect a cached
// diagram. Different settings must produce different keys.
type DiagramKeyOpts struct {
	Dialect string `json:"dialect"`
}

// ArtifactKeyOpts captures the render settings that affect a cached
// artifact (SVG or PNG bytes).
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Direction string `json:"direction"`
	Theme     string `json:"theme"`
}

// Keyer generates cache keys for the stages of the render pipeline.
type Keyer interface {
	// DiagramKey generates a key for a parsed diagram, derived from the
	// source text and parse options.
	DiagramKey(source string, opts DiagramKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, derived from
	// the diagram hash and render options.
	ArtifactKey(diagramHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes source text and options into stable keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DiagramKey generates a key for a parsed diagram.
func (k *DefaultKeyer) DiagramKey(source string, opts DiagramKeyOpts) string {
	return hashKey("diagram", Fingerprint([]byte(source)), opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(diagramHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", diagramHash, opts)
}
