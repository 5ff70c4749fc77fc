package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Fingerprint returns the SHA-256 hex digest of data. Diagram source text
// is fingerprinted before keying, so whitespace-identical inputs share
// cache entries no matter how long the source is.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a stable "<stage>:<digest>" key from a pipeline stage
// name ("diagram", "artifact") and the parts that influence the cached
// value. Parts are JSON-encoded before hashing so option structs key on
// field values, not formatting.
func hashKey(stage string, parts ...interface{}) string {
	encoded, _ := json.Marshal(parts)
	return stage + ":" + Fingerprint(encoded)
}
