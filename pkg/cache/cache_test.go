package cache

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "diagram:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get before Set should miss")
	}

	// Round trip
	if err := c.Set(ctx, "diagram:abc", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "diagram:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get after Set should hit")
	}
	if string(data) != "<svg/>" {
		t.Errorf("Get returned %q, want %q", data, "<svg/>")
	}

	// Expired entries miss
	if err := c.Set(ctx, "stale", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "stale")
	if hit {
		t.Error("Expired entry should miss")
	}

	// Delete removes entries; deleting twice is not an error
	if err := c.Delete(ctx, "diagram:abc"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "diagram:abc")
	if hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "diagram:abc"); err != nil {
		t.Errorf("Delete of missing key should not error: %v", err)
	}
}

func TestFingerprint(t *testing.T) {
	h1 := Fingerprint([]byte("graph LR\nA --> B"))
	h2 := Fingerprint([]byte("graph LR\nA --> B"))
	if h1 != h2 {
		t.Error("Fingerprint is not deterministic")
	}
	if len(h1) != 64 {
		t.Errorf("len(Fingerprint) = %d, want 64 hex chars", len(h1))
	}

	h3 := Fingerprint([]byte("graph LR\nA --> C"))
	if h1 == h3 {
		t.Error("different sources share a fingerprint")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// DiagramKey should include options in hash
	dk1 := k.DiagramKey("graph TD\nA-->B", DiagramKeyOpts{Dialect: "mermaid"})
	dk2 := k.DiagramKey("graph TD\nA-->B", DiagramKeyOpts{Dialect: "plantuml"})
	if dk1 == dk2 {
		t.Error("Different DiagramKeyOpts should produce different keys")
	}
	if k.DiagramKey("graph TD\nA-->B", DiagramKeyOpts{Dialect: "mermaid"}) != dk1 {
		t.Error("DiagramKey should be deterministic")
	}

	// Different sources produce different keys
	dk3 := k.DiagramKey("graph TD\nA-->C", DiagramKeyOpts{Dialect: "mermaid"})
	if dk1 == dk3 {
		t.Error("Different sources should produce different keys")
	}

	// ArtifactKey
	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Direction: "LR"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png", Direction: "LR"})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "user:123:")

	// All keys should be prefixed
	dk := scoped.DiagramKey("start\n:Task;\nstop", DiagramKeyOpts{Dialect: "plantuml"})
	if !strings.HasPrefix(dk, "user:123:diagram:") {
		t.Errorf("ScopedKeyer DiagramKey should be prefixed: %s", dk)
	}

	ak := scoped.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	if !strings.HasPrefix(ak, "user:123:artifact:") {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", ak)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.ArtifactKey("h", ArtifactKeyOpts{Format: "svg"})
	if !strings.HasPrefix(key, "prefix:artifact:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}
