// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about diagram parsing, layout computation, and text
// auto-fitting.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetParserHooks(&myParserHooks{})
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Parser().OnParseStart(ctx, dslType)
//	// ... do parsing ...
//	observability.Parser().OnParseComplete(ctx, dslType, nodeCount, edgeCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Parser Hooks
// =============================================================================

// ParserHooks receives events from the diagram DSL parsers.
type ParserHooks interface {
	// OnParseStart records the beginning of a parse operation.
	// dslType is "mermaid" or "plantuml".
	OnParseStart(ctx context.Context, dslType string)

	// OnParseComplete records the end of a parse operation.
	OnParseComplete(ctx context.Context, dslType string, nodeCount, edgeCount int, duration time.Duration, err error)
}

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from layout computations.
type LayoutHooks interface {
	// OnLayoutStart records the beginning of a layout computation.
	// kind is "grid", "list", "hierarchy", or "flow".
	OnLayoutStart(ctx context.Context, kind string, elementCount int)

	// OnLayoutComplete records the end of a layout computation.
	OnLayoutComplete(ctx context.Context, kind string, duration time.Duration, err error)
}

// =============================================================================
// Autofit Hooks
// =============================================================================

// AutofitHooks receives events from text auto-fit decisions.
type AutofitHooks interface {
	// OnAutofit records a completed auto-fit decision.
	OnAutofit(ctx context.Context, strategy string, fontSize, columns, slides int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopParserHooks is a no-op implementation of ParserHooks.
type NoopParserHooks struct{}

func (NoopParserHooks) OnParseStart(context.Context, string) {}
func (NoopParserHooks) OnParseComplete(context.Context, string, int, int, time.Duration, error) {
}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(context.Context, string, int)                     {}
func (NoopLayoutHooks) OnLayoutComplete(context.Context, string, time.Duration, error) {}

// NoopAutofitHooks is a no-op implementation of AutofitHooks.
type NoopAutofitHooks struct{}

func (NoopAutofitHooks) OnAutofit(context.Context, string, int, int, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	parserHooks  ParserHooks  = NoopParserHooks{}
	layoutHooks  LayoutHooks  = NoopLayoutHooks{}
	autofitHooks AutofitHooks = NoopAutofitHooks{}
	hooksMu      sync.RWMutex
)

// SetParserHooks registers custom parser hooks.
// This should be called once at application startup before any parse operations.
func SetParserHooks(h ParserHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		parserHooks = h
	}
}

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout operations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetAutofitHooks registers custom auto-fit hooks.
// This should be called once at application startup before any auto-fit operations.
func SetAutofitHooks(h AutofitHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		autofitHooks = h
	}
}

// Parser returns the registered parser hooks.
func Parser() ParserHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return parserHooks
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Autofit returns the registered auto-fit hooks.
func Autofit() AutofitHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return autofitHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	parserHooks = NoopParserHooks{}
	layoutHooks = NoopLayoutHooks{}
	autofitHooks = NoopAutofitHooks{}
}
