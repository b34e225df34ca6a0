// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about graph validation, change notification, and spatial
// queries.
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
// Graph operations are synchronous and never block, so hooks take no
// context. Hooks run inline on the caller's goroutine and must be cheap.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGraphHooks(&myGraphHooks{})
//	    observability.SetQueryHooks(&myQueryHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Graph().OnValidateStart(name, nodeCount, edgeCount)
//	// ... validate ...
//	observability.Graph().OnValidateComplete(name, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Graph Hooks
// =============================================================================

// GraphHooks receives events from graph validation and mutation.
type GraphHooks interface {
	// Validation events
	OnValidateStart(graph string, nodeCount, edgeCount int)
	OnValidateComplete(graph string, duration time.Duration, err error)

	// OnChange records a change notification fanned out to listenerCount listeners.
	OnChange(graph string, listenerCount int)
}

// =============================================================================
// Query Hooks
// =============================================================================

// QueryHooks receives events from spatial queries.
type QueryHooks interface {
	// OnQuery records a completed query. found is false when the query
	// returned no node.
	OnQuery(graph, query string, found bool, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnValidateStart(string, int, int)                {}
func (NoopGraphHooks) OnValidateComplete(string, time.Duration, error) {}
func (NoopGraphHooks) OnChange(string, int)                            {}

// NoopQueryHooks is a no-op implementation of QueryHooks.
type NoopQueryHooks struct{}

func (NoopQueryHooks) OnQuery(string, string, bool, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	graphHooks GraphHooks = NoopGraphHooks{}
	queryHooks QueryHooks = NoopQueryHooks{}
	hooksMu    sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup before any graph is built.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// SetQueryHooks registers custom query hooks.
// This should be called once at application startup before any query runs.
func SetQueryHooks(h QueryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		queryHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Query returns the registered query hooks.
func Query() QueryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return queryHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
	queryHooks = NoopQueryHooks{}
}
