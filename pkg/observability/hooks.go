// Package observability provides hooks for logging and metrics.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific backends. Consumers register hooks at startup to
// receive events about the view pipeline and the output sinks.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetViewHooks(&myViewHooks{})
//	    observability.SetSinkHooks(&mySinkHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Sink().OnRenderStart(ctx, "png")
//	// ... rasterize ...
//	observability.Sink().OnRenderComplete(ctx, "png", len(data), duration, err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/screenruler/pkg/ruler"
)

// =============================================================================
// View Hooks
// =============================================================================

// ViewHooks receives events from the view controller pipeline. The pipeline
// is synchronous, so these hooks carry no context.
type ViewHooks interface {
	// OnValidated records a validation pass; before and after differ when a
	// value was clamped or reset.
	OnValidated(before, after ruler.Config)

	// OnPersisted records a fragment replacement.
	OnPersisted(fragment string)

	// OnRendered records a surface render and the number of labels it added.
	OnRendered(unit ruler.Unit, added, total int, duration time.Duration)
}

// =============================================================================
// Sink Hooks
// =============================================================================

// SinkHooks receives events from the output sinks.
type SinkHooks interface {
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopViewHooks is a no-op implementation of ViewHooks.
type NoopViewHooks struct{}

func (NoopViewHooks) OnValidated(ruler.Config, ruler.Config)         {}
func (NoopViewHooks) OnPersisted(string)                             {}
func (NoopViewHooks) OnRendered(ruler.Unit, int, int, time.Duration) {}

// NoopSinkHooks is a no-op implementation of SinkHooks.
type NoopSinkHooks struct{}

func (NoopSinkHooks) OnRenderStart(context.Context, string) {}
func (NoopSinkHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	viewHooks ViewHooks = NoopViewHooks{}
	sinkHooks SinkHooks = NoopSinkHooks{}
	hooksMu   sync.RWMutex
)

// SetViewHooks registers custom view hooks.
// This should be called once at application startup before any controller is created.
func SetViewHooks(h ViewHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		viewHooks = h
	}
}

// SetSinkHooks registers custom sink hooks.
// This should be called once at application startup before any rendering.
func SetSinkHooks(h SinkHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sinkHooks = h
	}
}

// View returns the registered view hooks.
func View() ViewHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return viewHooks
}

// Sink returns the registered sink hooks.
func Sink() SinkHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sinkHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	viewHooks = NoopViewHooks{}
	sinkHooks = NoopSinkHooks{}
}
