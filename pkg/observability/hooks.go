// Package observability provides hooks for logging, metrics and tracing.
//
// Library packages never log on their own. They report events through the
// hooks registered here, and the CLI (or any embedding program) decides what
// to do with them.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which keeps the library
// packages free of import cycles and of any logging backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, blocks)
//	// ... render ...
//	observability.Render().OnRenderComplete(ctx, blocks, tagCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Config Hooks
// =============================================================================

// ConfigHooks receives events from configuration loading.
type ConfigHooks interface {
	// OnConfigLoad records a configuration file load attempt.
	OnConfigLoad(ctx context.Context, path, format string, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from head rendering.
type RenderHooks interface {
	// OnRenderStart records the blocks about to be rendered.
	OnRenderStart(ctx context.Context, blocks []string)

	// OnRenderComplete records a finished render with the number of emitted
	// elements.
	OnRenderComplete(ctx context.Context, blocks []string, elements int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the preview server.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a written HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnError records a request that failed before a response was written.
	OnError(ctx context.Context, method, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopConfigHooks is a no-op implementation of ConfigHooks.
type NoopConfigHooks struct{}

func (NoopConfigHooks) OnConfigLoad(context.Context, string, string, time.Duration, error) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, []string)                               {}
func (NoopRenderHooks) OnRenderComplete(context.Context, []string, int, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	configHooks ConfigHooks = NoopConfigHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetConfigHooks registers custom configuration hooks.
// This should be called once at application startup before any file is loaded.
func SetConfigHooks(h ConfigHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		configHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any render.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Config returns the registered configuration hooks.
func Config() ConfigHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return configHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	configHooks = NoopConfigHooks{}
	renderHooks = NoopRenderHooks{}
	httpHooks = NoopHTTPHooks{}
}
