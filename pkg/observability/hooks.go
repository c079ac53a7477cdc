// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about single checks and batch runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The core packages (tree, layout, drehfreudig) stay pure and never call
// hooks; the batch driver in pkg/pipeline does.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCheckHooks(&myCheckHooks{})
//	    observability.SetBatchHooks(&myBatchHooks{})
//	    // ... run application
//	}
//
// The driver calls hooks to emit events:
//
//	observability.Check().OnCheckStart(ctx, path)
//	// ... parse, lay out, evaluate ...
//	observability.Check().OnCheckComplete(ctx, path, leaves, ok, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Check Hooks
// =============================================================================

// CheckHooks receives events for every checked tree.
type CheckHooks interface {
	// OnCheckStart records the start of a check. source is a file path or a
	// label such as "<arg>" for literal input.
	OnCheckStart(ctx context.Context, source string)

	// OnCheckComplete records the outcome of a check. leaves is zero and
	// drehfreudig false when err is non-nil.
	OnCheckComplete(ctx context.Context, source string, leaves int, drehfreudig bool, duration time.Duration, err error)
}

// =============================================================================
// Batch Hooks
// =============================================================================

// BatchHooks receives events for multi-file runs.
type BatchHooks interface {
	// OnBatchStart records the start of a batch over files inputs.
	OnBatchStart(ctx context.Context, files int)

	// OnBatchComplete records the end of a batch and how many files failed.
	OnBatchComplete(ctx context.Context, files, failed int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCheckHooks is a no-op implementation of CheckHooks.
type NoopCheckHooks struct{}

func (NoopCheckHooks) OnCheckStart(context.Context, string) {}
func (NoopCheckHooks) OnCheckComplete(context.Context, string, int, bool, time.Duration, error) {
}

// NoopBatchHooks is a no-op implementation of BatchHooks.
type NoopBatchHooks struct{}

func (NoopBatchHooks) OnBatchStart(context.Context, int)                        {}
func (NoopBatchHooks) OnBatchComplete(context.Context, int, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	checkHooks CheckHooks = NoopCheckHooks{}
	batchHooks BatchHooks = NoopBatchHooks{}
	hooksMu    sync.RWMutex
)

// SetCheckHooks registers custom check hooks.
// This should be called once at application startup before any checks run.
func SetCheckHooks(h CheckHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		checkHooks = h
	}
}

// SetBatchHooks registers custom batch hooks.
// This should be called once at application startup before any batch runs.
func SetBatchHooks(h BatchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		batchHooks = h
	}
}

// Check returns the registered check hooks.
func Check() CheckHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return checkHooks
}

// Batch returns the registered batch hooks.
func Batch() BatchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return batchHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	checkHooks = NoopCheckHooks{}
	batchHooks = NoopBatchHooks{}
}
