// Package observability provides hooks for metrics and tracing.
//
// Consumers register hooks at startup to receive events about pipeline
// execution without the pipeline depending on any particular backend
// (Prometheus, OpenTelemetry, a test recorder).
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls the registered hooks around each stage:
//
//	observability.Pipeline().OnPivotStart(ctx, len(records))
//	// ... pivot ...
//	observability.Pipeline().OnPivotComplete(ctx, rows, cols, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the pivot → render pipeline.
type PipelineHooks interface {
	OnPivotStart(ctx context.Context, records int)
	OnPivotComplete(ctx context.Context, rows, cols int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, view string, formats []string)
	OnRenderComplete(ctx context.Context, view string, formats []string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnPivotStart(context.Context, int)                                        {}
func (NoopPipelineHooks) OnPivotComplete(context.Context, int, int, time.Duration, error)          {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
// Call once at startup before running any pipeline.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op hooks. It is mainly useful in tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
