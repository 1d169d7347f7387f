package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/prefgrid/pkg/observability"
	"github.com/matzehuels/prefgrid/pkg/table"
)

type recordingHooks struct {
	observability.NoopPipelineHooks
	rows, cols int
	view       string
	renderErr  error
	completed  int
}

func (h *recordingHooks) OnPivotComplete(_ context.Context, rows, cols int, _ time.Duration, _ error) {
	h.rows, h.cols = rows, cols
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, view string, _ []string, _ time.Duration, err error) {
	h.view, h.renderErr = view, err
	h.completed++
}

func TestExecuteCallsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	_, err := NewRunner(nil).Execute(context.Background(), table.Reference(), Options{View: ViewGraph, Formats: []string{"dot"}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if hooks.rows != 7 || hooks.cols != 6 {
		t.Errorf("pivot hook saw %dx%d, want 7x6", hooks.rows, hooks.cols)
	}
	if hooks.completed != 1 || hooks.view != ViewGraph || hooks.renderErr != nil {
		t.Errorf("render hook: completed=%d view=%q err=%v", hooks.completed, hooks.view, hooks.renderErr)
	}
}
