package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/prefgrid/pkg/observability"
	"github.com/matzehuels/prefgrid/pkg/pivot"
	"github.com/matzehuels/prefgrid/pkg/table"
)

// Runner executes the pipeline and logs each stage.
//
// The Runner holds no per-run state. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete pivot → render pipeline.
func (r *Runner) Execute(ctx context.Context, ds table.Dataset, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.applyDataset(ds)

	result := &Result{}
	result.Stats.Records = len(ds.Records)

	// Stage 1: Pivot
	pivotStart := time.Now()
	m, err := r.Pivot(ctx, ds, opts)
	if err != nil {
		return nil, err
	}
	result.Matrix = m
	result.Stats.PivotTime = time.Since(pivotStart)
	result.Stats.Rows, result.Stats.Cols = m.Dims()
	result.Stats.Positive, result.Stats.Negative = m.Counts()

	r.Logger.Info("pivoted records",
		"records", result.Stats.Records,
		"rows", result.Stats.Rows,
		"cols", result.Stats.Cols,
		"duration", result.Stats.PivotTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, m, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Formats = opts.Formats
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"view", opts.View,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Pivot builds the matrix for ds using opts.Order.
func (r *Runner) Pivot(ctx context.Context, ds table.Dataset, opts Options) (m *pivot.Matrix, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnPivotStart(ctx, len(ds.Records))
	start := time.Now()
	defer func() {
		var rows, cols int
		if err == nil {
			rows, cols = m.Dims()
		}
		hooks.OnPivotComplete(ctx, rows, cols, time.Since(start), err)
	}()

	m, err = pivot.PivotWith(ds.Records, pivot.Options{Order: opts.Order})
	if err != nil {
		return nil, fmt.Errorf("pivot: %w", err)
	}
	return m, nil
}

// Render encodes m in each of opts.Formats for opts.View. Options must
// already be defaulted and validated.
func (r *Runner) Render(ctx context.Context, m *pivot.Matrix, opts Options) (_ map[string][]byte, err error) {
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.View, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.View, opts.Formats, time.Since(start), err)
	}()

	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		formatStart := time.Now()
		data, err := Render(m, opts, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data

		opts.Logger.Debug("rendered artifact",
			"format", format,
			"bytes", len(data),
			"duration", time.Since(formatStart))
	}
	return artifacts, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
