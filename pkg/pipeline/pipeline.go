// Package pipeline runs the pivot → render flow shared by every prefgrid
// command.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Pivot: turn the dataset's records into a [pivot.Matrix]
//  2. Render: encode the matrix in each requested format for one view
//
// A view selects what is rendered. [ViewHeatmap] draws the annotated
// heatmap (jpg, png, tif, svg, pdf), [ViewGraph] draws the bipartite
// node-link graph (svg, png, dot) and [ViewExport] serializes the matrix
// itself (json, xlsx).
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{Formats: []string{"jpg", "svg"}}
//	result, err := runner.Execute(ctx, table.Reference(), opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := pipeline.WriteArtifacts(result, opts)
//
// Rendering happens entirely in memory; nothing touches the file system
// until [WriteArtifacts].
package pipeline

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/prefgrid/pkg/errors"
	"github.com/matzehuels/prefgrid/pkg/pivot"
	"github.com/matzehuels/prefgrid/pkg/render/heatmap"
	"github.com/matzehuels/prefgrid/pkg/table"
)

// Views.
const (
	ViewHeatmap = "heatmap"
	ViewGraph   = "graph"
	ViewExport  = "export"
)

// Formats that only exist outside the heatmap view.
const (
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// DefaultView is the view rendered when none is named.
const DefaultView = ViewHeatmap

// DefaultOutput is where the default heatmap is written.
const DefaultOutput = "heatmap.jpg"

// viewFormats lists each view's formats; the first is the view's default.
var viewFormats = map[string][]string{
	ViewHeatmap: {heatmap.FormatJPG, heatmap.FormatPNG, heatmap.FormatTIFF, heatmap.FormatSVG, heatmap.FormatPDF},
	ViewGraph:   {heatmap.FormatSVG, heatmap.FormatPNG, FormatDOT},
	ViewExport:  {FormatJSON, FormatXLSX},
}

// defaultBase is the output file name, without extension, used when
// Options.Output is empty.
var defaultBase = map[string]string{
	ViewHeatmap: "heatmap",
	ViewGraph:   "graph",
	ViewExport:  "matrix",
}

// Options contains all configuration for a pipeline run.
// Empty presentation strings are taken from the dataset, then from the
// built-in reference dataset.
type Options struct {
	View    string   // ViewHeatmap, ViewGraph or ViewExport
	Output  string   // output path; see WriteArtifacts
	Formats []string // formats to render, in order

	// Pivot options
	Order pivot.ColumnOrder

	// Heatmap options
	Title  string
	XLabel string
	YLabel string
	Legend string
	DPI    int
	Width  float64 // inches
	Height float64 // inches

	// Graph options
	Detailed bool

	// Runtime options
	Logger *log.Logger
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Matrix is the pivoted dataset.
	Matrix *pivot.Matrix

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Formats lists the keys of Artifacts in render order.
	Formats []string

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records    int
	Rows       int
	Cols       int
	Positive   int
	Negative   int
	PivotTime  time.Duration
	RenderTime time.Duration
}

// ValidViews is the set of supported views.
var ValidViews = map[string]bool{
	ViewHeatmap: true,
	ViewGraph:   true,
	ViewExport:  true,
}

// ValidateView checks that a view is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid view: %q (must be one of: heatmap, graph, export)", view)
	}
	return nil
}

// FormatsFor returns the formats a view supports.
func FormatsFor(view string) []string {
	return slices.Clone(viewFormats[view])
}

// NormalizeFormat lower-cases format, resolves aliases and checks that view
// supports it.
func NormalizeFormat(view, format string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	if view == ViewHeatmap {
		if hf, err := heatmap.NormalizeFormat(f); err == nil {
			f = hf
		}
	}
	if !slices.Contains(viewFormats[view], f) {
		return "", errors.New(errors.ErrCodeInvalidFormat, "invalid %s format: %q (must be one of: %s)",
			view, format, strings.Join(viewFormats[view], ", "))
	}
	return f, nil
}

// SetDefaults fills zero-valued fields. With no formats, the format is taken
// from the output's extension if the view supports it, else the view's
// default. With no output, the view's default base name is used.
func (o *Options) SetDefaults() {
	if o.View == "" {
		o.View = DefaultView
	}
	if len(o.Formats) == 0 {
		f := ""
		if ext := filepath.Ext(o.Output); ext != "" {
			f, _ = NormalizeFormat(o.View, ext)
		}
		if f == "" && len(viewFormats[o.View]) > 0 {
			f = viewFormats[o.View][0]
		}
		if f != "" {
			o.Formats = []string{f}
		}
	}
	if o.Output == "" && len(o.Formats) > 0 {
		o.Output = defaultBase[o.View] + "." + o.Formats[0]
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the view, normalizes and de-duplicates formats and
// validates the heatmap settings. Call after SetDefaults.
func (o *Options) Validate() error {
	if err := ValidateView(o.View); err != nil {
		return err
	}
	if _, err := pivot.ParseColumnOrder(string(o.Order)); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		return errors.InvalidInput("no output formats")
	}

	formats := make([]string, 0, len(o.Formats))
	for _, f := range o.Formats {
		nf, err := NormalizeFormat(o.View, f)
		if err != nil {
			return err
		}
		if !slices.Contains(formats, nf) {
			formats = append(formats, nf)
		}
	}
	o.Formats = formats

	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return errors.WrapRender(err, "output %s", o.Output)
	}
	if err := o.checkOutputExt(); err != nil {
		return err
	}

	if o.View == ViewHeatmap {
		ho := o.heatmapOptions("")
		ho.SetDefaults()
		if err := ho.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// checkOutputExt rejects a single format whose output path names another
// format of the same view, such as jpg written to "fig.png". Extensions the
// view does not know are left alone.
func (o *Options) checkOutputExt() error {
	if len(o.Formats) != 1 {
		return nil
	}
	ext := filepath.Ext(o.Output)
	if ext == "" {
		return nil
	}
	f, err := NormalizeFormat(o.View, ext)
	if err != nil || f == o.Formats[0] {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "output %s has a .%s extension but the format is %s", o.Output, f, o.Formats[0])
}

// applyDataset fills empty presentation strings from ds, whose own empty
// strings are filled from the reference dataset.
func (o *Options) applyDataset(ds table.Dataset) {
	ds = ds.WithDefaults()
	fill := func(s *string, def string) {
		if *s == "" {
			*s = def
		}
	}
	fill(&o.Title, ds.Title)
	fill(&o.XLabel, ds.XLabel)
	fill(&o.YLabel, ds.YLabel)
	fill(&o.Legend, ds.Legend)
}

func (o *Options) heatmapOptions(format string) heatmap.Options {
	return heatmap.Options{
		Title:  o.Title,
		XLabel: o.XLabel,
		YLabel: o.YLabel,
		Legend: o.Legend,
		Format: format,
		DPI:    o.DPI,
		Width:  o.Width,
		Height: o.Height,
	}
}
