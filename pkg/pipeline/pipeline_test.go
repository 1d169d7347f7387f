package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/prefgrid/pkg/errors"
	"github.com/matzehuels/prefgrid/pkg/pivot"
	"github.com/matzehuels/prefgrid/pkg/table"
)

func TestValidateView(t *testing.T) {
	tests := []struct {
		view    string
		wantErr bool
	}{
		{"heatmap", false},
		{"graph", false},
		{"export", false},
		{"tower", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateView(tt.view)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateView(%q) error = %v, wantErr %v", tt.view, err, tt.wantErr)
		}
	}
}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		view    string
		format  string
		want    string
		wantErr bool
	}{
		{ViewHeatmap, "jpg", "jpg", false},
		{ViewHeatmap, "JPEG", "jpg", false},
		{ViewHeatmap, ".tiff", "tif", false},
		{ViewHeatmap, "pdf", "pdf", false},
		{ViewHeatmap, "dot", "", true},
		{ViewGraph, "svg", "svg", false},
		{ViewGraph, "dot", "dot", false},
		{ViewGraph, "jpg", "", true},
		{ViewExport, "xlsx", "xlsx", false},
		{ViewExport, "svg", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeFormat(tt.view, tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeFormat(%q, %q) error = %v, wantErr %v", tt.view, tt.format, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("NormalizeFormat(%q, %q) code = %s, want INVALID_FORMAT", tt.view, tt.format, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("NormalizeFormat(%q, %q) = %q, want %q", tt.view, tt.format, got, tt.want)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		wantFormats []string
		wantOutput  string
	}{
		{"zero", Options{}, []string{"jpg"}, DefaultOutput},
		{"output extension", Options{Output: "fig.png"}, []string{"png"}, "fig.png"},
		{"unknown extension", Options{Output: "fig.bmp"}, []string{"jpg"}, "fig.bmp"},
		{"explicit formats", Options{Formats: []string{"svg", "pdf"}}, []string{"svg", "pdf"}, "heatmap.svg"},
		{"graph", Options{View: ViewGraph}, []string{"svg"}, "graph.svg"},
		{"export", Options{View: ViewExport}, []string{"json"}, "matrix.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.SetDefaults()

			if strings.Join(opts.Formats, ",") != strings.Join(tt.wantFormats, ",") {
				t.Errorf("Formats = %v, want %v", opts.Formats, tt.wantFormats)
			}
			if opts.Output != tt.wantOutput {
				t.Errorf("Output = %q, want %q", opts.Output, tt.wantOutput)
			}
			if opts.Logger == nil {
				t.Error("Logger should default to a discard logger")
			}
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad view", Options{View: "tower"}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad order", Options{Order: "alphabetical"}, errors.ErrCodeInvalidInput},
		{"bad dpi", Options{DPI: -5}, errors.ErrCodeInvalidInput},
		{"output names a directory", Options{Output: "out/"}, errors.ErrCodeRender},
		{"output extension mismatch", Options{Output: "fig.png", Formats: []string{"jpg"}}, errors.ErrCodeInvalidFormat},
		{"graph extension mismatch", Options{View: ViewGraph, Output: "g.dot", Formats: []string{"svg"}}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.SetDefaults()
			err := opts.Validate()
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOptionsValidateDeduplicatesFormats(t *testing.T) {
	opts := Options{Formats: []string{"jpg", "JPEG", "png"}}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if got := strings.Join(opts.Formats, ","); got != "jpg,png" {
		t.Errorf("Formats = %s, want jpg,png", got)
	}
}

func TestApplyDatasetPrecedence(t *testing.T) {
	ds := table.Dataset{Title: "From file", Records: table.Reference().Records}
	opts := Options{XLabel: "From flag"}
	opts.applyDataset(ds)

	ref := table.Reference()
	if opts.Title != "From file" {
		t.Errorf("Title = %q, want dataset value", opts.Title)
	}
	if opts.XLabel != "From flag" {
		t.Errorf("XLabel = %q, want explicit value", opts.XLabel)
	}
	if opts.YLabel != ref.YLabel || opts.Legend != ref.Legend {
		t.Errorf("YLabel/Legend = %q/%q, want reference defaults", opts.YLabel, opts.Legend)
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		output  string
		format  string
		formats int
		want    string
	}{
		{"heatmap.jpg", "jpg", 1, "heatmap.jpg"},
		{"heatmap.jpg", "svg", 1, "heatmap.jpg"},
		{"out/fig.jpg", "svg", 2, "out/fig.svg"},
		{"fig", "pdf", 3, "fig.pdf"},
	}

	for _, tt := range tests {
		if got := ArtifactPath(tt.output, tt.format, tt.formats); got != tt.want {
			t.Errorf("ArtifactPath(%q, %q, %d) = %q, want %q", tt.output, tt.format, tt.formats, got, tt.want)
		}
	}
}

func TestExecuteHeatmap(t *testing.T) {
	runner := NewRunner(nil)
	opts := Options{Formats: []string{"png", "svg"}, DPI: 40}

	result, err := runner.Execute(context.Background(), table.Reference(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Stats.Rows != 7 || result.Stats.Cols != 6 {
		t.Errorf("dims = %dx%d, want 7x6", result.Stats.Rows, result.Stats.Cols)
	}
	if result.Stats.Positive != 7 || result.Stats.Negative != 7 {
		t.Errorf("counts = %d/%d, want 7/7", result.Stats.Positive, result.Stats.Negative)
	}
	if !bytes.HasPrefix(result.Artifacts["png"], []byte("\x89PNG")) {
		t.Error("png artifact is not a PNG")
	}
	// The title comes from the reference dataset.
	if !bytes.Contains(result.Artifacts["svg"], []byte("Country Preferences for Models")) {
		t.Error("svg artifact missing dataset title")
	}
}

func TestExecuteGroupedOrder(t *testing.T) {
	opts := Options{View: ViewExport, Order: pivot.OrderGrouped}
	result, err := NewRunner(nil).Execute(context.Background(), table.Reference(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	want := "ANN,SVR,XGB,LGBM,CatBoost,Bagging"
	if got := strings.Join(result.Matrix.Columns(), ","); got != want {
		t.Errorf("Columns() = %s, want %s", got, want)
	}
}

func TestExecuteGraphAndExport(t *testing.T) {
	runner := NewRunner(nil)
	ctx := context.Background()

	graph, err := runner.Execute(ctx, table.Reference(), Options{View: ViewGraph, Formats: []string{"dot"}})
	if err != nil {
		t.Fatalf("Execute(graph) error: %v", err)
	}
	if !bytes.HasPrefix(graph.Artifacts["dot"], []byte("digraph")) {
		t.Errorf("dot artifact = %q", graph.Artifacts["dot"])
	}

	export, err := runner.Execute(ctx, table.Reference(), Options{View: ViewExport, Formats: []string{"json", "xlsx"}})
	if err != nil {
		t.Fatalf("Execute(export) error: %v", err)
	}
	if !bytes.Contains(export.Artifacts["json"], []byte(`"columns"`)) {
		t.Error("json artifact missing columns")
	}
	if !bytes.HasPrefix(export.Artifacts["xlsx"], []byte("PK")) {
		t.Error("xlsx artifact is not a zip container")
	}
}

func TestExecuteErrors(t *testing.T) {
	runner := NewRunner(nil)

	_, err := runner.Execute(context.Background(), table.Dataset{}, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty dataset: error = %v, want INVALID_INPUT", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runner.Execute(ctx, table.Reference(), Options{}); err != context.Canceled {
		t.Errorf("canceled context: error = %v, want context.Canceled", err)
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		View:    ViewExport,
		Output:  filepath.Join(dir, "prefs.json"),
		Formats: []string{"json", "xlsx"},
	}

	result, err := NewRunner(nil).Execute(context.Background(), table.Reference(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	paths, err := WriteArtifacts(result, opts)
	if err != nil {
		t.Fatalf("WriteArtifacts() error: %v", err)
	}

	want := []string{filepath.Join(dir, "prefs.json"), filepath.Join(dir, "prefs.xlsx")}
	if strings.Join(paths, "|") != strings.Join(want, "|") {
		t.Errorf("paths = %v, want %v", paths, want)
	}
	for _, p := range paths {
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Errorf("%s not written (err = %v)", p, err)
		}
	}
}

func TestWriteArtifactsSingleFormatUsesOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "figure.out")
	opts := Options{Output: out, Formats: []string{"svg"}}

	result, err := NewRunner(nil).Execute(context.Background(), table.Reference(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	paths, err := WriteArtifacts(result, opts)
	if err != nil {
		t.Fatalf("WriteArtifacts() error: %v", err)
	}
	if len(paths) != 1 || paths[0] != out {
		t.Errorf("paths = %v, want [%s]", paths, out)
	}
}

func TestWriteArtifactsUnwritable(t *testing.T) {
	opts := Options{Output: filepath.Join(t.TempDir(), "missing", "heatmap.svg"), Formats: []string{"svg"}}
	result, err := NewRunner(nil).Execute(context.Background(), table.Reference(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	_, err = WriteArtifacts(result, opts)
	if !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("WriteArtifacts() error = %v, want RENDER_ERROR", err)
	}
}

func TestExecuteDirectoryOutput(t *testing.T) {
	opts := Options{Output: t.TempDir(), Formats: []string{"jpg"}}
	_, err := NewRunner(nil).Execute(context.Background(), table.Reference(), opts)
	if !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("Execute() error = %v, want RENDER_ERROR", err)
	}
}
