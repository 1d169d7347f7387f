package pipeline

import (
	"bytes"

	"github.com/matzehuels/prefgrid/pkg/errors"
	prefio "github.com/matzehuels/prefgrid/pkg/io"
	"github.com/matzehuels/prefgrid/pkg/pivot"
	"github.com/matzehuels/prefgrid/pkg/render/heatmap"
	"github.com/matzehuels/prefgrid/pkg/render/nodelink"
)

// Render generates one artifact for opts.View in the given format.
func Render(m *pivot.Matrix, opts Options, format string) ([]byte, error) {
	switch opts.View {
	case ViewHeatmap:
		return heatmap.Render(m, opts.heatmapOptions(format))
	case ViewGraph:
		return renderGraph(m, opts, format)
	case ViewExport:
		return renderExport(m, opts, format)
	}
	return nil, ValidateView(opts.View)
}

func renderGraph(m *pivot.Matrix, opts Options, format string) ([]byte, error) {
	if m.Empty() {
		return nil, errors.Render("cannot draw a graph of an empty matrix")
	}
	dot := nodelink.ToDOT(m, nodelink.Options{Detailed: opts.Detailed})

	switch format {
	case heatmap.FormatSVG:
		return nodelink.RenderSVG(dot)
	case heatmap.FormatPNG:
		return nodelink.RenderPNG(dot)
	case FormatDOT:
		return []byte(dot), nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported graph format: %s", format)
}

func renderExport(m *pivot.Matrix, opts Options, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch format {
	case FormatJSON:
		err = prefio.WriteJSON(m, &buf)
	case FormatXLSX:
		err = prefio.WriteXLSX(m, &buf, prefio.XLSXOptions{Corner: opts.YLabel})
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported export format: %s", format)
	}

	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
