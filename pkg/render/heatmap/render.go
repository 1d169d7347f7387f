package heatmap

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/matzehuels/prefgrid/pkg/errors"
	prefio "github.com/matzehuels/prefgrid/pkg/io"
	"github.com/matzehuels/prefgrid/pkg/pivot"
	"github.com/matzehuels/prefgrid/pkg/render/colors"
)

const (
	paletteSize   = 255
	colorBarWidth = 1.3 * vg.Inch

	// rotateAbove is the column count above which x tick labels are
	// slanted so neighbouring labels do not overlap.
	rotateAbove = 10
)

var (
	titleSize = vg.Points(17)
	labelSize = vg.Points(14)
	tickSize  = vg.Points(13)
	valueSize = vg.Points(14)

	titlePadding = vg.Points(20)
	labelPadding = vg.Points(10)
)

// Render draws m and returns the encoded figure in opts.Format.
func Render(m *pivot.Matrix, opts Options) ([]byte, error) {
	if m.Empty() {
		rows, cols := 0, 0
		if m != nil {
			rows, cols = m.Dims()
		}
		return nil, errors.Render("cannot render a %d x %d matrix", rows, cols)
	}

	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	fig, err := newFigure(m, opts)
	if err != nil {
		return nil, err
	}
	return fig.encode(opts)
}

// RenderFile draws m and writes it to path, creating or replacing the file.
// If opts.Format is empty the format is taken from the path's extension.
//
// The figure is encoded before the file is opened, so a failed render
// leaves nothing on disk.
func RenderFile(m *pivot.Matrix, path string, opts Options) error {
	if opts.Format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		opts.Format = f
	}

	data, err := Render(m, opts)
	if err != nil {
		return err
	}
	return prefio.WriteFile(path, data)
}

// figure is the heat grid plot and the colour bar plot drawn beside it.
type figure struct {
	heat *plot.Plot
	bar  *plot.Plot
}

func newFigure(m *pivot.Matrix, opts Options) (*figure, error) {
	scale := colors.NewScale()
	grid := newMatrixGrid(m)

	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = titleSize
	p.Title.Padding = titlePadding

	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	for _, a := range []*plot.Axis{&p.X, &p.Y} {
		a.Label.TextStyle.Font.Size = labelSize
		a.Label.Padding = labelPadding
		a.Tick.Label.Font.Size = tickSize
	}
	if grid.cols > rotateAbove {
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
	}

	h := plotter.NewHeatMap(grid, scale.Palette(paletteSize))
	h.Min, h.Max = colors.Min, colors.Max

	valueStyle := p.X.Tick.Label
	valueStyle.Font.Size = valueSize
	valueStyle.Rotation = 0
	labels, err := valueLabels(grid, scale, valueStyle)
	if err != nil {
		return nil, errors.WrapRender(err, "annotate cells")
	}

	p.Add(h, gridLines{grid: grid, style: gridStyle}, labels, frame{grid: grid, style: frameStyle})
	p.NominalX(m.Columns()...)
	p.NominalY(grid.rowNames()...)

	return &figure{heat: p, bar: newColorBar(scale, opts.Legend)}, nil
}

// valueLabels places each cell's integer value at the cell centre.
func valueLabels(grid matrixGrid, scale *colors.Scale, base text.Style) (*plotter.Labels, error) {
	n := grid.rows * grid.cols
	xys := make(plotter.XYs, 0, n)
	strs := make([]string, 0, n)
	vals := make([]float64, 0, n)
	for r := 0; r < grid.rows; r++ {
		for c := 0; c < grid.cols; c++ {
			v := grid.Z(c, r)
			xys = append(xys, plotter.XY{X: grid.X(c), Y: grid.Y(r)})
			strs = append(strs, strconv.Itoa(int(v)))
			vals = append(vals, v)
		}
	}

	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		sty := base
		sty.Color = scale.TextColor(vals[i])
		sty.XAlign = text.XCenter
		sty.YAlign = text.YCenter
		l.TextStyle[i] = sty
	}
	return l, nil
}

func newColorBar(scale *colors.Scale, legend string) *plot.Plot {
	p := plot.New()
	p.Add(&plotter.ColorBar{ColorMap: scale.ColorMap(), Vertical: true, Colors: paletteSize})
	p.HideX()
	p.X.Padding = 0

	p.Y.Label.Text = legend
	p.Y.Label.TextStyle.Font.Size = labelSize
	p.Y.Label.Padding = labelPadding
	p.Y.Tick.Label.Font.Size = tickSize
	p.Y.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: colors.Min, Label: "-1"},
		{Value: 0, Label: "0"},
		{Value: colors.Max, Label: "1"},
	})
	return p
}

// draw lays the heat grid out on c, with the colour bar in a strip on the
// right aligned to the grid's data area.
func (f *figure) draw(c draw.Canvas) {
	width := c.Max.X - c.Min.X
	heatArea := draw.Crop(c, 0, -colorBarWidth, 0, 0)
	f.heat.Draw(heatArea)

	da := f.heat.DataCanvas(heatArea)
	barArea := draw.Crop(c, width-colorBarWidth, 0, da.Min.Y-c.Min.Y, da.Max.Y-c.Max.Y)
	f.bar.Draw(barArea)
}

// encode draws the figure on the canvas type for opts.Format and returns the
// encoded bytes. gonum panics on some degenerate geometry; those panics are
// reported as render errors.
func (f *figure) encode(opts Options) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, errors.WrapRender(fmt.Errorf("%v", r), "draw %s", opts.Format)
		}
	}()

	w := vg.Length(opts.Width) * vg.Inch
	h := vg.Length(opts.Height) * vg.Inch

	var out io.WriterTo
	switch {
	case IsRaster(opts.Format):
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(opts.DPI))
		f.draw(draw.New(c))
		switch opts.Format {
		case FormatJPG:
			out = vgimg.JpegCanvas{Canvas: c}
		case FormatPNG:
			out = vgimg.PngCanvas{Canvas: c}
		default:
			out = vgimg.TiffCanvas{Canvas: c}
		}
	case opts.Format == FormatSVG:
		c := vgsvg.New(w, h)
		f.draw(draw.New(c))
		out = c
	case opts.Format == FormatPDF:
		c := vgpdf.New(w, h)
		f.draw(draw.New(c))
		out = c
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "no encoder for format %q", opts.Format)
	}

	var buf bytes.Buffer
	if _, err := out.WriteTo(&buf); err != nil {
		return nil, errors.WrapRender(err, "encode %s", opts.Format)
	}
	return buf.Bytes(), nil
}
