package heatmap

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/prefgrid/pkg/pivot"
)

// matrixGrid adapts a matrix to plotter.GridXYZ. Column c sits at x = c and
// the first matrix row sits at the top, so grid row r is matrix row
// rows-1-r.
type matrixGrid struct {
	m          *pivot.Matrix
	rows, cols int
}

func newMatrixGrid(m *pivot.Matrix) matrixGrid {
	rows, cols := m.Dims()
	return matrixGrid{m: m, rows: rows, cols: cols}
}

func (g matrixGrid) Dims() (c, r int)   { return g.cols, g.rows }
func (g matrixGrid) Z(c, r int) float64 { return float64(g.m.At(g.matrixRow(r), c)) }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }

func (g matrixGrid) matrixRow(r int) int {
	return g.rows - 1 - r
}

// extent is the data-space rectangle covered by the cells.
func (g matrixGrid) extent() (x0, x1, y0, y1 float64) {
	return -0.5, float64(g.cols) - 0.5, -0.5, float64(g.rows) - 0.5
}

// rowNames returns entity names bottom to top, as NominalY expects.
func (g matrixGrid) rowNames() []string {
	rows := g.m.Rows()
	out := make([]string, len(rows))
	for r := range out {
		out[r] = rows[g.matrixRow(r)]
	}
	return out
}

// gridLines draws the separators between cells.
type gridLines struct {
	grid  matrixGrid
	style draw.LineStyle
}

func (l gridLines) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	x0, x1, y0, y1 := l.grid.extent()

	for i := 1; i < l.grid.cols; i++ {
		x := trX(float64(i) - 0.5)
		c.StrokeLine2(l.style, x, trY(y0), x, trY(y1))
	}
	for i := 1; i < l.grid.rows; i++ {
		y := trY(float64(i) - 0.5)
		c.StrokeLine2(l.style, trX(x0), y, trX(x1), y)
	}
}

func (l gridLines) DataRange() (xmin, xmax, ymin, ymax float64) { return l.grid.extent() }

// frame draws the solid border around the whole grid.
type frame struct {
	grid  matrixGrid
	style draw.LineStyle
}

func (f frame) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	x0, x1, y0, y1 := f.grid.extent()
	left, right := trX(x0), trX(x1)
	bottom, top := trY(y0), trY(y1)

	c.StrokeLines(f.style, []vg.Point{
		{X: left, Y: bottom},
		{X: right, Y: bottom},
		{X: right, Y: top},
		{X: left, Y: top},
		{X: left, Y: bottom},
	})
}

func (f frame) DataRange() (xmin, xmax, ymin, ymax float64) { return f.grid.extent() }

var (
	gridStyle  = draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
	frameStyle = draw.LineStyle{Color: color.Black, Width: vg.Points(2)}
)
