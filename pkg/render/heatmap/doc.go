// Package heatmap renders a preference matrix as an annotated heatmap.
//
// # Figure
//
// The figure follows the usual academic heatmap layout:
//
//   - one cell per (entity, label), entities top to bottom, labels left to
//     right, in matrix order
//   - cell colour from the diverging blue-red scale in [colors], pinned to
//     [-1, +1] so 0 is always the neutral midpoint
//   - the integer value printed in each cell, black or white for contrast
//   - thin black gridlines between cells and a thicker border around the grid
//   - a title, axis labels and a vertical colour bar carrying the legend
//
// # Output
//
// [Render] returns the encoded figure; [RenderFile] also writes it. Raster
// formats (jpg, png, tif) are drawn at Options.DPI, 300 by default, on a
// 10 x 8 inch figure. Vector formats (svg, pdf) use the same geometry.
//
//	m, _ := pivot.Pivot(table.Reference().Records)
//	err := heatmap.RenderFile(m, "heatmap.jpg", heatmap.Options{
//	    Title:  "Country Preferences for Models",
//	    XLabel: "Model",
//	    YLabel: "Country",
//	})
//
// A matrix with no rows or no columns cannot be drawn and yields a
// RENDER_ERROR, as does an unwritable output path.
//
// [colors]: github.com/matzehuels/prefgrid/pkg/render/colors
package heatmap
