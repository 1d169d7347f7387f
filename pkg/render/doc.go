// Package render groups the matrix visualizations.
//
//   - [heatmap]: annotated diverging heatmap, raster (jpg, png, tif) at a
//     chosen DPI or vector (svg, pdf), drawn with gonum/plot
//   - [nodelink]: bipartite entity/label graph rendered by Graphviz
//   - [colors]: the blue-red scale both of them, the spreadsheet export and
//     the terminal table share
//
// [heatmap]: github.com/matzehuels/prefgrid/pkg/render/heatmap
// [nodelink]: github.com/matzehuels/prefgrid/pkg/render/nodelink
// [colors]: github.com/matzehuels/prefgrid/pkg/render/colors
package render
