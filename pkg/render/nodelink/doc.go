// Package nodelink draws a preference matrix as a bipartite node-link graph.
//
// Entities sit in a column on the left and labels in a column on the right.
// A solid edge joins an entity to its positive label and a dashed edge to
// its negative label, coloured from the same diverging scale as the heatmap.
// The graph shows at a glance which labels are shared by many entities.
//
//	dot := nodelink.ToDOT(m, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// Rendering runs Graphviz in-process through [github.com/goccy/go-graphviz];
// no external binaries are needed.
package nodelink
