// Package pkg provides the libraries behind prefgrid.
//
// # Overview
//
// prefgrid turns a small relation of (entity, positive label, negative
// label) records into a signed indicator matrix and draws it as an
// annotated heatmap. The pkg directory is organized as:
//
//  1. [table] - Records, datasets, the built-in reference table, TOML loading
//  2. [pivot] - Records → -1/0/+1 matrix
//  3. [render] - Heatmap, node-link graph and the shared colour scale
//  4. [io] - JSON and spreadsheet export, whole-file output
//  5. [pipeline] - Orchestration (pivot → render) used by the CLI
//
// # Architecture
//
//	table.Dataset (built-in or TOML)
//	         ↓
//	    [pivot] package (signed indicator matrix)
//	         ↓
//	    [render/heatmap], [render/nodelink], [io]
//	         ↓
//	    JPG/PNG/TIF/SVG/PDF, DOT, JSON/XLSX
//
// # Quick Start
//
//	m, err := pivot.Pivot(table.Reference().Records)
//	if err != nil {
//	    return err
//	}
//	err = heatmap.RenderFile(m, "heatmap.jpg", heatmap.Options{
//	    Title: "Country Preferences for Models",
//	})
//
// Supporting packages: [errors] defines the coded errors returned across
// the module, [observability] exposes pipeline hooks and [buildinfo]
// carries version data set at link time.
//
// [table]: https://pkg.go.dev/github.com/matzehuels/prefgrid/pkg/table
// [pivot]: https://pkg.go.dev/github.com/matzehuels/prefgrid/pkg/pivot
// [render]: https://pkg.go.dev/github.com/matzehuels/prefgrid/pkg/render
// [render/heatmap]: https://pkg.go.dev/github.com/matzehuels/prefgrid/pkg/render/heatmap
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/prefgrid/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/prefgrid/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/prefgrid/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/prefgrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/prefgrid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/prefgrid/pkg/buildinfo
package pkg
