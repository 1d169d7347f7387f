package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/prefgrid/pkg/errors"
	"github.com/matzehuels/prefgrid/pkg/pivot"
	"github.com/matzehuels/prefgrid/pkg/render/colors"
)

// Options configures graph generation.
type Options struct {
	// Detailed adds the signed column total to each label node and fills it
	// with the matching scale colour. When false, label nodes are white.
	Detailed bool
}

// ToDOT converts a matrix to Graphviz DOT source.
//
// Entities form the left rank and labels the right rank, each in matrix
// order. Every +1 cell becomes a solid warm edge and every -1 cell a dashed
// cool edge; 0 cells produce no edge.
func ToDOT(m *pivot.Matrix, opts Options) string {
	scale := colors.NewScale()
	posColor, negColor := scale.Hex(pivot.Positive), scale.Hex(pivot.Negative)

	var buf bytes.Buffer
	buf.WriteString("digraph preferences {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [arrowhead=none, penwidth=2];\n")
	buf.WriteString("  ranksep=1.5;\n")
	buf.WriteString("\n")

	if m.Empty() {
		buf.WriteString("}\n")
		return buf.String()
	}

	rows, cols := m.Rows(), m.Columns()

	buf.WriteString("  { rank=same;\n")
	for _, r := range rows {
		fmt.Fprintf(&buf, "    %s [label=%s];\n", quote(entityID(r)), quote(r))
	}
	buf.WriteString("  }\n")

	totals := m.ColumnTotals()
	buf.WriteString("  { rank=same;\n")
	for j, c := range cols {
		attrs := []string{"label=" + quote(c)}
		if opts.Detailed {
			attrs = []string{
				"label=" + quote(fmt.Sprintf("%s\n%+d", c, totals[j])),
				"fillcolor=" + quote(scale.Hex(float64(totals[j])/float64(len(rows)))),
			}
		}
		fmt.Fprintf(&buf, "    %s [%s];\n", quote(labelID(c)), strings.Join(attrs, ", "))
	}
	buf.WriteString("  }\n")

	buf.WriteString("\n")
	for i, r := range rows {
		for j, c := range cols {
			var attrs string
			switch m.At(i, j) {
			case pivot.Positive:
				attrs = "color=" + quote(posColor)
			case pivot.Negative:
				attrs = "color=" + quote(negColor) + ", style=dashed"
			default:
				continue
			}
			fmt.Fprintf(&buf, "  %s -> %s [%s];\n", quote(entityID(r)), quote(labelID(c)), attrs)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Entities and labels live in separate namespaces, so a label spelled like
// an entity still gets its own node.
func entityID(name string) string { return "e:" + name }
func labelID(name string) string  { return "l:" + name }

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// quote returns s as a DOT double-quoted string.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	data, err := render(dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.WrapRender(err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.WrapRender(err, "render %s", format)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based svg element with one whose
// width and height equal its viewBox, so the graph scales cleanly.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
