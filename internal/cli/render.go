package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/prefgrid/pkg/pipeline"
	"github.com/matzehuels/prefgrid/pkg/pivot"
	"github.com/matzehuels/prefgrid/pkg/render/heatmap"
)

// renderOpts holds the command-line flags for the render command.
// Empty strings defer to the data file, then to the built-in defaults.
type renderOpts struct {
	data    string  // TOML data file; built-in table if empty
	output  string  // output file (single format) or base path (multiple)
	formats string  // comma-separated: jpg, png, tif, svg, pdf
	order   string  // column order: record or grouped
	dpi     int     // raster resolution
	width   float64 // figure width in inches
	height  float64 // figure height in inches
	title   string
	xLabel  string
	yLabel  string
	legend  string
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		dpi:    heatmap.DefaultDPI,
		width:  heatmap.DefaultWidth,
		height: heatmap.DefaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the preference matrix as an annotated heatmap",
		Long: `Render pivots the records and draws the heatmap.

With one format the figure is written to --output as-is. With several
formats, --output's extension is replaced by each format's, so
"-o fig.jpg -f jpg,svg" writes fig.jpg and fig.svg.`,
		Example: `  prefgrid render
  prefgrid render --data prefs.toml -o prefs.png
  prefgrid render -f jpg,pdf --dpi 600 --title "Best models"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), opts)
		},
	}

	addDataFlags(cmd, &opts.data, &opts.order)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default "+pipeline.DefaultOutput+")")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): jpg (default), png, tif, svg, pdf (comma-separated)")
	cmd.Flags().IntVar(&opts.dpi, "dpi", opts.dpi, "raster resolution in dots per inch")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "figure width in inches")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "figure height in inches")
	cmd.Flags().StringVar(&opts.title, "title", "", "figure title")
	cmd.Flags().StringVar(&opts.xLabel, "x-label", "", "x axis label")
	cmd.Flags().StringVar(&opts.yLabel, "y-label", "", "y axis label")
	cmd.Flags().StringVar(&opts.legend, "legend", "", "colour bar label")

	return cmd
}

// addDataFlags registers the flags shared by every command that reads
// records.
func addDataFlags(cmd *cobra.Command, data, order *string) {
	cmd.Flags().StringVar(data, "data", "", "TOML data file (default: built-in table)")
	cmd.Flags().StringVar(order, "column-order", string(pivot.OrderRecords), "column order: record, grouped")
}

func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	ds, err := loadDataset(loggerFromContext(ctx), opts.data)
	if err != nil {
		return err
	}

	return c.execute(ctx, ds, pipeline.Options{
		View:    pipeline.ViewHeatmap,
		Output:  opts.output,
		Formats: parseFormats(opts.formats),
		Order:   pivot.ColumnOrder(opts.order),
		Title:   opts.title,
		XLabel:  opts.xLabel,
		YLabel:  opts.yLabel,
		Legend:  opts.legend,
		DPI:     opts.dpi,
		Width:   opts.width,
		Height:  opts.height,
	})
}
