package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/prefgrid/pkg/pipeline"
	"github.com/matzehuels/prefgrid/pkg/pivot"
)

type graphOpts struct {
	data     string
	output   string
	formats  string
	order    string
	detailed bool
}

func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Draw entities and labels as a bipartite node-link graph",
		Long: `Graph draws each entity linked to its positive label (solid edge) and its
negative label (dashed edge). Use -f dot to get the Graphviz source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), opts)
		},
	}

	addDataFlags(cmd, &opts.data, &opts.order)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default graph.<format>)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show signed column totals on label nodes")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, opts graphOpts) error {
	ds, err := loadDataset(loggerFromContext(ctx), opts.data)
	if err != nil {
		return err
	}

	return c.execute(ctx, ds, pipeline.Options{
		View:     pipeline.ViewGraph,
		Output:   opts.output,
		Formats:  parseFormats(opts.formats),
		Order:    pivot.ColumnOrder(opts.order),
		Detailed: opts.detailed,
	})
}
