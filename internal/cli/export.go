package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/prefgrid/pkg/pipeline"
	"github.com/matzehuels/prefgrid/pkg/pivot"
)

type exportOpts struct {
	data    string
	output  string
	formats string
	order   string
}

func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the pivoted matrix as JSON or a colour-coded spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), opts)
		},
	}

	addDataFlags(cmd, &opts.data, &opts.order)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default matrix.<format>)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): json (default), xlsx (comma-separated)")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, opts exportOpts) error {
	ds, err := loadDataset(loggerFromContext(ctx), opts.data)
	if err != nil {
		return err
	}

	return c.execute(ctx, ds, pipeline.Options{
		View:    pipeline.ViewExport,
		Output:  opts.output,
		Formats: parseFormats(opts.formats),
		Order:   pivot.ColumnOrder(opts.order),
	})
}
