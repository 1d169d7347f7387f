// Package cli implements the prefgrid command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/prefgrid/pkg/buildinfo"
	"github.com/matzehuels/prefgrid/pkg/pipeline"
	"github.com/matzehuels/prefgrid/pkg/table"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "prefgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output (tables, written files). Logs go to the
	// logger's writer.
	Out io.Writer
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand, it renders the built-in table to heatmap.jpg.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "prefgrid draws preference tables as annotated heatmaps",
		Long: `prefgrid pivots (entity, positive, negative) records into a -1/0/+1 matrix
and draws it as an annotated diverging heatmap.

Run without a command to render the built-in country/model table to
heatmap.jpg at 300 DPI.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), renderOpts{})
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.exportCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// loadDataset reads the data file at path, or returns the built-in table
// if path is empty.
func loadDataset(logger *log.Logger, path string) (table.Dataset, error) {
	if path == "" {
		logger.Debug("using built-in table")
		return table.Reference(), nil
	}
	ds, err := table.Load(path)
	if err != nil {
		return table.Dataset{}, err
	}
	logger.Debug("loaded data file", "path", path, "records", len(ds.Records))
	return ds, nil
}

// parseFormats parses a comma-separated format list. Empty means "let the
// pipeline decide".
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// execute runs the pipeline for ds and writes its artifacts, reporting the
// written files on c.Out.
func (c *CLI) execute(ctx context.Context, ds table.Dataset, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	spin := newSpinner(ctx, os.Stderr, "Rendering "+opts.View+"...")
	spin.Start()
	timer := startRender(logger, opts.View)

	result, err := pipeline.NewRunner(logger).Execute(ctx, ds, opts)
	spin.Stop()
	if err != nil {
		return err
	}
	// An interrupt that lands after the last stage must not write files.
	if spin.Cancelled() {
		return ctx.Err()
	}

	paths, err := pipeline.WriteArtifacts(result, opts)
	if err != nil {
		return err
	}
	timer.finish(len(paths))

	printSuccess(c.Out, "Wrote %d file(s)", len(paths))
	for _, p := range paths {
		printFile(c.Out, p)
	}
	printStats(c.Out, result.Stats.Rows, result.Stats.Cols, result.Stats.RenderTime.Round(time.Millisecond))
	return nil
}
