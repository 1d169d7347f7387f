package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Log lines go to w (stderr in main) so
// that stdout only carries the list of written files.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// renderTimer measures one command run, from loading the data until the
// last artifact is on disk.
type renderTimer struct {
	logger *log.Logger
	view   string
	start  time.Time
}

func startRender(l *log.Logger, view string) *renderTimer {
	return &renderTimer{logger: l, view: view, start: time.Now()}
}

// finish logs the view, how many files were written and the wall time.
func (t *renderTimer) finish(files int) {
	t.logger.Info("render finished",
		"view", t.view,
		"files", files,
		"elapsed", time.Since(t.start).Round(time.Millisecond))
}

type loggerKey struct{}

// withLogger stores l in ctx for the subcommands.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger set by the root command. Commands
// run outside of it (tests calling a RunE directly) get log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
