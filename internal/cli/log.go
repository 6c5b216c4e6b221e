// Package cli implements the framemap command-line interface.
//
// The root command renders a frames document into map pages and takes only
// --input and --output. Subcommands:
//   - render: the same action with workers, notes and cache flags
//   - gpx: convert a GPX track into a frames document
//   - cache: inspect or clear the rendered page cache
//   - completion: generate shell completion scripts
//
// # Logging
//
// Subcommands accept --verbose (-v) for debug-level logging; the root
// command reads it from FRAMEMAP_VERBOSE or framemap.yaml. The logger
// travels on the command context (see withLogger and loggerFromContext);
// human-facing status lines go to stdout through the helpers in ui.go.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps (e.g. "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of one operation. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to milliseconds, e.g.
// "Rendered 42 frames (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger stored by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
