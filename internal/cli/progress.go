package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/matzehuels/framemap/pkg/pipeline"
)

// newReporter picks how per-frame progress is shown: nothing in verbose mode
// (debug logs already cover each frame), plain lines under CI, and a
// progress bar otherwise.
func newReporter(w io.Writer, verbose bool) pipeline.Reporter {
	switch {
	case verbose:
		return quietReporter{}
	case os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "":
		return &lineReporter{w: w}
	default:
		return &barReporter{w: w}
	}
}

// barReporter draws a terminal progress bar.
type barReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (r *barReporter) Start(total int) {
	if total == 0 {
		return
	}
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription("Rendering maps"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *barReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *barReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// lineReporter prints one line per frame, suitable for CI logs.
type lineReporter struct {
	w     io.Writer
	total int
}

func (r *lineReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.w, "Rendering %d map pages\n", total)
}

func (r *lineReporter) Update(current int, message string) {
	fmt.Fprintf(r.w, "[%d/%d] %s\n", current, r.total, message)
}

func (r *lineReporter) Finish() {
	fmt.Fprintln(r.w, "Map pages complete")
}

type quietReporter struct{}

func (quietReporter) Start(int)          {}
func (quietReporter) Update(int, string) {}
func (quietReporter) Finish()            {}
