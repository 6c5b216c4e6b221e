// Package pipeline turns a frames document into a directory of map pages.
//
// A run has four ordered steps:
//
//  1. Load: read and validate the frames document
//  2. Summary: write all_frames.html with one anchor per frame
//  3. Maps: write event_{i}.html for every frame, in parallel
//  4. Navigator: write _master.html linking the two
//
// With Options.Notes set, a Markdown digest is also written as notes.html.
// Files already written stay in place when a later step fails.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:     "route.json",
//	    OutputDir: "route_output",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.NavigatorPath)
package pipeline

import (
	"fmt"
	"runtime"
	"time"

	"github.com/matzehuels/framemap/pkg/errors"
	"github.com/matzehuels/framemap/pkg/render/navigator"
)

const (
	// DefaultInput is the frames document read when none is given.
	DefaultInput = "route.json"

	// DefaultOutputDir is where pages are written when no directory is given.
	DefaultOutputDir = "route_output"
)

// Output file names.
const (
	SummaryFile   = navigator.DefaultSummaryFile
	MapPattern    = navigator.DefaultMapPattern
	NavigatorFile = "_master.html"
	NotesFile     = "notes.html"
)

// MapFile returns the file name of frame i's map page.
func MapFile(i int) string {
	return fmt.Sprintf(MapPattern, i)
}

// Options configures a run.
type Options struct {
	Input     string `json:"input"`
	OutputDir string `json:"output_dir"`

	// TileKey selects keyed map tiles when non-empty.
	TileKey string `json:"-"`

	// Workers bounds how many map pages render at once. Zero means
	// GOMAXPROCS.
	Workers int `json:"workers,omitempty"`

	// Notes also writes the Markdown digest page.
	Notes bool `json:"notes,omitempty"`

	// Refresh ignores cached pages (fresh pages are still stored).
	Refresh bool `json:"refresh,omitempty"`
}

// SetDefaults fills zero fields.
func (o *Options) SetDefaults() {
	if o.Input == "" {
		o.Input = DefaultInput
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
}

// Validate checks the options. Call SetDefaults first.
func (o *Options) Validate() error {
	if err := errors.ValidatePath("input", o.Input); err != nil {
		return err
	}
	if err := errors.ValidatePath("output", o.OutputDir); err != nil {
		return err
	}
	if err := errors.ValidateTileKey(o.TileKey); err != nil {
		return err
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must not be negative, got %d", o.Workers)
	}
	return nil
}

// Result describes a completed run.
type Result struct {
	// OutputDir is the directory everything was written to.
	OutputDir string

	// NavigatorPath is the page to open in a browser.
	NavigatorPath string

	// Files lists written file names relative to OutputDir: the summary,
	// the map pages in frame order, the navigator, then notes if enabled.
	Files []string

	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	Frames    int
	Markers   int
	Lines     int
	CacheHits int
	LoadTime  time.Duration
	MapsTime  time.Duration
	TotalTime time.Duration
}
