package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/framemap/pkg/cache"
	"github.com/matzehuels/framemap/pkg/errors"
	"github.com/matzehuels/framemap/pkg/frame"
	"github.com/matzehuels/framemap/pkg/geo"
	"github.com/matzehuels/framemap/pkg/observability"
	"github.com/matzehuels/framemap/pkg/render/leaflet"
	"github.com/matzehuels/framemap/pkg/render/navigator"
	"github.com/matzehuels/framemap/pkg/render/notes"
	"github.com/matzehuels/framemap/pkg/render/summary"
)

// Runner executes runs with page caching.
//
// A Runner holds no per-run state, so one Runner can serve several runs,
// though Reporter output would interleave.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Reporter Reporter
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses DefaultKeyer and a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
		Reporter: nopReporter{},
	}
}

// Execute loads opts.Input and writes every page into opts.OutputDir.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	result, err := r.execute(ctx, opts)
	frames := 0
	if result != nil {
		frames = result.Stats.Frames
	}
	observability.Pipeline().OnRunComplete(ctx, frames, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Runner) execute(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	doc, err := frame.Load(opts.Input)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.Input, 0, time.Since(start), err)
		return nil, err
	}
	result := &Result{OutputDir: opts.OutputDir}
	result.Stats.LoadTime = time.Since(start)
	result.Stats.Frames = len(doc.Frames)
	observability.Pipeline().OnLoadComplete(ctx, opts.Input, len(doc.Frames), result.Stats.LoadTime, nil)
	for _, f := range doc.Frames {
		result.Stats.Markers += len(f.Tags)
		result.Stats.Lines += len(f.Lines)
	}
	r.Logger.Info("loaded frames",
		"input", opts.Input,
		"frames", result.Stats.Frames,
		"markers", result.Stats.Markers,
		"lines", result.Stats.Lines)

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputWrite, err, "create output directory %s", opts.OutputDir)
	}

	fallback := geo.Box(geo.DocumentBounds(doc.Frames))
	if fallback != nil {
		r.Logger.Debug("document bounds", "box", fallback.String())
	}

	if err := summary.WriteFile(filepath.Join(opts.OutputDir, SummaryFile), doc.Frames); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, SummaryFile)

	mapsStart := time.Now()
	hits, err := r.renderMaps(ctx, doc.Frames, fallback, opts)
	if err != nil {
		return result, err
	}
	result.Stats.CacheHits = hits
	result.Stats.MapsTime = time.Since(mapsStart)
	for i := range doc.Frames {
		result.Files = append(result.Files, MapFile(i))
	}
	r.Logger.Info("rendered map pages",
		"frames", len(doc.Frames),
		"cached", hits,
		"duration", result.Stats.MapsTime)

	result.NavigatorPath = filepath.Join(opts.OutputDir, NavigatorFile)
	if err := navigator.WriteFile(result.NavigatorPath, len(doc.Frames),
		navigator.WithMapPattern(MapPattern), navigator.WithSummaryFile(SummaryFile)); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, NavigatorFile)

	if opts.Notes {
		if err := notes.WriteFile(filepath.Join(opts.OutputDir, NotesFile), doc.Frames); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, NotesFile)
	}

	result.Stats.TotalTime = time.Since(start)
	return result, nil
}

// renderMaps writes one map page per frame on a bounded worker group. The
// first failure cancels the remaining frames. It returns the number of
// pages served from cache.
func (r *Runner) renderMaps(ctx context.Context, frames []frame.Frame, fallback *geo.BoundingBox, opts Options) (int, error) {
	tiles := leaflet.TilesFor(opts.TileKey)
	reporter := r.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	var (
		mu   sync.Mutex
		done int
		hits int
	)
	reporter.Start(len(frames))
	defer reporter.Finish()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, f := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frameStart := time.Now()
			hit, err := r.writeMap(ctx, i, f, fallback, tiles, opts)
			observability.Pipeline().OnFrameRendered(ctx, i, hit, time.Since(frameStart), err)
			if err != nil {
				return err
			}
			r.Logger.Debug("wrote map page", "index", i, "cached", hit)

			mu.Lock()
			defer mu.Unlock()
			done++
			if hit {
				hits++
			}
			reporter.Update(done, MapFile(i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return hits, err
	}
	return hits, nil
}

// writeMap writes frame i's page. Pages carrying a tile API key are never
// read from or stored in the cache, so the key only ever lands in the
// output directory.
func (r *Runner) writeMap(ctx context.Context, i int, f frame.Frame, fallback *geo.BoundingBox, tiles leaflet.TileProvider, opts Options) (bool, error) {
	title := fmt.Sprintf("Frame %d", i)
	path := filepath.Join(opts.OutputDir, MapFile(i))
	cacheable := opts.TileKey == ""
	key := r.Keyer.PageKey(f, cache.PageKeyOpts{Fallback: fallback, TileURL: tiles.URL, Title: title})
	hooks := observability.Cache()

	if cacheable && !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Debug("cache read failed", "index", i, "error", err)
		}
		if err == nil && hit {
			hooks.OnCacheHit(ctx, "page")
			return true, leaflet.WritePage(path, data)
		}
		hooks.OnCacheMiss(ctx, "page")
	}

	data := leaflet.Build(f, leaflet.WithFallback(fallback), leaflet.WithTiles(tiles), leaflet.WithTitle(title))
	if err := leaflet.WritePage(path, data); err != nil {
		return false, err
	}
	if !cacheable {
		return false, nil
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLPage); err != nil {
		r.Logger.Warn("cache write failed", "index", i, "error", err)
	} else {
		hooks.OnCacheSet(ctx, "page", len(data))
	}
	return false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
