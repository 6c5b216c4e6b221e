package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/framemap/internal/config"
	"github.com/matzehuels/framemap/pkg/buildinfo"
	"github.com/matzehuels/framemap/pkg/cache"
	"github.com/matzehuels/framemap/pkg/pipeline"
)

// appName is used for the cache directory and in help text.
const appName = "framemap"

// Log levels accepted by New and SetLogLevel.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigDir is searched for framemap.yaml.
	ConfigDir string
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:    newLogger(w, level),
		ConfigDir: ".",
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

func (c *CLI) verbose() bool {
	return c.Logger.GetLevel() <= log.DebugLevel
}

// RootCommand creates the root command. Run without a subcommand it renders
// a frames document and accepts only --input and --output; everything else
// comes from framemap.yaml or FRAMEMAP_* variables, or from the render
// subcommand's flags.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "framemap renders frames of map events as browsable Leaflet pages",
		Long: `framemap reads a JSON document of frames, each a set of markers and line
segments, and writes one interactive map page per frame, an index of all
frames and a navigator page that steps through them.

Open the navigator (_master.html in the output directory) in a browser and
use Previous/Next or the arrow keys to move between frames.`,
		Example: `  framemap --input route.json --output route_output
  GOOGLE_MAPS_API_KEY=... framemap -i trips.json -o trips
  framemap gpx morning-run.gpx -o run.json && framemap -i run.json`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         c.runRender,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if v, err := cmd.Flags().GetBool("verbose"); err == nil && v {
				c.SetLogLevel(LogDebug)
			}
		},
	}
	root.SetVersionTemplate(buildinfo.Template())
	addIOFlags(root)

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.gpxCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// renderCommand is the root action with every rendering option exposed as a
// flag.
func (c *CLI) renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a frames document with extra options",
		Example: `  framemap render -i route.json --notes --workers 4
  framemap render -i route.json --cache`,
		Args: cobra.NoArgs,
		RunE: c.runRender,
	}
	addIOFlags(cmd)
	flags := cmd.Flags()
	flags.Int("workers", 0, "map pages rendered in parallel (0 = number of CPUs)")
	flags.Bool("notes", false, "also write notes.html, a Markdown digest of all frames")
	flags.Bool("cache", false, "reuse rendered pages across runs (pages with a tile key are never cached)")
	flags.Bool("refresh", false, "re-render every page, ignoring cached copies")
	flags.String("cache-dir", "", "page cache directory (default ~/.cache/framemap)")
	addVerboseFlag(cmd)
	return cmd
}

func addIOFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", pipeline.DefaultInput, "frames JSON document")
	cmd.Flags().StringP("output", "o", pipeline.DefaultOutputDir, "output directory")
}

func addVerboseFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("verbose", "v", false, "enable verbose logging")
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(cfg config.Config) *pipeline.Runner {
	return pipeline.NewRunner(c.newCache(cfg), nil, c.Logger)
}

// newCache opens the page cache when enabled. Failing to open it only
// disables caching.
func (c *CLI) newCache(cfg config.Config) cache.Cache {
	if !cfg.Cache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir(cfg.CacheDir)
	if err != nil {
		c.Logger.Warn("page cache disabled", "error", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("page cache disabled", "dir", dir, "error", err)
		return cache.NewNullCache()
	}
	c.Logger.Debug("page cache", "dir", dir)
	return fc
}

// cacheDir returns override when set, else the XDG cache location
// (~/.cache/framemap).
func cacheDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
