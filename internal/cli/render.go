package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framemap/internal/config"
	"github.com/matzehuels/framemap/pkg/pipeline"
)

func (c *CLI) runRender(cmd *cobra.Command, args []string) error {
	ctx := withLogger(cmd.Context(), c.Logger)
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(c.ConfigDir, cmd.Flags())
	if err != nil {
		return err
	}
	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	if cfg.File != "" {
		logger.Debug("loaded config", "file", cfg.File)
	}
	if cfg.TileKey == "" {
		logger.Debug("no tile key set, using OpenStreetMap tiles", "env", config.TileKeyEnv)
	}

	runner := c.newRunner(cfg)
	defer runner.Close()
	runner.Reporter = newReporter(cmd.ErrOrStderr(), c.verbose())

	opts := cfg.PipelineOptions()
	prog := newProgress(logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d frames", result.Stats.Frames))

	printRenderResult(result)
	return nil
}

func printRenderResult(r *pipeline.Result) {
	printSuccess("Rendering complete! Open '%s' in your browser.", r.NavigatorPath)
	printStats(r.Stats)
	for _, name := range r.Files {
		if name == pipeline.SummaryFile || name == pipeline.NavigatorFile || name == pipeline.NotesFile {
			printFile(filepath.Join(r.OutputDir, name))
		}
	}
	if r.Stats.Frames > 0 {
		printDetail("%d map pages: %s ... %s", r.Stats.Frames,
			pipeline.MapFile(0), pipeline.MapFile(r.Stats.Frames-1))
	}
	printNewline()
	printInfo("Use the Previous/Next buttons to navigate between frames.")
}
