package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framemap/pkg/errors"
	"github.com/matzehuels/framemap/pkg/frame"
	"github.com/matzehuels/framemap/pkg/gpx"
)

// gpxCommand creates the "gpx" command that replays a GPS track as frames.
func (c *CLI) gpxCommand() *cobra.Command {
	var (
		output string
		opts   gpx.Options
	)

	cmd := &cobra.Command{
		Use:   "gpx <file.gpx>",
		Short: "Convert a GPX track into a frames document",
		Long: `Convert a GPX track into a frames document.

Every sampled track point becomes one frame: the trail travelled so far is
drawn as lines, the current position gets a car marker and GPX waypoints are
shown as flags. Routes are replayed like tracks.`,
		Example: `  framemap gpx ride.gpx -o ride.json --step 10
  framemap --input ride.json --output ride`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			if err := errors.ValidatePath("output", output); err != nil {
				return err
			}

			spinner := newSpinnerWithContext(ctx, "Importing "+args[0])
			spinner.Start()
			doc, err := gpx.ImportFile(args[0], opts)
			if err != nil {
				spinner.StopWithError("Import failed")
				return err
			}
			spinner.Stop()
			logger.Debug("imported gpx", "file", args[0], "frames", len(doc.Frames))

			if err := writeDocument(output, doc); err != nil {
				return err
			}

			printSuccess("Wrote %s", plural(len(doc.Frames), "frame"))
			printFile(output)
			printNextStep("Render", appName+" --input "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "route.json", "frames document to write")
	cmd.Flags().IntVar(&opts.Step, "step", gpx.DefaultStep, "emit a frame every N track points")
	cmd.Flags().StringVar(&opts.LineColor, "color", gpx.DefaultLineColor, "trail color (#RGB or #RRGGBB)")
	addVerboseFlag(cmd)

	return cmd
}

func writeDocument(path string, doc *frame.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "create %s", path)
	}
	if err := frame.Encode(f, doc); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "close %s", path)
	}
	return nil
}
