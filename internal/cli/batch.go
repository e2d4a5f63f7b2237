package cli

import (
	"os"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eita-x/face-mosaic-oval/internal/pipeline"
)

var batchOutput string

// defaultBatchBlockSize is used when the user leaves strength at 0 in
// batch mode. Unlike single-image mode, batch runs use one fixed block
// size across all faces so mixed face sizes produce predictable output.
const defaultBatchBlockSize = 16

var batchCmd = &cobra.Command{
	Use:   "batch <images...>",
	Short: "Mosaic faces in many images and package them as a zip archive",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ctx := cmd.Context()

		runID := uuid.NewString()[:8]
		entry := log.WithField("run", runID)

		lazy := newDetector()
		defer lazy.Close()

		det, err := lazy.Get(ctx)
		if err != nil {
			return err
		}

		blockSize := strength
		if blockSize == 0 {
			blockSize = defaultBatchBlockSize
		}
		runner := pipeline.NewRunner(det, log, pipelineOptions(blockSize))

		paths := pipeline.FilterImagePaths(args)
		bar := progressbar.NewOptions(len(paths),
			progressbar.OptionSetDescription("Mosaicking"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
		)

		outputs, err := runner.Run(ctx, paths, func(p pipeline.Progress) {
			bar.Add(1)
		})
		if err != nil {
			return err
		}

		f, err := os.Create(batchOutput)
		if err != nil {
			return err
		}
		if err := pipeline.WriteArchive(f, outputs); err != nil {
			f.Close()
			os.Remove(batchOutput)
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		noFace := 0
		for _, out := range outputs {
			if out.Faces == 0 {
				noFace++
			}
		}
		entry.WithFields(logrus.Fields{
			"outputs": len(outputs),
			"no_face": noFace,
			"archive": batchOutput,
		}).Info("batch complete")
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "mosaic_images.zip", "Output archive path")
	rootCmd.AddCommand(batchCmd)
}
