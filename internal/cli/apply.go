package cli

import (
	"github.com/spf13/cobra"

	"github.com/eita-x/face-mosaic-oval/internal/pipeline"
)

var applyOutput string

var applyCmd = &cobra.Command{
	Use:   "apply <image>",
	Short: "Mosaic faces in a single image and write a PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ctx := cmd.Context()

		lazy := newDetector()
		defer lazy.Close()

		det, err := lazy.Get(ctx)
		if err != nil {
			return err
		}

		// Single-image mode: strength 0 auto-derives the block size per
		// face, so the block density tracks the detected face size.
		runner := pipeline.NewRunner(det, log, pipelineOptions(strength))

		img, err := pipeline.LoadImage(args[0])
		if err != nil {
			return err
		}

		res, err := runner.ProcessImage(ctx, img)
		if err != nil {
			return err
		}

		if res.Faces == 0 {
			log.Warn("no face found; output equals input")
		} else {
			log.WithField("faces", res.Faces).Info("faces mosaicked")
		}

		if err := pipeline.SavePNG(applyOutput, res.Image); err != nil {
			return err
		}
		log.WithField("file", applyOutput).Info("wrote output")
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVarP(&applyOutput, "output", "o", "mosaic.png", "Output PNG path")
	rootCmd.AddCommand(applyCmd)
}
