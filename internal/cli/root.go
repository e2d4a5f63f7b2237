// Package cli wires the mosaic pipeline into the facemosaic command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eita-x/face-mosaic-oval/internal/detector"
	"github.com/eita-x/face-mosaic-oval/internal/pipeline"
)

// Version is the application version, overridable via ldflags.
var Version = "0.1.0"

// detectorEnv names the environment variable consulted when --detector is
// not given.
const detectorEnv = "FACEMOSAIC_DETECTOR"

var (
	log = logrus.New()

	strength    int
	expansion   float64
	padding     float64
	feather     float64
	overlay     bool
	detectorCmd string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "facemosaic",
	Short: "Pixelate faces along their contour in still images",
	Long: `facemosaic detects faces in still images and applies a block mosaic
clipped to each face's oval contour, leaving everything outside the
face untouched. Landmark detection runs in an external landmarker
process configured via --detector or ` + detectorEnv + `.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&nested.Formatter{
			HideKeys:        false,
			FieldsOrder:     []string{"run", "file", "faces"},
			TimestampFormat: "15:04:05",
		})
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the command tree, honoring Ctrl+C via context cancellation.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&strength, "strength", "s", 0, "Mosaic block size in pixels (0 = derive from face size)")
	pf.Float64Var(&expansion, "expand", 0, "Contour expansion factor about the centroid (0 = default 1.12)")
	pf.Float64Var(&padding, "padding", -1, "Bounding region padding ratio (negative = default 0.08)")
	pf.Float64Var(&feather, "feather", 0, "Clip mask feather radius in pixels (0 = exact clip)")
	pf.BoolVar(&overlay, "overlay", false, "Draw contour diagnostics instead of mosaicking")
	pf.StringVar(&detectorCmd, "detector", "", "Landmarker command line (default: $"+detectorEnv+")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// newDetector builds the lazily-initialized landmarker handle shared by a
// command invocation.
func newDetector() *detector.Lazy {
	cmdline := detectorCmd
	if cmdline == "" {
		cmdline = os.Getenv(detectorEnv)
	}
	return detector.NewLazy(func(ctx context.Context) (detector.Detector, error) {
		if cmdline == "" {
			return nil, errors.New("no landmarker configured: set --detector or " + detectorEnv)
		}
		parts := strings.Fields(cmdline)
		return detector.StartCommand(parts[0], parts[1:]...)
	})
}

func pipelineOptions(blockSize int) pipeline.Options {
	return pipeline.Options{
		BlockSize: blockSize,
		Expansion: expansion,
		Padding:   padding,
		Feather:   feather,
		Overlay:   overlay,
	}
}
