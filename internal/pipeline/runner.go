package pipeline

import (
	"context"
	"image"
	"io"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"github.com/eita-x/face-mosaic-oval/internal/detector"
	"github.com/eita-x/face-mosaic-oval/internal/mosaic"
)

// State of a batch run.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options configures a Runner. The zero value gives auto-derived block
// sizes and the default contour geometry.
type Options struct {
	// BlockSize is the mosaic block edge in pixels; 0 derives it per face
	// from the bounding region width.
	BlockSize int

	// Expansion and Padding are passed to the contour builder; a zero
	// Expansion or negative Padding selects the mosaic package default.
	Expansion float64
	Padding   float64

	// Feather softens the clip mask edge; 0 keeps the clip exact.
	Feather float64

	// Overlay draws diagnostic contours instead of applying the mosaic.
	Overlay bool
}

// Progress reports batch advancement after each completed file.
type Progress struct {
	Current int
	Total   int
	Path    string
}

// Result is one processed image.
type Result struct {
	Image *image.NRGBA
	// Faces is the number of detected faces; zero means the output equals
	// the input.
	Faces int
	// Applied counts faces that actually received a mosaic; faces with
	// degenerate contours are detected but skipped.
	Applied int
}

// Output is one named batch product.
type Output struct {
	Name    string
	Image   *image.NRGBA
	Faces   int
	Applied int
}

// Runner applies the face mosaic to images, one at a time. It is not safe
// for concurrent Run calls; the caller is expected to start at most one
// run at a time.
type Runner struct {
	det  detector.Detector
	log  *logrus.Logger
	opts Options

	mu      sync.Mutex
	state   State
	current int
	total   int
}

// NewRunner builds a Runner on the given detector. log may be nil, in
// which case logging is discarded.
func NewRunner(det detector.Detector, log *logrus.Logger, opts Options) *Runner {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Runner{det: det, log: log, opts: opts, state: StateIdle}
}

// State returns the run state and, while running, the current/total file
// counters.
func (r *Runner) State() (State, int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, r.current, r.total
}

func (r *Runner) setState(s State, current, total int) {
	r.mu.Lock()
	r.state = s
	r.current = current
	r.total = total
	r.mu.Unlock()
}

func (r *Runner) mosaicOptions() mosaic.Options {
	return mosaic.Options{
		BlockSize: r.opts.BlockSize,
		Expansion: r.opts.Expansion,
		Padding:   r.opts.Padding,
		Feather:   r.opts.Feather,
	}
}

// ProcessImage detects faces on img and composes the mosaic for each, in
// detection order, onto one shared output surface. Zero faces yields an
// unmodified copy of img.
func (r *Runner) ProcessImage(ctx context.Context, img image.Image) (*Result, error) {
	out := imaging.Clone(img)

	faces, err := r.det.Detect(ctx, img)
	if err != nil {
		return nil, err
	}

	applied := 0
	for i, face := range faces {
		var ok bool
		if r.opts.Overlay {
			ok = mosaic.DrawOverlay(out, face, i, r.mosaicOptions())
		} else {
			ok = mosaic.Apply(out, face, r.mosaicOptions())
		}
		if ok {
			applied++
		} else {
			r.log.WithField("face", i).Debug("skipping face with degenerate contour")
		}
	}

	return &Result{Image: out, Faces: len(faces), Applied: applied}, nil
}

// ProcessFile loads one input file and processes it. The output name
// follows the sanitized <basename>_mosaic.png convention.
func (r *Runner) ProcessFile(ctx context.Context, path string) (*Output, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}

	res, err := r.ProcessImage(ctx, img)
	if err != nil {
		return nil, &DetectError{Path: path, Err: err}
	}

	return &Output{
		Name:    OutputName(filepath.Base(path)),
		Image:   res.Image,
		Faces:   res.Faces,
		Applied: res.Applied,
	}, nil
}

// Run processes paths sequentially and returns one output per image input.
// Non-image paths are dropped silently first. The first failure aborts the
// whole run and leaves the runner in StateFailed; on success the state is
// StateDone. onProgress, when non-nil, is invoked after each completed
// file.
func (r *Runner) Run(ctx context.Context, paths []string, onProgress func(Progress)) ([]*Output, error) {
	paths = FilterImagePaths(paths)
	r.setState(StateRunning, 0, len(paths))

	outputs := make([]*Output, 0, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			r.setState(StateFailed, i, len(paths))
			return nil, err
		}

		out, err := r.ProcessFile(ctx, path)
		if err != nil {
			r.setState(StateFailed, i, len(paths))
			return nil, err
		}

		r.log.WithFields(logrus.Fields{
			"file":  path,
			"faces": out.Faces,
			"entry": out.Name,
		}).Info("processed")

		outputs = append(outputs, out)
		r.setState(StateRunning, i+1, len(paths))
		if onProgress != nil {
			onProgress(Progress{Current: i + 1, Total: len(paths), Path: path})
		}
	}

	r.setState(StateDone, len(paths), len(paths))
	return outputs, nil
}
