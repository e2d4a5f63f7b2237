package detector

import (
	"context"
	"image"

	"github.com/eita-x/face-mosaic-oval/internal/landmark"
)

// Detector produces per-face landmark arrays for one image. A result with
// zero faces is not an error. Implementations need not be safe for
// concurrent Detect calls unless documented otherwise.
type Detector interface {
	Detect(ctx context.Context, img image.Image) ([]landmark.Face, error)
	Close() error
}

// InitError marks a failure to initialize the landmark model or its
// runtime. Callers may retry: Lazy never caches an InitError.
type InitError struct {
	Err error
}

func (e *InitError) Error() string { return "detector init: " + e.Err.Error() }

func (e *InitError) Unwrap() error { return e.Err }
