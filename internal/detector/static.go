package detector

import (
	"context"
	"image"
	"math"

	"github.com/eita-x/face-mosaic-oval/internal/landmark"
)

// Static is a Detector returning pre-configured results. It substitutes
// for the model in tests and offline runs.
type Static struct {
	faces []landmark.Face
	err   error
}

// NewStatic creates a Static detector that reports the given faces for
// every image.
func NewStatic(faces ...landmark.Face) *Static {
	return &Static{faces: faces}
}

// SetError makes subsequent Detect calls fail with err.
func (s *Static) SetError(err error) {
	s.err = err
}

// Detect returns the configured faces or error; the image is ignored.
func (s *Static) Detect(ctx context.Context, img image.Image) ([]landmark.Face, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.faces, nil
}

// Close is a no-op.
func (s *Static) Close() error { return nil }

// OvalFace builds a synthetic face whose 36 oval landmarks trace an
// ellipse centered at (cx,cy) with radii (rx,ry), all normalized. Vertex
// order follows landmark.FaceOval, giving a convex simple polygon. All
// other Face Mesh slots are zero.
func OvalFace(cx, cy, rx, ry float64) landmark.Face {
	f := make(landmark.Face, landmark.NumLandmarks)
	for i, idx := range landmark.FaceOval {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/landmark.NumOvalPoints
		f[idx] = landmark.Landmark{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return f
}
