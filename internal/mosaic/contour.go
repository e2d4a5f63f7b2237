package mosaic

import (
	"image"
	"math"

	"github.com/eita-x/face-mosaic-oval/internal/landmark"
)

// Default geometry parameters. Expansion enlarges the landmark polygon to
// compensate for the landmark-to-skin-edge offset; padding widens the
// bounding region relative to the polygon extent.
const (
	DefaultExpansion = 1.12
	DefaultPadding   = 0.08
)

// Contour is a face clipping polygon together with its padded bounding
// region. Points are in pixel space and already expanded; Region is clamped
// to the image bounds and never empty.
type Contour struct {
	Points []landmark.Point
	Region image.Rectangle
}

// BuildContour derives the clipping contour and bounding region for one
// face from its pixel-space oval points. expansion scales the polygon about
// its centroid (1.0 = no expansion); padding is the relative margin added
// around the polygon's bounding box on each side. width and height are the
// image dimensions used for clamping.
//
// Fewer than three points cannot form a polygon; ok is false and the face
// must be skipped without touching the image.
func BuildContour(points []landmark.Point, expansion, padding float64, width, height int) (c Contour, ok bool) {
	if len(points) < 3 {
		return Contour{}, false
	}

	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(points))
	cy /= float64(len(points))

	expanded := make([]landmark.Point, len(points))
	for i, p := range points {
		expanded[i] = landmark.Point{
			X: cx + (p.X-cx)*expansion,
			Y: cy + (p.Y-cy)*expansion,
		}
	}

	minX, minY := expanded[0].X, expanded[0].Y
	maxX, maxY := minX, minY
	for _, p := range expanded[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	w := maxX - minX
	h := maxY - minY
	fw, fh := float64(width), float64(height)

	x := clampFloat(minX-w*padding, 0, fw)
	y := clampFloat(minY-h*padding, 0, fh)
	rw := clampFloat(w*(1+2*padding), 1, fw-x)
	rh := clampFloat(h*(1+2*padding), 1, fh-y)

	region := image.Rect(
		int(math.Floor(x)),
		int(math.Floor(y)),
		int(math.Ceil(x+rw)),
		int(math.Ceil(y+rh)),
	).Intersect(image.Rect(0, 0, width, height))

	// Rounding or a polygon entirely past an edge can still collapse the
	// region; force the 1x1 minimum inside the image.
	if region.Dx() < 1 || region.Dy() < 1 {
		px := clampInt(int(x), 0, width-1)
		py := clampInt(int(y), 0, height-1)
		region = image.Rect(px, py, px+1, py+1)
	}

	return Contour{Points: expanded, Region: region}, true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
