package mosaic

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
	"golang.org/x/image/vector"

	"github.com/eita-x/face-mosaic-oval/internal/landmark"
)

// Options controls how a face is mosaicked.
type Options struct {
	// BlockSize is the mosaic block edge length in pixels. Zero derives the
	// size per face via AutoBlockSize.
	BlockSize int

	// Expansion scales the contour polygon about its centroid; 1.0 disables
	// expansion. Zero selects DefaultExpansion.
	Expansion float64

	// Padding is the relative margin added around the polygon's bounding
	// box. Negative values select DefaultPadding; zero means no padding.
	Padding float64

	// Feather is a gaussian radius applied to the clip mask edge. Zero
	// keeps the clip exact: pixels outside the polygon are untouched.
	Feather float64
}

func (o Options) withDefaults() Options {
	if o.Expansion == 0 {
		o.Expansion = DefaultExpansion
	}
	if o.Padding < 0 {
		o.Padding = DefaultPadding
	}
	return o
}

// Apply composites a block mosaic over one face on dst, clipped to the
// face's expanded oval contour. It reads dst's current pixel content for
// the patch, so multiple faces on the same surface accumulate in call
// order. Returns false when the face has too few usable oval points, in
// which case dst is untouched.
//
// dst must have its origin at (0,0); images produced by imaging.Clone do.
func Apply(dst draw.Image, face landmark.Face, opts Options) bool {
	opts = opts.withDefaults()

	b := dst.Bounds()
	points := face.OvalPoints(b.Dx(), b.Dy())
	c, ok := BuildContour(points, opts.Expansion, opts.Padding, b.Dx(), b.Dy())
	if !ok {
		return false
	}

	blockSize := opts.BlockSize
	if blockSize <= 0 {
		blockSize = AutoBlockSize(c.Region.Dx())
	}

	patch := Pixelate(dst, c.Region, blockSize)
	mask := rasterizeMask(c, opts.Feather)

	draw.DrawMask(dst, c.Region, patch, image.Point{}, mask, image.Point{}, draw.Over)
	return true
}

// rasterizeMask renders the contour polygon as an alpha mask in region
// coordinates: mask pixel (0,0) corresponds to Region.Min.
func rasterizeMask(c Contour, feather float64) *image.Alpha {
	w, h := c.Region.Dx(), c.Region.Dy()
	ox := float64(c.Region.Min.X)
	oy := float64(c.Region.Min.Y)

	r := vector.NewRasterizer(w, h)
	r.MoveTo(float32(c.Points[0].X-ox), float32(c.Points[0].Y-oy))
	for _, p := range c.Points[1:] {
		r.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	if feather > 0 {
		mask = featherMask(mask, feather)
	}
	return mask
}

// featherMask softens the mask edge with a gaussian blur. Alpha images
// convert to premultiplied RGBA with all channels equal to alpha, so the
// blurred A channel is the blurred coverage.
func featherMask(mask *image.Alpha, radius float64) *image.Alpha {
	blurred := blur.Gaussian(mask, radius)
	out := image.NewAlpha(mask.Bounds())
	for i := range out.Pix {
		out.Pix[i] = blurred.Pix[i*4+3]
	}
	return out
}
