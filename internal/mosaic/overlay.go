package mosaic

import (
	"image/color"
	"image/draw"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/eita-x/face-mosaic-oval/internal/landmark"
)

// DrawOverlay draws diagnostic geometry for one face instead of a mosaic:
// the expanded contour polygon, the padded bounding region, and the raw
// oval landmark points. faceIndex selects a distinct hue per face so
// overlapping faces stay tellable apart. Returns false when the face has
// too few usable oval points.
func DrawOverlay(dst draw.Image, face landmark.Face, faceIndex int, opts Options) bool {
	opts = opts.withDefaults()

	b := dst.Bounds()
	points := face.OvalPoints(b.Dx(), b.Dy())
	c, ok := BuildContour(points, opts.Expansion, opts.Padding, b.Dx(), b.Dy())
	if !ok {
		return false
	}

	line, dot, box := overlayColors(faceIndex)

	// Bounding region outline.
	r := c.Region
	drawLine(dst, float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X-1), float64(r.Min.Y), box)
	drawLine(dst, float64(r.Max.X-1), float64(r.Min.Y), float64(r.Max.X-1), float64(r.Max.Y-1), box)
	drawLine(dst, float64(r.Max.X-1), float64(r.Max.Y-1), float64(r.Min.X), float64(r.Max.Y-1), box)
	drawLine(dst, float64(r.Min.X), float64(r.Max.Y-1), float64(r.Min.X), float64(r.Min.Y), box)

	// Closed contour loop.
	for i := range c.Points {
		p := c.Points[i]
		q := c.Points[(i+1)%len(c.Points)]
		drawLine(dst, p.X, p.Y, q.X, q.Y, line)
	}

	// Raw (unexpanded) landmark positions.
	for _, p := range points {
		drawDot(dst, int(p.X), int(p.Y), dot)
	}

	return true
}

// overlayColors picks per-face colors along the golden-angle hue sequence
// so consecutive faces get well-separated hues.
func overlayColors(faceIndex int) (line, dot, box color.RGBA) {
	hue := math.Mod(float64(faceIndex)*137.5, 360)
	l := colorful.Hsv(hue, 0.85, 0.95)
	d := colorful.Hsv(hue, 0.45, 1.0)
	bx := colorful.Hsv(hue, 0.85, 0.55)

	lr, lg, lb := l.RGB255()
	dr, dg, db := d.RGB255()
	br, bg, bb := bx.RGB255()
	return color.RGBA{lr, lg, lb, 255}, color.RGBA{dr, dg, db, 255}, color.RGBA{br, bg, bb, 255}
}

// drawLine plots a line segment with simple DDA stepping, one pixel per
// unit of the longer axis. Out-of-bounds pixels are dropped by Set.
func drawLine(dst draw.Image, x0, y0, x1, y1 float64, col color.RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		setInBounds(dst, int(x0), int(y0), col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		setInBounds(dst, int(x0+dx*t), int(y0+dy*t), col)
	}
}

func drawDot(dst draw.Image, x, y int, col color.RGBA) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			setInBounds(dst, x+dx, y+dy, col)
		}
	}
}

func setInBounds(dst draw.Image, x, y int, col color.RGBA) {
	b := dst.Bounds()
	if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
		dst.Set(x, y, col)
	}
}
