package mosaic

import (
	"image"

	"github.com/disintegration/imaging"
)

// Block size bounds used by AutoBlockSize.
const (
	MinBlockSize = 12
	MaxBlockSize = 32
)

// AutoBlockSize derives a block size from the bounding region width so
// block density tracks face size: one twelfth of the region width, clamped
// to [MinBlockSize, MaxBlockSize].
func AutoBlockSize(regionWidth int) int {
	return clampInt(regionWidth/12, MinBlockSize, MaxBlockSize)
}

// Pixelate renders a pixelated copy of the given region of src. The region
// is extracted, downscaled to one sample per block with a smoothing filter,
// then upscaled back to the region size with nearest-neighbor resampling,
// which produces the square-block look. src is never modified.
//
// blockSize values below 1 are treated as 1, which reduces the effect to a
// near-identity resample.
func Pixelate(src image.Image, region image.Rectangle, blockSize int) *image.NRGBA {
	if blockSize < 1 {
		blockSize = 1
	}

	patch := imaging.Crop(src, region)
	w := patch.Bounds().Dx()
	h := patch.Bounds().Dy()

	sw := w / blockSize
	if sw < 1 {
		sw = 1
	}
	sh := h / blockSize
	if sh < 1 {
		sh = 1
	}

	small := imaging.Resize(patch, sw, sh, imaging.Box)
	return imaging.Resize(small, w, h, imaging.NearestNeighbor)
}
