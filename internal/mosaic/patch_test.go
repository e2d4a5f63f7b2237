package mosaic

import (
	"image"
	"image/color"
	"testing"
)

// checkerboard returns an image alternating black and white every pixel,
// so any averaging is visible everywhere.
func checkerboard(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			img.Set(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	return img
}

func samePixels(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	bd := a.Bounds()
	for y := bd.Min.Y; y < bd.Max.Y; y++ {
		for x := bd.Min.X; x < bd.Max.X; x++ {
			ar, ag, ab, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab != bb || aa != ba {
				return false
			}
		}
	}
	return true
}

func TestAutoBlockSize(t *testing.T) {
	tests := []struct {
		regionWidth int
		want        int
	}{
		{0, MinBlockSize},
		{60, MinBlockSize},   // 60/12 = 5, clamped up
		{144, MinBlockSize},  // 144/12 = 12, at the floor
		{240, 20},            // 240/12 = 20, in range
		{384, MaxBlockSize},  // 384/12 = 32, at the ceiling
		{1000, MaxBlockSize}, // clamped down
	}

	for _, tt := range tests {
		if got := AutoBlockSize(tt.regionWidth); got != tt.want {
			t.Errorf("AutoBlockSize(%d): got %d, want %d", tt.regionWidth, got, tt.want)
		}
	}
}

func TestPixelate_BlockStructure(t *testing.T) {
	src := checkerboard(64, 64)
	region := image.Rect(0, 0, 64, 64)

	patch := Pixelate(src, region, 16)
	if patch.Bounds().Dx() != 64 || patch.Bounds().Dy() != 64 {
		t.Fatalf("patch size: got %v, want 64x64", patch.Bounds())
	}

	// Every 16x16 block must be a single flat color.
	for by := 0; by < 4; by++ {
		for bx := 0; bx < 4; bx++ {
			want := patch.At(bx*16, by*16)
			for y := by * 16; y < (by+1)*16; y++ {
				for x := bx * 16; x < (bx+1)*16; x++ {
					if patch.At(x, y) != want {
						t.Fatalf("block (%d,%d) not flat at (%d,%d)", bx, by, x, y)
					}
				}
			}
		}
	}
}

func TestPixelate_Idempotent(t *testing.T) {
	src := checkerboard(64, 64)
	region := image.Rect(0, 0, 64, 64)

	once := Pixelate(src, region, 16)
	twice := Pixelate(once, region, 16)

	if !samePixels(once, twice) {
		t.Error("re-pixelating at the same block size changed the block structure")
	}
}

func TestPixelate_SourceUntouched(t *testing.T) {
	src := checkerboard(32, 32)
	ref := checkerboard(32, 32)

	Pixelate(src, image.Rect(4, 4, 28, 28), 8)

	if !samePixels(src, ref) {
		t.Error("Pixelate modified its source image")
	}
}

func TestPixelate_SmallRegions(t *testing.T) {
	src := checkerboard(32, 32)

	tests := []struct {
		name      string
		region    image.Rectangle
		blockSize int
	}{
		{"region smaller than one block", image.Rect(0, 0, 3, 2), 16},
		{"single pixel region", image.Rect(5, 5, 6, 6), 16},
		{"block size below one", image.Rect(0, 0, 8, 8), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch := Pixelate(src, tt.region, tt.blockSize)
			if patch.Bounds().Dx() != tt.region.Dx() || patch.Bounds().Dy() != tt.region.Dy() {
				t.Errorf("patch size: got %v, want %dx%d", patch.Bounds(), tt.region.Dx(), tt.region.Dy())
			}
		})
	}
}
