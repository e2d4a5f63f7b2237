package pipeline

import (
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"    // Registers the PNG decoder and encodes outputs
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format decoder
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// IsImagePath reports whether path carries a decodable image extension.
func IsImagePath(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// FilterImagePaths drops paths that are not images. Non-image files are
// filtered silently before processing; order is preserved.
func FilterImagePaths(paths []string) []string {
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if IsImagePath(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// LoadImage opens and decodes one input file. Failures are reported as
// *DecodeError.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// SavePNG encodes img as PNG at path, creating or truncating the file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
