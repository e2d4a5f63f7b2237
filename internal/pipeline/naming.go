package pipeline

import (
	"path/filepath"
	"strings"
)

// DefaultBaseName is used when a file name sanitizes down to nothing.
const DefaultBaseName = "image"

// SanitizeBaseName strips the extension from a file name and replaces
// characters that are unsafe in archive entry names with underscores.
func SanitizeBaseName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, base)
	if base == "" {
		return DefaultBaseName
	}
	return base
}

// OutputName derives the PNG output name for an input file name.
func OutputName(name string) string {
	return SanitizeBaseName(name) + "_mosaic.png"
}
