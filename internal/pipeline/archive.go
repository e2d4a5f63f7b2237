package pipeline

import (
	"archive/zip"
	"image/png"
	"io"
)

// WriteArchive packages the outputs as a zip with one PNG entry each.
// Entry names come from Output.Name. Any failure is a *PackageError and
// the archive must be discarded; no partial archive is usable.
func WriteArchive(w io.Writer, outputs []*Output) error {
	zw := zip.NewWriter(w)
	for _, out := range outputs {
		entry, err := zw.Create(out.Name)
		if err != nil {
			return &PackageError{Err: err}
		}
		if err := png.Encode(entry, out.Image); err != nil {
			return &PackageError{Err: err}
		}
	}
	if err := zw.Close(); err != nil {
		return &PackageError{Err: err}
	}
	return nil
}
