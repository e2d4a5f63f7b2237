// Package pipeline orchestrates the image-to-image flow: decode an input,
// run face detection, mosaic every detected face, and encode or package the
// result. A Runner handles single images and sequential batches.
//
// Batch processing is strictly sequential by design: one decode/detect/
// composite/encode sequence in flight at a time, bounding peak memory and
// serializing access to the one detector instance. A run moves through
// Idle -> Running -> Done or Failed; any per-file failure aborts the whole
// run with no partial archive.
//
// Zero detected faces is not a failure: the input is passed through
// unchanged so a batch of N inputs always yields N outputs.
//
// Failures carry a category type (DecodeError, DetectError, PackageError,
// detector.InitError) so callers can report them distinctly; all wrap the
// underlying cause for errors.Is/As.
package pipeline
