// Package detector abstracts the external face-landmark model behind the
// Detector interface. The model itself is a black box to this module: it
// receives an image and returns zero or more per-face landmark arrays in
// the Face Mesh index scheme.
//
// Two implementations are provided. Command drives a separate landmarker
// process over a length-prefixed pipe protocol, keeping the module free of
// cgo and inference-runtime dependencies. Static returns canned results and
// backs deterministic tests.
//
// Lazy wraps construction of either with process-wide memoization: the
// first caller pays for model startup, later callers reuse the handle, and
// a failed startup is retried on the next call instead of being cached.
package detector
