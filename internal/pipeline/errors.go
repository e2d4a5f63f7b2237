package pipeline

import "fmt"

// DecodeError reports an input file that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DetectError reports a detector failure while processing one file.
type DetectError struct {
	Path string
	Err  error
}

func (e *DetectError) Error() string {
	return fmt.Sprintf("detect faces in %s: %v", e.Path, e.Err)
}

func (e *DetectError) Unwrap() error { return e.Err }

// PackageError reports a failure while writing the output archive.
type PackageError struct {
	Err error
}

func (e *PackageError) Error() string {
	return fmt.Sprintf("package outputs: %v", e.Err)
}

func (e *PackageError) Unwrap() error { return e.Err }
