package decoder

import "errors"

// Sentinel errors for decoder package operations.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrShortRead indicates the source ended before a whole frame was read.
	// Playback loops usually treat it as end of stream.
	ErrShortRead = errors.New("short read")

	// ErrAllocationFailure indicates frame buffers could not be sized.
	ErrAllocationFailure = errors.New("frame buffer allocation failed")

	// ErrGeometryMismatch indicates a buffer sized for a different geometry.
	ErrGeometryMismatch = errors.New("frame geometry mismatch")

	// ErrNilSource indicates Decode was called without a byte source.
	ErrNilSource = errors.New("byte source cannot be nil")
)
