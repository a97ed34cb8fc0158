package metrics

import "errors"

// Sentinel errors for metrics package operations.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrGeometryMismatch indicates frames of different size or format.
	ErrGeometryMismatch = errors.New("frame geometry mismatch")

	// ErrInvalidFrame indicates a frame whose last decode did not succeed.
	ErrInvalidFrame = errors.New("frame is not valid")
)
