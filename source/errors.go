package source

import "errors"

// Sentinel errors for source package operations.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrClosed indicates use of a source after Close.
	ErrClosed = errors.New("source is closed")

	// ErrNegativeOffset indicates a seek before the start of the stream.
	ErrNegativeOffset = errors.New("negative seek offset")
)
