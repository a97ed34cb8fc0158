package format

import "errors"

// Sentinel errors for format package operations.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrUnsupportedFormat indicates a format id outside the known set.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrNoMatch indicates no name token matched the given text.
	ErrNoMatch = errors.New("no format name matched")

	// ErrInvalidGeometry indicates dimensions that cannot describe a frame.
	ErrInvalidGeometry = errors.New("invalid geometry")
)
