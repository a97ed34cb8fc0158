package yuvcore

import "errors"

// Sentinel errors for yuvcore package operations.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrNoSource indicates Options without a dump path.
	ErrNoSource = errors.New("no source path")

	// ErrNoDiffSource indicates a diff-mode operation without a second dump.
	ErrNoDiffSource = errors.New("no diff source configured")

	// ErrUnalignedMacroblock indicates macroblock addressing on a frame whose
	// width is not a multiple of 16.
	ErrUnalignedMacroblock = errors.New("width is not macroblock aligned")

	// ErrOutOfBounds indicates a pixel position outside the frame.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrNoFrame indicates an operation that needs a decoded frame before
	// the first successful step.
	ErrNoFrame = errors.New("no frame decoded")

	// ErrFrameOutOfRange indicates a frame number below 1.
	ErrFrameOutOfRange = errors.New("frame number out of range")
)
