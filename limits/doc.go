// Package limits provides centralized frame size limits for raw YUV decoding.
// Every buffer the decoding engine allocates is sized from caller-supplied
// geometry, so these limits are the single place where unreasonable sizes are
// rejected before any allocation happens.
//
// # Size Hierarchy
//
//   - MaxDimension (16384 pixels): the largest accepted width or height.
//
//   - MaxFrameBytes (1 GiB): the largest number of source bytes a single frame
//     may occupy on disk, including the two-bytes-per-sample expansion of the
//     loose 10-bit layouts.
//
// # Validation Functions
//
//	if err := limits.ValidateDimensions(width, height); err != nil {
//	    // ErrDimensionTooLarge
//	}
//
//	if err := limits.ValidateFrameBytes(rawSize); err != nil {
//	    // ErrFrameTooLarge
//	}
//
// Both errors are wrapped with the offending and the maximum value so callers
// can log them directly and still classify them with errors.Is.
package limits
