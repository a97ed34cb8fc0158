// Package limits provides centralized frame size limits for raw YUV decoding.
// This ensures consistent validation across the geometry and buffer code.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxDimension is the largest accepted frame width or height in pixels.
	MaxDimension = 16384

	// MaxFrameBytes is the absolute maximum for the source bytes of one frame.
	// This prevents memory exhaustion from bogus geometry (1GiB limit)
	MaxFrameBytes = 1 << 30

	// MacroblockSize is the alignment expected for width and height.
	MacroblockSize = 16
)

var (
	// ErrDimensionTooLarge indicates a width or height above MaxDimension
	ErrDimensionTooLarge = errors.New("dimension too large")

	// ErrFrameTooLarge indicates a frame that exceeds MaxFrameBytes
	ErrFrameTooLarge = errors.New("frame too large")
)

// ValidateDimensions checks width and height against MaxDimension.
// Zero values are accepted here; they are a geometry error, not a limit error.
func ValidateDimensions(width, height int) error {
	if width > MaxDimension {
		return fmt.Errorf("%w: width %d exceeds limit %d", ErrDimensionTooLarge, width, MaxDimension)
	}
	if height > MaxDimension {
		return fmt.Errorf("%w: height %d exceeds limit %d", ErrDimensionTooLarge, height, MaxDimension)
	}
	return nil
}

// ValidateFrameBytes validates a per-frame byte count against MaxFrameBytes.
func ValidateFrameBytes(n int) error {
	if n < 0 || n > MaxFrameBytes {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrFrameTooLarge, n, MaxFrameBytes)
	}
	return nil
}

// IsMacroblockAligned reports whether n is a multiple of MacroblockSize.
func IsMacroblockAligned(n int) bool {
	return n%MacroblockSize == 0
}
