package bitdepth

import (
	"errors"
	"fmt"
)

// ErrShortBuffer indicates a source or destination too small for the
// requested number of samples.
var ErrShortBuffer = errors.New("buffer too short")

const (
	// LooseBytesPerSample is the storage of one loose 10-bit sample.
	LooseBytesPerSample = 2
	// CompactGroupBytes holds CompactGroupSamples samples in compact packing.
	CompactGroupBytes = 5
	// CompactGroupSamples is the number of samples in one compact group.
	CompactGroupSamples = 4

	tenBitMask = 0x3ff
)

// compactOffsets are the (bits from lower byte, bits from upper byte) pairs
// of the four samples in a five byte group.
var compactOffsets = [CompactGroupSamples][2]uint{{8, 2}, {6, 4}, {4, 6}, {2, 8}}

// Dither rounds a 10-bit sample to 8 bits, ties up, saturating at 255.
func Dither(sample uint32) byte {
	v := (sample + 2) >> 2
	if v > 255 {
		return 255
	}
	return byte(v)
}

// CombineBits rebuilds a 10-bit value from two adjacent bytes. The top
// offset0 bits of a become the low bits and the bottom offset1 bits of b the
// high bits.
func CombineBits(a byte, offset0 uint, b byte, offset1 uint) uint32 {
	lo := uint32(a) >> (8 - offset0)
	hi := uint32(b) & (1<<offset1 - 1)
	return (lo | hi<<offset0) & tenBitMask
}

// UnpackCompactGroup returns the four raw 10-bit samples of one group.
func UnpackCompactGroup(group []byte) [CompactGroupSamples]uint32 {
	var out [CompactGroupSamples]uint32
	for k, off := range compactOffsets {
		out[k] = CombineBits(group[k], off[0], group[k+1], off[1])
	}
	return out
}

// TenToEight converts len(dst) loose 10-bit samples from src.
func TenToEight(src, dst []byte) error {
	if need := len(dst) * LooseBytesPerSample; len(src) < need {
		return fmt.Errorf("%w: loose source has %d bytes, need %d", ErrShortBuffer, len(src), need)
	}
	for i := range dst {
		x := uint32(src[2*i+1])<<8 | uint32(src[2*i])
		dst[i] = Dither(x)
	}
	return nil
}

// TenToEightCompact converts len(dst) compact 10-bit samples from src.
// len(dst) must be a multiple of four.
func TenToEightCompact(src, dst []byte) error {
	if len(dst)%CompactGroupSamples != 0 {
		return fmt.Errorf("%w: %d samples is not a whole number of groups", ErrShortBuffer, len(dst))
	}
	groups := len(dst) / CompactGroupSamples
	if need := groups * CompactGroupBytes; len(src) < need {
		return fmt.Errorf("%w: compact source has %d bytes, need %d", ErrShortBuffer, len(src), need)
	}
	for g := 0; g < groups; g++ {
		s := UnpackCompactGroup(src[g*CompactGroupBytes : (g+1)*CompactGroupBytes])
		d := dst[g*CompactGroupSamples : (g+1)*CompactGroupSamples]
		for k := range s {
			d[k] = Dither(s[k])
		}
	}
	return nil
}

// CompactSize returns the bytes needed for n compact samples.
func CompactSize(n int) int {
	return n / CompactGroupSamples * CompactGroupBytes
}
