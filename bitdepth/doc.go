// Package bitdepth reduces 10-bit luma/chroma samples to 8 bits.
//
// Two storage conventions are supported:
//
//   - Loose: every sample sits in two little-endian bytes, the upper six
//     bits of the high byte unused.
//   - Compact: four samples share five bytes, bits laid out LSB first across
//     byte boundaries.
//
// Both paths round with [Dither], which adds two before dropping the two low
// bits and saturates at 255:
//
//	dst := make([]byte, samples)
//	if err := bitdepth.TenToEightCompact(src, dst); err != nil {
//	    return err
//	}
package bitdepth
