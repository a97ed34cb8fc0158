package bitdepth

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// packCompact lays samples out LSB first, 40 bits per group of four.
func packCompact(samples []uint32) []byte {
	out := make([]byte, 0, CompactSize(len(samples)))
	for g := 0; g+CompactGroupSamples <= len(samples); g += CompactGroupSamples {
		var bits uint64
		for k := 0; k < CompactGroupSamples; k++ {
			bits |= uint64(samples[g+k]&tenBitMask) << (10 * k)
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], bits)
		out = append(out, buf[:CompactGroupBytes]...)
	}
	return out
}

func packLoose(samples []uint32) []byte {
	out := make([]byte, len(samples)*LooseBytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

func TestDither(t *testing.T) {
	tests := []struct {
		in   uint32
		want byte
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{5, 1},
		{6, 2},
		{504, 126},
		{1020, 255},
		{1021, 255},
		{1023, 255},
		{0xffff, 255},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Dither(tt.in), "Dither(%d)", tt.in)
	}
}

func TestCombineBits(t *testing.T) {
	assert.Equal(t, uint32(0x3ff), CombineBits(0xff, 8, 0xff, 2))
	assert.Equal(t, uint32(0), CombineBits(0x00, 8, 0xfc, 2), "bits above offset1 ignored")
	assert.Equal(t, uint32(0x3f), CombineBits(0xfc, 6, 0x00, 4))
	assert.Equal(t, uint32(0x3fc), CombineBits(0x3f, 2, 0xff, 8))
}

func TestTenToEightCompact_WorkedExample(t *testing.T) {
	src := []byte{0xF8, 0xE1, 0x87, 0x1F, 0x7E}

	raw := UnpackCompactGroup(src)
	for k := 1; k < CompactGroupSamples; k++ {
		assert.Equal(t, raw[0], raw[k], "sample %d", k)
	}
	assert.Equal(t, uint32(0x1f8), raw[0])

	dst := make([]byte, 4)
	require.NoError(t, TenToEightCompact(src, dst))
	assert.Equal(t, []byte{0x7E, 0x7E, 0x7E, 0x7E}, dst)
}

func TestTenToEightCompact_RoundTrip(t *testing.T) {
	samples := make([]uint32, 1024)
	for i := range samples {
		samples[i] = uint32(i)
	}
	src := packCompact(samples)
	require.Len(t, src, CompactSize(len(samples)))

	dst := make([]byte, len(samples))
	require.NoError(t, TenToEightCompact(src, dst))
	for i, s := range samples {
		require.Equal(t, Dither(s), dst[i], "sample %d", i)
	}
}

func TestTenToEight_RoundTrip(t *testing.T) {
	samples := make([]uint32, 1024)
	for i := range samples {
		samples[i] = uint32(i)
	}
	dst := make([]byte, len(samples))
	require.NoError(t, TenToEight(packLoose(samples), dst))
	for i, s := range samples {
		require.Equal(t, Dither(s), dst[i], "sample %d", i)
	}
}

func TestConverters_RangeAndMonotonic(t *testing.T) {
	samples := make([]uint32, 1024)
	for i := range samples {
		samples[i] = uint32(i)
	}

	loose := make([]byte, len(samples))
	compact := make([]byte, len(samples))
	require.NoError(t, TenToEight(packLoose(samples), loose))
	require.NoError(t, TenToEightCompact(packCompact(samples), compact))

	for i := 1; i < len(samples); i++ {
		assert.GreaterOrEqual(t, loose[i], loose[i-1], "loose not monotonic at %d", i)
		assert.GreaterOrEqual(t, compact[i], compact[i-1], "compact not monotonic at %d", i)
	}
	assert.Equal(t, byte(0), loose[0])
	assert.Equal(t, byte(255), loose[1023])
	assert.Equal(t, loose, compact)
}

func TestTenToEight_UnusedHighBitsSaturate(t *testing.T) {
	dst := make([]byte, 1)
	require.NoError(t, TenToEight([]byte{0x00, 0xfc}, dst))
	assert.Equal(t, byte(255), dst[0])
}

func TestConverters_ShortBuffers(t *testing.T) {
	dst := make([]byte, 8)

	assert.ErrorIs(t, TenToEight(make([]byte, 15), dst), ErrShortBuffer)
	assert.ErrorIs(t, TenToEightCompact(make([]byte, 9), dst), ErrShortBuffer)
	assert.ErrorIs(t, TenToEightCompact(make([]byte, 10), make([]byte, 6)), ErrShortBuffer)

	assert.NoError(t, TenToEight(make([]byte, 16), dst))
	assert.NoError(t, TenToEightCompact(make([]byte, 10), dst))
}
