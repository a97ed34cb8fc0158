package metrics

import (
	"bytes"
	"math"
	"testing"

	"github.com/opd-ai/yuvcore/decoder"
	"github.com/opd-ai/yuvcore/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode returns a standalone frame decoded from src.
func decode(t *testing.T, width, height int, id format.ID, src []byte) *decoder.FrameBuffer {
	t.Helper()
	e, err := decoder.NewEngine(width, height, id)
	require.NoError(t, err)
	fb, err := e.Decode(bytes.NewReader(src))
	require.NoError(t, err)
	return fb
}

func ramp(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i)
	}
	return p
}

func add(p []byte, k int) []byte {
	out := make([]byte, len(p))
	for i, v := range p {
		out[i] = byte(int(v) + k)
	}
	return out
}

func TestPSNRIdentical(t *testing.T) {
	src := ramp(384)
	a := decode(t, 16, 16, format.YV12, src)
	b := decode(t, 16, 16, format.YV12, src)

	s, err := PSNR(a, b)
	require.NoError(t, err)
	assert.True(t, s.Identical)
	assert.True(t, math.IsInf(s.Value, 1))
	assert.Equal(t, "identical", s.String())
}

func TestPSNRKnownValue(t *testing.T) {
	const width, height = 16, 16
	src := make([]byte, width*height*3/2)
	other := make([]byte, len(src))
	// Every luma sample off by 5; chroma differs too and is ignored.
	for i := 0; i < width*height; i++ {
		src[i] = byte(i % 200)
		other[i] = src[i] + 5
	}
	for i := width * height; i < len(src); i++ {
		src[i] = 90
	}

	a := decode(t, width, height, format.YV12, src)
	b := decode(t, width, height, format.YV12, other)

	s, err := PSNR(a, b)
	require.NoError(t, err)
	assert.False(t, s.Identical)
	assert.InDelta(t, 25.0, s.MSE, 1e-9)
	assert.InDelta(t, 10*math.Log10(255*255/25.0), s.Value, 1e-9)
	assert.InDelta(t, 34.15, s.Value, 0.01)
}

func TestPSNRGeometryMismatch(t *testing.T) {
	a := decode(t, 16, 16, format.YV12, ramp(384))
	b := decode(t, 16, 16, format.NV12, ramp(384))

	_, err := PSNR(a, b)
	assert.ErrorIs(t, err, ErrGeometryMismatch)

	_, err = PSNR(a, nil)
	assert.ErrorIs(t, err, ErrInvalidFrame)
}

func TestDifferenceUniformOffset(t *testing.T) {
	const width, height = 16, 16
	src := ramp(width * height * 3 / 2)

	for _, k := range []int{0, 1, 7, -3, 100} {
		f := decode(t, width, height, format.YV12, src)
		g := decode(t, width, height, format.YV12, add(src, k))

		d, err := Difference(f, g)
		require.NoError(t, err)
		assert.True(t, d.Valid())
		assert.Equal(t, bytes.Repeat([]byte{byte(128 + k)}, width*height), d.Luma(), "k=%d", k)
		assert.Equal(t, bytes.Repeat([]byte{128}, width*height/4), d.Cb())
		assert.Equal(t, bytes.Repeat([]byte{128}, width*height/4), d.Cr())
	}
}

func TestDifferenceWraps(t *testing.T) {
	a := decode(t, 2, 2, format.Mono, []byte{0, 255, 200, 10})
	b := decode(t, 2, 2, format.Mono, []byte{255, 0, 10, 200})

	d, err := Difference(a, b)
	require.NoError(t, err)
	// 128-(0-255)=383 -> 127, 128-255=-127 -> 129, 128-190=-62 -> 194, 128+190=318 -> 62.
	assert.Equal(t, []byte{127, 129, 194, 62}, d.Luma())
}

func TestDifferencePackedRaw(t *testing.T) {
	src := []byte{0x10, 0x40, 0x20, 0x50, 0x30, 0x40, 0x40, 0x50}
	a := decode(t, 2, 2, format.YUY2, src)
	b := decode(t, 2, 2, format.YUY2, add(src, -1))

	d, err := Difference(a, b)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{127}, 4), d.Luma())
	assert.Equal(t, []byte{127, 128, 127, 128, 127, 128, 127, 128}, d.Raw())
}

func TestDifferencePackedOddWidth(t *testing.T) {
	// Engines refuse odd packed widths, but frames can be produced by other
	// means and must still be comparable.
	desc, err := format.Lookup(format.YUY2)
	require.NoError(t, err)
	g, err := format.Compute(3, 2, desc)
	require.NoError(t, err)

	frame := func(y byte) *decoder.FrameBuffer {
		fb, err := decoder.NewFrameBuffer(g)
		require.NoError(t, err)
		copy(fb.Luma(), bytes.Repeat([]byte{y}, g.LumaSize))
		fb.MarkValid()
		return fb
	}

	var d *decoder.FrameBuffer
	assert.NotPanics(t, func() {
		d, err = Difference(frame(40), frame(38))
	})
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{126}, 6), d.Luma())
	require.Len(t, d.Raw(), 10)
	assert.Equal(t, []byte{126, 128, 126, 128, 126, 128, 126, 128}, d.Raw()[:8], "whole macropixels only")
}

func TestDifferenceIntoReusesDestination(t *testing.T) {
	src := ramp(384)
	a := decode(t, 16, 16, format.NV12, src)
	b := decode(t, 16, 16, format.NV12, src)

	dst, err := Difference(a, b)
	require.NoError(t, err)
	ptr := &dst.Luma()[0]

	require.NoError(t, DifferenceInto(dst, a, b))
	assert.Same(t, ptr, &dst.Luma()[0])
	assert.Equal(t, bytes.Repeat([]byte{128}, 384), dst.Raw())
}

func TestDifferenceIntoResizesDestination(t *testing.T) {
	dst := decode(t, 16, 16, format.YV12, ramp(384))
	a := decode(t, 32, 16, format.YV12, ramp(768))

	require.NoError(t, DifferenceInto(dst, a, a))
	assert.Equal(t, 32, dst.Geometry().Width)
	assert.Len(t, dst.Luma(), 512)
}

func TestHistogram(t *testing.T) {
	src := append(bytes.Repeat([]byte{10}, 256), bytes.Repeat([]byte{200}, 128)...)
	fb := decode(t, 16, 16, format.YV12, src)

	h, err := Histogram(fb)
	require.NoError(t, err)
	assert.Equal(t, 256, h.Luma[10])
	assert.Equal(t, 256, h.Luma.Total())
	assert.InDelta(t, 10.0, h.Luma.Mean(), 1e-9)
	assert.Equal(t, 64, h.Cb[200])
	assert.Equal(t, 64, h.Cr[200])

	var empty Bins
	assert.Zero(t, empty.Mean())
}

func TestFingerprint(t *testing.T) {
	a := decode(t, 16, 16, format.YV12, ramp(384))
	b := decode(t, 16, 16, format.YV12, ramp(384))
	c := decode(t, 16, 16, format.YV12, add(ramp(384), 1))

	da, err := Fingerprint(a)
	require.NoError(t, err)
	db, err := Fingerprint(b)
	require.NoError(t, err)
	dc, err := Fingerprint(c)
	require.NoError(t, err)

	assert.Equal(t, da, db)
	assert.NotEqual(t, da, dc)
	assert.Len(t, da.String(), 64)

	_, err = Fingerprint(nil)
	assert.ErrorIs(t, err, ErrInvalidFrame)
}
