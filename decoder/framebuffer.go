package decoder

import (
	"fmt"
	"image"

	"github.com/opd-ai/yuvcore/format"
	"github.com/opd-ai/yuvcore/limits"
	"github.com/sirupsen/logrus"
)

// NeutralChroma is the chroma value of achromatic content.
const NeutralChroma = 0x80

// FrameBuffer owns the decoded planes of one frame.
//
// The raw buffer holds FrameSize 8-bit samples in source layout order (the
// packed frame for packed layouts, the tile-major frame for tiled ones). The
// luma, Cb and Cr buffers hold the canonical planes. A scratch buffer backs
// the 10-bit source bytes and the detiled chroma of tiled layouts.
type FrameBuffer struct {
	geom    format.Geometry
	raw     []byte
	luma    []byte
	cb      []byte
	cr      []byte
	scratch []byte

	valid   bool
	swapped bool
}

// NewFrameBuffer allocates buffers for g.
func NewFrameBuffer(g format.Geometry) (*FrameBuffer, error) {
	fb := &FrameBuffer{}
	if err := fb.allocate(g); err != nil {
		return nil, err
	}
	return fb, nil
}

func (fb *FrameBuffer) allocate(g format.Geometry) error {
	if g.LumaSize == 0 {
		return fmt.Errorf("%w: empty geometry", ErrAllocationFailure)
	}
	if err := limits.ValidateFrameBytes(g.RawSize); err != nil {
		return fmt.Errorf("%w: %v", ErrAllocationFailure, err)
	}

	chroma := max(g.CbSize, g.CanonicalChromaSize)

	scratch := 0
	if g.Format.Packing != format.Packing8 {
		scratch = g.RawSize
	}
	if g.Format.IsTiled() {
		scratch = max(scratch, g.CbSize+g.CrSize)
	}

	fb.geom = g
	fb.raw = make([]byte, g.FrameSize)
	fb.luma = make([]byte, g.LumaSize)
	fb.cb = make([]byte, chroma)
	fb.cr = make([]byte, chroma)
	fb.scratch = make([]byte, scratch)
	fb.valid = false

	logrus.WithFields(logrus.Fields{
		"function":     "FrameBuffer.allocate",
		"format":       g.Format.Name,
		"width":        g.Width,
		"height":       g.Height,
		"raw_size":     g.FrameSize,
		"chroma_size":  chroma,
		"scratch_size": scratch,
	}).Debug("Allocated frame buffers")

	return nil
}

// Reset prepares the buffer for g. Buffers are reused when the geometry is
// unchanged and released and reallocated otherwise.
func (fb *FrameBuffer) Reset(g format.Geometry) error {
	if fb.luma != nil && fb.geom.Equal(g) {
		fb.valid = false
		return nil
	}
	fb.Release()
	return fb.allocate(g)
}

// Release drops every buffer. The FrameBuffer can be reused with Reset.
func (fb *FrameBuffer) Release() {
	fb.raw = nil
	fb.luma = nil
	fb.cb = nil
	fb.cr = nil
	fb.scratch = nil
	fb.valid = false
}

// Geometry returns the geometry the buffers are sized for.
func (fb *FrameBuffer) Geometry() format.Geometry {
	return fb.geom
}

// Valid reports whether the last decode fully populated the buffer.
func (fb *FrameBuffer) Valid() bool {
	return fb.valid
}

// Luma returns the luma plane view.
func (fb *FrameBuffer) Luma() []byte {
	if fb.luma == nil {
		return nil
	}
	return fb.luma[:fb.geom.LumaSize]
}

// Cb returns the canonical Cb plane view.
func (fb *FrameBuffer) Cb() []byte {
	if fb.swapped {
		return fb.chromaView(fb.cr)
	}
	return fb.chromaView(fb.cb)
}

// Cr returns the canonical Cr plane view.
func (fb *FrameBuffer) Cr() []byte {
	if fb.swapped {
		return fb.chromaView(fb.cb)
	}
	return fb.chromaView(fb.cr)
}

func (fb *FrameBuffer) chromaView(p []byte) []byte {
	if p == nil {
		return nil
	}
	return p[:fb.geom.CanonicalChromaSize]
}

// Raw returns the raw interleaved frame in source layout order.
func (fb *FrameBuffer) Raw() []byte {
	if fb.raw == nil {
		return nil
	}
	return fb.raw[:fb.geom.FrameSize]
}

// SetChromaSwap exchanges the Cb and Cr views when swap is true.
func (fb *FrameBuffer) SetChromaSwap(swap bool) {
	fb.swapped = swap
}

// ChromaSwapped reports whether the Cb and Cr views are exchanged.
func (fb *FrameBuffer) ChromaSwapped() bool {
	return fb.swapped
}

// ChromaDims returns the width and height of the canonical chroma planes.
func (fb *FrameBuffer) ChromaDims() (int, int) {
	return fb.geom.Format.Canonical.ChromaDims(fb.geom.Width, fb.geom.Height)
}

// YCbCr returns a read-only image view of the canonical planes. The view
// shares memory with the buffer. Dimensions are expected to be even.
func (fb *FrameBuffer) YCbCr() *image.YCbCr {
	ratio := image.YCbCrSubsampleRatio420
	if fb.geom.Format.Canonical == format.Subsampling422 {
		ratio = image.YCbCrSubsampleRatio422
	}
	cw, _ := fb.ChromaDims()
	return &image.YCbCr{
		Y:              fb.Luma(),
		Cb:             fb.Cb(),
		Cr:             fb.Cr(),
		YStride:        fb.geom.Width,
		CStride:        cw,
		SubsampleRatio: ratio,
		Rect:           image.Rect(0, 0, fb.geom.Width, fb.geom.Height),
	}
}

// FillChroma sets both canonical chroma planes to v.
func (fb *FrameBuffer) FillChroma(v byte) {
	fill(fb.chromaView(fb.cb), v)
	fill(fb.chromaView(fb.cr), v)
}

// MarkValid flags the buffer as fully populated by a producer other than a
// Decoder.
func (fb *FrameBuffer) MarkValid() {
	fb.valid = true
}

func fill(p []byte, v byte) {
	for i := range p {
		p[i] = v
	}
}
