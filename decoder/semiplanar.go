package decoder

import (
	"io"

	"github.com/opd-ai/yuvcore/format"
)

// semiPlanarDecoder reads a luma run followed by one interleaved chroma run.
type semiPlanarDecoder struct{}

func (semiPlanarDecoder) Family() Family { return FamilySemiPlanar }

func (semiPlanarDecoder) Validate(format.Geometry) error { return nil }

func (semiPlanarDecoder) Decode(r io.Reader, fb *FrameBuffer) error {
	if err := readSamples(r, fb); err != nil {
		return err
	}
	g := fb.geom
	copy(fb.luma[:g.LumaSize], fb.raw[:g.LumaSize])
	deinterleave(fb.raw[g.LumaSize:g.FrameSize], fb, g.CbSize)
	fb.valid = true
	return nil
}
