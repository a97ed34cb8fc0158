package decoder

import (
	"io"

	"github.com/opd-ai/yuvcore/format"
)

// planarDecoder reads luma, then the two chroma planes in descriptor order.
// Layouts that carry packed offsets (Y42210) also get their raw buffer
// rebuilt as a packed 4:2:2 frame.
type planarDecoder struct{}

func (planarDecoder) Family() Family { return FamilyPlanar }

func (planarDecoder) Validate(g format.Geometry) error {
	return validatePacked(g)
}

func (d planarDecoder) Decode(r io.Reader, fb *FrameBuffer) error {
	if err := checkGeometry(fb, d.Validate); err != nil {
		return err
	}
	if err := readSamples(r, fb); err != nil {
		return err
	}
	splitPlanar(fb)
	if fb.geom.Format.Packed != nil {
		repack(fb)
	}
	fb.valid = true
	return nil
}

func splitPlanar(fb *FrameBuffer) {
	g := fb.geom
	first, second := splitChroma(fb)

	off := copy(fb.luma[:g.LumaSize], fb.raw[:g.LumaSize])
	off += copy(first[:g.CbSize], fb.raw[off:off+g.CbSize])
	copy(second[:g.CrSize], fb.raw[off:off+g.CrSize])
}

// repack rebuilds fb.raw as a packed 4:2:2 frame from the planes.
func repack(fb *FrameBuffer) {
	g := fb.geom
	p := g.Format.Packed
	raw := fb.raw[:g.FrameSize]

	for i, y := range fb.luma[:g.LumaSize] {
		raw[p.Y+2*i] = y
	}
	for i, cb := range fb.cb[:g.CbSize] {
		raw[p.Cb+4*i] = cb
	}
	for i, cr := range fb.cr[:g.CrSize] {
		raw[p.Cr+4*i] = cr
	}
}

// mixedPlanarDecoder decodes 4:2:2 and 4:4:4 planar layouts and decimates
// the chroma planes in place to 4:2:0 for display. Rows are dropped, not
// averaged; 4:4:4 also drops odd columns. This is lossy by intent.
type mixedPlanarDecoder struct{}

func (mixedPlanarDecoder) Family() Family { return FamilyMixedPlanar }

func (mixedPlanarDecoder) Validate(format.Geometry) error { return nil }

func (mixedPlanarDecoder) Decode(r io.Reader, fb *FrameBuffer) error {
	if err := readSamples(r, fb); err != nil {
		return err
	}
	splitPlanar(fb)

	g := fb.geom
	switch g.Format.Subsampling {
	case format.Subsampling422:
		decimateRows(fb.cb, g.Width, g.Height)
		decimateRows(fb.cr, g.Width, g.Height)
	case format.Subsampling444:
		decimateRowsCols(fb.cb, g.Width, g.Height)
		decimateRowsCols(fb.cr, g.Width, g.Height)
	}
	fb.valid = true
	return nil
}

// decimateRows turns a width/2 x height plane into width/2 x height/2 by
// keeping even rows. Destination rows trail source rows, so the in-place
// copy never reads overwritten data.
func decimateRows(p []byte, width, height int) {
	cw := width / 2
	for i := 1; i < height/2; i++ {
		copy(p[i*cw:(i+1)*cw], p[2*i*cw:2*i*cw+cw])
	}
}

// decimateRowsCols turns a width x height plane into width/2 x height/2 by
// keeping even rows and even columns.
func decimateRowsCols(p []byte, width, height int) {
	cw := width / 2
	for i := 0; i < height/2; i++ {
		src := p[2*i*width:]
		dst := p[i*cw:]
		for j := 0; j < cw; j++ {
			dst[j] = src[2*j]
		}
	}
}

// monoDecoder reads luma only and paints both chroma planes neutral.
type monoDecoder struct{}

func (monoDecoder) Family() Family { return FamilyMono }

func (monoDecoder) Validate(format.Geometry) error { return nil }

func (monoDecoder) Decode(r io.Reader, fb *FrameBuffer) error {
	if err := readSamples(r, fb); err != nil {
		return err
	}
	copy(fb.luma[:fb.geom.LumaSize], fb.raw[:fb.geom.LumaSize])
	fb.FillChroma(NeutralChroma)
	fb.valid = true
	return nil
}
