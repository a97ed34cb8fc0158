package decoder

import (
	"fmt"
	"io"

	"github.com/opd-ai/yuvcore/format"
)

// packedDecoder extracts planes from packed 4:2:2 macropixels. Luma repeats
// every 2 bytes and each chroma component every 4, starting at the offsets
// of the descriptor. The raw buffer keeps the packed frame.
type packedDecoder struct{}

func (packedDecoder) Family() Family { return FamilyPacked }

func (packedDecoder) Validate(g format.Geometry) error {
	if g.Format.Packed == nil {
		return fmt.Errorf("%w: %s has no packed offsets", format.ErrUnsupportedFormat, g.Format.Name)
	}
	return validatePacked(g)
}

func (d packedDecoder) Decode(r io.Reader, fb *FrameBuffer) error {
	if err := checkGeometry(fb, d.Validate); err != nil {
		return err
	}
	if err := readSamples(r, fb); err != nil {
		return err
	}
	g := fb.geom
	p := g.Format.Packed
	raw := fb.raw[:g.FrameSize]

	for i := range fb.luma[:g.LumaSize] {
		fb.luma[i] = raw[p.Y+2*i]
	}
	for i := range fb.cb[:g.CbSize] {
		fb.cb[i] = raw[p.Cb+4*i]
	}
	for i := range fb.cr[:g.CrSize] {
		fb.cr[i] = raw[p.Cr+4*i]
	}
	fb.valid = true
	return nil
}

// validatePacked rejects odd widths for layouts stored as 4:2:2
// macropixels. Each macropixel carries two luma samples, so an odd width
// leaves a row that no whole number of macropixels covers.
func validatePacked(g format.Geometry) error {
	if g.Format.Packed == nil || g.Width%2 == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s needs an even width, got %d",
		format.ErrInvalidGeometry, g.Format.Name, g.Width)
}

// checkGeometry runs validate against an allocated buffer before any byte
// is consumed. Unallocated buffers are left to readSamples.
func checkGeometry(fb *FrameBuffer, validate func(format.Geometry) error) error {
	if fb == nil || fb.luma == nil {
		return nil
	}
	if err := validate(fb.geom); err != nil {
		fb.valid = false
		return err
	}
	return nil
}
