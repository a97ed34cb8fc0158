package metrics

import (
	"github.com/opd-ai/yuvcore/decoder"
	"github.com/opd-ai/yuvcore/tile"
	"github.com/sirupsen/logrus"
)

// Difference returns a new frame whose luma is 128-(a-b) per pixel, wrapped
// to 8 bits, and whose chroma is neutral.
func Difference(a, b *decoder.FrameBuffer) (*decoder.FrameBuffer, error) {
	if err := checkPair(a, b); err != nil {
		return nil, err
	}
	dst, err := decoder.NewFrameBuffer(a.Geometry())
	if err != nil {
		return nil, err
	}
	if err := DifferenceInto(dst, a, b); err != nil {
		return nil, err
	}
	return dst, nil
}

// DifferenceInto writes the difference of a and b into dst, resizing dst when
// its geometry differs. The raw buffer of dst is rebuilt in the layout order
// of the format so that packed and tiled consumers see the same picture.
func DifferenceInto(dst, a, b *decoder.FrameBuffer) error {
	if err := checkPair(a, b); err != nil {
		return err
	}
	g := a.Geometry()
	if err := dst.Reset(g); err != nil {
		return err
	}

	luma := dst.Luma()
	la, lb := a.Luma(), b.Luma()
	for i := range luma {
		luma[i] = byte(decoder.NeutralChroma - (int(la[i]) - int(lb[i])))
	}
	dst.FillChroma(decoder.NeutralChroma)

	raw := dst.Raw()
	switch {
	case g.Format.Packed != nil:
		// Only whole macropixels are written.
		p := g.Format.Packed
		macropixels := len(raw) / 4
		for i, y := range luma[:min(len(luma), 2*macropixels)] {
			raw[p.Y+2*i] = y
		}
		for i := 0; i < macropixels; i++ {
			raw[p.Cb+4*i] = decoder.NeutralChroma
			raw[p.Cr+4*i] = decoder.NeutralChroma
		}
	case g.Format.IsTiled():
		d := tile.Dims{Width: g.Format.Tile.Width, Height: g.Format.Tile.Height}
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				raw[tile.Offset(x, y, g.Width, d)] = luma[y*g.Width+x]
			}
		}
		fillNeutral(raw[g.LumaSize:])
	default:
		copy(raw, luma)
		fillNeutral(raw[g.LumaSize:])
	}
	dst.MarkValid()

	logrus.WithFields(logrus.Fields{
		"function": "DifferenceInto",
		"format":   g.Format.Name,
		"width":    g.Width,
		"height":   g.Height,
	}).Debug("Built difference frame")

	return nil
}

func fillNeutral(p []byte) {
	for i := range p {
		p[i] = decoder.NeutralChroma
	}
}
