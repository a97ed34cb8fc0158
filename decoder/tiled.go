package decoder

import (
	"fmt"
	"io"

	"github.com/opd-ai/yuvcore/format"
	"github.com/opd-ai/yuvcore/tile"
)

// tiledDecoder detiles a tile-major semi-planar frame into raster luma and
// raster interleaved chroma, then splits the chroma pairs.
type tiledDecoder struct {
	dims tile.Dims
}

func newTiledDecoder(desc format.Descriptor) (tiledDecoder, error) {
	dims := tile.Dims{Width: desc.Tile.Width, Height: desc.Tile.Height}
	if dims.Width <= 0 || dims.Height <= 0 {
		return tiledDecoder{}, fmt.Errorf("%w: %s has tile %s", tile.ErrInvalidTileDims, desc.Name, dims)
	}
	return tiledDecoder{dims: dims}, nil
}

func (tiledDecoder) Family() Family { return FamilyTiled }

func (d tiledDecoder) Validate(g format.Geometry) error {
	return d.dims.Validate(g.Width, g.Height)
}

func (d tiledDecoder) Decode(r io.Reader, fb *FrameBuffer) error {
	if err := readSamples(r, fb); err != nil {
		return err
	}
	g := fb.geom
	chroma := fb.scratch[:g.CbSize+g.CrSize]
	if err := tile.Detile(fb.raw[:g.FrameSize], g.Width, g.Height, d.dims, fb.luma, chroma); err != nil {
		return err
	}
	deinterleave(chroma, fb, g.CbSize)
	fb.valid = true
	return nil
}
