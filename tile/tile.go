package tile

import (
	"errors"
	"fmt"
)

// Sentinel errors for tile package operations.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrInvalidTileDims indicates a tile shape that cannot cover the frame.
	ErrInvalidTileDims = errors.New("invalid tile dimensions")

	// ErrShortBuffer indicates a source or destination plane too small for
	// the frame.
	ErrShortBuffer = errors.New("tile buffer too small")
)

// Dims is a tile block size in pixels.
type Dims struct {
	Width  int
	Height int
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Validate checks that d tiles a width x height 4:2:0 frame exactly: both
// dimensions non-zero, the tile width even so Cb/Cr pairs stay inside one
// tile, and both the luma and the half-height chroma plane covered by whole
// tiles.
func (d Dims) Validate(width, height int) error {
	switch {
	case d.Width <= 0 || d.Height <= 0:
		return fmt.Errorf("%w: %s", ErrInvalidTileDims, d)
	case d.Width%2 != 0:
		return fmt.Errorf("%w: tile width %d must be even", ErrInvalidTileDims, d.Width)
	case width%d.Width != 0:
		return fmt.Errorf("%w: tile width %d does not divide frame width %d", ErrInvalidTileDims, d.Width, width)
	case height%d.Height != 0:
		return fmt.Errorf("%w: tile height %d does not divide frame height %d", ErrInvalidTileDims, d.Height, height)
	case (height/2)%d.Height != 0:
		return fmt.Errorf("%w: tile height %d does not divide chroma height %d", ErrInvalidTileDims, d.Height, height/2)
	}
	return nil
}

// Offset returns the tile-major offset of raster position (x, y) in a plane
// of the given width.
func Offset(x, y, width int, d Dims) int {
	o := y / d.Height * d.Height * width
	o += x / d.Width * d.Width * d.Height
	o += y % d.Height * d.Width
	o += x % d.Width
	return o
}

// Detile converts a tiled semi-planar 4:2:0 frame in src into a raster luma
// plane and a raster interleaved chroma plane (width bytes per row, height/2
// rows).
func Detile(src []byte, width, height int, d Dims, luma, chroma []byte) error {
	if err := d.Validate(width, height); err != nil {
		return err
	}

	lumaSize := width * height
	chromaSize := width * (height / 2)
	if len(src) < lumaSize+chromaSize {
		return fmt.Errorf("%w: source has %d bytes, need %d", ErrShortBuffer, len(src), lumaSize+chromaSize)
	}
	if len(luma) < lumaSize {
		return fmt.Errorf("%w: luma has %d bytes, need %d", ErrShortBuffer, len(luma), lumaSize)
	}
	if len(chroma) < chromaSize {
		return fmt.Errorf("%w: chroma has %d bytes, need %d", ErrShortBuffer, len(chroma), chromaSize)
	}

	detilePlane(src[:lumaSize], luma, width, height, d)
	detilePlane(src[lumaSize:lumaSize+chromaSize], chroma, width, height/2, d)
	return nil
}

// detilePlane copies one tile row segment at a time. Each segment is the
// in-tile row r of tile (tx, ty) and lands at raster row ty*th+r.
func detilePlane(src, dst []byte, width, rows int, d Dims) {
	tilesX := width / d.Width
	tilesY := rows / d.Height
	tileBytes := d.Width * d.Height

	for ty := 0; ty < tilesY; ty++ {
		rowBase := ty * d.Height * width
		for tx := 0; tx < tilesX; tx++ {
			tileBase := rowBase + tx*tileBytes
			for r := 0; r < d.Height; r++ {
				s := tileBase + r*d.Width
				o := rowBase + r*width + tx*d.Width
				copy(dst[o:o+d.Width], src[s:s+d.Width])
			}
		}
	}
}
