package yuvcore

import (
	"fmt"

	"github.com/opd-ai/yuvcore/limits"
	"github.com/sirupsen/logrus"
)

// Macroblock holds the samples of one 16x16 luma block and the matching
// chroma blocks of the canonical planes.
type Macroblock struct {
	// Column and Row index the macroblock grid.
	Column int
	Row    int

	// Rows is the number of luma rows present, less than 16 for the bottom
	// row of a frame whose height is not a multiple of 16.
	Rows int

	Luma [limits.MacroblockSize * limits.MacroblockSize]byte

	// ChromaWidth and ChromaHeight give the block size in Cb and Cr.
	ChromaWidth  int
	ChromaHeight int
	Cb           []byte
	Cr           []byte
}

// Macroblock returns the macroblock that contains pixel (x, y) of the last
// decoded frame. Frames whose width is not a multiple of 16 have no
// addressable macroblock grid and are refused.
func (v *Viewer) Macroblock(x, y int) (Macroblock, error) {
	fb := v.Frame()
	if fb == nil {
		return Macroblock{}, ErrNoFrame
	}
	g := fb.Geometry()
	if !limits.IsMacroblockAligned(g.Width) {
		return Macroblock{}, fmt.Errorf("%w: width %d", ErrUnalignedMacroblock, g.Width)
	}
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return Macroblock{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, g.Width, g.Height)
	}

	const size = limits.MacroblockSize
	mb := Macroblock{
		Column: x / size,
		Row:    y / size,
	}
	top := mb.Row * size
	left := mb.Column * size
	mb.Rows = min(size, g.Height-top)

	luma := fb.Luma()
	for r := 0; r < mb.Rows; r++ {
		row := (top + r) * g.Width
		copy(mb.Luma[r*size:(r+1)*size], luma[row+left:row+left+size])
	}

	cw, ch := fb.ChromaDims()
	if cw == 0 || ch == 0 {
		return mb, nil
	}
	sx, sy := g.Width/cw, g.Height/ch
	mb.ChromaWidth = size / sx
	mb.ChromaHeight = size / sy

	ctop, cleft := top/sy, left/sx
	crows := min(mb.ChromaHeight, ch-ctop)
	mb.Cb = make([]byte, mb.ChromaWidth*mb.ChromaHeight)
	mb.Cr = make([]byte, mb.ChromaWidth*mb.ChromaHeight)
	cb, cr := fb.Cb(), fb.Cr()
	for r := 0; r < crows; r++ {
		src := (ctop+r)*cw + cleft
		dst := r * mb.ChromaWidth
		copy(mb.Cb[dst:dst+mb.ChromaWidth], cb[src:src+mb.ChromaWidth])
		copy(mb.Cr[dst:dst+mb.ChromaWidth], cr[src:src+mb.ChromaWidth])
	}

	logrus.WithFields(logrus.Fields{
		"function": "Viewer.Macroblock",
		"column":   mb.Column,
		"row":      mb.Row,
	}).Debug("Extracted macroblock")

	return mb, nil
}
