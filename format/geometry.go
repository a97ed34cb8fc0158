package format

import (
	"fmt"

	"github.com/opd-ai/yuvcore/limits"
)

// WarningKind classifies a non-fatal geometry diagnostic.
type WarningKind uint8

const (
	// WarningUnalignedWidth means the width is not a multiple of 16.
	WarningUnalignedWidth WarningKind = iota
	// WarningUnalignedHeight means the height is not a multiple of 16.
	WarningUnalignedHeight
	// WarningPartialFrame means the source length is not a whole number of frames.
	WarningPartialFrame
)

// Warning is a diagnostic that points at likely-wrong caller geometry.
// Decoding proceeds regardless.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// Geometry holds the sizes derived from a width, a height and a descriptor.
type Geometry struct {
	Width  int
	Height int
	Pixels int

	// Source plane sizes in samples.
	LumaSize int
	CbSize   int
	CrSize   int

	// FrameSize is the number of 8-bit samples in one frame, which is also
	// the size of the raw interleaved buffer.
	FrameSize int

	// RawSize is the number of source bytes that make up one frame.
	RawSize int

	// CanonicalChromaSize is the size of each chroma plane handed to the
	// renderer.
	CanonicalChromaSize int

	Format Descriptor

	warnings []Warning
}

// Compute derives the geometry of one frame.
//
// Luma is always width*height. Chroma follows the stored subsampling. The raw
// size accounts for the 10-bit packings: two bytes per sample for the loose
// packing, five bytes per four samples for the compact one. A compact frame
// whose luma or chroma sample count is not a multiple of four has no whole
// byte size and is rejected.
func Compute(width, height int, desc Descriptor) (Geometry, error) {
	if width <= 0 || height <= 0 {
		return Geometry{}, fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, width, height)
	}
	if err := limits.ValidateDimensions(width, height); err != nil {
		return Geometry{}, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}

	g := Geometry{
		Width:    width,
		Height:   height,
		Pixels:   width * height,
		LumaSize: width * height,
		CbSize:   desc.Subsampling.ChromaSize(width, height),
		CrSize:   desc.Subsampling.ChromaSize(width, height),
		Format:   desc,
	}
	g.FrameSize = g.LumaSize + g.CbSize + g.CrSize
	g.CanonicalChromaSize = desc.Canonical.ChromaSize(width, height)

	switch desc.Packing {
	case Packing8:
		g.RawSize = g.FrameSize
	case PackingLoose10:
		g.RawSize = g.FrameSize * 2
	case PackingCompact10:
		if g.LumaSize%4 != 0 || (g.CbSize+g.CrSize)%4 != 0 {
			return Geometry{}, fmt.Errorf("%w: %dx%d has no whole byte size in %s packing",
				ErrInvalidGeometry, width, height, desc.Packing)
		}
		g.RawSize = g.FrameSize * 10 / 8
	default:
		return Geometry{}, fmt.Errorf("%w: packing %d", ErrUnsupportedFormat, desc.Packing)
	}

	if !limits.IsMacroblockAligned(width) {
		g.warnings = append(g.warnings, Warning{
			Kind:    WarningUnalignedWidth,
			Message: fmt.Sprintf("width %d is not a multiple of %d, check input", width, limits.MacroblockSize),
		})
	}
	if !limits.IsMacroblockAligned(height) {
		g.warnings = append(g.warnings, Warning{
			Kind:    WarningUnalignedHeight,
			Message: fmt.Sprintf("height %d is not a multiple of %d, check input", height, limits.MacroblockSize),
		})
	}

	return g, nil
}

// Warnings returns the non-fatal diagnostics found by Compute.
func (g Geometry) Warnings() []Warning {
	return append([]Warning(nil), g.warnings...)
}

// CheckSourceSize returns a warning when size bytes do not hold a whole
// number of frames.
func (g Geometry) CheckSourceSize(size int64) (Warning, bool) {
	if g.RawSize == 0 || size%int64(g.RawSize) == 0 {
		return Warning{}, false
	}
	return Warning{
		Kind: WarningPartialFrame,
		Message: fmt.Sprintf("source size %d is not a multiple of the frame size %d, check input",
			size, g.RawSize),
	}, true
}

// FrameCount returns the number of whole frames in size bytes.
func (g Geometry) FrameCount(size int64) int64 {
	if g.RawSize == 0 {
		return 0
	}
	return size / int64(g.RawSize)
}

// FrameOffset returns the byte offset of the 1-based frame n.
func (g Geometry) FrameOffset(n int) int64 {
	if n < 1 {
		return 0
	}
	return int64(n-1) * int64(g.RawSize)
}

// Equal reports whether two geometries describe the same buffers.
func (g Geometry) Equal(o Geometry) bool {
	return g.Width == o.Width && g.Height == o.Height && g.Format.ID == o.Format.ID
}

func (g Geometry) String() string {
	return fmt.Sprintf("%s %dx%d frame_size=%d raw_size=%d y_size=%d cb_size=%d cr_size=%d",
		g.Format.Name, g.Width, g.Height, g.FrameSize, g.RawSize, g.LumaSize, g.CbSize, g.CrSize)
}
