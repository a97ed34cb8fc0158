package decoder

import (
	"errors"
	"fmt"
	"io"

	"github.com/opd-ai/yuvcore/bitdepth"
	"github.com/opd-ai/yuvcore/format"
)

// Family is a layout family with its own unpacking strategy.
type Family uint8

const (
	FamilyPlanar Family = iota
	FamilySemiPlanar
	FamilyPacked
	FamilyTiled
	FamilyMixedPlanar
	FamilyMono
)

func (f Family) String() string {
	switch f {
	case FamilyPlanar:
		return "planar"
	case FamilySemiPlanar:
		return "semi-planar"
	case FamilyPacked:
		return "packed"
	case FamilyTiled:
		return "tiled"
	case FamilyMixedPlanar:
		return "mixed planar"
	case FamilyMono:
		return "mono"
	default:
		return "unknown"
	}
}

// FamilyOf returns the strategy family that decodes desc.
func FamilyOf(desc format.Descriptor) Family {
	switch {
	case desc.Subsampling == format.SubsamplingMono:
		return FamilyMono
	case desc.Topology == format.TopologyPacked:
		return FamilyPacked
	case desc.Topology == format.TopologySemiPlanar:
		return FamilySemiPlanar
	case desc.Topology == format.TopologyTiledSemiPlanar:
		return FamilyTiled
	case desc.IsMixedSubsample():
		return FamilyMixedPlanar
	default:
		return FamilyPlanar
	}
}

// Decoder unpacks one frame of a layout family.
type Decoder interface {
	// Decode consumes exactly fb.Geometry().RawSize bytes from r and fills fb.
	Decode(r io.Reader, fb *FrameBuffer) error
	// Validate rejects geometries the strategy cannot decode.
	Validate(g format.Geometry) error
	// Family returns the layout family.
	Family() Family
}

// New returns the strategy for desc.
func New(desc format.Descriptor) (Decoder, error) {
	switch FamilyOf(desc) {
	case FamilyPlanar:
		return planarDecoder{}, nil
	case FamilySemiPlanar:
		return semiPlanarDecoder{}, nil
	case FamilyPacked:
		return packedDecoder{}, nil
	case FamilyTiled:
		return newTiledDecoder(desc)
	case FamilyMixedPlanar:
		return mixedPlanarDecoder{}, nil
	case FamilyMono:
		return monoDecoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrUnsupportedFormat, desc.Name)
	}
}

// readSamples reads one frame of source bytes and leaves FrameSize 8-bit
// samples in source layout order in fb.raw.
func readSamples(r io.Reader, fb *FrameBuffer) error {
	if fb == nil || fb.luma == nil {
		return fmt.Errorf("%w: frame buffer not allocated", ErrGeometryMismatch)
	}
	fb.valid = false
	if r == nil {
		return ErrNilSource
	}
	g := fb.geom
	dst := fb.raw[:g.FrameSize]

	src := dst
	if g.Format.Packing != format.Packing8 {
		src = fb.scratch[:g.RawSize]
	}

	if n, err := io.ReadFull(r, src); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: got %d of %d bytes", ErrShortRead, n, len(src))
		}
		return fmt.Errorf("reading frame: %w", err)
	}

	switch g.Format.Packing {
	case format.PackingLoose10:
		return bitdepth.TenToEight(src, dst)
	case format.PackingCompact10:
		// Luma and chroma are separate compact runs; both are whole groups.
		lumaBytes := bitdepth.CompactSize(g.LumaSize)
		if err := bitdepth.TenToEightCompact(src[:lumaBytes], dst[:g.LumaSize]); err != nil {
			return err
		}
		return bitdepth.TenToEightCompact(src[lumaBytes:], dst[g.LumaSize:])
	}
	return nil
}

// splitChroma returns the Cb and Cr destinations in source order.
func splitChroma(fb *FrameBuffer) (first, second []byte) {
	if fb.geom.Format.Order == format.CrFirst {
		return fb.cr, fb.cb
	}
	return fb.cb, fb.cr
}

// deinterleave splits n chroma pairs of src into the Cb and Cr planes.
// Even offsets go to the first component in source order, odd to the second.
func deinterleave(src []byte, fb *FrameBuffer, n int) {
	first, second := splitChroma(fb)
	for i := 0; i < n; i++ {
		first[i] = src[2*i]
		second[i] = src[2*i+1]
	}
}
