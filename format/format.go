package format

import (
	"fmt"
	"slices"
	"strings"
)

// ID identifies one supported on-disk layout. Values are stable and match
// the numbering callers pass on the command line.
type ID int

// Supported layouts.
const (
	YV12         ID = iota // planar 4:2:0, Y then Cb then Cr
	IYUV                   // planar 4:2:0, Y then Cb then Cr
	YUY2                   // packed 4:2:2, Y0 Cb Y1 Cr
	UYVY                   // packed 4:2:2, Cb Y0 Cr Y1
	YVYU                   // packed 4:2:2, Y0 Cr Y1 Cb
	YV1210                 // planar 4:2:0, loose 10-bit
	Y42210                 // planar 4:2:2, loose 10-bit, exposed as YVYU
	NV12                   // semi-planar 4:2:0, CbCr
	NV21                   // semi-planar 4:2:0, CrCb
	Mono                   // luma only
	YV16                   // planar 4:2:2, Y then Cr then Cb
	YUV444P                // planar 4:4:4, Y then Cr then Cb
	NV1210                 // semi-planar 4:2:0, compact 10-bit
	NV12Tiled              // tiled semi-planar 4:2:0, 4x4 tiles
	NV1210Tiled            // tiled semi-planar 4:2:0, compact 10-bit, 4x4 tiles
	NV12Tiled8x4           // tiled semi-planar 4:2:0, 8x4 tiles

	formatCount
)

// Topology is the arrangement of the color components in the source bytes.
type Topology uint8

const (
	// TopologyPlanar stores each component as one contiguous run.
	TopologyPlanar Topology = iota
	// TopologySemiPlanar stores luma, then interleaved chroma pairs.
	TopologySemiPlanar
	// TopologyPacked interleaves all components at fixed offsets.
	TopologyPacked
	// TopologyTiledSemiPlanar is semi-planar stored in tile-major order.
	TopologyTiledSemiPlanar
)

func (t Topology) String() string {
	switch t {
	case TopologyPlanar:
		return "planar"
	case TopologySemiPlanar:
		return "semi-planar"
	case TopologyPacked:
		return "packed"
	case TopologyTiledSemiPlanar:
		return "tiled semi-planar"
	default:
		return "unknown"
	}
}

// Subsampling is the chroma resolution relative to luma.
type Subsampling uint8

const (
	SubsamplingMono Subsampling = iota
	Subsampling420
	Subsampling422
	Subsampling444
)

func (s Subsampling) String() string {
	switch s {
	case SubsamplingMono:
		return "mono"
	case Subsampling420:
		return "4:2:0"
	case Subsampling422:
		return "4:2:2"
	case Subsampling444:
		return "4:4:4"
	default:
		return "unknown"
	}
}

// ChromaSize returns the byte size of one chroma plane for a frame of the
// given dimensions.
func (s Subsampling) ChromaSize(width, height int) int {
	cw, ch := s.ChromaDims(width, height)
	return cw * ch
}

// ChromaDims returns the width and height of one chroma plane.
func (s Subsampling) ChromaDims(width, height int) (int, int) {
	switch s {
	case Subsampling420:
		return width / 2, height / 2
	case Subsampling422:
		return width / 2, height
	case Subsampling444:
		return width, height
	default:
		return 0, 0
	}
}

// ChromaOrder is the order of the two chroma components in the source.
type ChromaOrder uint8

const (
	CbFirst ChromaOrder = iota
	CrFirst
)

// Packing is the sample storage scheme.
type Packing uint8

const (
	// Packing8 stores one 8-bit sample per byte.
	Packing8 Packing = iota
	// PackingLoose10 stores one 10-bit sample in two little-endian bytes.
	PackingLoose10
	// PackingCompact10 stores four 10-bit samples in five bytes.
	PackingCompact10
)

// BitDepth returns the sample bit depth of the packing.
func (p Packing) BitDepth() int {
	if p == Packing8 {
		return 8
	}
	return 10
}

func (p Packing) String() string {
	switch p {
	case Packing8:
		return "8-bit"
	case PackingLoose10:
		return "10-bit loose"
	case PackingCompact10:
		return "10-bit compact"
	default:
		return "unknown"
	}
}

// PackedOffsets locates the first Y, Cb and Cr byte inside a packed 4:2:2
// macropixel. Luma repeats every 2 bytes, chroma every 4.
type PackedOffsets struct {
	Y  int
	Cb int
	Cr int
}

// TileShape is the block size of a tiled layout in pixels.
type TileShape struct {
	Width  int
	Height int
}

func (t TileShape) String() string {
	return fmt.Sprintf("%dx%d", t.Width, t.Height)
}

// Descriptor describes one supported layout. Descriptors are immutable;
// Lookup hands out copies.
type Descriptor struct {
	ID     ID
	Name   string
	Tokens []string

	Topology    Topology
	Subsampling Subsampling // as stored
	Canonical   Subsampling // as handed to the renderer
	Order       ChromaOrder
	Packing     Packing

	// Packed is set for packed layouts and for layouts whose raw buffer is
	// rebuilt as a packed frame after decoding.
	Packed *PackedOffsets

	// Tile is the zero value for untiled layouts.
	Tile TileShape
}

// BitDepth returns the source sample bit depth.
func (d Descriptor) BitDepth() int {
	return d.Packing.BitDepth()
}

// IsTiled reports whether the layout is tile-major.
func (d Descriptor) IsTiled() bool {
	return d.Topology == TopologyTiledSemiPlanar
}

// IsMixedSubsample reports whether decoding resamples the chroma planes.
func (d Descriptor) IsMixedSubsample() bool {
	return d.Subsampling != SubsamplingMono && d.Subsampling != d.Canonical
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s [%s]", d.Name, strings.Join(d.Tokens, " "))
}

var (
	yuy2Offsets = &PackedOffsets{Y: 0, Cb: 1, Cr: 3}
	uyvyOffsets = &PackedOffsets{Y: 1, Cb: 0, Cr: 2}
	yvyuOffsets = &PackedOffsets{Y: 0, Cb: 3, Cr: 1}
)

var registry = [formatCount]Descriptor{
	YV12: {
		Name: "YV12", Tokens: []string{"yv12", "p420"},
		Topology: TopologyPlanar, Subsampling: Subsampling420, Canonical: Subsampling420,
	},
	IYUV: {
		Name: "IYUV", Tokens: []string{"iyuv", "i420"},
		Topology: TopologyPlanar, Subsampling: Subsampling420, Canonical: Subsampling420,
	},
	YUY2: {
		Name: "YUY2", Tokens: []string{"yuy2", "yuyv"},
		Topology: TopologyPacked, Subsampling: Subsampling422, Canonical: Subsampling422,
		Packed: yuy2Offsets,
	},
	UYVY: {
		Name: "UYVY", Tokens: []string{"uyvy"},
		Topology: TopologyPacked, Subsampling: Subsampling422, Canonical: Subsampling422,
		Packed: uyvyOffsets,
	},
	YVYU: {
		Name: "YVYU", Tokens: []string{"yvyu"},
		Topology: TopologyPacked, Subsampling: Subsampling422, Canonical: Subsampling422,
		Packed: yvyuOffsets,
	},
	YV1210: {
		Name: "YV1210", Tokens: []string{"yv1210"},
		Topology: TopologyPlanar, Subsampling: Subsampling420, Canonical: Subsampling420,
		Packing: PackingLoose10,
	},
	Y42210: {
		Name: "Y42210", Tokens: []string{"y42210"},
		Topology: TopologyPlanar, Subsampling: Subsampling422, Canonical: Subsampling422,
		Packing: PackingLoose10, Packed: yvyuOffsets,
	},
	NV12: {
		Name: "NV12", Tokens: []string{"yuv420sp", "nv12"},
		Topology: TopologySemiPlanar, Subsampling: Subsampling420, Canonical: Subsampling420,
	},
	NV21: {
		Name: "NV21", Tokens: []string{"nv21"},
		Topology: TopologySemiPlanar, Subsampling: Subsampling420, Canonical: Subsampling420,
		Order: CrFirst,
	},
	Mono: {
		Name: "MONO", Tokens: []string{"mono", "y8", "grey", "y800"},
		Topology: TopologyPlanar, Subsampling: SubsamplingMono, Canonical: Subsampling420,
	},
	YV16: {
		Name: "YV16", Tokens: []string{"yv16", "422p"},
		Topology: TopologyPlanar, Subsampling: Subsampling422, Canonical: Subsampling420,
		Order: CrFirst,
	},
	YUV444P: {
		Name: "YUV444P", Tokens: []string{"444p"},
		Topology: TopologyPlanar, Subsampling: Subsampling444, Canonical: Subsampling420,
		Order: CrFirst,
	},
	NV1210: {
		Name: "NV1210", Tokens: []string{"nv1210", "yuv420sp_10bit"},
		Topology: TopologySemiPlanar, Subsampling: Subsampling420, Canonical: Subsampling420,
		Packing: PackingCompact10,
	},
	NV12Tiled: {
		Name: "NV12TILED", Tokens: []string{"yuv420sp_tiled"},
		Topology: TopologyTiledSemiPlanar, Subsampling: Subsampling420, Canonical: Subsampling420,
		Tile: TileShape{Width: 4, Height: 4},
	},
	NV1210Tiled: {
		Name: "NV1210TILED", Tokens: []string{"yuv420sp_tiled_mode0_10bit"},
		Topology: TopologyTiledSemiPlanar, Subsampling: Subsampling420, Canonical: Subsampling420,
		Packing: PackingCompact10, Tile: TileShape{Width: 4, Height: 4},
	},
	NV12Tiled8x4: {
		Name: "NV12TILED8X4", Tokens: []string{"yuv420sp_tiled8x4"},
		Topology: TopologyTiledSemiPlanar, Subsampling: Subsampling420, Canonical: Subsampling420,
		Tile: TileShape{Width: 8, Height: 4},
	},
}

func init() {
	for i := range registry {
		registry[i].ID = ID(i)
	}
}

// Lookup returns the descriptor for id.
func Lookup(id ID) (Descriptor, error) {
	if id < 0 || id >= formatCount {
		return Descriptor{}, fmt.Errorf("%w: id %d", ErrUnsupportedFormat, int(id))
	}
	d := registry[id]
	d.Tokens = slices.Clone(d.Tokens)
	if d.Packed != nil {
		offsets := *d.Packed
		d.Packed = &offsets
	}
	return d, nil
}

// All returns every supported descriptor ordered by id.
func All() []Descriptor {
	out := make([]Descriptor, 0, formatCount)
	for id := ID(0); id < formatCount; id++ {
		d, _ := Lookup(id)
		out = append(out, d)
	}
	return out
}

func (id ID) String() string {
	if id < 0 || id >= formatCount {
		return "unknown"
	}
	return registry[id].Name
}
