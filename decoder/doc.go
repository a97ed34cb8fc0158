// Package decoder turns one frame of a raw YUV dump into canonical planes.
//
// # Architecture Overview
//
// Decoding one frame runs three stages:
//
//	source bytes → bit depth reduction → layout unpacking → Y / Cb / Cr planes
//
// The first two stages are shared: exactly Geometry.RawSize bytes are read,
// and 10-bit sources are reduced to one 8-bit sample per byte in the raw
// buffer. The last stage is a strategy per layout family:
//
//   - planar: three contiguous runs, chroma order per descriptor
//   - semi-planar: luma run plus one interleaved chroma run
//   - packed: 4:2:2 macropixels with per-format byte offsets
//   - tiled: tile-major semi-planar, detiled then de-interleaved
//   - mixed planar: 4:2:2 or 4:4:4 planar decimated to 4:2:0 for display
//   - mono: luma only, chroma filled with the neutral value 128
//
// # Engine
//
// An [Engine] is the explicit context for one geometry/format selection. It
// owns the [FrameBuffer] and reuses it for every frame until the geometry
// changes:
//
//	engine, err := decoder.NewEngine(352, 288, format.NV12)
//	if err != nil {
//	    return err
//	}
//	defer engine.Close()
//
//	for {
//	    frame, err := engine.Decode(file)
//	    if errors.Is(err, decoder.ErrShortRead) {
//	        break // end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    render(frame.Luma(), frame.Cb(), frame.Cr())
//	}
//
// The plane slices returned by a FrameBuffer are views. They stay valid until
// the next Decode call on the same engine and must not be modified.
//
// # Failure Semantics
//
// A decode either fully populates the buffer or fails. After a failure
// [FrameBuffer.Valid] reports false and the plane contents must not be
// trusted. Errors are terminal for the call; nothing is retried internally.
package decoder
